package findcmd

import (
	"math"
	"strconv"
)

// SizeFilter is the resolved size criterion: SizeEqual or SizeRange.
type SizeFilter interface {
	clauses() []string
}

// SizeEqual matches one exact size.
type SizeEqual struct {
	Size SizeSpec
}

// SizeRange matches sizes above Bigger and below Smaller. Either bound may
// be nil. A range whose lower bound is not below its upper bound matches
// nothing; see Empty.
type SizeRange struct {
	Bigger  *SizeSpec
	Smaller *SizeSpec
}

func (s SizeEqual) clauses() []string {
	return []string{sizeClause("", s.Size)}
}

func (s SizeRange) clauses() []string {
	var out []string
	if s.Bigger != nil {
		out = append(out, sizeClause("+", *s.Bigger))
	}
	if s.Smaller != nil {
		out = append(out, sizeClause("-", *s.Smaller))
	}
	return out
}

var sizeUnitBytes = map[SizeUnit]float64{
	Bytes:     1,
	Kilobytes: 1 << 10,
	Megabytes: 1 << 20,
	Gigabytes: 1 << 30,
}

// Empty reports whether both bounds are set and no size can satisfy them.
// Bounds with units it does not know are never considered empty.
func (s SizeRange) Empty() bool {
	if s.Bigger == nil || s.Smaller == nil {
		return false
	}
	lo, ok1 := sizeUnitBytes[s.Bigger.Unit]
	hi, ok2 := sizeUnitBytes[s.Smaller.Unit]
	if !ok1 || !ok2 {
		return false
	}
	return math.Floor(*s.Bigger.Size)*lo >= math.Floor(*s.Smaller.Size)*hi
}

func sizeClause(sign string, s SizeSpec) string {
	return "-size " + sign + formatNumber(math.Floor(*s.Size)) + string(s.Unit)
}

// TimeFilter is the resolved time criterion: TimeExact or TimeRange.
type TimeFilter interface {
	clauses() []string
}

// TimeValue is an amount of time in a given unit.
type TimeValue struct {
	Value float64
	Unit  TimeUnit
}

// TimeExact matches files whose timestamp is exactly At ago.
type TimeExact struct {
	Mode TimeMode
	At   TimeValue
}

// TimeRange matches files changed more than Earlier ago and less than Later
// ago. Either bound may be nil.
type TimeRange struct {
	Mode    TimeMode
	Earlier *TimeValue
	Later   *TimeValue
}

func (t TimeExact) clauses() []string {
	return []string{timeClause("", t.Mode, t.At)}
}

func (t TimeRange) clauses() []string {
	var out []string
	if t.Earlier != nil {
		out = append(out, timeClause("+", t.Mode, *t.Earlier))
	}
	if t.Later != nil {
		out = append(out, timeClause("-", t.Mode, *t.Later))
	}
	return out
}

// timeClause picks -Xtime for days and -Xmin for everything else. find only
// counts days and minutes, so hours are converted to minutes.
func timeClause(sign string, mode TimeMode, v TimeValue) string {
	value := v.Value
	suffix := "min"
	switch v.Unit {
	case Days:
		suffix = "time"
	case Hours:
		value *= 60
	}
	return "-" + string(mode) + suffix + " " + sign + formatNumber(value)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
