// Package timeparse parses the human-friendly ages accepted by the time
// flags into values find understands.
package timeparse

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/jparise/findcmd/internal/findcmd"
)

type unit struct {
	scale float64
	unit  findcmd.TimeUnit
}

var units = map[string]unit{
	"m": {1, findcmd.Minutes},
	"h": {1, findcmd.Hours},
	"d": {1, findcmd.Days},
	"w": {7, findcmd.Days},
	// Aliases
	"min":     {1, findcmd.Minutes},
	"mins":    {1, findcmd.Minutes},
	"minute":  {1, findcmd.Minutes},
	"minutes": {1, findcmd.Minutes},
	"hour":    {1, findcmd.Hours},
	"hours":   {1, findcmd.Hours},
	"day":     {1, findcmd.Days},
	"days":    {1, findcmd.Days},
	"week":    {7, findcmd.Days},
	"weeks":   {7, findcmd.Days},
}

// ParseAge parses an age such as "90m", "2h", "3days" or "1w". A date
// accepted by ParseTime is converted into whole minutes before now.
func ParseAge(s string, now time.Time) (findcmd.TimeValue, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return findcmd.TimeValue{}, fmt.Errorf("empty age string")
	}

	if t, err := ParseTime(s, now.Location()); err == nil {
		if t.After(now) {
			return findcmd.TimeValue{}, fmt.Errorf("invalid age %q: date is in the future", s)
		}
		return findcmd.TimeValue{Value: math.Floor(now.Sub(t).Minutes()), Unit: findcmd.Minutes}, nil
	}

	// Find where the unit starts (first non-digit)
	i := 0
	for i < len(s) && (s[i] >= '0' && s[i] <= '9') {
		i++
	}

	if i == 0 {
		return findcmd.TimeValue{}, fmt.Errorf("invalid age %q: expected <number><unit> or a date", s)
	}
	if i == len(s) {
		return findcmd.TimeValue{}, fmt.Errorf("invalid age %q: missing unit", s)
	}

	numStr := s[:i]
	num, err := strconv.ParseInt(numStr, 10, 64)
	if err != nil {
		return findcmd.TimeValue{}, fmt.Errorf("invalid age %q: %w", s, err)
	}

	unitStr := strings.ToLower(strings.TrimSpace(s[i:]))
	u, ok := units[unitStr]
	if !ok {
		return findcmd.TimeValue{}, fmt.Errorf("invalid age %q: unknown unit %q", s, unitStr)
	}

	return findcmd.TimeValue{Value: float64(num) * u.scale, Unit: u.unit}, nil
}
