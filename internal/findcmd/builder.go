// Package findcmd builds find(1) command lines from discrete search criteria.
//
// A Builder collects criteria through its Set methods. Each setter ignores
// input that is incomplete on its own, so callers can pass whatever a form
// currently holds and always get a usable command back from Command.
package findcmd

import (
	"regexp"
	"strings"
)

// DefaultBinary is the invocation token used unless SetBinary overrides it.
const DefaultBinary = "find"

// Builder accumulates criteria for a single find invocation.
//
// A Builder is meant to be filled and read once per render; it is not safe
// for concurrent use.
type Builder struct {
	binary string

	directory   string
	fileType    FileType
	namePattern *NamePattern

	sizeEqual   *SizeSpec
	sizeSmaller *SizeSpec
	sizeBigger  *SizeSpec

	owners *OwnerSpec
	groups *OwnerSpec
	perms  *PermSpec
	time   *TimeSpec
	depth  *DepthSpec
	action *ActionSpec
}

// NewBuilder returns an empty Builder for DefaultBinary.
func NewBuilder() *Builder {
	return &Builder{binary: DefaultBinary}
}

// SetBinary replaces the invocation token, e.g. "gfind" on macOS.
func (b *Builder) SetBinary(binary string) {
	if binary == "" {
		return
	}
	b.binary = binary
}

// Binary returns the invocation token, DefaultBinary if none was set.
func (b *Builder) Binary() string {
	if b.binary == "" {
		return DefaultBinary
	}
	return b.binary
}

// SetDirectory sets the starting point of the search.
func (b *Builder) SetDirectory(directory string) {
	if directory == "" {
		return
	}
	b.directory = directory
}

// SetFileType restricts matches to one file type.
func (b *Builder) SetFileType(fileType FileType) {
	if fileType == "" {
		return
	}
	b.fileType = fileType
}

// SetFilenamePattern matches file names against p.Pattern.
func (b *Builder) SetFilenamePattern(p NamePattern) {
	if p.Pattern == "" {
		return
	}
	b.namePattern = &p
}

// SetFileSizeEqual matches files of exactly the given size. It takes
// precedence over the smaller and bigger bounds.
func (b *Builder) SetFileSizeEqual(s SizeSpec) {
	if s.Size == nil {
		return
	}
	b.sizeEqual = &s
}

// ClearFileSizeEqual removes the exact size so that the smaller and bigger
// bounds apply again.
func (b *Builder) ClearFileSizeEqual() {
	b.sizeEqual = nil
}

// SetFileSizeSmaller matches files smaller than the given size.
func (b *Builder) SetFileSizeSmaller(s SizeSpec) {
	if s.Size == nil {
		return
	}
	b.sizeSmaller = &s
}

// SetFileSizeBigger matches files bigger than the given size.
func (b *Builder) SetFileSizeBigger(s SizeSpec) {
	if s.Size == nil {
		return
	}
	b.sizeBigger = &s
}

// SetFileOwners matches files owned by any of the listed users.
func (b *Builder) SetFileOwners(o OwnerSpec) {
	if o.Values == "" && !o.IncludeInvalid {
		return
	}
	b.owners = &o
}

// SetFileGroups matches files owned by any of the listed groups.
func (b *Builder) SetFileGroups(g OwnerSpec) {
	if g.Values == "" && !g.IncludeInvalid {
		return
	}
	b.groups = &g
}

// SetPermissions matches files by permission bits.
func (b *Builder) SetPermissions(p PermSpec) {
	if p.Perms == "" {
		return
	}
	b.perms = &p
}

// SetFileTime matches files by one of their timestamps.
func (b *Builder) SetFileTime(t TimeSpec) {
	if t.Exact == nil && t.Earlier == nil && t.Later == nil {
		return
	}
	b.time = &t
}

// SetSearchDepth limits how deep below the starting point find descends.
func (b *Builder) SetSearchDepth(d DepthSpec) {
	if d.Min == nil && d.Max == nil {
		return
	}
	b.depth = &d
}

// SetAction sets what find does with each match. A nil action is ignored.
func (b *Builder) SetAction(a *ActionSpec) {
	if a == nil {
		return
	}
	action := *a
	b.action = &action
}

// SizeFilter resolves the stored size bounds, or returns nil if none are set.
func (b *Builder) SizeFilter() SizeFilter {
	switch {
	case b.sizeEqual != nil:
		return SizeEqual{Size: *b.sizeEqual}
	case b.sizeBigger != nil || b.sizeSmaller != nil:
		return SizeRange{Bigger: b.sizeBigger, Smaller: b.sizeSmaller}
	default:
		return nil
	}
}

// TimeFilter resolves the stored time criteria, or returns nil if none are set.
func (b *Builder) TimeFilter() TimeFilter {
	t := b.time
	if t == nil {
		return nil
	}

	mode := t.Mode
	if mode == "" {
		mode = TimeModification
	}

	if t.Exact != nil {
		return TimeExact{Mode: mode, At: TimeValue{Value: *t.Exact, Unit: t.ExactUnit}}
	}

	r := TimeRange{Mode: mode}
	if t.Earlier != nil {
		r.Earlier = &TimeValue{Value: *t.Earlier, Unit: t.EarlierUnit}
	}
	if t.Later != nil {
		r.Later = &TimeValue{Value: *t.Later, Unit: t.LaterUnit}
	}
	return r
}

// Command returns the complete command line. Every clause, including the
// last one, is followed by a single space.
func (b *Builder) Command() string {
	var sb strings.Builder
	sb.WriteString(Quote(b.Binary()))
	sb.WriteByte(' ')
	for _, c := range b.Clauses() {
		sb.WriteString(c.Text)
		sb.WriteByte(' ')
	}
	return sb.String()
}

var alternativeSep = regexp.MustCompile(`\s*\|\s*`)

// Alternatives splits a name pattern into its "|"-separated alternatives,
// dropping whitespace around each separator.
func Alternatives(pattern string) []string {
	if !strings.Contains(pattern, "|") {
		return []string{pattern}
	}
	return alternativeSep.Split(pattern, -1)
}
