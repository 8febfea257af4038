// Package criteria holds the flat set of search criteria a front end
// collects, and renders it into a find command line.
package criteria

import (
	"strings"

	"github.com/jparise/findcmd/internal/findcmd"
)

// Criteria is every field a user can fill in. Optional numbers are
// pointers so that zero stays distinguishable from unset.
type Criteria struct {
	Binary    string `yaml:"binary,omitempty" toml:"binary,omitempty" json:"binary,omitempty"`
	Directory string `yaml:"directory" toml:"directory" json:"directory"`
	FileType  string `yaml:"fileType" toml:"fileType" json:"fileType"`

	NamePattern    string `yaml:"namePattern" toml:"namePattern" json:"namePattern"`
	NameMatchOpt   string `yaml:"nameMatchOpt" toml:"nameMatchOpt" json:"nameMatchOpt"` // normal or not
	NameIgnoreCase bool   `yaml:"nameIgnoreCase" toml:"nameIgnoreCase" json:"nameIgnoreCase"`

	FileSizeEqual       *float64 `yaml:"fileSizeEqual" toml:"fileSizeEqual" json:"fileSizeEqual"`
	FileSizeEqualUnit   string   `yaml:"fileSizeEqualUnit" toml:"fileSizeEqualUnit" json:"fileSizeEqualUnit"`
	FileSizeSmaller     *float64 `yaml:"fileSizeSmaller" toml:"fileSizeSmaller" json:"fileSizeSmaller"`
	FileSizeSmallerUnit string   `yaml:"fileSizeSmallerUnit" toml:"fileSizeSmallerUnit" json:"fileSizeSmallerUnit"`
	FileSizeBigger      *float64 `yaml:"fileSizeBigger" toml:"fileSizeBigger" json:"fileSizeBigger"`
	FileSizeBiggerUnit  string   `yaml:"fileSizeBiggerUnit" toml:"fileSizeBiggerUnit" json:"fileSizeBiggerUnit"`

	FileOwners           string `yaml:"fileOwners" toml:"fileOwners" json:"fileOwners"`
	IncludeInvalidOwners bool   `yaml:"includeInvalidOwners" toml:"includeInvalidOwners" json:"includeInvalidOwners"`
	FileGroups           string `yaml:"fileGroups" toml:"fileGroups" json:"fileGroups"`
	IncludeInvalidGroups bool   `yaml:"includeInvalidGroups" toml:"includeInvalidGroups" json:"includeInvalidGroups"`

	Perms    Perms  `yaml:"perms" toml:"perms" json:"perms"`
	PermMode string `yaml:"permMode" toml:"permMode" json:"permMode"`

	TimeMode        string   `yaml:"timeMode" toml:"timeMode" json:"timeMode"`
	TimeExact       *float64 `yaml:"timeExact" toml:"timeExact" json:"timeExact"`
	TimeExactUnit   string   `yaml:"timeExactUnit" toml:"timeExactUnit" json:"timeExactUnit"`
	TimeEarlier     *float64 `yaml:"timeEarlier" toml:"timeEarlier" json:"timeEarlier"`
	TimeEarlierUnit string   `yaml:"timeEarlierUnit" toml:"timeEarlierUnit" json:"timeEarlierUnit"`
	TimeLater       *float64 `yaml:"timeLater" toml:"timeLater" json:"timeLater"`
	TimeLaterUnit   string   `yaml:"timeLaterUnit" toml:"timeLaterUnit" json:"timeLaterUnit"`

	MinDepth *int `yaml:"mindepth" toml:"mindepth" json:"mindepth"`
	MaxDepth *int `yaml:"maxdepth" toml:"maxdepth" json:"maxdepth"`

	DoPrint     bool   `yaml:"doPrint" toml:"doPrint" json:"doPrint"`
	DoPrintZero bool   `yaml:"doPrintZero" toml:"doPrintZero" json:"doPrintZero"`
	DoDelete    bool   `yaml:"doDelete" toml:"doDelete" json:"doDelete"`
	DoExec      bool   `yaml:"doExec" toml:"doExec" json:"doExec"`
	DoCommand   string `yaml:"doCommand" toml:"doCommand" json:"doCommand"`
	DoConfirm   bool   `yaml:"doConfirm" toml:"doConfirm" json:"doConfirm"`
}

// Defaults returns the criteria of a freshly reset form.
func Defaults() Criteria {
	return Criteria{
		NameMatchOpt:        "normal",
		FileSizeEqualUnit:   string(findcmd.Megabytes),
		FileSizeSmallerUnit: string(findcmd.Megabytes),
		FileSizeBiggerUnit:  string(findcmd.Megabytes),
		PermMode:            string(findcmd.PermNormal),
		TimeMode:            string(findcmd.TimeModification),
		TimeExactUnit:       string(findcmd.Days),
		TimeEarlierUnit:     string(findcmd.Days),
		TimeLaterUnit:       string(findcmd.Days),
	}
}

// Builder returns a new builder populated from c. Every setter is called;
// the builder drops whatever is incomplete.
func (c Criteria) Builder() *findcmd.Builder {
	b := findcmd.NewBuilder()

	b.SetBinary(c.Binary)
	b.SetDirectory(c.Directory)
	b.SetFileType(ParseFileType(c.FileType))

	b.SetFilenamePattern(findcmd.NamePattern{
		Pattern:    c.NamePattern,
		Inverse:    c.NameMatchOpt == "not",
		IgnoreCase: c.NameIgnoreCase,
	})

	b.SetFileSizeEqual(findcmd.SizeSpec{Size: c.FileSizeEqual, Unit: ParseSizeUnit(c.FileSizeEqualUnit)})
	b.SetFileSizeSmaller(findcmd.SizeSpec{Size: c.FileSizeSmaller, Unit: ParseSizeUnit(c.FileSizeSmallerUnit)})
	b.SetFileSizeBigger(findcmd.SizeSpec{Size: c.FileSizeBigger, Unit: ParseSizeUnit(c.FileSizeBiggerUnit)})

	b.SetFileOwners(findcmd.OwnerSpec{Values: c.FileOwners, IncludeInvalid: c.IncludeInvalidOwners})
	b.SetFileGroups(findcmd.OwnerSpec{Values: c.FileGroups, IncludeInvalid: c.IncludeInvalidGroups})

	b.SetPermissions(findcmd.PermSpec{Perms: string(c.Perms), Mode: findcmd.PermMode(c.PermMode)})

	b.SetFileTime(findcmd.TimeSpec{
		Mode:        findcmd.TimeMode(c.TimeMode),
		Exact:       c.TimeExact,
		ExactUnit:   findcmd.TimeUnit(c.TimeExactUnit),
		Earlier:     c.TimeEarlier,
		EarlierUnit: findcmd.TimeUnit(c.TimeEarlierUnit),
		Later:       c.TimeLater,
		LaterUnit:   findcmd.TimeUnit(c.TimeLaterUnit),
	})

	b.SetSearchDepth(findcmd.DepthSpec{Min: c.MinDepth, Max: c.MaxDepth})

	b.SetAction(&findcmd.ActionSpec{
		Print:   c.DoPrint,
		Print0:  c.DoPrintZero,
		Delete:  c.DoDelete,
		Exec:    c.DoExec,
		Command: c.DoCommand,
		Confirm: c.DoConfirm,
	})

	return b
}

// Render returns the find command line for c.
func Render(c Criteria) string {
	return c.Builder().Command()
}

var sizeUnits = map[string]findcmd.SizeUnit{
	"c":         findcmd.Bytes,
	"b":         findcmd.Bytes,
	"bytes":     findcmd.Bytes,
	"k":         findcmd.Kilobytes,
	"kb":        findcmd.Kilobytes,
	"kilobytes": findcmd.Kilobytes,
	"m":         findcmd.Megabytes,
	"mb":        findcmd.Megabytes,
	"megabytes": findcmd.Megabytes,
	"g":         findcmd.Gigabytes,
	"gb":        findcmd.Gigabytes,
	"gigabytes": findcmd.Gigabytes,
}

// ParseSizeUnit maps a unit name or find suffix to a SizeUnit. Names it
// does not know are passed through unchanged.
func ParseSizeUnit(s string) findcmd.SizeUnit {
	if u, ok := sizeUnits[strings.ToLower(s)]; ok {
		return u
	}
	return findcmd.SizeUnit(s)
}

var fileTypes = map[string]findcmd.FileType{
	"file":      findcmd.FileTypeFile,
	"directory": findcmd.FileTypeDirectory,
	"dir":       findcmd.FileTypeDirectory,
	"symlink":   findcmd.FileTypeSymlink,
	"link":      findcmd.FileTypeSymlink,
	"pipe":      findcmd.FileTypePipe,
	"fifo":      findcmd.FileTypePipe,
	"socket":    findcmd.FileTypeSocket,
	"block":     findcmd.FileTypeBlock,
	"char":      findcmd.FileTypeChar,
}

// ParseFileType maps a file type name such as "directory" to find's
// single-letter type. Anything else is passed through unchanged.
func ParseFileType(s string) findcmd.FileType {
	if t, ok := fileTypes[strings.ToLower(s)]; ok {
		return t
	}
	return findcmd.FileType(s)
}
