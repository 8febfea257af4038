package findcmd

// FileType is the argument of find's -type test.
type FileType string

const (
	FileTypeFile      FileType = "f"
	FileTypeDirectory FileType = "d"
	FileTypeSymlink   FileType = "l"
	FileTypePipe      FileType = "p"
	FileTypeSocket    FileType = "s"
	FileTypeBlock     FileType = "b"
	FileTypeChar      FileType = "c"
)

// SizeUnit is the suffix find appends to a -size value.
type SizeUnit string

const (
	Bytes     SizeUnit = "c"
	Kilobytes SizeUnit = "k"
	Megabytes SizeUnit = "M"
	Gigabytes SizeUnit = "G"
)

// PermMode selects how -perm compares permission bits.
type PermMode string

const (
	PermNormal  PermMode = "normal"  // exact match
	PermNot     PermMode = "not"     // anything but an exact match
	PermAtLeast PermMode = "atLeast" // all given bits set
	PermCommon  PermMode = "common"  // any given bit set
)

// TimeMode selects which timestamp the time tests look at.
type TimeMode string

const (
	TimeModification TimeMode = "m"
	TimeAccess       TimeMode = "a"
	TimeChange       TimeMode = "c"
)

// TimeUnit is the unit a time value was entered in.
type TimeUnit string

const (
	Minutes TimeUnit = "minutes"
	Hours   TimeUnit = "hours"
	Days    TimeUnit = "days"
)

// NamePattern configures -name/-iname. Pattern may hold several
// alternatives separated by "|".
type NamePattern struct {
	Pattern    string
	Inverse    bool
	IgnoreCase bool
}

// SizeSpec is one size bound. A nil Size means the bound is unset; zero is
// a valid size.
type SizeSpec struct {
	Size *float64
	Unit SizeUnit
}

// OwnerSpec lists user or group names separated by commas. IncludeInvalid
// adds -nouser or -nogroup to the alternatives.
type OwnerSpec struct {
	Values         string
	IncludeInvalid bool
}

// PermSpec configures -perm.
type PermSpec struct {
	Perms string
	Mode  PermMode
}

// TimeSpec configures the -Xtime/-Xmin tests. Exact takes precedence over
// Earlier and Later.
type TimeSpec struct {
	Mode        TimeMode
	Exact       *float64
	ExactUnit   TimeUnit
	Earlier     *float64
	EarlierUnit TimeUnit
	Later       *float64
	LaterUnit   TimeUnit
}

// DepthSpec configures -mindepth and -maxdepth. Nil means unset.
type DepthSpec struct {
	Min *int
	Max *int
}

// ActionSpec lists the actions to run on every match.
type ActionSpec struct {
	Print   bool
	Print0  bool
	Delete  bool
	Exec    bool
	Command string
	Confirm bool // use -ok instead of -exec
}

// Float returns a pointer to v, for filling optional numeric fields.
func Float(v float64) *float64 {
	return &v
}

// Int returns a pointer to v, for filling optional integer fields.
func Int(v int) *int {
	return &v
}
