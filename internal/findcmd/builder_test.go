package findcmd

import (
	"reflect"
	"testing"
)

func TestCommandEmpty(t *testing.T) {
	b := NewBuilder()
	if got := b.Command(); got != "find " {
		t.Errorf("Command() = %q, want %q", got, "find ")
	}
	if got := b.Clauses(); len(got) != 0 {
		t.Errorf("Clauses() = %v, want none", got)
	}
}

func TestZeroBuilder(t *testing.T) {
	var b Builder
	if got := b.Binary(); got != DefaultBinary {
		t.Errorf("Binary() = %q, want %q", got, DefaultBinary)
	}
	if got := b.Command(); got != "find " {
		t.Errorf("Command() = %q, want %q", got, "find ")
	}

	b.SetDirectory("/tmp")
	if got := b.Command(); got != "find /tmp " {
		t.Errorf("Command() = %q, want %q", got, "find /tmp ")
	}
}

func TestCommand(t *testing.T) {
	tests := []struct {
		name  string
		setup func(b *Builder)
		want  string
	}{
		{
			name:  "directory",
			setup: func(b *Builder) { b.SetDirectory("/var/log") },
			want:  "find /var/log ",
		},
		{
			name:  "directory with spaces",
			setup: func(b *Builder) { b.SetDirectory("My Documents") },
			want:  "find 'My Documents' ",
		},
		{
			name:  "empty directory ignored",
			setup: func(b *Builder) { b.SetDirectory("") },
			want:  "find ",
		},
		{
			name:  "file type",
			setup: func(b *Builder) { b.SetFileType(FileTypeDirectory) },
			want:  "find -type d ",
		},
		{
			name: "single name",
			setup: func(b *Builder) {
				b.SetFilenamePattern(NamePattern{Pattern: "*.go"})
			},
			want: "find -name '*.go' ",
		},
		{
			name: "ignore case name",
			setup: func(b *Builder) {
				b.SetFilenamePattern(NamePattern{Pattern: "readme.md", IgnoreCase: true})
			},
			want: "find -iname readme.md ",
		},
		{
			name: "inverse name",
			setup: func(b *Builder) {
				b.SetFilenamePattern(NamePattern{Pattern: "*.tmp", Inverse: true})
			},
			want: `find \! -name '*.tmp' `,
		},
		{
			name: "name alternatives",
			setup: func(b *Builder) {
				b.SetFilenamePattern(NamePattern{Pattern: "foo|bar"})
			},
			want: `find \( -name foo -o -name bar \) `,
		},
		{
			name: "name alternatives with spaces and quoting",
			setup: func(b *Builder) {
				b.SetFilenamePattern(NamePattern{Pattern: "*.go | *.md |Makefile", IgnoreCase: true, Inverse: true})
			},
			want: `find \! \( -iname '*.go' -o -iname '*.md' -o -iname Makefile \) `,
		},
		{
			name: "name with single quote",
			setup: func(b *Builder) {
				b.SetFilenamePattern(NamePattern{Pattern: "it's"})
			},
			want: `find -name 'it'"'"'s' `,
		},
		{
			name: "empty name ignored",
			setup: func(b *Builder) {
				b.SetFilenamePattern(NamePattern{Pattern: "", Inverse: true})
			},
			want: "find ",
		},
		{
			name: "size equal floors value",
			setup: func(b *Builder) {
				b.SetFileSizeEqual(SizeSpec{Size: Float(3.7), Unit: Megabytes})
			},
			want: "find -size 3M ",
		},
		{
			name: "size zero",
			setup: func(b *Builder) {
				b.SetFileSizeEqual(SizeSpec{Size: Float(0), Unit: Kilobytes})
			},
			want: "find -size 0k ",
		},
		{
			name: "size range",
			setup: func(b *Builder) {
				b.SetFileSizeSmaller(SizeSpec{Size: Float(10), Unit: Megabytes})
				b.SetFileSizeBigger(SizeSpec{Size: Float(512.9), Unit: Kilobytes})
			},
			want: "find -size +512k -size -10M ",
		},
		{
			name: "size equal wins over range",
			setup: func(b *Builder) {
				b.SetFileSizeSmaller(SizeSpec{Size: Float(10), Unit: Megabytes})
				b.SetFileSizeEqual(SizeSpec{Size: Float(1), Unit: Gigabytes})
				b.SetFileSizeBigger(SizeSpec{Size: Float(1), Unit: Megabytes})
			},
			want: "find -size 1G ",
		},
		{
			name: "cleared size equal restores range",
			setup: func(b *Builder) {
				b.SetFileSizeEqual(SizeSpec{Size: Float(1), Unit: Gigabytes})
				b.SetFileSizeBigger(SizeSpec{Size: Float(1), Unit: Megabytes})
				b.ClearFileSizeEqual()
			},
			want: "find -size +1M ",
		},
		{
			name: "unset size ignored",
			setup: func(b *Builder) {
				b.SetFileSizeBigger(SizeSpec{Size: Float(5), Unit: Bytes})
				b.SetFileSizeBigger(SizeSpec{Unit: Megabytes})
			},
			want: "find -size +5c ",
		},
		{
			name: "single owner",
			setup: func(b *Builder) {
				b.SetFileOwners(OwnerSpec{Values: "alice"})
			},
			want: "find -user alice ",
		},
		{
			name: "owners with invalid",
			setup: func(b *Builder) {
				b.SetFileOwners(OwnerSpec{Values: "alice, bob", IncludeInvalid: true})
			},
			want: `find \( -user alice -o -user bob -o -nouser \) `,
		},
		{
			name: "only invalid owners",
			setup: func(b *Builder) {
				b.SetFileOwners(OwnerSpec{IncludeInvalid: true})
			},
			want: "find -nouser ",
		},
		{
			name: "owner list with empty entries",
			setup: func(b *Builder) {
				b.SetFileOwners(OwnerSpec{Values: " , ,"})
			},
			want: "find ",
		},
		{
			name: "groups",
			setup: func(b *Builder) {
				b.SetFileGroups(OwnerSpec{Values: "wheel,,staff"})
			},
			want: `find \( -group wheel -o -group staff \) `,
		},
		{
			name: "group needing quotes",
			setup: func(b *Builder) {
				b.SetFileGroups(OwnerSpec{Values: "www-data", IncludeInvalid: true})
			},
			want: `find \( -group 'www-data' -o -nogroup \) `,
		},
		{
			name: "perm normal",
			setup: func(b *Builder) {
				b.SetPermissions(PermSpec{Perms: "644", Mode: PermNormal})
			},
			want: "find -perm 644 ",
		},
		{
			name: "perm default mode",
			setup: func(b *Builder) {
				b.SetPermissions(PermSpec{Perms: "600"})
			},
			want: "find -perm 600 ",
		},
		{
			name: "perm not",
			setup: func(b *Builder) {
				b.SetPermissions(PermSpec{Perms: "644", Mode: PermNot})
			},
			want: `find \! -perm 644 `,
		},
		{
			name: "perm at least",
			setup: func(b *Builder) {
				b.SetPermissions(PermSpec{Perms: "111", Mode: PermAtLeast})
			},
			want: "find -perm -111 ",
		},
		{
			name: "perm common",
			setup: func(b *Builder) {
				b.SetPermissions(PermSpec{Perms: "222", Mode: PermCommon})
			},
			want: "find -perm /222 ",
		},
		{
			name: "perm symbolic",
			setup: func(b *Builder) {
				b.SetPermissions(PermSpec{Perms: "u=rwx,g=rx", Mode: PermAtLeast})
			},
			want: "find -perm -'u=rwx,g=rx' ",
		},
		{
			name: "perm unknown mode",
			setup: func(b *Builder) {
				b.SetPermissions(PermSpec{Perms: "644", Mode: "sometimes"})
			},
			want: "find ",
		},
		{
			name: "time earlier in hours",
			setup: func(b *Builder) {
				b.SetFileTime(TimeSpec{Mode: TimeModification, Earlier: Float(2), EarlierUnit: Hours})
			},
			want: "find -mmin +120 ",
		},
		{
			name: "time exact in days",
			setup: func(b *Builder) {
				b.SetFileTime(TimeSpec{Mode: TimeAccess, Exact: Float(3), ExactUnit: Days})
			},
			want: "find -atime 3 ",
		},
		{
			name: "time exact zero",
			setup: func(b *Builder) {
				b.SetFileTime(TimeSpec{Mode: TimeChange, Exact: Float(0), ExactUnit: Days})
			},
			want: "find -ctime 0 ",
		},
		{
			name: "time range",
			setup: func(b *Builder) {
				b.SetFileTime(TimeSpec{
					Mode:        TimeChange,
					Earlier:     Float(1),
					EarlierUnit: Days,
					Later:       Float(30),
					LaterUnit:   Minutes,
				})
			},
			want: "find -ctime +1 -cmin -30 ",
		},
		{
			name: "time exact wins over range",
			setup: func(b *Builder) {
				b.SetFileTime(TimeSpec{
					Mode:      TimeModification,
					Exact:     Float(1.5),
					ExactUnit: Hours,
					Later:     Float(30),
					LaterUnit: Days,
				})
			},
			want: "find -mmin 90 ",
		},
		{
			name: "time without mode",
			setup: func(b *Builder) {
				b.SetFileTime(TimeSpec{Later: Float(7), LaterUnit: Days})
			},
			want: "find -mtime -7 ",
		},
		{
			name: "time without values ignored",
			setup: func(b *Builder) {
				b.SetFileTime(TimeSpec{Mode: TimeAccess, ExactUnit: Days})
			},
			want: "find ",
		},
		{
			name: "depth",
			setup: func(b *Builder) {
				b.SetSearchDepth(DepthSpec{Min: Int(1), Max: Int(3)})
			},
			want: "find -mindepth 1 -maxdepth 3 ",
		},
		{
			name: "zero max depth",
			setup: func(b *Builder) {
				b.SetSearchDepth(DepthSpec{Max: Int(0)})
			},
			want: "find -maxdepth 0 ",
		},
		{
			name: "nil action",
			setup: func(b *Builder) {
				b.SetAction(nil)
			},
			want: "find ",
		},
		{
			name: "print alone is implicit",
			setup: func(b *Builder) {
				b.SetAction(&ActionSpec{Print: true})
			},
			want: "find ",
		},
		{
			name: "delete without print",
			setup: func(b *Builder) {
				b.SetAction(&ActionSpec{Delete: true})
			},
			want: "find -delete ",
		},
		{
			name: "print and delete",
			setup: func(b *Builder) {
				b.SetAction(&ActionSpec{Print: true, Delete: true})
			},
			want: "find -print -delete ",
		},
		{
			name: "print0",
			setup: func(b *Builder) {
				b.SetAction(&ActionSpec{Print0: true})
			},
			want: "find -print0 ",
		},
		{
			name: "exec",
			setup: func(b *Builder) {
				b.SetAction(&ActionSpec{Exec: true, Command: "gzip {}"})
			},
			want: `find -exec gzip {} \; `,
		},
		{
			name: "exec with confirm",
			setup: func(b *Builder) {
				b.SetAction(&ActionSpec{Print: true, Exec: true, Command: "rm {}", Confirm: true})
			},
			want: `find -print -ok rm {} \; `,
		},
		{
			name: "exec without command",
			setup: func(b *Builder) {
				b.SetAction(&ActionSpec{Exec: true})
			},
			want: "find ",
		},
		{
			name: "binary override",
			setup: func(b *Builder) {
				b.SetBinary("gfind")
				b.SetDirectory(".")
			},
			want: "gfind . ",
		},
		{
			name: "canonical order",
			setup: func(b *Builder) {
				// Set in reverse order on purpose.
				b.SetAction(&ActionSpec{Print: true, Print0: true})
				b.SetFileTime(TimeSpec{Mode: TimeModification, Later: Float(1), LaterUnit: Days})
				b.SetPermissions(PermSpec{Perms: "755", Mode: PermNormal})
				b.SetFileGroups(OwnerSpec{Values: "staff"})
				b.SetFileOwners(OwnerSpec{Values: "alice"})
				b.SetFileSizeBigger(SizeSpec{Size: Float(1), Unit: Kilobytes})
				b.SetFilenamePattern(NamePattern{Pattern: "*.sh"})
				b.SetFileType(FileTypeFile)
				b.SetSearchDepth(DepthSpec{Max: Int(2)})
				b.SetDirectory("~/bin")
			},
			want: "find ~/bin -maxdepth 2 -type f -name '*.sh' -size +1k -user alice -group staff -perm 755 -mtime -1 -print -print0 ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder()
			tt.setup(b)
			if got := b.Command(); got != tt.want {
				t.Errorf("Command() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSetterIgnoresIncompleteInput(t *testing.T) {
	b := NewBuilder()
	b.SetDirectory("/srv")
	b.SetDirectory("")
	b.SetFilenamePattern(NamePattern{Pattern: "*.log"})
	b.SetFilenamePattern(NamePattern{})
	b.SetPermissions(PermSpec{Perms: "644"})
	b.SetPermissions(PermSpec{Mode: PermCommon})
	b.SetSearchDepth(DepthSpec{Min: Int(2)})
	b.SetSearchDepth(DepthSpec{})
	b.SetFileOwners(OwnerSpec{Values: "root"})
	b.SetFileOwners(OwnerSpec{})

	want := "find /srv -mindepth 2 -name '*.log' -user root -perm 644 "
	if got := b.Command(); got != want {
		t.Errorf("Command() = %q, want %q", got, want)
	}
}

func TestCommandIsRepeatable(t *testing.T) {
	b := NewBuilder()
	b.SetDirectory("/tmp")
	b.SetFileOwners(OwnerSpec{Values: "a,b"})
	first := b.Command()
	if second := b.Command(); first != second {
		t.Errorf("Command() changed between calls: %q then %q", first, second)
	}
}

func TestSetActionCopies(t *testing.T) {
	b := NewBuilder()
	a := &ActionSpec{Delete: true}
	b.SetAction(a)
	a.Delete = false
	if got, want := b.Command(), "find -delete "; got != want {
		t.Errorf("Command() = %q, want %q", got, want)
	}
}

func TestClauses(t *testing.T) {
	b := NewBuilder()
	b.SetDirectory(".")
	b.SetSearchDepth(DepthSpec{Min: Int(0), Max: Int(1)})
	b.SetFileSizeBigger(SizeSpec{Size: Float(1), Unit: Megabytes})
	b.SetFileSizeSmaller(SizeSpec{Size: Float(2), Unit: Megabytes})
	b.SetAction(&ActionSpec{Delete: true})

	want := []Clause{
		{Option: OptionDirectory, Text: "."},
		{Option: OptionDepth, Text: "-mindepth 0"},
		{Option: OptionDepth, Text: "-maxdepth 1"},
		{Option: OptionSize, Text: "-size +1M"},
		{Option: OptionSize, Text: "-size -2M"},
		{Option: OptionAction, Text: "-delete"},
	}
	if got := b.Clauses(); !reflect.DeepEqual(got, want) {
		t.Errorf("Clauses() = %v, want %v", got, want)
	}
}

func TestAlternatives(t *testing.T) {
	tests := []struct {
		pattern string
		want    []string
	}{
		{pattern: "foo", want: []string{"foo"}},
		{pattern: " foo ", want: []string{" foo "}},
		{pattern: "foo|bar", want: []string{"foo", "bar"}},
		{pattern: "a | b  |c", want: []string{"a", "b", "c"}},
		{pattern: " a|b ", want: []string{" a", "b "}},
		{pattern: "a|", want: []string{"a", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			if got := Alternatives(tt.pattern); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Alternatives(%q) = %q, want %q", tt.pattern, got, tt.want)
			}
		})
	}
}
