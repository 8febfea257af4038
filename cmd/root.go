package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/cli/go-gh/v2/pkg/term"
	"github.com/jparise/findcmd/internal/clipboard"
	"github.com/jparise/findcmd/internal/criteria"
	"github.com/jparise/findcmd/internal/findcmd"
	"github.com/jparise/findcmd/internal/output"
	"github.com/jparise/findcmd/internal/timeparse"
	"github.com/jparise/findcmd/internal/watch"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/sync/semaphore"
)

var version = "dev"

// options holds the flag values of one root command.
type options struct {
	color     colorMode
	clipboard clipboard.Mechanism
	explain   bool
	copy      bool
	watch     bool
	files     []string
	jobs      int

	// Criteria flags.
	binary     string
	fileType   string
	name       string
	not        bool
	ignoreCase bool
	size       string
	minSize    string
	maxSize    string
	users      []string
	noUser     bool
	groups     []string
	noGroup    bool
	perm       string
	permMode   findcmd.PermMode
	timeMode   findcmd.TimeMode
	age        string
	olderThan  string
	newerThan  string
	minDepth   int
	maxDepth   int
	print      bool
	print0     bool
	delete     bool
	exec       string
	confirm    bool

	now func() time.Time
}

// criteriaFlags are the flags that contribute to the criteria rather than
// controlling how the command is presented.
var criteriaFlags = []string{
	"binary", "type", "name", "not", "ignore-case",
	"size", "min-size", "max-size",
	"user", "nouser", "group", "nogroup",
	"perm", "perm-mode",
	"time-mode", "age", "older-than", "newer-than",
	"mindepth", "maxdepth",
	"print", "print0", "delete", "exec", "confirm",
}

func newRootCmd() *cobra.Command {
	o := &options{
		color:     colorAuto,
		clipboard: clipboard.MechanismSystem,
		permMode:  findcmd.PermNormal,
		timeMode:  findcmd.TimeModification,
		now:       time.Now,
	}

	cmd := &cobra.Command{
		Use:   "findcmd [flags] [<directory>]",
		Short: "Build find(1) command lines from search criteria",
		Long: `findcmd turns search criteria into a correctly quoted find(1) command.

The command is printed, never executed. Every argument that needs it is
quoted for a POSIX shell, so the output can be pasted as is.

Criteria come from flags, from a criteria file (-f), or both; flags given
explicitly override the file. Criteria files are YAML, TOML or JSON and use
the field names of the web form (directory, namePattern, fileSizeBigger,
timeEarlierUnit, doDelete, ...).

<pattern> for --name may list alternatives separated by "|":
  --name "*.jpg|*.png"   matches either extension

Sizes take a unit suffix: c (bytes), k, M, G. Ages take m, h, d or w, or
a date such as 2024-01-31.

Examples:
  findcmd ~/src -t f -n "*.go"
  findcmd /var/log --name "*.log|*.gz" --older-than 30d --delete
  findcmd . --user alice,bob --nouser --explain
  findcmd --min-size 10M --max-size 1G --maxdepth 2 /data
  findcmd -f cleanup.yaml --watch
  findcmd -f logs.yaml -f tmp.toml --copy`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return o.validate(cmd.Flags(), args)
		},
		RunE: o.run,
	}

	f := cmd.Flags()
	f.Var(&o.color, "color", "colorize output: auto, always, never")
	f.Var(newClipboardValue(&o.clipboard), "clipboard", "clipboard to copy to: system, osc52")
	f.BoolVar(&o.explain, "explain", false, "print a table of clauses instead of the command")
	f.BoolVar(&o.copy, "copy", false, "copy the command to the clipboard")
	f.BoolVarP(&o.watch, "watch", "w", false, "re-render whenever the criteria file changes")
	f.StringArrayVarP(&o.files, "file", "f", nil, "read criteria from a YAML, TOML or JSON file (can be specified multiple times)")
	f.IntVarP(&o.jobs, "jobs", "j", 4, "maximum criteria files rendered concurrently")

	f.StringVar(&o.binary, "binary", findcmd.DefaultBinary, "find executable to invoke")
	f.StringVarP(&o.fileType, "type", "t", "", "file type: f, d, l, p, s, b, c (or file, directory, symlink, ...)")
	f.StringVarP(&o.name, "name", "n", "", "file name pattern; separate alternatives with |")
	f.BoolVar(&o.not, "not", false, "match names that do not match --name")
	f.BoolVarP(&o.ignoreCase, "ignore-case", "i", false, "case-insensitive name matching")
	f.StringVar(&o.size, "size", "", "exact file size (e.g., 100k, 3M); overrides --min-size and --max-size")
	f.StringVar(&o.minSize, "min-size", "", "match files bigger than this size")
	f.StringVar(&o.maxSize, "max-size", "", "match files smaller than this size")
	f.StringSliceVar(&o.users, "user", nil, "owning user (can be specified multiple times)")
	f.BoolVar(&o.noUser, "nouser", false, "also match files whose owner does not exist")
	f.StringSliceVar(&o.groups, "group", nil, "owning group (can be specified multiple times)")
	f.BoolVar(&o.noGroup, "nogroup", false, "also match files whose group does not exist")
	f.StringVar(&o.perm, "perm", "", "permission bits, octal or symbolic")
	f.Var(newPermModeValue(&o.permMode), "perm-mode", "how --perm matches: normal, not, atLeast, common")
	f.Var(newTimeModeValue(&o.timeMode), "time-mode", "timestamp to test: m (modified), a (accessed), c (changed)")
	f.StringVar(&o.age, "age", "", "exact age (e.g., 3d, 2h); overrides --older-than and --newer-than")
	f.StringVar(&o.olderThan, "older-than", "", "match files older than this age or date")
	f.StringVar(&o.newerThan, "newer-than", "", "match files newer than this age or date")
	f.IntVar(&o.minDepth, "mindepth", 0, "do not apply tests above this depth")
	f.IntVar(&o.maxDepth, "maxdepth", 0, "descend at most this many levels")
	f.BoolVar(&o.print, "print", false, "print matches even when other actions are given")
	f.BoolVar(&o.print0, "print0", false, "print matches separated by NUL")
	f.BoolVar(&o.delete, "delete", false, "delete matches")
	f.StringVar(&o.exec, "exec", "", "run a command on each match ({} is the file name)")
	f.BoolVar(&o.confirm, "confirm", false, "ask before running --exec (uses -ok)")

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func (o *options) validate(flags *pflag.FlagSet, args []string) error {
	if o.jobs < 1 || o.jobs > 100 {
		return fmt.Errorf("--jobs must be between 1 and 100, got %d", o.jobs)
	}
	if flags.Changed("mindepth") && o.minDepth < 0 {
		return fmt.Errorf("--mindepth cannot be negative")
	}
	if flags.Changed("maxdepth") && o.maxDepth < 0 {
		return fmt.Errorf("--maxdepth cannot be negative")
	}
	if o.watch && len(o.files) != 1 {
		return fmt.Errorf("--watch requires exactly one --file")
	}

	if len(o.files) > 1 {
		if o.explain {
			return fmt.Errorf("--explain cannot be combined with multiple --file")
		}
		if len(args) > 0 {
			return fmt.Errorf("a directory argument cannot be combined with multiple --file")
		}
		for _, name := range criteriaFlags {
			if flags.Changed(name) {
				return fmt.Errorf("--%s cannot be combined with multiple --file", name)
			}
		}
	}

	return nil
}

// apply overlays the explicitly given flags and the directory argument on c.
func (o *options) apply(flags *pflag.FlagSet, args []string, c *criteria.Criteria) error {
	if len(args) == 1 {
		c.Directory = args[0]
	}

	if flags.Changed("binary") {
		c.Binary = o.binary
	}
	if flags.Changed("type") {
		c.FileType = o.fileType
	}
	if flags.Changed("name") {
		c.NamePattern = o.name
	}
	if flags.Changed("not") {
		c.NameMatchOpt = "normal"
		if o.not {
			c.NameMatchOpt = "not"
		}
	}
	if flags.Changed("ignore-case") {
		c.NameIgnoreCase = o.ignoreCase
	}

	sizes := []struct {
		flag  string
		value string
		size  **float64
		unit  *string
	}{
		{"size", o.size, &c.FileSizeEqual, &c.FileSizeEqualUnit},
		{"min-size", o.minSize, &c.FileSizeBigger, &c.FileSizeBiggerUnit},
		{"max-size", o.maxSize, &c.FileSizeSmaller, &c.FileSizeSmallerUnit},
	}
	for _, s := range sizes {
		if !flags.Changed(s.flag) {
			continue
		}
		num, unit, err := parseSize(s.value)
		if err != nil {
			return fmt.Errorf("invalid --%s %q: %w", s.flag, s.value, err)
		}
		*s.size = &num
		*s.unit = string(unit)
	}

	if flags.Changed("user") {
		c.FileOwners = strings.Join(o.users, ",")
	}
	if flags.Changed("nouser") {
		c.IncludeInvalidOwners = o.noUser
	}
	if flags.Changed("group") {
		c.FileGroups = strings.Join(o.groups, ",")
	}
	if flags.Changed("nogroup") {
		c.IncludeInvalidGroups = o.noGroup
	}

	if flags.Changed("perm") {
		c.Perms = criteria.Perms(o.perm)
	}
	if flags.Changed("perm-mode") {
		c.PermMode = string(o.permMode)
	}

	if flags.Changed("time-mode") {
		c.TimeMode = string(o.timeMode)
	}
	now := o.now()
	ages := []struct {
		flag  string
		value string
		time  **float64
		unit  *string
	}{
		{"age", o.age, &c.TimeExact, &c.TimeExactUnit},
		{"older-than", o.olderThan, &c.TimeEarlier, &c.TimeEarlierUnit},
		{"newer-than", o.newerThan, &c.TimeLater, &c.TimeLaterUnit},
	}
	for _, a := range ages {
		if !flags.Changed(a.flag) {
			continue
		}
		v, err := timeparse.ParseAge(a.value, now)
		if err != nil {
			return fmt.Errorf("invalid --%s: %w", a.flag, err)
		}
		*a.time = &v.Value
		*a.unit = string(v.Unit)
	}

	if flags.Changed("mindepth") {
		c.MinDepth = findcmd.Int(o.minDepth)
	}
	if flags.Changed("maxdepth") {
		c.MaxDepth = findcmd.Int(o.maxDepth)
	}

	if flags.Changed("print") {
		c.DoPrint = o.print
	}
	if flags.Changed("print0") {
		c.DoPrintZero = o.print0
	}
	if flags.Changed("delete") {
		c.DoDelete = o.delete
	}
	if flags.Changed("exec") {
		c.DoExec = o.exec != ""
		c.DoCommand = o.exec
	}
	if flags.Changed("confirm") {
		c.DoConfirm = o.confirm
	}

	return nil
}

func (o *options) run(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var colorize bool
	var width int
	terminal := term.FromEnv()
	switch o.color {
	case colorAlways:
		colorize = true
	case colorNever:
		colorize = false
	case colorAuto:
		colorize = terminal.IsColorEnabled()
	}
	if terminal.IsTerminalOutput() {
		width, _, _ = terminal.Size()
	}

	out := output.NewOutput(cmd.OutOrStdout(), cmd.ErrOrStderr(), colorize, width)

	var copier clipboard.Copier
	if o.copy {
		var err error
		copier, err = clipboard.New(o.clipboard, cmd.ErrOrStderr(), os.Getenv("TMUX") != "")
		if err != nil {
			return err
		}
	}

	if len(o.files) > 1 {
		return o.renderFiles(ctx, out, copier)
	}

	load := func() (criteria.Criteria, error) {
		c := criteria.Defaults()
		if len(o.files) == 1 {
			var err error
			if c, err = criteria.Load(o.files[0]); err != nil {
				return c, err
			}
		}
		err := o.apply(cmd.Flags(), args, &c)
		return c, err
	}

	c, err := load()
	if err != nil {
		return err
	}
	if err := o.emit(out, copier, c); err != nil {
		return err
	}

	if !o.watch {
		return nil
	}

	w, err := watch.New(o.files[0], watch.DefaultDebounce)
	if err != nil {
		return err
	}
	out.Infof("Watching %s for changes (press Ctrl-C to stop)", o.files[0])

	return w.Run(ctx, func() {
		c, err := load()
		if err != nil {
			out.Warningf("%v", err)
			return
		}
		if err := o.emit(out, copier, c); err != nil {
			out.Errorf("%v", err)
		}
	})
}

// emit renders c from a fresh builder, prints it, and copies it if asked.
func (o *options) emit(out *output.Output, copier clipboard.Copier, c criteria.Criteria) error {
	b := c.Builder()

	for _, w := range lint(c, b) {
		out.Warningf("%s", w)
	}

	if o.explain {
		if err := out.Explain(b.Clauses()); err != nil {
			return err
		}
	} else {
		out.Command(b.Binary(), b.Clauses())
	}

	if copier != nil {
		if err := copier.Copy(b.Command()); err != nil {
			return err
		}
		out.Infof("Copied to clipboard")
	}

	return nil
}

// renderFiles renders several criteria files concurrently and prints the
// commands in the order the files were given.
func (o *options) renderFiles(ctx context.Context, out *output.Output, copier clipboard.Copier) error {
	commands := make([]string, len(o.files))

	var wg sync.WaitGroup
	var errorCount atomic.Int32
	sem := semaphore.NewWeighted(int64(o.jobs))

	for i, path := range o.files {
		i, path := i, path
		if err := sem.Acquire(ctx, 1); err != nil {
			wg.Wait()
			return err
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			c, err := criteria.Load(path)
			if err != nil {
				errorCount.Add(1)
				out.Warningf("%v", err)
				return
			}

			b := c.Builder()
			for _, w := range lint(c, b) {
				out.Warningf("%s: %s", path, w)
			}
			commands[i] = b.Command()
		}()
	}

	wg.Wait()

	if int(errorCount.Load()) == len(o.files) {
		return fmt.Errorf("failed to render all %d criteria files", len(o.files))
	}

	var rendered []string
	for i, path := range o.files {
		if commands[i] == "" {
			continue
		}
		out.Labeled(path, commands[i])
		rendered = append(rendered, commands[i])
	}

	if copier != nil {
		if err := copier.Copy(strings.Join(rendered, "\n")); err != nil {
			return err
		}
		out.Infof("Copied %d commands to clipboard", len(rendered))
	}

	return nil
}
