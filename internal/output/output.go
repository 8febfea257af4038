// Package output writes generated commands and diagnostics to the terminal.
package output

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/cli/go-gh/v2/pkg/tableprinter"
	"github.com/jparise/findcmd/internal/findcmd"
	"github.com/mgutz/ansi"
)

// Output handles all output formatting with optional color support.
type Output struct {
	mu     sync.Mutex
	stdout io.Writer
	stderr io.Writer
	width  int // terminal width; 0 when stdout is not a terminal

	cyan   func(string) string
	green  func(string) string
	white  func(string) string
	yellow func(string) string
	red    func(string) string
}

// NewOutput creates a new Output with optional color support.
func NewOutput(stdout, stderr io.Writer, colorize bool, width int) *Output {
	color := func(name string) func(string) string {
		if colorize {
			return ansi.ColorFunc(name)
		}
		return ansi.ColorFunc("")
	}

	return &Output{
		stdout: stdout,
		stderr: stderr,
		width:  width,
		cyan:   color("cyan"),
		green:  color("green+b"),
		white:  color("white"),
		yellow: color("yellow"),
		red:    color("red+b"),
	}
}

// Command writes a command line built from binary and clauses. Without
// color the line is byte-for-byte what findcmd.Builder.Command returns.
func (o *Output) Command(binary string, clauses []findcmd.Clause) {
	if binary == "" {
		binary = findcmd.DefaultBinary
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	var sb strings.Builder
	sb.WriteString(o.green(findcmd.Quote(binary)))
	sb.WriteByte(' ')
	for _, c := range clauses {
		sb.WriteString(o.colorFor(c.Option)(c.Text))
		sb.WriteByte(' ')
	}
	fmt.Fprintln(o.stdout, sb.String())
}

// Labeled writes a command line prefixed by a label, used when several
// commands are printed together.
func (o *Output) Labeled(label, command string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.stdout, "%s: %s\n", o.cyan(label), command)
}

// Explain writes one row per clause, naming the criterion it came from.
func (o *Output) Explain(clauses []findcmd.Clause) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	tp := tableprinter.New(o.stdout, o.width > 0, o.width)
	tp.AddHeader([]string{"OPTION", "CLAUSE"})
	for _, c := range clauses {
		tp.AddField(string(c.Option), tableprinter.WithColor(o.cyan))
		tp.AddField(c.Text, tableprinter.WithColor(o.colorFor(c.Option)))
		tp.EndRow()
	}
	return tp.Render()
}

func (o *Output) colorFor(opt findcmd.Option) func(string) string {
	switch opt {
	case findcmd.OptionAction:
		return o.red
	case findcmd.OptionDirectory:
		return o.cyan
	default:
		return o.white
	}
}

// Warningf writes a formatted warning message to stderr.
func (o *Output) Warningf(format string, args ...any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.stderr, o.yellow("Warning: ")+format+"\n", args...)
}

// Errorf writes a formatted error message to stderr.
func (o *Output) Errorf(format string, args ...any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.stderr, o.red("Error: ")+format+"\n", args...)
}

// Infof writes a formatted informational message to stderr.
func (o *Output) Infof(format string, args ...any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.stderr, format+"\n", args...)
}
