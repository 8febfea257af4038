// Package clipboard places generated commands on the user's clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"io"

	sysclip "github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
)

// Copier copies text to a clipboard.
type Copier interface {
	Copy(text string) error
}

// Mechanism selects how text reaches the clipboard.
type Mechanism string

const (
	// MechanismSystem uses the platform clipboard tools (pbcopy, xclip,
	// wl-copy, clip.exe, ...).
	MechanismSystem Mechanism = "system"
	// MechanismOSC52 asks the terminal to set the clipboard, which also
	// works over SSH.
	MechanismOSC52 Mechanism = "osc52"
)

// ErrUnsupported is returned when no system clipboard tool is available.
var ErrUnsupported = errors.New("no clipboard utility available")

// System copies through the platform clipboard.
type System struct{}

// Copy implements Copier.
func (System) Copy(text string) error {
	if sysclip.Unsupported {
		return fmt.Errorf("cannot copy: %w", ErrUnsupported)
	}
	if err := sysclip.WriteAll(text); err != nil {
		return fmt.Errorf("cannot copy: %w", err)
	}
	return nil
}

// OSC52 copies by writing an OSC 52 escape sequence to the terminal.
type OSC52 struct {
	W    io.Writer
	Tmux bool // wrap the sequence for tmux passthrough
}

// Copy implements Copier.
func (o OSC52) Copy(text string) error {
	seq := osc52.New(text)
	if o.Tmux {
		seq = seq.Tmux()
	}
	if _, err := seq.WriteTo(o.W); err != nil {
		return fmt.Errorf("cannot copy: %w", err)
	}
	return nil
}

// New returns the Copier for m. OSC 52 sequences are written to w.
func New(m Mechanism, w io.Writer, tmux bool) (Copier, error) {
	switch m {
	case MechanismSystem:
		return System{}, nil
	case MechanismOSC52:
		return OSC52{W: w, Tmux: tmux}, nil
	default:
		return nil, fmt.Errorf("unknown clipboard mechanism %q", m)
	}
}
