package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/jparise/findcmd/internal/clipboard"
	"github.com/jparise/findcmd/internal/findcmd"
)

// colorMode represents when to use colored output.
type colorMode string

const (
	colorAuto   colorMode = "auto"
	colorAlways colorMode = "always"
	colorNever  colorMode = "never"
)

// String is used both by fmt.Print and by Cobra in help text.
func (c *colorMode) String() string {
	return string(*c)
}

// Set must have pointer receiver to validate and set the value.
func (c *colorMode) Set(v string) error {
	switch v {
	case "auto", "always", "never":
		*c = colorMode(v)
		return nil
	default:
		return fmt.Errorf("must be one of \"auto\", \"always\", or \"never\"")
	}
}

// Type is only used in help text.
func (c *colorMode) Type() string {
	return "colorMode"
}

// enumValue is a pflag.Value restricted to a fixed set of choices.
type enumValue[T ~string] struct {
	value   *T
	choices []T
	name    string
}

func newEnumValue[T ~string](value *T, name string, choices ...T) *enumValue[T] {
	return &enumValue[T]{value: value, choices: choices, name: name}
}

func (e *enumValue[T]) String() string {
	return string(*e.value)
}

func (e *enumValue[T]) Set(v string) error {
	for _, choice := range e.choices {
		if string(choice) == v {
			*e.value = choice
			return nil
		}
	}
	quoted := make([]string, len(e.choices))
	for i, choice := range e.choices {
		quoted[i] = strconv.Quote(string(choice))
	}
	return fmt.Errorf("must be one of %s", strings.Join(quoted, ", "))
}

func (e *enumValue[T]) Type() string {
	return e.name
}

func newPermModeValue(p *findcmd.PermMode) *enumValue[findcmd.PermMode] {
	return newEnumValue(p, "permMode",
		findcmd.PermNormal, findcmd.PermNot, findcmd.PermAtLeast, findcmd.PermCommon)
}

func newTimeModeValue(t *findcmd.TimeMode) *enumValue[findcmd.TimeMode] {
	return newEnumValue(t, "timeMode",
		findcmd.TimeModification, findcmd.TimeAccess, findcmd.TimeChange)
}

func newClipboardValue(m *clipboard.Mechanism) *enumValue[clipboard.Mechanism] {
	return newEnumValue(m, "clipboard",
		clipboard.MechanismSystem, clipboard.MechanismOSC52)
}

// parseSize parses a size such as "500k", "3.7M" or "1024" into a number
// and the find unit it is expressed in. A bare number counts bytes.
// Units are case-insensitive; the number is not rounded here.
func parseSize(s string) (float64, findcmd.SizeUnit, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, "", fmt.Errorf("empty size string")
	}

	// Find where the unit starts (last non-digit character)
	i := len(s) - 1
	for i >= 0 && !unicode.IsDigit(rune(s[i])) && s[i] != '.' {
		i--
	}

	// Parse the number part
	numStr := s[:i+1]
	num, err := strconv.ParseFloat(numStr, 64)
	if err != nil {
		return 0, "", fmt.Errorf("invalid number %q: %w", numStr, err)
	}
	if num < 0 {
		return 0, "", fmt.Errorf("size cannot be negative")
	}

	// Parse the unit suffix
	var unit findcmd.SizeUnit
	switch strings.ToLower(strings.TrimSpace(s[i+1:])) {
	case "", "c", "b":
		unit = findcmd.Bytes
	case "k", "kb", "kib":
		unit = findcmd.Kilobytes
	case "m", "mb", "mib":
		unit = findcmd.Megabytes
	case "g", "gb", "gib":
		unit = findcmd.Gigabytes
	default:
		return 0, "", fmt.Errorf("unknown unit %q (supported: c, k, M, G)", s[i+1:])
	}

	return num, unit, nil
}
