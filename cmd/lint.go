package cmd

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/jparise/findcmd/internal/criteria"
	"github.com/jparise/findcmd/internal/findcmd"
)

// lint reports criteria that produce a valid but probably unintended
// command. It never changes what gets rendered.
func lint(c criteria.Criteria, b *findcmd.Builder) []string {
	var warnings []string

	if c.NamePattern != "" {
		for _, alt := range findcmd.Alternatives(c.NamePattern) {
			switch {
			case alt == "":
				warnings = append(warnings, fmt.Sprintf("name pattern %q has an empty alternative", c.NamePattern))
			case !doublestar.ValidatePattern(alt):
				warnings = append(warnings, fmt.Sprintf("name pattern %q looks malformed", alt))
			}
		}
	}

	if c.FileSizeEqual != nil && (c.FileSizeBigger != nil || c.FileSizeSmaller != nil) {
		warnings = append(warnings, "exact size overrides the size range")
	}
	if r, ok := b.SizeFilter().(findcmd.SizeRange); ok && r.Empty() {
		warnings = append(warnings, "size range is empty; no file can match")
	}

	if c.TimeExact != nil && (c.TimeEarlier != nil || c.TimeLater != nil) {
		warnings = append(warnings, "exact time overrides the time range")
	}

	if c.DoExec && c.DoCommand == "" {
		warnings = append(warnings, "exec requested without a command; ignored")
	}

	return warnings
}
