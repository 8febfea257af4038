package timeparse

import (
	"fmt"
	"time"
)

var layouts = []string{
	time.DateOnly,
	time.DateTime,
	"2006-01-02 15:04",
	time.RFC3339,
}

// ParseTime parses a date in one of these formats:
//   - YYYY-MM-DD (midnight)
//   - YYYY-MM-DD HH:MM:SS
//   - YYYY-MM-DD HH:MM
//   - RFC3339: 2018-10-27T10:00:00Z (carries its own timezone)
//
// Formats without a timezone are interpreted in loc.
func ParseTime(s string, loc *time.Location) (time.Time, error) {
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time format %q (expected YYYY-MM-DD, YYYY-MM-DD HH:MM[:SS], or RFC3339)", s)
}
