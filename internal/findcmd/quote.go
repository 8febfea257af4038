package findcmd

import "strings"

// Quote returns s in a form a POSIX shell reads back as the single word s.
// Strings made only of letters, digits, '/', '_', '.' and '~' are returned
// as is; anything else is wrapped in single quotes.
func Quote(s string) string {
	if isSafe(s) {
		return s
	}

	// A single-quoted string cannot contain a single quote, so close the
	// quote, emit the quote inside double quotes and reopen.
	return "'" + strings.ReplaceAll(s, "'", `'"'"'`) + "'"
}

// isSafe reports false for "" so that an empty word still reaches the shell.
func isSafe(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '/', c == '_', c == '.', c == '~':
		default:
			return false
		}
	}
	return true
}
