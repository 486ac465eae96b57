package console

import "strings"

var plain = NewFormatter(nil)

// Strip removes style tags from line, for sinks that are not terminals.
func Strip(line string) string { return plain.Format(line, false) }

// IsWarning reports whether a stderr line opens with a warning-like style
// rather than <error>.
func IsWarning(line string) bool {
	for _, p := range []string{"<fg=yellow>", "<warning>", "<comment>"} {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}
