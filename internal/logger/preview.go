package logger

import (
	"fmt"
	"strings"
	"unicode"
)

// Preview renders s as a single log-friendly line of at most limit runes.
// Runs of whitespace, newlines included, fold into one space; a truncated
// preview ends with the number of runes left out.
func Preview(s string, limit int) string {
	if limit <= 0 {
		return ""
	}

	var (
		b       strings.Builder
		kept    int
		dropped int
		space   bool
	)

	for _, r := range strings.TrimSpace(s) {
		if unicode.IsSpace(r) {
			space = true
			continue
		}
		if space {
			space = false
			if kept < limit {
				b.WriteByte(' ')
				kept++
			} else {
				dropped++
			}
		}
		if kept < limit {
			b.WriteRune(r)
			kept++
			continue
		}
		dropped++
	}

	if dropped == 0 {
		return b.String()
	}
	return fmt.Sprintf("%s... (+%d)", strings.TrimRight(b.String(), " "), dropped)
}
