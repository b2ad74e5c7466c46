package screens

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// checkLength rejects a field longer than the configured rune limit.
func checkLength(limits Limits, field, label, value string) error {
	limit := limits.maxInput()
	if n := utf8.RuneCountInString(value); n > limit {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("O campo %s excede o limite de %d caracteres (atual: %d).", label, limit, n),
		}
	}
	return nil
}

func oneOf[T ~string](value T, allowed []T) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}
