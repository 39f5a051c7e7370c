package help

import (
	"strings"

	"github.com/iancoleman/strcase"
)

// SnakeName turns a Go-style identifier into its lower snake form.
func SnakeName(s string) string {
	return strcase.ToSnake(strings.TrimSpace(s))
}

func StringOrDefault(s string, d string) string {
	if s != "" {
		return s
	}
	return d
}

func RuneOrDefault(r rune, d rune) rune {
	if r != 0 {
		return r
	}
	return d
}
