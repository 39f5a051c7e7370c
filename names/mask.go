package names

import (
	"strings"
	"unicode/utf8"
)

const (
	DefaultDelimiter rune = '.'
	EscapeCharacter  rune = '\\'
)

// Mask escapes every occurrence of delimiter and every lone escape character
// in component. Escape pairs already present are copied through unchanged.
func Mask(component string, delimiter rune) string {
	var b strings.Builder
	b.Grow(len(component) + len(component)/4)
	escaped := false
	for _, r := range component {
		switch {
		case escaped:
			escaped = false
			b.WriteRune(r)
		case r == EscapeCharacter:
			escaped = true
			b.WriteRune(r)
		case r == delimiter:
			b.WriteRune(EscapeCharacter)
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	if escaped {
		// a trailing escape has no partner, so it is literal data
		b.WriteRune(EscapeCharacter)
	}
	return b.String()
}

// UnmaskForDisplay strips one level of escaping: every escape pair is
// replaced by the character it protects.
func UnmaskForDisplay(component string) (string, error) {
	return unmask("unmask_for_display", component, true)
}

// UnmaskForRemask strips the escapes protecting delimiters and other
// characters but keeps escaped escape characters as pairs, so the result can
// be passed to Mask for another delimiter without doubling them.
func UnmaskForRemask(component string) (string, error) {
	return unmask("unmask_for_remask", component, false)
}

// Remask converts a component masked for from into one masked for to.
func Remask(component string, from, to rune) (string, error) {
	if from == to {
		return component, nil
	}
	u, err := UnmaskForRemask(component)
	if err != nil {
		return "", err
	}
	return Mask(u, to), nil
}

func unmask(op, component string, escapeEscapes bool) (string, error) {
	if !strings.ContainsRune(component, EscapeCharacter) {
		return component, nil
	}
	var b strings.Builder
	b.Grow(len(component))
	escaped := false
	for _, r := range component {
		switch {
		case escaped:
			escaped = false
			if r == EscapeCharacter && !escapeEscapes {
				b.WriteRune(EscapeCharacter)
			}
			b.WriteRune(r)
		case r == EscapeCharacter:
			escaped = true
		default:
			b.WriteRune(r)
		}
	}
	if escaped {
		return "", &FormatError{Op: op, Input: component, Offset: len(component) - 1}
	}
	return b.String(), nil
}

// Split breaks s into masked components at every unescaped delimiter.
// An empty s yields a single empty component.
func Split(s string, delimiter rune) ([]string, error) {
	var out []string
	start := 0
	escaped := false
	for i, r := range s {
		switch {
		case escaped:
			escaped = false
		case r == EscapeCharacter:
			escaped = true
		case r == delimiter:
			out = append(out, s[start:i])
			start = i + utf8.RuneLen(r)
		}
	}
	if escaped {
		return nil, &FormatError{Op: "split", Input: s, Offset: len(s) - 1}
	}
	return append(out, s[start:]), nil
}

// ParseDataString splits a data string produced by AsDataString back into
// its components.
func ParseDataString(s string) ([]string, error) {
	return Split(s, DefaultDelimiter)
}
