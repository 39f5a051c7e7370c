package names

import (
	"fmt"
	"unicode/utf8"
)

func validateIndex(op string, i, upper int) error {
	if i < 0 || i >= upper {
		return &IndexError{Op: op, Index: i, Bound: upper}
	}
	return nil
}

func requireName(op string, n Name) error {
	switch v := n.(type) {
	case nil:
		return &InvalidArgumentError{Op: op, Reason: "name is nil"}
	case *StringArrayName:
		if v == nil {
			return &InvalidArgumentError{Op: op, Reason: "name is nil"}
		}
	case *StringName:
		if v == nil {
			return &InvalidArgumentError{Op: op, Reason: "name is nil"}
		}
	}
	return nil
}

func checkDelimiter(op string, r rune) error {
	switch {
	case r == EscapeCharacter:
		return &InvalidArgumentError{Op: op, Reason: "delimiter must not be the escape character"}
	case r == utf8.RuneError || !utf8.ValidRune(r) || r == 0:
		return &InvalidArgumentError{Op: op, Reason: fmt.Sprintf("delimiter %U is not a valid character", r)}
	}
	return nil
}

// DelimiterFromString returns the single character held by s.
func DelimiterFromString(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, &InvalidArgumentError{Op: "delimiter", Reason: fmt.Sprintf("%q is not exactly one character", s)}
	}
	r, _ := utf8.DecodeRuneInString(s)
	if err := checkDelimiter("delimiter", r); err != nil {
		return 0, err
	}
	return r, nil
}

// checkComponent reports whether c may be stored under delimiter: it must
// not contain an unescaped delimiter nor end in a dangling escape.
func checkComponent(op, c string, delimiter rune) error {
	escaped := false
	for i, r := range c {
		switch {
		case escaped:
			escaped = false
		case r == EscapeCharacter:
			escaped = true
		case r == delimiter:
			return &InvalidArgumentError{
				Op:     op,
				Reason: fmt.Sprintf("component %q has an unescaped delimiter %q at offset %d", c, delimiter, i),
			}
		}
	}
	if escaped {
		return &FormatError{Op: op, Input: c, Offset: len(c) - 1}
	}
	return nil
}

func checkComponents(op string, cs []string, delimiter rune) error {
	for _, c := range cs {
		if err := checkComponent(op, c, delimiter); err != nil {
			return err
		}
	}
	return nil
}
