package names

import (
	"strings"
	"unicode/utf8"

	"github.com/yaroher/structname/internal/help"
)

// StringName stores all components joined by the delimiter in one buffer.
// Component bounds are found by scanning the buffer; the component count is
// tracked separately because "" holds either zero components or one empty
// component.
//
// The zero value is an empty name with the default delimiter.
type StringName struct {
	delimiter    rune
	name         string
	noComponents int
}

// NewStringName creates a name from a raw masked string. Every unescaped
// delimiter starts a new component, so "" holds one empty component.
func NewStringName(source string, opts ...Option) (*StringName, error) {
	o, err := buildOptions("new_string_name", opts)
	if err != nil {
		return nil, err
	}
	cs, err := Split(source, o.Delimiter)
	if err != nil {
		return nil, err
	}
	return &StringName{
		delimiter:    o.Delimiter,
		name:         source,
		noComponents: len(cs),
	}, nil
}

// NewStringNameFromComponents creates a StringName holding the given masked
// components.
func NewStringNameFromComponents(components []string, opts ...Option) (*StringName, error) {
	o, err := buildOptions("new_string_name", opts)
	if err != nil {
		return nil, err
	}
	if err := checkComponents("new_string_name", components, o.Delimiter); err != nil {
		return nil, err
	}
	return &StringName{
		delimiter:    o.Delimiter,
		name:         strings.Join(components, string(o.Delimiter)),
		noComponents: len(components),
	}, nil
}

// EmptyStringName creates a StringName without components.
func EmptyStringName(opts ...Option) (*StringName, error) {
	o, err := buildOptions("empty_string_name", opts)
	if err != nil {
		return nil, err
	}
	return &StringName{delimiter: o.Delimiter}, nil
}

// locateComponentBounds returns the byte offsets [start, end) of the
// component at index in buffer. Escape pairs never count as delimiters.
// index must be smaller than the number of components held by buffer.
func locateComponentBounds(buffer string, delimiter rune, index int) (start, end int) {
	current := 0
	escaped := false
	for i, r := range buffer {
		switch {
		case escaped:
			escaped = false
		case r == EscapeCharacter:
			escaped = true
		case r == delimiter:
			if current == index {
				return start, i
			}
			current++
			start = i + utf8.RuneLen(r)
		}
	}
	return start, len(buffer)
}

func (n *StringName) DelimiterCharacter() rune {
	return help.RuneOrDefault(n.delimiter, DefaultDelimiter)
}

func (n *StringName) NoComponents() int {
	return n.noComponents
}

func (n *StringName) Component(i int) (string, error) {
	if err := validateIndex("component", i, n.noComponents); err != nil {
		return "", err
	}
	start, end := locateComponentBounds(n.name, n.DelimiterCharacter(), i)
	return n.name[start:end], nil
}

func (n *StringName) SetComponent(i int, c string) error {
	if err := validateIndex("set_component", i, n.noComponents); err != nil {
		return err
	}
	if err := checkComponent("set_component", c, n.DelimiterCharacter()); err != nil {
		return err
	}
	start, end := locateComponentBounds(n.name, n.DelimiterCharacter(), i)
	n.name = n.name[:start] + c + n.name[end:]
	return nil
}

func (n *StringName) Insert(i int, c string) error {
	if err := validateIndex("insert", i, n.noComponents+1); err != nil {
		return err
	}
	if i == n.noComponents {
		return n.Append(c)
	}
	d := n.DelimiterCharacter()
	if err := checkComponent("insert", c, d); err != nil {
		return err
	}
	start, _ := locateComponentBounds(n.name, d, i)
	n.name = n.name[:start] + c + string(d) + n.name[start:]
	n.noComponents++
	return nil
}

func (n *StringName) Append(c string) error {
	d := n.DelimiterCharacter()
	if err := checkComponent("append", c, d); err != nil {
		return err
	}
	if n.noComponents > 0 {
		n.name += string(d)
	}
	n.name += c
	n.noComponents++
	return nil
}

func (n *StringName) Remove(i int) error {
	if err := validateIndex("remove", i, n.noComponents); err != nil {
		return err
	}
	d := n.DelimiterCharacter()
	start, end := locateComponentBounds(n.name, d, i)
	switch {
	case n.noComponents == 1:
		n.name = ""
	case i == n.noComponents-1:
		// drop the component together with its leading delimiter
		n.name = n.name[:start-utf8.RuneLen(d)]
	default:
		n.name = n.name[:start] + n.name[end+utf8.RuneLen(d):]
	}
	n.noComponents--
	return nil
}

func (n *StringName) AsString() string {
	return mustAsString(n)
}

func (n *StringName) AsStringWith(delimiter rune) (string, error) {
	return asString(n, delimiter)
}

func (n *StringName) AsDataString() string {
	return asDataString(n)
}

func (n *StringName) String() string {
	return n.AsDataString()
}

func (n *StringName) IsEmpty() bool {
	return isEmpty(n)
}

func (n *StringName) IsEqual(other Name) bool {
	return isEqual(n, other)
}

func (n *StringName) HashCode() int32 {
	return hashCode(n)
}

func (n *StringName) Concat(other Name) error {
	return concat(n, other)
}

func (n *StringName) Clone() Name {
	c := *n
	return &c
}
