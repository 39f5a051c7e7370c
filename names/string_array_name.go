package names

import (
	"slices"

	"github.com/yaroher/structname/internal/help"
)

// StringArrayName stores its components in a slice.
// The zero value is an empty name with the default delimiter.
type StringArrayName struct {
	delimiter  rune
	components []string
}

// NewStringArrayName creates a name from already masked components. The
// slice is copied.
func NewStringArrayName(components []string, opts ...Option) (*StringArrayName, error) {
	o, err := buildOptions("new_string_array_name", opts)
	if err != nil {
		return nil, err
	}
	if err := checkComponents("new_string_array_name", components, o.Delimiter); err != nil {
		return nil, err
	}
	return &StringArrayName{
		delimiter:  o.Delimiter,
		components: slices.Clone(components),
	}, nil
}

func (n *StringArrayName) DelimiterCharacter() rune {
	return help.RuneOrDefault(n.delimiter, DefaultDelimiter)
}

func (n *StringArrayName) NoComponents() int {
	return len(n.components)
}

func (n *StringArrayName) Component(i int) (string, error) {
	if err := validateIndex("component", i, len(n.components)); err != nil {
		return "", err
	}
	return n.components[i], nil
}

func (n *StringArrayName) SetComponent(i int, c string) error {
	if err := validateIndex("set_component", i, len(n.components)); err != nil {
		return err
	}
	if err := checkComponent("set_component", c, n.DelimiterCharacter()); err != nil {
		return err
	}
	n.components[i] = c
	return nil
}

func (n *StringArrayName) Insert(i int, c string) error {
	if err := validateIndex("insert", i, len(n.components)+1); err != nil {
		return err
	}
	if err := checkComponent("insert", c, n.DelimiterCharacter()); err != nil {
		return err
	}
	n.components = slices.Insert(n.components, i, c)
	return nil
}

func (n *StringArrayName) Append(c string) error {
	if err := checkComponent("append", c, n.DelimiterCharacter()); err != nil {
		return err
	}
	n.components = append(n.components, c)
	return nil
}

func (n *StringArrayName) Remove(i int) error {
	if err := validateIndex("remove", i, len(n.components)); err != nil {
		return err
	}
	n.components = slices.Delete(n.components, i, i+1)
	return nil
}

func (n *StringArrayName) AsString() string {
	return mustAsString(n)
}

func (n *StringArrayName) AsStringWith(delimiter rune) (string, error) {
	return asString(n, delimiter)
}

func (n *StringArrayName) AsDataString() string {
	return asDataString(n)
}

func (n *StringArrayName) String() string {
	return n.AsDataString()
}

func (n *StringArrayName) IsEmpty() bool {
	return isEmpty(n)
}

func (n *StringArrayName) IsEqual(other Name) bool {
	return isEqual(n, other)
}

func (n *StringArrayName) HashCode() int32 {
	return hashCode(n)
}

func (n *StringArrayName) Concat(other Name) error {
	return concat(n, other)
}

func (n *StringArrayName) Clone() Name {
	return &StringArrayName{
		delimiter:  n.delimiter,
		components: slices.Clone(n.components),
	}
}
