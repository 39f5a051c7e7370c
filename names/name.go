// Package names implements structured names: sequences of string components
// joined by a one-character delimiter, where the delimiter and the escape
// character '\' appear inside a component only when escaped.
//
// Two storage strategies share one contract. StringArrayName keeps the
// components in a slice; StringName keeps them joined in a single buffer and
// scans for component bounds on demand. Every operation that does not depend
// on the storage is implemented once against Components.
//
// A component handed to a mutator must already be masked for the name's
// delimiter (see Mask). AsDataString always produces the default delimiter
// form, which ParseDataString turns back into the same components.
package names

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/yaroher/structname/logger"
)

// Components is the storage contract every name implements.
type Components interface {
	DelimiterCharacter() rune
	NoComponents() int
	Component(i int) (string, error)
	SetComponent(i int, c string) error
	Insert(i int, c string) error
	Append(c string) error
	Remove(i int) error
}

// Name is a structured name.
type Name interface {
	Components

	AsString() string
	AsStringWith(delimiter rune) (string, error)
	AsDataString() string
	IsEmpty() bool
	IsEqual(other Name) bool
	HashCode() int32
	Concat(other Name) error
	Clone() Name
}

var (
	_ Name = (*StringArrayName)(nil)
	_ Name = (*StringName)(nil)
)

// components returns every stored (masked) component of n.
func components(n Components) []string {
	out := make([]string, n.NoComponents())
	for i := range out {
		// i is in range by construction
		out[i], _ = n.Component(i)
	}
	return out
}

func asString(n Components, delimiter rune) (string, error) {
	if err := checkDelimiter("as_string", delimiter); err != nil {
		return "", err
	}
	parts := components(n)
	for i, c := range parts {
		u, err := UnmaskForDisplay(c)
		if err != nil {
			return "", err
		}
		parts[i] = u
	}
	return strings.Join(parts, string(delimiter)), nil
}

// mustAsString is asString for the name's own delimiter. Stored components
// are validated on the way in, so it cannot fail.
func mustAsString(n Components) string {
	s, err := asString(n, n.DelimiterCharacter())
	if err != nil {
		panic(err)
	}
	return s
}

func asDataString(n Components) string {
	cs := components(n)
	if d := n.DelimiterCharacter(); d != DefaultDelimiter {
		for i, c := range cs {
			r, err := Remask(c, d, DefaultDelimiter)
			if err != nil {
				panic(err)
			}
			cs[i] = r
		}
	}
	return strings.Join(cs, string(DefaultDelimiter))
}

func isEmpty(n Components) bool {
	return n.NoComponents() == 0
}

func isEqual(n Name, other Name) bool {
	if requireName("is_equal", other) != nil {
		return false
	}
	if n == other {
		return true
	}
	// counts are compared first so [""] and [] differ
	return n.NoComponents() == other.NoComponents() &&
		n.DelimiterCharacter() == other.DelimiterCharacter() &&
		n.AsDataString() == other.AsDataString()
}

func hashCode(n Name) int32 {
	s := n.AsDataString() + string(n.DelimiterCharacter()) + strconv.Itoa(n.NoComponents())
	var h int32
	for _, r := range s {
		h = h*31 + r
	}
	return h
}

// concat appends every component of other to n, converting between
// delimiters when they differ. Components are prepared before the first
// append so a failure leaves n untouched.
func concat(n Components, other Name) error {
	if err := requireName("concat", other); err != nil {
		return err
	}
	src := components(other)
	if len(src) == 0 {
		return nil
	}
	from, to := other.DelimiterCharacter(), n.DelimiterCharacter()
	if from != to {
		logger.Debug("remasking components for concat",
			zap.String("from", string(from)),
			zap.String("to", string(to)),
			zap.Int("components", len(src)),
		)
		for i, c := range src {
			r, err := Remask(c, from, to)
			if err != nil {
				return err
			}
			src[i] = r
		}
	}
	for _, c := range src {
		if err := n.Append(c); err != nil {
			return err
		}
	}
	return nil
}

// ComponentsOf returns a copy of the masked components of n.
func ComponentsOf(n Components) []string {
	return components(n)
}
