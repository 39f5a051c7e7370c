package names

import (
	"fmt"

	"github.com/go-faster/errors"

	"github.com/yaroher/structname/internal/help"
)

// Sentinels matched by the typed errors below under errors.Is.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrIndex           = errors.New("index out of range")
	ErrFormat          = errors.New("malformed escape sequence")
)

// Kind classifies a contract violation.
type Kind int

const (
	KindInvalidArgument Kind = iota + 1
	KindIndex
	KindFormat
)

var kindNames = map[Kind]string{
	KindInvalidArgument: "InvalidArgument",
	KindIndex:           "IndexOutOfRange",
	KindFormat:          "MalformedEscape",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return help.SnakeName(n)
	}
	return fmt.Sprintf("unknown(%d)", int(k))
}

// KindOf reports the Kind of err, or 0 if err is not one of ours.
func KindOf(err error) Kind {
	switch {
	case errors.Is(err, ErrInvalidArgument):
		return KindInvalidArgument
	case errors.Is(err, ErrIndex):
		return KindIndex
	case errors.Is(err, ErrFormat):
		return KindFormat
	}
	return 0
}

// InvalidArgumentError is returned for absent arguments, bad delimiters and
// components that are not masked for the delimiter they are stored under.
type InvalidArgumentError struct {
	Op     string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s: invalid argument: %s", e.Op, e.Reason)
}

func (e *InvalidArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// IndexError is returned when an index falls outside [0, Bound).
type IndexError struct {
	Op    string
	Index int
	Bound int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d out of range [0, %d)", e.Op, e.Index, e.Bound)
}

func (e *IndexError) Unwrap() error {
	return ErrIndex
}

// FormatError is returned when a trailing escape character has nothing to
// escape.
type FormatError struct {
	Op     string
	Input  string
	Offset int
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: dangling escape character at offset %d in %q", e.Op, e.Offset, e.Input)
}

func (e *FormatError) Unwrap() error {
	return ErrFormat
}
