// Package errkind defines the two failure kinds shared by every package in
// this module: invalid arguments and out-of-range positions.
package errkind

import (
	"errors"
	"fmt"
)

// Kind classifies an error.
type Kind string

const (
	// KindInvalidArgument marks a value the callee refuses to work with,
	// e.g. a negative sales figure.
	KindInvalidArgument Kind = "invalid_argument"
	// KindIndexOutOfRange marks a position beyond what a container holds.
	KindIndexOutOfRange Kind = "index_out_of_range"
)

// Sentinels matched through errors.Is against any *Error of the same kind.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Error carries a kind, the operation that failed and a message.
type Error struct {
	Kind Kind
	Op   string
	Msg  string
}

func (e *Error) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("[%s] %s", e.Kind, e.Msg)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Kind, e.Op, e.Msg)
}

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrInvalidArgument:
		return e.Kind == KindInvalidArgument
	case ErrIndexOutOfRange:
		return e.Kind == KindIndexOutOfRange
	}
	return false
}

// InvalidArgument builds a KindInvalidArgument error.
func InvalidArgument(op, format string, args ...any) error {
	return &Error{Kind: KindInvalidArgument, Op: op, Msg: fmt.Sprintf(format, args...)}
}

// OutOfRange builds a KindIndexOutOfRange error for position i of a
// container holding size elements.
func OutOfRange(op string, i, size int) error {
	return &Error{
		Kind: KindIndexOutOfRange,
		Op:   op,
		Msg:  fmt.Sprintf("position %d out of range for size %d", i, size),
	}
}

// KindOf returns the kind of the first *Error in err's chain, or "" when
// there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
