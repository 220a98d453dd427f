// Package tuple provides heterogeneous value containers: a dynamically
// sized Tuple with checked positional access, and the fixed-arity Pair and
// Triple whose positions are checked by the compiler.
package tuple

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/samber/lo"

	"github.com/prateek041/typedpipes/internal/errkind"
)

var (
	ErrIndexOutOfRange = errkind.ErrIndexOutOfRange
	ErrInvalidArgument = errkind.ErrInvalidArgument
)

// Tuple is an immutable ordered list of values of any type.
type Tuple struct {
	values []any
}

// New returns a tuple holding values in order.
func New(values ...any) Tuple {
	return Tuple{values: append([]any(nil), values...)}
}

// Size returns the number of values.
func (t Tuple) Size() int { return len(t.values) }

// At returns the value at position i.
func (t Tuple) At(i int) (any, error) {
	if i < 0 || i >= len(t.values) {
		return nil, errkind.OutOfRange("tuple.At", i, len(t.values))
	}
	return t.values[i], nil
}

// TypeAt returns the dynamic type of the value at position i. A nil value
// has a nil type.
func (t Tuple) TypeAt(i int) (reflect.Type, error) {
	v, err := t.At(i)
	if err != nil {
		return nil, err
	}
	return reflect.TypeOf(v), nil
}

func (t Tuple) String() string {
	return "(" + join(t.values) + ")"
}

// Get returns the value at position i as a T.
func Get[T any](t Tuple, i int) (T, error) {
	var zero T
	v, err := t.At(i)
	if err != nil {
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		return zero, errkind.InvalidArgument("tuple.Get", "position %d holds %T, not %s", i, v, reflect.TypeOf((*T)(nil)).Elem())
	}
	return typed, nil
}

// Pair holds two values of fixed types.
type Pair[A, B any] struct {
	first  A
	second B
}

func NewPair[A, B any](a A, b B) Pair[A, B] { return Pair[A, B]{first: a, second: b} }

func (p Pair[A, B]) First() A  { return p.first }
func (p Pair[A, B]) Second() B { return p.second }
func (p Pair[A, B]) Size() int { return 2 }

// Tuple widens p to a dynamically sized tuple.
func (p Pair[A, B]) Tuple() Tuple { return New(p.first, p.second) }

// Triple holds three values of fixed types.
type Triple[A, B, C any] struct {
	first  A
	second B
	third  C
}

func NewTriple[A, B, C any](a A, b B, c C) Triple[A, B, C] {
	return Triple[A, B, C]{first: a, second: b, third: c}
}

func (t Triple[A, B, C]) First() A  { return t.first }
func (t Triple[A, B, C]) Second() B { return t.second }
func (t Triple[A, B, C]) Third() C  { return t.third }
func (t Triple[A, B, C]) Size() int { return 3 }

// Tuple widens t to a dynamically sized tuple.
func (t Triple[A, B, C]) Tuple() Tuple { return New(t.first, t.second, t.third) }

// Item is an inventory line: a primary value such as a name, followed by
// any number of extra attributes.
type Item[P any] struct {
	Primary    P
	Attributes []any
}

func NewItem[P any](primary P, attributes ...any) Item[P] {
	return Item[P]{Primary: primary, Attributes: append([]any(nil), attributes...)}
}

// String renders the primary value and every attribute separated by ", ",
// e.g. "Tool, 9.99, 50, Hardware".
func (it Item[P]) String() string {
	return join(append([]any{it.Primary}, it.Attributes...))
}

func join(values []any) string {
	return strings.Join(lo.Map(values, func(v any, _ int) string {
		return fmt.Sprint(v)
	}), ", ")
}
