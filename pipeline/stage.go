package pipeline

import (
	"reflect"

	"github.com/prateek041/typedpipes/internal/errkind"
)

// FuncStage implements the Stage interface on top of a typed Go function.
// Build one with Func, WithArg or Pass.
type FuncStage struct {
	name  string
	apply func(record any, args []any) (any, error)
}

// Name returns the stage name.
func (s *FuncStage) Name() string {
	return s.name
}

// Apply runs the wrapped function.
func (s *FuncStage) Apply(record any, args ...any) (any, error) {
	return s.apply(record, args)
}

// Func creates a stage that takes no extra arguments. The record must be
// an In, which may be a concrete record type or a capability interface.
func Func[In, Out any](name string, fn func(In) (Out, error)) *FuncStage {
	return &FuncStage{
		name: name,
		apply: func(record any, args []any) (any, error) {
			in, err := inputAs[In](name, record)
			if err != nil {
				return nil, err
			}
			if len(args) != 0 {
				return nil, errkind.InvalidArgument(name, "expects no arguments, got %d", len(args))
			}
			return fn(in)
		},
	}
}

// WithArg creates a stage that takes exactly one extra argument of type A.
func WithArg[In, A, Out any](name string, fn func(In, A) (Out, error)) *FuncStage {
	return &FuncStage{
		name: name,
		apply: func(record any, args []any) (any, error) {
			in, err := inputAs[In](name, record)
			if err != nil {
				return nil, err
			}
			if len(args) != 1 {
				return nil, errkind.InvalidArgument(name, "expects 1 argument of type %s, got %d", typeName[A](), len(args))
			}
			arg, ok := args[0].(A)
			if !ok {
				return nil, errkind.InvalidArgument(name, "argument must be %s, got %T", typeName[A](), args[0])
			}
			return fn(in, arg)
		},
	}
}

// Pass creates an observational stage: fn sees the record and the stage
// returns it unchanged.
func Pass[In any](name string, fn func(In)) *FuncStage {
	return &FuncStage{
		name: name,
		apply: func(record any, args []any) (any, error) {
			in, err := inputAs[In](name, record)
			if err != nil {
				return nil, err
			}
			if len(args) != 0 {
				return nil, errkind.InvalidArgument(name, "expects no arguments, got %d", len(args))
			}
			fn(in)
			return record, nil
		},
	}
}

func inputAs[In any](stage string, record any) (In, error) {
	in, ok := record.(In)
	if !ok {
		var zero In
		return zero, recordMismatch(stage, typeName[In](), record)
	}
	return in, nil
}

func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}
