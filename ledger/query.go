package ledger

import (
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/prateek041/typedpipes/internal/errkind"
)

// Where compiles expression once into a predicate usable with Find. The
// expression sees the variables id, data and timestamp and must yield a
// bool, e.g. `data > 1000.0`, `id startsWith "Transaction"` or
// `timestamp > date("2024-01-01")`.
func Where[ID comparable, D any](expression string) (func(Entry[ID, D]) bool, error) {
	program, err := expr.Compile(expression,
		expr.Env(queryEnv[ID, D]{}),
		expr.AsBool(),
	)
	if err != nil {
		return nil, errkind.InvalidArgument("ledger.Where", "invalid expression %q: %v", expression, err)
	}
	return func(entry Entry[ID, D]) bool {
		return matches(program, entry)
	}, nil
}

// FindWhere is Find driven by an expression.
func (l *Ledger[ID, D]) FindWhere(expression string) ([]Entry[ID, D], error) {
	pred, err := Where[ID, D](expression)
	if err != nil {
		return nil, err
	}
	return l.Find(pred), nil
}

type queryEnv[ID comparable, D any] struct {
	ID        ID        `expr:"id"`
	Data      D         `expr:"data"`
	Timestamp time.Time `expr:"timestamp"`
}

func matches[ID comparable, D any](program *vm.Program, entry Entry[ID, D]) bool {
	out, err := expr.Run(program, queryEnv[ID, D]{
		ID:        entry.ID,
		Data:      entry.Data,
		Timestamp: entry.Timestamp,
	})
	if err != nil {
		// A runtime failure, e.g. a type error on one entry's data, counts as
		// no match.
		return false
	}
	ok, _ := out.(bool)
	return ok
}

