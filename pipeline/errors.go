package pipeline

import (
	"errors"
	"fmt"

	"github.com/prateek041/typedpipes/internal/errkind"
)

var (
	// ErrInvalidArgument matches stage failures caused by bad records or
	// bad extra arguments.
	ErrInvalidArgument = errkind.ErrInvalidArgument

	// ErrRecordMismatch is returned when a stage receives a record that
	// lacks the shape or capability it reads. It also matches
	// ErrInvalidArgument.
	ErrRecordMismatch = errors.New("record does not satisfy stage input")

	// ErrNoStages is returned by Process on an InProgress value that was
	// not built by New.
	ErrNoStages = errors.New("in-progress state has no remaining stages")
)

// StageError reports which stage failed. The wrapped error is the one the
// stage returned.
type StageError struct {
	Stage string
	Index int
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage %d (%s): %v", e.Index, e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func recordMismatch(stage string, want string, got any) error {
	return fmt.Errorf("%w: %w", ErrRecordMismatch,
		errkind.InvalidArgument(stage, "want record %s, got %T", want, got))
}
