// Package pipeline applies an ordered list of stages to an immutable
// record, one stage per Process call. Each stage may return a record of a
// different type than it received.
//
// A pipeline is always in one of two states. InProgress still has stages
// to run and only offers Process; Complete has none and is the only state
// that offers FinalRecord, so reading a result mid-chain does not compile.
// Both states are values: Process returns a new state and leaves the
// receiver as it was.
package pipeline

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"
)

// State is either an InProgress or a Complete. The set is closed.
type State interface {
	// Record returns the record held by this state.
	Record() any
	// History returns the metrics of the stages applied so far.
	History() []StageMetric

	isState()
}

// InProgress is a pipeline with at least one stage left to apply.
type InProgress struct {
	config    Config
	record    any
	remaining []Stage
	applied   int
	history   []StageMetric
	startTime time.Time
}

// Complete is a pipeline with no stages left.
type Complete struct {
	executionID string
	record      any
	history     []StageMetric
}

// New binds initial to the given stages. It returns an InProgress, or a
// Complete holding initial when stages is empty. The stage slice is copied.
func New(cfg Config, initial any, stages ...Stage) State {
	cfg = cfg.withDefaults()
	if len(stages) == 0 {
		return Complete{executionID: cfg.ExecutionID, record: initial}
	}

	p := InProgress{
		config:    cfg,
		record:    initial,
		remaining: slices.Clone(stages),
		startTime: time.Now(),
	}
	cfg.Emitter.EmitPipelineStart(cfg.ExecutionID, p.pipelineType(), len(stages))
	return p
}

func (InProgress) isState() {}
func (Complete) isState()   {}

// Record returns the record the next stage will receive.
func (p InProgress) Record() any { return p.record }

// History returns the metrics of the stages applied so far.
func (p InProgress) History() []StageMetric { return slices.Clone(p.history) }

// Remaining returns the number of stages left, always at least one for a
// state built by New.
func (p InProgress) Remaining() int { return len(p.remaining) }

// Next returns the name of the stage the next Process call applies.
func (p InProgress) Next() string {
	if len(p.remaining) == 0 {
		return ""
	}
	return p.remaining[0].Name()
}

// ExecutionID returns the ID shared by every state of this execution.
func (p InProgress) ExecutionID() string { return p.config.ExecutionID }

// Describe returns the remaining stage names joined by "->".
func (p InProgress) Describe() string { return p.pipelineType() }

// Process applies the head stage to the held record, passing args through
// to it, and returns the following state: an InProgress one stage shorter,
// or a Complete after the last stage. Stage errors come back wrapped in a
// *StageError and no state is produced.
func (p InProgress) Process(args ...any) (State, error) {
	if len(p.remaining) == 0 {
		return nil, ErrNoStages
	}

	stage := p.remaining[0]
	index := uint32(p.applied)
	emitter := p.config.Emitter
	emitter.EmitStageStart(p.config.ExecutionID, stage.Name(), index)

	start := time.Now()
	next, err := stage.Apply(p.record, args...)
	duration := time.Since(start)
	if err != nil {
		emitter.EmitError(p.config.ExecutionID, stage.Name(), err.Error())
		p.config.Logger.Debug("stage failed",
			zap.String("stage", stage.Name()),
			zap.Int("index", p.applied),
			zap.Error(err),
		)
		return nil, &StageError{Stage: stage.Name(), Index: p.applied, Err: err}
	}
	emitter.EmitStageEnd(p.config.ExecutionID, stage.Name(), index, duration)

	// Clip forces append to copy, so earlier states keep their own history.
	history := append(slices.Clip(p.history), StageMetric{
		ExecutionID: p.config.ExecutionID,
		StageName:   stage.Name(),
		StageIndex:  index,
		InputType:   fmt.Sprintf("%T", p.record),
		OutputType:  fmt.Sprintf("%T", next),
		StartTime:   start,
		Duration:    duration,
	})

	if len(p.remaining) == 1 {
		emitter.EmitPipelineEnd(p.config.ExecutionID, p.applied+1, time.Since(p.startTime))
		return Complete{executionID: p.config.ExecutionID, record: next, history: history}, nil
	}

	return InProgress{
		config:    p.config,
		record:    next,
		remaining: p.remaining[1:],
		applied:   p.applied + 1,
		history:   history,
		startTime: p.startTime,
	}, nil
}

func (p InProgress) pipelineType() string {
	names := make([]string, 0, len(p.remaining))
	for _, stage := range p.remaining {
		names = append(names, stage.Name())
	}
	return strings.Join(names, "->")
}

// Record returns the final record.
func (c Complete) Record() any { return c.record }

// FinalRecord returns the record produced by the last stage.
func (c Complete) FinalRecord() any { return c.record }

// History returns the metrics of every applied stage.
func (c Complete) History() []StageMetric { return slices.Clone(c.history) }

// ExecutionID returns the ID shared by every state of this execution.
func (c Complete) ExecutionID() string { return c.executionID }

// Final returns the final record of c as an R.
func Final[R any](c Complete) (R, error) {
	r, ok := c.record.(R)
	if !ok {
		var zero R
		return zero, recordMismatch("final record", typeName[R](), c.record)
	}
	return r, nil
}

// Run drives state to completion, passing args[i] to the i-th Process
// call. Missing rows mean no arguments. The first stage error stops the
// run.
func Run(state State, args ...[]any) (Complete, error) {
	for i := 0; ; i++ {
		switch s := state.(type) {
		case Complete:
			return s, nil
		case InProgress:
			var stageArgs []any
			if i < len(args) {
				stageArgs = args[i]
			}
			next, err := s.Process(stageArgs...)
			if err != nil {
				return Complete{}, err
			}
			state = next
		default:
			return Complete{}, fmt.Errorf("pipeline: unknown state %T", state)
		}
	}
}
