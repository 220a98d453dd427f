package pipeline

import "time"

// Emitter interface for observability.
type Emitter interface {
	EmitPipelineStart(executionID, pipelineType string, stageCount int)
	EmitStageStart(executionID, stageName string, stageIndex uint32)
	EmitStageEnd(executionID, stageName string, stageIndex uint32, duration time.Duration)
	EmitError(executionID, stageName, errorMsg string)
	EmitPipelineEnd(executionID string, stageCount int, duration time.Duration)
}

type Stage interface {
	// Apply builds the next record from record and the extra arguments
	// supplied to Process. It must not mutate record.
	Apply(record any, args ...any) (any, error)

	// Name returns the stage name for observability and logging.
	Name() string
}
