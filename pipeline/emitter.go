package pipeline

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NoOpEmitter drops every event. New installs it when Config.Emitter is nil.
type NoOpEmitter struct{}

func (*NoOpEmitter) EmitPipelineStart(string, string, int)              {}
func (*NoOpEmitter) EmitStageStart(string, string, uint32)              {}
func (*NoOpEmitter) EmitStageEnd(string, string, uint32, time.Duration) {}
func (*NoOpEmitter) EmitError(string, string, string)                   {}
func (*NoOpEmitter) EmitPipelineEnd(string, int, time.Duration)         {}

// LogEmitter writes pipeline events to a zap logger. Stage transitions are
// logged at debug level, failures at warn level.
type LogEmitter struct {
	logger *zap.Logger
}

// NewLogEmitter returns a LogEmitter. A nil logger discards events.
func NewLogEmitter(logger *zap.Logger) *LogEmitter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogEmitter{logger: logger}
}

// EmitPipelineStart records the creation of an in-progress pipeline.
func (e *LogEmitter) EmitPipelineStart(executionID, pipelineType string, stageCount int) {
	e.logger.Debug("pipeline started",
		zap.String("execution_id", executionID),
		zap.String("pipeline_type", pipelineType),
		zap.Int("stage_count", stageCount),
	)
}

// EmitStageStart records that a stage is about to be applied.
func (e *LogEmitter) EmitStageStart(executionID, stageName string, stageIndex uint32) {
	e.logger.Debug("stage started",
		zap.String("execution_id", executionID),
		zap.String("stage_name", stageName),
		zap.Uint32("stage_index", stageIndex),
	)
}

// EmitStageEnd records a stage that returned a record.
func (e *LogEmitter) EmitStageEnd(executionID, stageName string, stageIndex uint32, duration time.Duration) {
	e.logger.Debug("stage completed",
		zap.String("execution_id", executionID),
		zap.String("stage_name", stageName),
		zap.Uint32("stage_index", stageIndex),
		zap.Duration("duration", duration),
	)
}

// EmitError records a stage that failed.
func (e *LogEmitter) EmitError(executionID, stageName, errorMsg string) {
	e.logger.Warn("stage failed",
		zap.String("execution_id", executionID),
		zap.String("stage_name", stageName),
		zap.String("error", errorMsg),
	)
}

// EmitPipelineEnd records the transition into the complete state.
func (e *LogEmitter) EmitPipelineEnd(executionID string, stageCount int, duration time.Duration) {
	e.logger.Debug("pipeline completed",
		zap.String("execution_id", executionID),
		zap.Int("stage_count", stageCount),
		zap.Duration("duration", duration),
	)
}

// GenerateExecutionID creates a new UUID string for tracking pipeline
// executions. Each pipeline execution should have a unique execution ID.
func GenerateExecutionID() string {
	return uuid.New().String()
}
