package pipeline

import "go.uber.org/zap"

// Config carries the observability plumbing shared by every state of one
// pipeline execution.
type Config struct {
	Emitter Emitter
	Logger  *zap.Logger

	ExecutionID string // Set automatically if not provided
}

// withDefaults fills in a NoOpEmitter, a no-op logger and a fresh
// execution ID where cfg leaves them empty.
func (cfg Config) withDefaults() Config {
	if cfg.Emitter == nil {
		cfg.Emitter = &NoOpEmitter{}
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.ExecutionID == "" {
		cfg.ExecutionID = GenerateExecutionID()
	}
	return cfg
}
