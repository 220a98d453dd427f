package pipeline

import "time"

// StageMetric records one applied stage. Every State keeps the metrics of
// the stages that produced it, oldest first.
type StageMetric struct {
	ExecutionID string        `json:"execution_id"`
	StageName   string        `json:"stage_name"`
	StageIndex  uint32        `json:"stage_index"`
	InputType   string        `json:"input_type"`
	OutputType  string        `json:"output_type"`
	StartTime   time.Time     `json:"start_time"`
	Duration    time.Duration `json:"duration_ns"`
}
