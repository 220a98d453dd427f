package pipeline

import (
	"fmt"

	"go.uber.org/zap"
)

// Tap returns the logging stage: it writes "Processed: <record>" at info
// level and hands the record on untouched. It is the only stage allowed a
// side effect. A nil logger discards the output.
func Tap(name string, logger *zap.Logger) *FuncStage {
	if logger == nil {
		logger = zap.NewNop()
	}
	return Pass(name, func(record any) {
		logger.Info("Processed: "+fmt.Sprint(record),
			zap.String("stage", name),
			zap.String("record_type", fmt.Sprintf("%T", record)),
		)
	})
}
