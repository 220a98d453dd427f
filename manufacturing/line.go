// Package manufacturing models a production line: a product moves through
// departments, and each department hands the next one a product in a
// further state of completion.
package manufacturing

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/prateek041/typedpipes/pipeline"
)

// Product is implemented by every product state.
type Product interface {
	Describe() string
}

// RawMaterial enters the line.
type RawMaterial struct{ Value string }

// SemiFinished leaves assembly and quality control.
type SemiFinished struct{ Value string }

// Finished leaves polishing and packaging.
type Finished struct{ Value string }

func (p RawMaterial) Describe() string  { return p.Value }
func (p SemiFinished) Describe() string { return p.Value }
func (p Finished) Describe() string     { return p.Value }

func (p RawMaterial) String() string  { return p.Value }
func (p SemiFinished) String() string { return p.Value }
func (p Finished) String() string     { return p.Value }

// PolishMaterial names the compound used by the polishing department.
type PolishMaterial string

const (
	TypeAPolish PolishMaterial = "Type A Polish"
	TypeBPolish PolishMaterial = "Type B Polish"
)

// Assembly turns any product into a SemiFinished one.
func Assembly() *pipeline.FuncStage {
	return pipeline.Func("Assembly", func(p Product) (SemiFinished, error) {
		return SemiFinished{Value: p.Describe() + " - Assembled"}, nil
	})
}

// QualityControl rejects products whose description mentions a defect
// and passes the rest.
func QualityControl() *pipeline.FuncStage {
	return pipeline.Func("QualityControl", func(p Product) (SemiFinished, error) {
		if strings.Contains(p.Describe(), "Defect") {
			return SemiFinished{Value: p.Describe() + " - Rejected"}, nil
		}
		return SemiFinished{Value: p.Describe() + " - Passed QC"}, nil
	})
}

// Polishing finishes a product with the given material.
func Polishing(material PolishMaterial) *pipeline.FuncStage {
	return pipeline.Func("Polishing", func(p Product) (Finished, error) {
		return Finished{Value: p.Describe() + " - Polished with " + string(material)}, nil
	})
}

// Packaging packs a product into the numbered box.
func Packaging(box int) *pipeline.FuncStage {
	return pipeline.Func(fmt.Sprintf("Packaging[%d]", box), func(p Product) (Finished, error) {
		return Finished{Value: fmt.Sprintf("%s - Packed in Box #%d", p.Describe(), box)}, nil
	})
}

// Logging reports the product passing through and leaves it untouched.
func Logging(logger *zap.Logger) *pipeline.FuncStage {
	return pipeline.Tap("Logging", logger)
}

// NewLine starts a production line for raw with the given departments.
func NewLine(cfg pipeline.Config, raw RawMaterial, departments ...pipeline.Stage) pipeline.State {
	return pipeline.New(cfg, raw, departments...)
}
