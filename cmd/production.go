package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prateek041/typedpipes/manufacturing"
	"github.com/prateek041/typedpipes/pipeline"
)

var productionCmd = &cobra.Command{
	Use:   "production",
	Short: "Run raw materials through production lines",
	Args:  cobra.NoArgs,
	RunE:  runProduction,
}

func runProduction(cmd *cobra.Command, _ []string) error {
	fmt.Fprintln(cmd.OutOrStdout(), "--- Production lines ---")

	lines := []struct {
		title string
		raw   manufacturing.RawMaterial
		build func(pipeline.Config) []pipeline.Stage
	}{
		{
			title: "Standard line",
			raw:   manufacturing.RawMaterial{Value: "Steel"},
			build: func(pipeline.Config) []pipeline.Stage {
				return []pipeline.Stage{
					manufacturing.Assembly(),
					manufacturing.QualityControl(),
					manufacturing.Polishing(manufacturing.TypeAPolish),
					manufacturing.Packaging(1),
				}
			},
		},
		{
			title: "Defective batch",
			raw:   manufacturing.RawMaterial{Value: "Defective Aluminium"},
			build: func(pipeline.Config) []pipeline.Stage {
				return []pipeline.Stage{
					manufacturing.Assembly(),
					manufacturing.QualityControl(),
				}
			},
		},
		{
			title: "Logged line",
			raw:   manufacturing.RawMaterial{Value: "Copper"},
			build: func(c pipeline.Config) []pipeline.Stage {
				return []pipeline.Stage{
					manufacturing.Assembly(),
					manufacturing.Logging(c.Logger),
					manufacturing.Polishing(manufacturing.TypeBPolish),
					manufacturing.Logging(c.Logger),
					manufacturing.Packaging(42),
				}
			},
		},
	}

	for _, line := range lines {
		c := pipelineConfig()
		if _, err := runToEnd(cmd, line.title, manufacturing.NewLine(c, line.raw, line.build(c)...)); err != nil {
			return err
		}
	}
	return nil
}
