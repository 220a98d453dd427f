package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/prateek041/typedpipes/internal/config"
	"github.com/prateek041/typedpipes/internal/logging"
	"github.com/prateek041/typedpipes/pipeline"
)

var (
	// Global flags
	configPath string
	verbose    bool
	logFormat  string

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "typedpipes",
	Short: "Typed record pipelines for HR, manufacturing and sales data",
	Long: `typedpipes runs small business pipelines whose record type may change
from stage to stage: employee updates, production lines, commission
calculation, ledger lookups and cumulative order totals.

Examples:
  typedpipes employee
  typedpipes commission --sales 3000 --tenure 7
  typedpipes ledger --where 'data > 1000'
  typedpipes all --verbose --log-format json`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded

		level := cfg.Logging.Level
		if verbose {
			level = "debug"
		}
		format := cfg.Logging.Format
		if cmd.Flags().Changed("log-format") {
			format = logFormat
		}
		logger, err = logging.New(level, format)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Run every demo in turn",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, run := range []func(*cobra.Command, []string) error{
			runEmployee,
			runProduction,
			runCommission,
			runLedger,
			runTuple,
			runCumulative,
		} {
			if err := run(cmd, args); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout())
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", logging.FormatConsole, "log output format (console or json)")

	rootCmd.AddCommand(
		employeeCmd,
		productionCmd,
		commissionCmd,
		ledgerCmd,
		tupleCmd,
		cumulativeCmd,
		allCmd,
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// pipelineConfig returns the config for one pipeline execution, with a
// fresh execution ID and a logger tagged with it.
func pipelineConfig() pipeline.Config {
	id := pipeline.GenerateExecutionID()
	execLogger := logging.WithExecution(logger, id)
	return pipeline.Config{
		Emitter:     pipeline.NewLogEmitter(logger),
		Logger:      execLogger,
		ExecutionID: id,
	}
}

// runToEnd drives state to completion and prints the final record under
// title.
func runToEnd(cmd *cobra.Command, title string, state pipeline.State, args ...[]any) (pipeline.Complete, error) {
	done, err := pipeline.Run(state, args...)
	if err != nil {
		return pipeline.Complete{}, fmt.Errorf("%s: %w", title, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", title, done.FinalRecord())
	return done, nil
}
