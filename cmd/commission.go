package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prateek041/typedpipes/commission"
)

var (
	// Commission command flags
	sales  float64
	tenure int
)

var commissionCmd = &cobra.Command{
	Use:   "commission",
	Short: "Compute a sales commission",
	Long: `Computes base(sales) * tier rate * (1 + tenure bonus) using the base
rate, tier table and bonus policy from the configuration file.

Examples:
  typedpipes commission --sales 3000
  typedpipes commission --sales 12000 --tenure 11`,
	Args: cobra.NoArgs,
	RunE: runCommission,
}

func init() {
	commissionCmd.Flags().Float64Var(&sales, "sales", 3000, "sales amount")
	commissionCmd.Flags().IntVar(&tenure, "tenure", commission.DefaultTenureYears, "employee tenure in years (defaults to the configured tenure)")
}

func runCommission(cmd *cobra.Command, _ []string) error {
	calc, err := commission.FromConfig(cfg.Commission)
	if err != nil {
		return err
	}

	years := calc.TenureYears
	var opts []commission.Option
	if cmd.Flags().Changed("tenure") {
		years = tenure
		opts = append(opts, commission.WithTenure(tenure))
	}

	amount, err := calc.Compute(sales, opts...)
	if err != nil {
		return fmt.Errorf("commission: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "--- Commission ---")
	fmt.Fprintf(cmd.OutOrStdout(), "Sales %.2f, tenure %d years: commission %.4f\n", sales, years, amount)
	return nil
}
