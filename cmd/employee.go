package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prateek041/typedpipes/hr"
	"github.com/prateek041/typedpipes/pipeline"
)

var employeeCmd = &cobra.Command{
	Use:   "employee",
	Short: "Move employees between departments and pay grades",
	Long: `Runs the employee pipelines: a department update, a standard raise,
a change to a numeric department code, a two step update, and the
payroll check with net pay under both payroll policies.`,
	Args: cobra.NoArgs,
	RunE: runEmployee,
}

func runEmployee(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "--- Employee pipelines ---")

	alice := hr.NewEmployee("Alice Baker", "Sales", 5000.0, "1950-01-15")
	if _, err := runToEnd(cmd, "Department update",
		pipeline.New(pipelineConfig(), alice, hr.DepartmentUpdater()),
		[]any{"Marketing"},
	); err != nil {
		return err
	}

	bob := hr.NewEmployee("Bob Charlie", "Engineering", 6000.0, "1951-03-20")
	if _, err := runToEnd(cmd, "Standard raise",
		pipeline.New(pipelineConfig(), bob, hr.StandardRaise()),
		[]any{0.05},
	); err != nil {
		return err
	}

	catherine := hr.NewEmployee("Catherine Davis", "Accounting", 5500.0, "1952-07-01")
	if _, err := runToEnd(cmd, "Department code",
		pipeline.New(pipelineConfig(), catherine, hr.DepartmentChanger(101)),
	); err != nil {
		return err
	}

	david := hr.NewEmployee("David Edwards", "Clerical", 4000.0, "1953-09-10")
	if _, err := runToEnd(cmd, "Multiple actions",
		pipeline.New(pipelineConfig(), david, hr.DepartmentUpdater(), hr.StandardRaise()),
		[]any{"HR"}, []any{0.10},
	); err != nil {
		return err
	}

	standard, executive := hr.PayrollPolicies(cfg.Payroll)
	eve := hr.NewEmployee("Eve Franklin", "Finance", 7000.0, "1954-11-05")
	done, err := runToEnd(cmd, "Payroll",
		pipeline.New(pipelineConfig(), eve, hr.DepartmentChanger(7), hr.PayrollProcessor(standard)),
	)
	if err != nil {
		return err
	}
	final, err := pipeline.Final[hr.Staffed](done)
	if err != nil {
		return err
	}
	for _, policy := range []hr.PayrollPolicy{standard, executive} {
		fmt.Fprintf(out, "  net pay (%s): %.2f\n", policy.Name(), hr.NetPay(final, policy))
	}
	return nil
}
