package hr

import (
	"fmt"
	"math"

	"github.com/prateek041/typedpipes/internal/config"
	"github.com/prateek041/typedpipes/internal/errkind"
	"github.com/prateek041/typedpipes/pipeline"
)

// ErrInvalidArgument matches every rejection issued by the stages here.
var ErrInvalidArgument = errkind.ErrInvalidArgument

// DepartmentUpdater moves an employee to the department named by the
// string argument of Process. The result is always an Employee[string].
func DepartmentUpdater() *pipeline.FuncStage {
	return pipeline.WithArg("DepartmentUpdater", func(e Staffed, department string) (Employee[string], error) {
		c := e.Core()
		return Employee[string]{Name: c.Name, Department: department, Salary: c.Salary, HireDate: c.HireDate}, nil
	})
}

// StandardRaise multiplies the salary by 1 + the float64 argument of
// Process. The department variant is kept.
func StandardRaise() *pipeline.FuncStage {
	return pipeline.WithArg("StandardRaise", func(e Salaried, pct float64) (Salaried, error) {
		if math.IsNaN(pct) || math.IsInf(pct, 0) {
			return nil, errkind.InvalidArgument("StandardRaise", "raise percentage must be finite, got %v", pct)
		}
		if pct < -1 {
			return nil, errkind.InvalidArgument("StandardRaise", "raise percentage %v would make the salary negative", pct)
		}
		return e.WithSalary(e.Core().Salary * (1.0 + pct)), nil
	})
}

// DepartmentChanger files an employee under a numeric department code.
// The result is always an Employee[int].
func DepartmentChanger(code int) *pipeline.FuncStage {
	return pipeline.Func(fmt.Sprintf("DepartmentChanger[%d]", code), func(e Staffed) (Employee[int], error) {
		c := e.Core()
		return Employee[int]{Name: c.Name, Department: code, Salary: c.Salary, HireDate: c.HireDate}, nil
	})
}

// PayrollPolicy computes take-home pay from a gross salary.
type PayrollPolicy interface {
	Name() string
	NetPay(gross float64) float64
}

// StandardPayroll withholds TaxRate of the gross salary.
type StandardPayroll struct {
	TaxRate float64
}

func (StandardPayroll) Name() string { return "standard" }

func (p StandardPayroll) NetPay(gross float64) float64 {
	return gross * (1 - p.TaxRate)
}

// ExecutivePayroll adds BonusRate of the gross salary.
type ExecutivePayroll struct {
	BonusRate float64
}

func (ExecutivePayroll) Name() string { return "executive" }

func (p ExecutivePayroll) NetPay(gross float64) float64 {
	return gross * (1 + p.BonusRate)
}

// PayrollPolicies builds both policies from configuration.
func PayrollPolicies(cfg config.PayrollConfig) (StandardPayroll, ExecutivePayroll) {
	return StandardPayroll{TaxRate: cfg.TaxRate}, ExecutivePayroll{BonusRate: cfg.BonusRate}
}

// PayrollProcessor checks a record against a payroll policy and returns it
// unchanged in value. Records with a negative salary are rejected.
func PayrollProcessor(policy PayrollPolicy) *pipeline.FuncStage {
	name := fmt.Sprintf("PayrollProcessor[%s]", policy.Name())
	return pipeline.Func(name, func(e Staffed) (Staffed, error) {
		if salary := e.Core().Salary; salary < 0 {
			return nil, errkind.InvalidArgument(name, "salary cannot be negative: %v", salary)
		}
		return e, nil
	})
}

// NetPay applies policy to the salary of e.
func NetPay(e Staffed, policy PayrollPolicy) float64 {
	return policy.NetPay(e.Core().Salary)
}
