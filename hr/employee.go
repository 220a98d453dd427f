// Package hr holds the employee records and the pipeline stages that
// move them between departments and pay grades.
package hr

import "fmt"

// Department is the set of types an employee's department may take: a
// department name, or a numeric department code.
type Department interface {
	~string | ~int
}

// Employee is an immutable employee snapshot. Stages never modify an
// Employee in place; they return a new one, possibly with a different
// department type.
type Employee[D Department] struct {
	Name       string
	Department D
	Salary     float64
	HireDate   string
}

// Core is the part of an employee record shared by every variant.
type Core struct {
	Name     string
	Salary   float64
	HireDate string
}

// Staffed is satisfied by every employee variant.
type Staffed interface {
	Core() Core
}

// Salaried records can be rebuilt with a different salary while keeping
// their variant.
type Salaried interface {
	Staffed
	WithSalary(salary float64) Salaried
}

// NewEmployee returns an employee filed under a named department.
func NewEmployee(name, department string, salary float64, hireDate string) Employee[string] {
	return Employee[string]{Name: name, Department: department, Salary: salary, HireDate: hireDate}
}

// Core returns the variant-independent fields.
func (e Employee[D]) Core() Core {
	return Core{Name: e.Name, Salary: e.Salary, HireDate: e.HireDate}
}

// WithSalary returns a copy of e with the salary replaced.
func (e Employee[D]) WithSalary(salary float64) Salaried {
	e.Salary = salary
	return e
}

func (e Employee[D]) String() string {
	return fmt.Sprintf("Name: %s, Department: %v, Salary: %g, Hire Date: %s",
		e.Name, e.Department, e.Salary, e.HireDate)
}
