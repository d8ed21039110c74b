package payroll

import "github.com/shopspring/decimal"

// ComponentType enum
type ComponentType string

const (
	ComponentTypeAllowance ComponentType = "allowance"
	ComponentTypeDeduction ComponentType = "deduction"
)

// ComponentKind determines how a component's default nominal is turned into a
// concrete amount for one payroll run.
type ComponentKind string

const (
	KindFixed      ComponentKind = "fixed"
	KindPercentage ComponentKind = "percentage"
	// KindPerAttendanceDay is valid for allowances only.
	KindPerAttendanceDay ComponentKind = "per_attendance_day"
)

// AssignedComponent - a catalog entry assigned to an employee
type AssignedComponent struct {
	TypeID         string
	Name           string
	Type           ComponentType
	Kind           ComponentKind
	DefaultNominal decimal.Decimal
}

var oneHundred = decimal.NewFromInt(100)

// ResolveComponentAmount turns a component definition into a concrete amount
// for the given calculation basis.
//
//   - fixed: the default nominal, unchanged
//   - percentage: default nominal percent of the base salary
//   - per_attendance_day: default nominal times attended days
//
// An unknown kind resolves to zero rather than failing; a bad catalog row must
// not abort a whole payroll run.
func ResolveComponentAmount(kind ComponentKind, defaultNominal, baseSalary decimal.Decimal, attendedDays int) decimal.Decimal {
	switch kind {
	case KindFixed:
		return defaultNominal
	case KindPercentage:
		return defaultNominal.Div(oneHundred).Mul(baseSalary)
	case KindPerAttendanceDay:
		return defaultNominal.Mul(decimal.NewFromInt(int64(attendedDays)))
	}
	return decimal.Zero
}
