package payroll

import "github.com/shopspring/decimal"

// Calculation constants. The overtime divisor follows the 1/173 hourly-wage
// rule (Kepmen 102/2004).
const (
	StandardWorkingDays   = 20
	OvertimeHourlyDivisor = 173
)

var (
	standardWorkingDays   = decimal.NewFromInt(StandardWorkingDays)
	overtimeHourlyDivisor = decimal.NewFromInt(OvertimeHourlyDivisor)
	weekdayOvertimeRate   = decimal.NewFromFloat(1.5)
	weekendOvertimeRate   = decimal.NewFromFloat(2.0)
)

// CalculationBasis carries the employee compensation inputs the calculator
// needs. It is deliberately detached from the employee entity so the
// calculator stays a pure function.
type CalculationBasis struct {
	BaseSalary        decimal.Decimal
	PositionAllowance decimal.Decimal
}

// RunInput is the per-period attendance/overtime bundle. Values are assumed
// non-negative; the input layer rejects anything else.
type RunInput struct {
	AttendedDays         int
	WeekdayOvertimeHours decimal.Decimal
	WeekendOvertimeHours decimal.Decimal
}

// LineItem freezes a resolved component amount at calculation time so later
// catalog edits never alter a historical payslip.
type LineItem struct {
	TypeID string
	Name   string
	Amount decimal.Decimal
}

// Breakdown is the structured result of one payroll calculation.
type Breakdown struct {
	AttendedDays       int
	ProratedBasePay    decimal.Decimal
	PositionAllowance  decimal.Decimal
	WeekdayOvertimePay decimal.Decimal
	WeekendOvertimePay decimal.Decimal
	TotalOvertimePay   decimal.Decimal
	Allowances         []LineItem
	Deductions         []LineItem
	TotalAllowances    decimal.Decimal
	TotalDeductions    decimal.Decimal
	GrossPay           decimal.Decimal
	NetPay             decimal.Decimal
	// Shortfall is informational only: the part of the deductions that gross
	// pay could not cover. It is never persisted as a liability.
	Shortfall decimal.Decimal
}

// Calculate computes a salary breakdown from the employee's compensation
// basis, the period input and the assigned components. It is total over valid
// numeric input and never fails.
func Calculate(basis CalculationBasis, in RunInput, allowances, deductions []AssignedComponent) Breakdown {
	// Prorated base pay. Attendance above the standard does not raise pay.
	attended := in.AttendedDays
	if attended > StandardWorkingDays {
		attended = StandardWorkingDays
	}
	attendanceFactor := decimal.NewFromInt(int64(attended)).Div(standardWorkingDays)
	proratedBase := basis.BaseSalary.Mul(attendanceFactor)

	// Overtime on the 1/173 rule over base salary plus position allowance.
	overtimeBasis := basis.BaseSalary.Add(basis.PositionAllowance)
	hourlyRate := overtimeBasis.Div(overtimeHourlyDivisor)
	weekdayPay := in.WeekdayOvertimeHours.Mul(weekdayOvertimeRate).Mul(hourlyRate)
	weekendPay := in.WeekendOvertimeHours.Mul(weekendOvertimeRate).Mul(hourlyRate)
	totalOvertime := weekdayPay.Add(weekendPay)

	allowanceItems, totalAllowances := resolveAll(allowances, basis.BaseSalary, in.AttendedDays)
	deductionItems, totalDeductions := resolveAll(deductions, basis.BaseSalary, in.AttendedDays)

	gross := proratedBase.Add(basis.PositionAllowance).Add(totalOvertime).Add(totalAllowances)

	net := gross.Sub(totalDeductions)
	shortfall := decimal.Zero
	if net.IsNegative() {
		shortfall = net.Neg()
		net = decimal.Zero
	}

	return Breakdown{
		AttendedDays:       in.AttendedDays,
		ProratedBasePay:    proratedBase,
		PositionAllowance:  basis.PositionAllowance,
		WeekdayOvertimePay: weekdayPay,
		WeekendOvertimePay: weekendPay,
		TotalOvertimePay:   totalOvertime,
		Allowances:         allowanceItems,
		Deductions:         deductionItems,
		TotalAllowances:    totalAllowances,
		TotalDeductions:    totalDeductions,
		GrossPay:           gross,
		NetPay:             net,
		Shortfall:          shortfall,
	}
}

func resolveAll(components []AssignedComponent, baseSalary decimal.Decimal, attendedDays int) ([]LineItem, decimal.Decimal) {
	items := make([]LineItem, 0, len(components))
	total := decimal.Zero
	for _, c := range components {
		amount := ResolveComponentAmount(c.Kind, c.DefaultNominal, baseSalary, attendedDays)
		items = append(items, LineItem{TypeID: c.TypeID, Name: c.Name, Amount: amount})
		total = total.Add(amount)
	}
	return items, total
}
