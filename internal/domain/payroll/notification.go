package payroll

import (
	"context"

	"github.com/shopspring/decimal"
)

// NotificationPayload carries everything the payslip document needs. The core
// only assembles it; rendering and delivery are the notifier's problem.
type NotificationPayload struct {
	EmployeeName       string
	PositionName       string
	BasePay            decimal.Decimal
	PositionAllowance  decimal.Decimal
	WeekdayOvertimePay decimal.Decimal
	WeekendOvertimePay decimal.Decimal
	TotalOvertimePay   decimal.Decimal
	Allowances         map[string]decimal.Decimal
	Deductions         map[string]decimal.Decimal
	NetPay             decimal.Decimal
	StatusLabel        string
}

// Notifier delivers the payslip document after settlement. Invocations are
// strictly best-effort: a notifier error never rolls back a settlement.
type Notifier interface {
	SendPayslip(ctx context.Context, email, period string, payload NotificationPayload) error
}
