package payroll

import (
	"context"

	"github.com/shopspring/decimal"
)

// ComponentRepository reads the allowance/deduction catalog assignments of an
// employee. One interface dispatches over the closed {allowance, deduction}
// variant; there is no dynamic table selection.
type ComponentRepository interface {
	GetAssigned(ctx context.Context, employeeID string) (allowances, deductions []AssignedComponent, err error)
}

// SettleParams identifies the atomic settlement unit: debit the company
// balance by Amount and mark the payslip SUCCESS with TransferRef.
type SettleParams struct {
	PayslipID   string
	AccountID   string
	Amount      decimal.Decimal
	TransferRef string
}

// PayslipRepository is the ledger store for payslips and their frozen line
// items.
type PayslipRepository interface {
	// ExistsForPeriod reports whether the employee already has a payslip for
	// the given calendar month.
	ExistsForPeriod(ctx context.Context, employeeID string, month, year int) (bool, error)

	// CreatePending inserts the payslip as PENDING together with its line
	// items in one transaction and returns the stored payslip.
	CreatePending(ctx context.Context, p Payslip, allowances, deductions []LineItem) (Payslip, error)

	GetByID(ctx context.Context, id string) (Payslip, error)
	List(ctx context.Context) ([]Payslip, error)
	ListPending(ctx context.Context) ([]PendingPayslip, error)
	GetLineItems(ctx context.Context, payslipID string) (allowances, deductions []LineItem, err error)

	// Settle performs the all-or-nothing settlement transaction: the company
	// balance is re-read inside the transaction, decremented by exactly
	// params.Amount, and the payslip flips PENDING -> SUCCESS with the
	// transfer reference and a settlement timestamp. On any error nothing is
	// applied and the payslip stays PENDING. Returns the new balance.
	Settle(ctx context.Context, params SettleParams) (decimal.Decimal, error)
}
