package payroll

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransferStatus enum
type TransferStatus string

const (
	StatusPending TransferStatus = "PENDING"
	StatusSuccess TransferStatus = "SUCCESS"
	// StatusFailed exists in the schema but no automatic path transitions into
	// it: a failed transfer keeps the payslip PENDING so the batch retry can
	// pick it up again.
	StatusFailed TransferStatus = "FAILED"
)

// Payslip - one persisted computation of an employee's pay for a period.
// Status only ever moves PENDING -> SUCCESS, through the settlement
// transaction. A SUCCESS payslip is immutable.
type Payslip struct {
	ID             string
	EmployeeID     string
	PeriodMonth    int
	PeriodYear     int
	PeriodDate     time.Time
	NetPay         decimal.Decimal
	TransferStatus TransferStatus
	TransferRef    *string
	TransferredAt  *time.Time
	CreatedAt      time.Time

	// Joined fields
	EmployeeName *string
}

// Period returns the calendar-month identifier, e.g. "2026-08".
func (p Payslip) Period() string {
	return fmt.Sprintf("%04d-%02d", p.PeriodYear, p.PeriodMonth)
}

// PendingPayslip is the named result row of the batch-retry scan: a PENDING
// payslip joined with the employee and primary wallet it would be paid to.
// Wallet columns are nil when the employee has no primary wallet.
type PendingPayslip struct {
	PayslipID         string
	PeriodMonth       int
	PeriodYear        int
	NetPay            decimal.Decimal
	EmployeeID        string
	EmployeeName      string
	Email             *string
	BaseSalary        decimal.Decimal
	IsActive          bool
	PositionName      *string
	PositionAllowance decimal.Decimal
	BankCode          *string
	AccountNumber     *string
	AccountHolderName *string
}

// Period returns the calendar-month identifier of the pending payslip.
func (p PendingPayslip) Period() string {
	return fmt.Sprintf("%04d-%02d", p.PeriodYear, p.PeriodMonth)
}

// HasWallet reports whether the row carries enough bank data to attempt a
// transfer.
func (p PendingPayslip) HasWallet() bool {
	return p.BankCode != nil && *p.BankCode != "" && p.AccountNumber != nil && *p.AccountNumber != ""
}
