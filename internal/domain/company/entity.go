package company

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is the single paying entity. Its balance is mutated only by the
// settlement transaction, exactly once per payslip.
type Account struct {
	ID            string
	BankName      string
	AccountNumber string
	Balance       decimal.Decimal
	UpdatedAt     time.Time
}
