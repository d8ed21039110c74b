package employee

import (
	"github.com/shopspring/decimal"
)

// Employee is the master-data record the payroll core reads immutably per run.
// CRUD on employees lives outside this service.
type Employee struct {
	ID         string
	Name       string
	Email      *string
	BaseSalary decimal.Decimal
	IsActive   bool

	// Joined from positions
	PositionName      *string
	PositionAllowance decimal.Decimal
}

// Wallet is an employee's disbursement destination. At most one primary
// wallet per employee is used for transfers.
type Wallet struct {
	ID                string
	EmployeeID        string
	BankCode          string
	AccountNumber     string
	AccountHolderName string
	IsPrimary         bool
}
