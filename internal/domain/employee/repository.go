package employee

import "context"

// EmployeeRepository defines the read surface the payroll core needs from
// employee master data.
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	ListActive(ctx context.Context) ([]Employee, error)
	GetPrimaryWallet(ctx context.Context, employeeID string) (Wallet, error)
}
