package employee

import "context"

// EmployeeService is the read-only master-data surface the operator picks
// employees from.
type EmployeeService interface {
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)
}
