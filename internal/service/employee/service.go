package employee

import (
	"context"
	"errors"

	"github.com/gajihub/payroll-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		hasWallet := true
		if _, err := s.employeeRepo.GetPrimaryWallet(ctx, emp.ID); err != nil {
			if !errors.Is(err, employee.ErrNoPrimaryWallet) {
				return nil, err
			}
			hasWallet = false
		}
		result = append(result, employee.ToEmployeeResponse(emp, hasWallet))
	}

	return result, nil
}
