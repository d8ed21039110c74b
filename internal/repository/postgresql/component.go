package postgresql

import (
	"context"
	"fmt"

	"github.com/gajihub/payroll-backend-go/internal/domain/payroll"
	"github.com/gajihub/payroll-backend-go/internal/pkg/database"
)

type componentRepository struct {
	db *database.DB
}

func NewComponentRepository(db *database.DB) payroll.ComponentRepository {
	return &componentRepository{db: db}
}

// Allowances and deductions live in separate tables; each variant of the
// closed {allowance, deduction} pair gets its own static query rather than a
// query template with substituted identifiers.

const assignedAllowancesQuery = `
	SELECT t.id, t.name, t.default_nominal, t.kind
	FROM employee_allowances ea
	JOIN allowance_types t ON ea.allowance_type_id = t.id
	WHERE ea.employee_id = $1
	ORDER BY t.name
`

const assignedDeductionsQuery = `
	SELECT t.id, t.name, t.default_nominal, t.kind
	FROM employee_deductions ed
	JOIN deduction_types t ON ed.deduction_type_id = t.id
	WHERE ed.employee_id = $1
	ORDER BY t.name
`

func (r *componentRepository) GetAssigned(ctx context.Context, employeeID string) ([]payroll.AssignedComponent, []payroll.AssignedComponent, error) {
	allowances, err := r.queryComponents(ctx, assignedAllowancesQuery, payroll.ComponentTypeAllowance, employeeID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get assigned allowances: %w", err)
	}

	deductions, err := r.queryComponents(ctx, assignedDeductionsQuery, payroll.ComponentTypeDeduction, employeeID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get assigned deductions: %w", err)
	}

	return allowances, deductions, nil
}

func (r *componentRepository) queryComponents(ctx context.Context, query string, componentType payroll.ComponentType, employeeID string) ([]payroll.AssignedComponent, error) {
	rows, err := r.db.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var components []payroll.AssignedComponent
	for rows.Next() {
		c := payroll.AssignedComponent{Type: componentType}
		if err := rows.Scan(&c.TypeID, &c.Name, &c.DefaultNominal, &c.Kind); err != nil {
			return nil, err
		}
		components = append(components, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return components, nil
}
