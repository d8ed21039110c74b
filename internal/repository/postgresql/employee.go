package postgresql

import (
	"context"
	"fmt"

	"github.com/gajihub/payroll-backend-go/internal/domain/employee"
	"github.com/gajihub/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	e.id, e.name, e.email, e.base_salary, e.is_active,
	p.name, COALESCE(p.position_allowance, 0)
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.Name, &e.Email, &e.BaseSalary, &e.IsActive,
		&e.PositionName, &e.PositionAllowance,
	)
	return e, err
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN positions p ON e.position_id = p.id
		WHERE e.id = $1
	`

	e, err := scanEmployee(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) ListActive(ctx context.Context) ([]employee.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN positions p ON e.position_id = p.id
		WHERE e.is_active
		ORDER BY e.name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read employees: %w", err)
	}

	return employees, nil
}

func (r *employeeRepository) GetPrimaryWallet(ctx context.Context, employeeID string) (employee.Wallet, error) {
	query := `
		SELECT id, employee_id, bank_code, account_number, account_holder_name, is_primary
		FROM employee_wallets
		WHERE employee_id = $1 AND is_primary
		LIMIT 1
	`

	var w employee.Wallet
	err := r.db.QueryRow(ctx, query, employeeID).Scan(
		&w.ID, &w.EmployeeID, &w.BankCode, &w.AccountNumber, &w.AccountHolderName, &w.IsPrimary,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Wallet{}, employee.ErrNoPrimaryWallet
		}
		return employee.Wallet{}, fmt.Errorf("failed to get primary wallet: %w", err)
	}

	return w, nil
}
