package postgresql

import (
	"context"
	"fmt"

	"github.com/gajihub/payroll-backend-go/internal/domain/company"
	"github.com/gajihub/payroll-backend-go/internal/domain/payroll"
	"github.com/gajihub/payroll-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type payslipRepository struct {
	db *database.DB
}

func NewPayslipRepository(db *database.DB) payroll.PayslipRepository {
	return &payslipRepository{db: db}
}

func (r *payslipRepository) ExistsForPeriod(ctx context.Context, employeeID string, month, year int) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM payslips
			WHERE employee_id = $1 AND period_month = $2 AND period_year = $3
		)
	`

	var exists bool
	if err := r.db.QueryRow(ctx, query, employeeID, month, year).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check payslip period: %w", err)
	}

	return exists, nil
}

func (r *payslipRepository) CreatePending(ctx context.Context, p payroll.Payslip, allowances, deductions []payroll.LineItem) (payroll.Payslip, error) {
	p.ID = uuid.NewString()
	p.TransferStatus = payroll.StatusPending

	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO payslips (id, employee_id, period_month, period_year, period_date, net_pay, transfer_status)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING created_at
		`
		err := tx.QueryRow(ctx, query,
			p.ID, p.EmployeeID, p.PeriodMonth, p.PeriodYear, p.PeriodDate, p.NetPay, p.TransferStatus,
		).Scan(&p.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert payslip: %w", err)
		}

		if err := insertLineItems(ctx, tx, "payslip_allowances", "allowance_type_id", p.ID, allowances); err != nil {
			return fmt.Errorf("failed to insert allowance lines: %w", err)
		}
		if err := insertLineItems(ctx, tx, "payslip_deductions", "deduction_type_id", p.ID, deductions); err != nil {
			return fmt.Errorf("failed to insert deduction lines: %w", err)
		}

		return nil
	})
	if err != nil {
		return payroll.Payslip{}, err
	}

	return p, nil
}

func insertLineItems(ctx context.Context, tx pgx.Tx, table, typeColumn, payslipID string, items []payroll.LineItem) error {
	if len(items) == 0 {
		return nil
	}

	rows := make([][]interface{}, 0, len(items))
	for _, it := range items {
		rows = append(rows, []interface{}{uuid.NewString(), payslipID, it.TypeID, it.Amount})
	}

	_, err := tx.CopyFrom(ctx,
		pgx.Identifier{table},
		[]string{"id", "payslip_id", typeColumn, "amount"},
		pgx.CopyFromRows(rows),
	)
	return err
}

const payslipColumns = `
	g.id, g.employee_id, g.period_month, g.period_year, g.period_date,
	g.net_pay, g.transfer_status, g.transfer_ref, g.transferred_at, g.created_at,
	e.name
`

func scanPayslip(row pgx.Row) (payroll.Payslip, error) {
	var p payroll.Payslip
	err := row.Scan(
		&p.ID, &p.EmployeeID, &p.PeriodMonth, &p.PeriodYear, &p.PeriodDate,
		&p.NetPay, &p.TransferStatus, &p.TransferRef, &p.TransferredAt, &p.CreatedAt,
		&p.EmployeeName,
	)
	return p, err
}

func (r *payslipRepository) GetByID(ctx context.Context, id string) (payroll.Payslip, error) {
	query := `
		SELECT ` + payslipColumns + `
		FROM payslips g
		JOIN employees e ON g.employee_id = e.id
		WHERE g.id = $1
	`

	p, err := scanPayslip(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Payslip{}, payroll.ErrPayslipNotFound
		}
		return payroll.Payslip{}, fmt.Errorf("failed to get payslip: %w", err)
	}

	return p, nil
}

func (r *payslipRepository) List(ctx context.Context) ([]payroll.Payslip, error) {
	query := `
		SELECT ` + payslipColumns + `
		FROM payslips g
		JOIN employees e ON g.employee_id = e.id
		ORDER BY g.created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslips: %w", err)
	}
	defer rows.Close()

	var payslips []payroll.Payslip
	for rows.Next() {
		p, err := scanPayslip(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payslip: %w", err)
		}
		payslips = append(payslips, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read payslips: %w", err)
	}

	return payslips, nil
}

func (r *payslipRepository) ListPending(ctx context.Context) ([]payroll.PendingPayslip, error) {
	query := `
		SELECT
			g.id, g.period_month, g.period_year, g.net_pay,
			e.id, e.name, e.email, e.base_salary, e.is_active,
			p.name, COALESCE(p.position_allowance, 0),
			w.bank_code, w.account_number, w.account_holder_name
		FROM payslips g
		JOIN employees e ON g.employee_id = e.id
		LEFT JOIN positions p ON e.position_id = p.id
		LEFT JOIN employee_wallets w ON w.employee_id = e.id AND w.is_primary
		WHERE g.transfer_status = 'PENDING'
		ORDER BY g.created_at
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending payslips: %w", err)
	}
	defer rows.Close()

	var pending []payroll.PendingPayslip
	for rows.Next() {
		var item payroll.PendingPayslip
		err := rows.Scan(
			&item.PayslipID, &item.PeriodMonth, &item.PeriodYear, &item.NetPay,
			&item.EmployeeID, &item.EmployeeName, &item.Email, &item.BaseSalary, &item.IsActive,
			&item.PositionName, &item.PositionAllowance,
			&item.BankCode, &item.AccountNumber, &item.AccountHolderName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pending payslip: %w", err)
		}
		pending = append(pending, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read pending payslips: %w", err)
	}

	return pending, nil
}

const payslipAllowanceLinesQuery = `
	SELECT t.id, t.name, l.amount
	FROM payslip_allowances l
	JOIN allowance_types t ON l.allowance_type_id = t.id
	WHERE l.payslip_id = $1
	ORDER BY t.name
`

const payslipDeductionLinesQuery = `
	SELECT t.id, t.name, l.amount
	FROM payslip_deductions l
	JOIN deduction_types t ON l.deduction_type_id = t.id
	WHERE l.payslip_id = $1
	ORDER BY t.name
`

func (r *payslipRepository) GetLineItems(ctx context.Context, payslipID string) ([]payroll.LineItem, []payroll.LineItem, error) {
	allowances, err := r.queryLineItems(ctx, payslipAllowanceLinesQuery, payslipID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get allowance lines: %w", err)
	}

	deductions, err := r.queryLineItems(ctx, payslipDeductionLinesQuery, payslipID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get deduction lines: %w", err)
	}

	return allowances, deductions, nil
}

func (r *payslipRepository) queryLineItems(ctx context.Context, query, payslipID string) ([]payroll.LineItem, error) {
	rows, err := r.db.Query(ctx, query, payslipID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []payroll.LineItem
	for rows.Next() {
		var it payroll.LineItem
		if err := rows.Scan(&it.TypeID, &it.Name, &it.Amount); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// Settle is the atomic settlement unit: debit the company balance and flip
// the payslip PENDING -> SUCCESS in one transaction. Either both mutations
// apply or neither does.
//
// The balance is re-read inside the transaction immediately before the debit.
// Without row locking this narrows but does not close the window against a
// concurrent writer; the process model assumes a single operator (see
// DESIGN.md).
func (r *payslipRepository) Settle(ctx context.Context, params payroll.SettleParams) (decimal.Decimal, error) {
	return settle(ctx, r.db, params)
}

func settle(ctx context.Context, db TxBeginner, params payroll.SettleParams) (decimal.Decimal, error) {
	var newBalance decimal.Decimal

	err := WithTransaction(ctx, db, func(tx pgx.Tx) error {
		var balance decimal.Decimal
		err := tx.QueryRow(ctx, `SELECT balance FROM company_accounts WHERE id = $1`, params.AccountID).Scan(&balance)
		if err != nil {
			if err == pgx.ErrNoRows {
				return company.ErrAccountNotFound
			}
			return fmt.Errorf("failed to read balance: %w", err)
		}

		if balance.LessThan(params.Amount) {
			return payroll.ErrInsufficientBalance
		}

		_, err = tx.Exec(ctx,
			`UPDATE company_accounts SET balance = balance - $1, updated_at = NOW() WHERE id = $2`,
			params.Amount, params.AccountID,
		)
		if err != nil {
			return fmt.Errorf("failed to debit balance: %w", err)
		}

		// The status predicate makes the debit exactly-once per payslip: a
		// payslip that already settled no longer matches, and the whole
		// transaction rolls back.
		tag, err := tx.Exec(ctx, `
			UPDATE payslips
			SET transfer_status = 'SUCCESS', transfer_ref = $1, transferred_at = NOW()
			WHERE id = $2 AND transfer_status = 'PENDING'
		`, params.TransferRef, params.PayslipID)
		if err != nil {
			return fmt.Errorf("failed to update payslip status: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return payroll.ErrPayslipNotPending
		}

		err = tx.QueryRow(ctx, `SELECT balance FROM company_accounts WHERE id = $1`, params.AccountID).Scan(&newBalance)
		if err != nil {
			return fmt.Errorf("failed to read new balance: %w", err)
		}

		return nil
	})
	if err != nil {
		return decimal.Zero, err
	}

	return newBalance, nil
}
