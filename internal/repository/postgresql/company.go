package postgresql

import (
	"context"
	"fmt"

	"github.com/gajihub/payroll-backend-go/internal/domain/company"
	"github.com/gajihub/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type companyRepository struct {
	db *database.DB
}

func NewCompanyRepository(db *database.DB) company.CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) GetAccount(ctx context.Context) (company.Account, error) {
	// Single-tenant: exactly one account row is expected.
	query := `
		SELECT id, bank_name, account_number, balance, updated_at
		FROM company_accounts
		ORDER BY created_at
		LIMIT 1
	`

	var a company.Account
	err := r.db.QueryRow(ctx, query).Scan(&a.ID, &a.BankName, &a.AccountNumber, &a.Balance, &a.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return company.Account{}, company.ErrAccountNotFound
		}
		return company.Account{}, fmt.Errorf("failed to get company account: %w", err)
	}

	return a, nil
}
