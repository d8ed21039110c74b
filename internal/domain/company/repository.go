package company

import "context"

// CompanyRepository reads the single company account row.
type CompanyRepository interface {
	GetAccount(ctx context.Context) (Account, error)
}
