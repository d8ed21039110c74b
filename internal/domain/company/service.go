package company

import "context"

// CompanyService exposes the paying account to the operator: its balance and
// the top-up flow that funds it.
type CompanyService interface {
	GetAccount(ctx context.Context) (AccountResponse, error)
	CreateTopUp(ctx context.Context, req TopUpRequest) (TopUpResponse, error)
}
