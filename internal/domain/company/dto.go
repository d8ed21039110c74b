package company

import (
	"time"

	"github.com/gajihub/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type AccountResponse struct {
	ID            string          `json:"id"`
	BankName      string          `json:"bank_name"`
	AccountNumber string          `json:"account_number"`
	Balance       decimal.Decimal `json:"balance"`
	// GatewayBalance is the live gateway cash balance, when reachable. It can
	// drift from the local balance; reconciliation is manual.
	GatewayBalance *decimal.Decimal `json:"gateway_balance,omitempty"`
	UpdatedAt      string           `json:"updated_at"`
}

type TopUpRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

func (r *TopUpRequest) Validate() error {
	var errs validator.ValidationErrors

	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TopUpResponse struct {
	InvoiceID  string          `json:"invoice_id"`
	ExternalID string          `json:"external_id"`
	InvoiceURL string          `json:"invoice_url"`
	Status     string          `json:"status"`
	Amount     decimal.Decimal `json:"amount"`
}

func ToAccountResponse(a Account, gatewayBalance *decimal.Decimal) AccountResponse {
	return AccountResponse{
		ID:             a.ID,
		BankName:       a.BankName,
		AccountNumber:  a.AccountNumber,
		Balance:        a.Balance,
		GatewayBalance: gatewayBalance,
		UpdatedAt:      a.UpdatedAt.Format(time.RFC3339),
	}
}
