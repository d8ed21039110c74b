package xendit

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceStatus constants
const (
	InvoiceStatusPending = "PENDING"
	InvoiceStatusPaid    = "PAID"
	InvoiceStatusSettled = "SETTLED"
	InvoiceStatusExpired = "EXPIRED"
)

// Invoices fund the company account: the operator pays the invoice URL and
// tops the balance up out of band. Unlike disbursements, every top-up wants a
// fresh invoice, so the external id is random.
type Invoice struct {
	ID         string `json:"id"`
	ExternalID string `json:"external_id"`
	Status     string `json:"status"`
	InvoiceURL string `json:"invoice_url"`
}

type invoicePayload struct {
	ExternalID      string `json:"external_id"`
	Amount          int64  `json:"amount"`
	Description     string `json:"description"`
	InvoiceDuration int    `json:"invoice_duration"`
	Currency        string `json:"currency"`
}

type invoiceResponse struct {
	ID         string `json:"id"`
	ExternalID string `json:"external_id"`
	Status     string `json:"status"`
	InvoiceURL string `json:"invoice_url"`
	ErrorCode  string `json:"error_code"`
	Message    string `json:"message"`
}

// CreateTopUpInvoice creates a two-day invoice for funding the payroll
// balance.
func (c *Client) CreateTopUpInvoice(ctx context.Context, amount decimal.Decimal) (Invoice, error) {
	payload := invoicePayload{
		ExternalID:      fmt.Sprintf("TOPUP-%s", uuid.NewString()[:8]),
		Amount:          amount.IntPart(),
		Description:     "Payroll balance top up",
		InvoiceDuration: 172800,
		Currency:        "IDR",
	}

	var resp invoiceResponse
	status, err := c.do(ctx, http.MethodPost, "/v2/invoices", payload, &resp)
	if err != nil {
		return Invoice{}, fmt.Errorf("failed to create invoice: %w", err)
	}
	if status != http.StatusOK && status != http.StatusCreated {
		return Invoice{}, &APIError{StatusCode: status, ErrorCode: resp.ErrorCode, Message: resp.Message}
	}

	return Invoice{
		ID:         resp.ID,
		ExternalID: resp.ExternalID,
		Status:     resp.Status,
		InvoiceURL: resp.InvoiceURL,
	}, nil
}

type balanceResponse struct {
	Balance   decimal.Decimal `json:"balance"`
	ErrorCode string          `json:"error_code"`
	Message   string          `json:"message"`
}

// GetBalance reads the real gateway cash balance, for reconciling against the
// local company account.
func (c *Client) GetBalance(ctx context.Context) (decimal.Decimal, error) {
	var resp balanceResponse
	status, err := c.do(ctx, http.MethodGet, "/balance?account_type=CASH", nil, &resp)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to get balance: %w", err)
	}
	if status != http.StatusOK {
		return decimal.Zero, &APIError{StatusCode: status, ErrorCode: resp.ErrorCode, Message: resp.Message}
	}
	return resp.Balance, nil
}
