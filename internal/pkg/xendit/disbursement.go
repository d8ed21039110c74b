package xendit

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"
)

// MinTransferAmount is Xendit's minimum disbursement nominal in IDR.
const MinTransferAmount = 10000

// ErrorCodeDuplicateExternalID is returned by Xendit when a disbursement with
// the same external_id was already accepted.
const ErrorCodeDuplicateExternalID = "DUPLICATE_EXTERNAL_ID"

const maxDescriptionLength = 250

// DisbursementRequest describes one salary transfer. ReferenceID must be the
// payslip id: the external_id sent to Xendit is derived from it
// deterministically, so retrying the same payslip is recognized as a
// duplicate by the gateway instead of causing a second debit.
type DisbursementRequest struct {
	ReferenceID       string
	BankCode          string
	AccountNumber     string
	AccountHolderName string
	Amount            decimal.Decimal
	Description       string
}

// ExternalID returns the idempotency reference sent to the gateway.
func (r DisbursementRequest) ExternalID() string {
	return fmt.Sprintf("PAYROLL-GAJI-%s", r.ReferenceID)
}

// TransferResult classifies the gateway response. A TransferResult is always
// returned; transport and decoding errors surface as Success=false with the
// error in Message, never as a Go error.
type TransferResult struct {
	Success       bool
	TransactionID string
	Message       string
	// Duplicate marks the gateway's duplicate-reference rejection. The caller
	// must not settle on it: a prior attempt may already have paid out, so it
	// is treated as non-settleable rather than risking a double debit.
	Duplicate bool
}

type disbursementPayload struct {
	ExternalID        string `json:"external_id"`
	Amount            int64  `json:"amount"`
	BankCode          string `json:"bank_code"`
	AccountHolderName string `json:"account_holder_name"`
	AccountNumber     string `json:"account_number"`
	Description       string `json:"description"`
}

type disbursementResponse struct {
	ID        string `json:"id"`
	Status    string `json:"status"`
	ErrorCode string `json:"error_code"`
	Message   string `json:"message"`
}

// CreateDisbursement submits one transfer. Amounts below MinTransferAmount
// are rejected locally without contacting the gateway.
func (c *Client) CreateDisbursement(ctx context.Context, req DisbursementRequest) TransferResult {
	amount := req.Amount.IntPart()
	if amount < MinTransferAmount {
		return TransferResult{
			Success: false,
			Message: fmt.Sprintf("amount is below the minimum transfer of Rp%d", MinTransferAmount),
		}
	}

	description := req.Description
	if len(description) > maxDescriptionLength {
		description = description[:maxDescriptionLength]
	}

	payload := disbursementPayload{
		ExternalID:        req.ExternalID(),
		Amount:            amount,
		BankCode:          strings.ToUpper(req.BankCode),
		AccountHolderName: req.AccountHolderName,
		AccountNumber:     req.AccountNumber,
		Description:       description,
	}

	var resp disbursementResponse
	status, err := c.do(ctx, http.MethodPost, "/disbursements", payload, &resp)
	if err != nil {
		return TransferResult{Success: false, Message: err.Error()}
	}

	if status == http.StatusOK || status == http.StatusCreated {
		trxStatus := resp.Status
		if trxStatus == "" {
			trxStatus = "PENDING"
		}
		return TransferResult{
			Success:       true,
			TransactionID: resp.ID,
			Message:       fmt.Sprintf("disbursement accepted (status: %s)", trxStatus),
		}
	}

	if resp.ErrorCode == ErrorCodeDuplicateExternalID {
		return TransferResult{
			Success:   false,
			Duplicate: true,
			Message:   "a disbursement with this reference was already submitted",
		}
	}

	apiErr := &APIError{StatusCode: status, ErrorCode: resp.ErrorCode, Message: resp.Message}
	return TransferResult{Success: false, Message: apiErr.Error()}
}
