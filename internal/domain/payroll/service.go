package payroll

import (
	"context"

	"github.com/shopspring/decimal"
)

// InputProvider supplies the attendance/overtime bundle for a run. It is
// invoked again whenever the operator rejects a breakdown, so an interactive
// caller can re-collect data. Returning an error aborts the run before
// anything is persisted.
type InputProvider interface {
	NextInput() (RunInput, error)
}

// InputProviderFunc adapts a function to InputProvider.
type InputProviderFunc func() (RunInput, error)

func (f InputProviderFunc) NextInput() (RunInput, error) { return f() }

// SingleInput returns a provider that yields in once and aborts the run if it
// is asked again. Non-interactive callers use it together with a decider that
// approves the first breakdown.
func SingleInput(in RunInput) InputProvider {
	served := false
	return InputProviderFunc(func() (RunInput, error) {
		if served {
			return RunInput{}, ErrRunAborted
		}
		served = true
		return in, nil
	})
}

// Decider exposes the operator decision points of a run as injectable
// callbacks, keeping the settlement core free of interactive prompts.
type Decider interface {
	// ConfirmBreakdown approves the calculated breakdown. Returning false
	// restarts the input loop.
	ConfirmBreakdown(b Breakdown) bool
	// ConfirmDisbursement approves sending the transfer once eligibility has
	// passed. Returning false leaves the payslip PENDING.
	ConfirmDisbursement(netPay, balance decimal.Decimal) bool
}

// AutoApprove is a Decider that confirms every decision point; the HTTP
// handlers use it since the request itself is the confirmation.
type AutoApprove struct{}

func (AutoApprove) ConfirmBreakdown(Breakdown) bool { return true }

func (AutoApprove) ConfirmDisbursement(_, _ decimal.Decimal) bool { return true }

// RunOutcome enum
type RunOutcome string

const (
	OutcomeSettled  RunOutcome = "SETTLED"
	OutcomeDeferred RunOutcome = "DEFERRED"
)

// RunResult is the terminal state of a single-employee run. The payslip is
// always persisted by the time a RunResult is returned.
type RunResult struct {
	Payslip   Payslip
	Breakdown Breakdown
	Outcome   RunOutcome
	// DeferredReason explains why no transfer happened. Empty when settled.
	DeferredReason string
	TransferRef    string
	NewBalance     decimal.Decimal
}

// SkippedPayslip - a pending payslip excluded from a batch before admission.
type SkippedPayslip struct {
	PayslipID    string
	EmployeeName string
	Reason       string
}

// FailedTransfer - a batch candidate whose transfer or settlement failed. The
// payslip stays PENDING.
type FailedTransfer struct {
	PayslipID    string
	EmployeeName string
	Message      string
}

// BatchReport aggregates a batch retry run.
type BatchReport struct {
	TotalPending  int
	Candidates    int
	TotalRequired decimal.Decimal
	Succeeded     int
	Failed        int
	Skipped       []SkippedPayslip
	Failures      []FailedTransfer
}

// PayrollService drives the settlement lifecycle.
type PayrollService interface {
	RunPayroll(ctx context.Context, employeeID string, inputs InputProvider, decider Decider) (RunResult, error)
	ProcessPending(ctx context.Context, decider Decider) (BatchReport, error)
	GetPayslip(ctx context.Context, id string) (PayslipDetailResponse, error)
	ListPayslips(ctx context.Context) ([]PayslipResponse, error)
}
