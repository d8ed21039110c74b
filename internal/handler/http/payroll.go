package http

import (
	"encoding/json"
	"net/http"

	"github.com/gajihub/payroll-backend-go/internal/domain/payroll"
	"github.com/gajihub/payroll-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type PayrollHandler interface {
	RunPayroll(w http.ResponseWriter, r *http.Request)
	ProcessPending(w http.ResponseWriter, r *http.Request)
	GetPayslip(w http.ResponseWriter, r *http.Request)
	ListPayslips(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// skipDisbursement approves the breakdown but never the transfer, leaving the
// payslip PENDING for the batch retry.
type skipDisbursement struct{}

func (skipDisbursement) ConfirmBreakdown(payroll.Breakdown) bool { return true }

func (skipDisbursement) ConfirmDisbursement(_, _ decimal.Decimal) bool { return false }

func (h *payrollHandlerImpl) RunPayroll(w http.ResponseWriter, r *http.Request) {
	var req payroll.RunPayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	// The request body is the operator's confirmation: the breakdown is
	// auto-approved and the disburse flag decides the transfer.
	var decider payroll.Decider = payroll.AutoApprove{}
	if !req.Disburse {
		decider = skipDisbursement{}
	}

	result, err := h.payrollService.RunPayroll(r.Context(), req.EmployeeID, payroll.SingleInput(req.Input()), decider)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll run completed", payroll.ToRunPayrollResponse(result))
}

func (h *payrollHandlerImpl) ProcessPending(w http.ResponseWriter, r *http.Request) {
	report, err := h.payrollService.ProcessPending(r.Context(), payroll.AutoApprove{})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Pending payslips processed", payroll.ToBatchReportResponse(report))
}

func (h *payrollHandlerImpl) GetPayslip(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.payrollService.GetPayslip(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) ListPayslips(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.ListPayslips(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
