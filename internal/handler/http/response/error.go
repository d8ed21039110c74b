package response

import (
	"errors"
	"net/http"

	"github.com/gajihub/payroll-backend-go/internal/domain/company"
	"github.com/gajihub/payroll-backend-go/internal/domain/employee"
	"github.com/gajihub/payroll-backend-go/internal/domain/payroll"
	"github.com/gajihub/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrNoPrimaryWallet):
		BadRequest(w, "Employee has no primary wallet", nil)

	// Company domain errors
	case errors.Is(err, company.ErrAccountNotFound):
		NotFound(w, "Company account not found")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayslipAlreadyExists):
		Conflict(w, "A payslip for this employee and period already exists")
	case errors.Is(err, payroll.ErrPayslipNotFound):
		NotFound(w, "Payslip not found")
	case errors.Is(err, payroll.ErrPayslipNotPending):
		Conflict(w, "Payslip is no longer pending")
	case errors.Is(err, payroll.ErrInsufficientBalance):
		UnprocessableEntity(w, "INSUFFICIENT_BALANCE", "Company balance does not cover the required amount")
	case errors.Is(err, payroll.ErrRunAborted):
		Conflict(w, "Payroll run aborted")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
