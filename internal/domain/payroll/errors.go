package payroll

import "errors"

var (
	ErrPayslipAlreadyExists = errors.New("payslip already exists for this period")
	ErrPayslipNotFound      = errors.New("payslip not found")
	ErrPayslipNotPending    = errors.New("payslip is not pending")
	ErrInsufficientBalance  = errors.New("company balance is insufficient")
	ErrRunAborted           = errors.New("payroll run aborted by operator")
)
