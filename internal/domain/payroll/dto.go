package payroll

import (
	"time"

	"github.com/gajihub/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== RUN DTOs ==========

type RunPayrollRequest struct {
	EmployeeID           string          `json:"employee_id"`
	AttendedDays         int             `json:"attended_days"`
	WeekdayOvertimeHours decimal.Decimal `json:"weekday_overtime_hours"`
	WeekendOvertimeHours decimal.Decimal `json:"weekend_overtime_hours"`
	// Disburse requests the transfer right after persisting; false leaves the
	// payslip PENDING for the batch retry.
	Disburse bool `json:"disburse"`
}

func (r *RunPayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if r.AttendedDays < 0 {
		errs = append(errs, validator.ValidationError{Field: "attended_days", Message: "must be non-negative"})
	}
	if r.WeekdayOvertimeHours.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "weekday_overtime_hours", Message: "must be non-negative"})
	}
	if r.WeekendOvertimeHours.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "weekend_overtime_hours", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *RunPayrollRequest) Input() RunInput {
	return RunInput{
		AttendedDays:         r.AttendedDays,
		WeekdayOvertimeHours: r.WeekdayOvertimeHours,
		WeekendOvertimeHours: r.WeekendOvertimeHours,
	}
}

type LineItemResponse struct {
	TypeID string          `json:"type_id"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

type BreakdownResponse struct {
	AttendedDays       int                `json:"attended_days"`
	ProratedBasePay    decimal.Decimal    `json:"prorated_base_pay"`
	PositionAllowance  decimal.Decimal    `json:"position_allowance"`
	WeekdayOvertimePay decimal.Decimal    `json:"weekday_overtime_pay"`
	WeekendOvertimePay decimal.Decimal    `json:"weekend_overtime_pay"`
	TotalOvertimePay   decimal.Decimal    `json:"total_overtime_pay"`
	Allowances         []LineItemResponse `json:"allowances"`
	Deductions         []LineItemResponse `json:"deductions"`
	TotalAllowances    decimal.Decimal    `json:"total_allowances"`
	TotalDeductions    decimal.Decimal    `json:"total_deductions"`
	GrossPay           decimal.Decimal    `json:"gross_pay"`
	NetPay             decimal.Decimal    `json:"net_pay"`
	Shortfall          decimal.Decimal    `json:"shortfall"`
}

type RunPayrollResponse struct {
	PayslipID      string            `json:"payslip_id"`
	Period         string            `json:"period"`
	Outcome        string            `json:"outcome"`
	DeferredReason string            `json:"deferred_reason,omitempty"`
	TransferRef    string            `json:"transfer_ref,omitempty"`
	NewBalance     *decimal.Decimal  `json:"new_balance,omitempty"`
	Breakdown      BreakdownResponse `json:"breakdown"`
}

// ========== PAYSLIP DTOs ==========

type PayslipResponse struct {
	ID             string          `json:"id"`
	EmployeeID     string          `json:"employee_id"`
	EmployeeName   string          `json:"employee_name,omitempty"`
	Period         string          `json:"period"`
	NetPay         decimal.Decimal `json:"net_pay"`
	TransferStatus string          `json:"transfer_status"`
	TransferRef    *string         `json:"transfer_ref,omitempty"`
	TransferredAt  *string         `json:"transferred_at,omitempty"`
}

type PayslipDetailResponse struct {
	PayslipResponse
	Allowances []LineItemResponse `json:"allowances"`
	Deductions []LineItemResponse `json:"deductions"`
}

// ========== BATCH DTOs ==========

type SkippedPayslipResponse struct {
	PayslipID    string `json:"payslip_id"`
	EmployeeName string `json:"employee_name"`
	Reason       string `json:"reason"`
}

type FailedTransferResponse struct {
	PayslipID    string `json:"payslip_id"`
	EmployeeName string `json:"employee_name"`
	Message      string `json:"message"`
}

type BatchReportResponse struct {
	TotalPending  int                      `json:"total_pending"`
	Candidates    int                      `json:"candidates"`
	TotalRequired decimal.Decimal          `json:"total_required"`
	Succeeded     int                      `json:"succeeded"`
	Failed        int                      `json:"failed"`
	Skipped       []SkippedPayslipResponse `json:"skipped"`
	Failures      []FailedTransferResponse `json:"failures"`
}

// ========== MAPPERS ==========

func ToLineItemResponses(items []LineItem) []LineItemResponse {
	result := make([]LineItemResponse, 0, len(items))
	for _, it := range items {
		result = append(result, LineItemResponse{TypeID: it.TypeID, Name: it.Name, Amount: it.Amount})
	}
	return result
}

func ToBreakdownResponse(b Breakdown) BreakdownResponse {
	return BreakdownResponse{
		AttendedDays:       b.AttendedDays,
		ProratedBasePay:    b.ProratedBasePay,
		PositionAllowance:  b.PositionAllowance,
		WeekdayOvertimePay: b.WeekdayOvertimePay,
		WeekendOvertimePay: b.WeekendOvertimePay,
		TotalOvertimePay:   b.TotalOvertimePay,
		Allowances:         ToLineItemResponses(b.Allowances),
		Deductions:         ToLineItemResponses(b.Deductions),
		TotalAllowances:    b.TotalAllowances,
		TotalDeductions:    b.TotalDeductions,
		GrossPay:           b.GrossPay,
		NetPay:             b.NetPay,
		Shortfall:          b.Shortfall,
	}
}

func ToRunPayrollResponse(r RunResult) RunPayrollResponse {
	resp := RunPayrollResponse{
		PayslipID:      r.Payslip.ID,
		Period:         r.Payslip.Period(),
		Outcome:        string(r.Outcome),
		DeferredReason: r.DeferredReason,
		TransferRef:    r.TransferRef,
		Breakdown:      ToBreakdownResponse(r.Breakdown),
	}
	if r.Outcome == OutcomeSettled {
		balance := r.NewBalance
		resp.NewBalance = &balance
	}
	return resp
}

func ToPayslipResponse(p Payslip) PayslipResponse {
	var transferredAt *string
	if p.TransferredAt != nil {
		str := p.TransferredAt.Format(time.RFC3339)
		transferredAt = &str
	}

	employeeName := ""
	if p.EmployeeName != nil {
		employeeName = *p.EmployeeName
	}

	return PayslipResponse{
		ID:             p.ID,
		EmployeeID:     p.EmployeeID,
		EmployeeName:   employeeName,
		Period:         p.Period(),
		NetPay:         p.NetPay,
		TransferStatus: string(p.TransferStatus),
		TransferRef:    p.TransferRef,
		TransferredAt:  transferredAt,
	}
}

func ToBatchReportResponse(r BatchReport) BatchReportResponse {
	skipped := make([]SkippedPayslipResponse, 0, len(r.Skipped))
	for _, s := range r.Skipped {
		skipped = append(skipped, SkippedPayslipResponse{PayslipID: s.PayslipID, EmployeeName: s.EmployeeName, Reason: s.Reason})
	}
	failures := make([]FailedTransferResponse, 0, len(r.Failures))
	for _, f := range r.Failures {
		failures = append(failures, FailedTransferResponse{PayslipID: f.PayslipID, EmployeeName: f.EmployeeName, Message: f.Message})
	}
	return BatchReportResponse{
		TotalPending:  r.TotalPending,
		Candidates:    r.Candidates,
		TotalRequired: r.TotalRequired,
		Succeeded:     r.Succeeded,
		Failed:        r.Failed,
		Skipped:       skipped,
		Failures:      failures,
	}
}
