package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gajihub/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPayrollService struct {
	runResult payroll.RunResult
	runErr    error
	report    payroll.BatchReport
	reportErr error
	// captured
	disburseDeclined bool
}

func (s *stubPayrollService) RunPayroll(_ context.Context, _ string, inputs payroll.InputProvider, decider payroll.Decider) (payroll.RunResult, error) {
	if s.runErr != nil {
		return payroll.RunResult{}, s.runErr
	}
	if _, err := inputs.NextInput(); err != nil {
		return payroll.RunResult{}, err
	}
	s.disburseDeclined = !decider.ConfirmDisbursement(decimal.Zero, decimal.Zero)
	return s.runResult, nil
}

func (s *stubPayrollService) ProcessPending(_ context.Context, _ payroll.Decider) (payroll.BatchReport, error) {
	return s.report, s.reportErr
}

func (s *stubPayrollService) GetPayslip(_ context.Context, _ string) (payroll.PayslipDetailResponse, error) {
	return payroll.PayslipDetailResponse{}, payroll.ErrPayslipNotFound
}

func (s *stubPayrollService) ListPayslips(_ context.Context) ([]payroll.PayslipResponse, error) {
	return nil, nil
}

func postJSON(t *testing.T, handler http.HandlerFunc, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestRunPayrollHandler_Success(t *testing.T) {
	t.Parallel()

	svc := &stubPayrollService{
		runResult: payroll.RunResult{
			Payslip: payroll.Payslip{ID: "slip-1", PeriodMonth: 8, PeriodYear: 2026},
			Outcome: payroll.OutcomeSettled,
		},
	}
	h := NewPayrollHandler(svc)

	rec := postJSON(t, h.RunPayroll, payroll.RunPayrollRequest{
		EmployeeID:   "emp-1",
		AttendedDays: 20,
		Disburse:     true,
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.False(t, svc.disburseDeclined)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			PayslipID string `json:"payslip_id"`
			Outcome   string `json:"outcome"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "slip-1", body.Data.PayslipID)
	assert.Equal(t, "SETTLED", body.Data.Outcome)
}

func TestRunPayrollHandler_DisburseFalseDeclinesTransfer(t *testing.T) {
	t.Parallel()

	svc := &stubPayrollService{
		runResult: payroll.RunResult{
			Payslip: payroll.Payslip{ID: "slip-1", PeriodMonth: 8, PeriodYear: 2026},
			Outcome: payroll.OutcomeDeferred,
		},
	}
	h := NewPayrollHandler(svc)

	rec := postJSON(t, h.RunPayroll, payroll.RunPayrollRequest{
		EmployeeID:   "emp-1",
		AttendedDays: 20,
		Disburse:     false,
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, svc.disburseDeclined)
}

func TestRunPayrollHandler_ValidationError(t *testing.T) {
	t.Parallel()

	h := NewPayrollHandler(&stubPayrollService{})

	rec := postJSON(t, h.RunPayroll, payroll.RunPayrollRequest{
		EmployeeID:   "",
		AttendedDays: -1,
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body struct {
		Error struct {
			Code    string            `json:"code"`
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	assert.Contains(t, body.Error.Details, "employee_id")
	assert.Contains(t, body.Error.Details, "attended_days")
}

func TestRunPayrollHandler_DuplicatePeriodConflict(t *testing.T) {
	t.Parallel()

	h := NewPayrollHandler(&stubPayrollService{runErr: payroll.ErrPayslipAlreadyExists})

	rec := postJSON(t, h.RunPayroll, payroll.RunPayrollRequest{
		EmployeeID:   "emp-1",
		AttendedDays: 20,
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestProcessPendingHandler_InsufficientBalance(t *testing.T) {
	t.Parallel()

	h := NewPayrollHandler(&stubPayrollService{reportErr: payroll.ErrInsufficientBalance})

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	h.ProcessPending(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "INSUFFICIENT_BALANCE", body.Error.Code)
}

func TestProcessPendingHandler_ReportsCounts(t *testing.T) {
	t.Parallel()

	h := NewPayrollHandler(&stubPayrollService{
		report: payroll.BatchReport{
			TotalPending:  3,
			Candidates:    2,
			TotalRequired: decimal.NewFromInt(9000000),
			Succeeded:     2,
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	h.ProcessPending(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data struct {
			TotalPending int `json:"total_pending"`
			Succeeded    int `json:"succeeded"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 3, body.Data.TotalPending)
	assert.Equal(t, 2, body.Data.Succeeded)
}
