package payroll

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gajihub/payroll-backend-go/internal/domain/company"
	"github.com/gajihub/payroll-backend-go/internal/domain/employee"
	"github.com/gajihub/payroll-backend-go/internal/domain/payroll"
	"github.com/gajihub/payroll-backend-go/internal/pkg/xendit"
	"github.com/shopspring/decimal"
)

// Gateway is the disbursement boundary of the orchestrator. Implemented by
// *xendit.Client; tests substitute a fake.
type Gateway interface {
	CreateDisbursement(ctx context.Context, req xendit.DisbursementRequest) xendit.TransferResult
}

type PayrollServiceImpl struct {
	payslipRepo   payroll.PayslipRepository
	componentRepo payroll.ComponentRepository
	employeeRepo  employee.EmployeeRepository
	companyRepo   company.CompanyRepository
	gateway       Gateway
	notifier      payroll.Notifier
	logger        *slog.Logger
	now           func() time.Time
}

func NewPayrollService(
	payslipRepo payroll.PayslipRepository,
	componentRepo payroll.ComponentRepository,
	employeeRepo employee.EmployeeRepository,
	companyRepo company.CompanyRepository,
	gateway Gateway,
	notifier payroll.Notifier,
	logger *slog.Logger,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		payslipRepo:   payslipRepo,
		componentRepo: componentRepo,
		employeeRepo:  employeeRepo,
		companyRepo:   companyRepo,
		gateway:       gateway,
		notifier:      notifier,
		logger:        logger,
		now:           time.Now,
	}
}

// Deferral reasons reported on a DEFERRED run. The payslip stays PENDING and
// the batch retry picks it up later.
const (
	reasonNoAccount      = "company account is not configured"
	reasonNoWallet       = "employee has no primary wallet"
	reasonLowBalance     = "company balance is insufficient"
	reasonZeroNet        = "net pay is zero"
	reasonNotConfirmed   = "disbursement not confirmed"
	reasonTransferFailed = "transfer failed: %s"
)

// RunPayroll executes one single-employee settlement run: calculate under the
// operator's approval loop, persist the payslip PENDING, then attempt the
// transfer and settle atomically. A deferred transfer is not an error; the
// RunResult says what happened.
func (s *PayrollServiceImpl) RunPayroll(ctx context.Context, employeeID string, inputs payroll.InputProvider, decider payroll.Decider) (payroll.RunResult, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return payroll.RunResult{}, err
	}

	period := s.now()
	month, year := int(period.Month()), period.Year()

	exists, err := s.payslipRepo.ExistsForPeriod(ctx, emp.ID, month, year)
	if err != nil {
		return payroll.RunResult{}, err
	}
	if exists {
		return payroll.RunResult{}, payroll.ErrPayslipAlreadyExists
	}

	allowances, deductions, err := s.componentRepo.GetAssigned(ctx, emp.ID)
	if err != nil {
		return payroll.RunResult{}, err
	}

	basis := payroll.CalculationBasis{
		BaseSalary:        emp.BaseSalary,
		PositionAllowance: emp.PositionAllowance,
	}

	// Input loop: recalculate until the operator approves a breakdown. An
	// input error aborts the run before anything is persisted.
	var breakdown payroll.Breakdown
	for {
		in, err := inputs.NextInput()
		if err != nil {
			return payroll.RunResult{}, err
		}

		breakdown = payroll.Calculate(basis, in, allowances, deductions)
		if decider.ConfirmBreakdown(breakdown) {
			break
		}
	}

	slip, err := s.payslipRepo.CreatePending(ctx, payroll.Payslip{
		EmployeeID:  emp.ID,
		PeriodMonth: month,
		PeriodYear:  year,
		PeriodDate:  time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC),
		NetPay:      breakdown.NetPay,
	}, breakdown.Allowances, breakdown.Deductions)
	if err != nil {
		return payroll.RunResult{}, err
	}

	result := payroll.RunResult{
		Payslip:   slip,
		Breakdown: breakdown,
		Outcome:   payroll.OutcomeDeferred,
	}

	s.logger.InfoContext(ctx, "payslip created",
		slog.String("payslip_id", slip.ID),
		slog.String("employee_id", emp.ID),
		slog.String("period", slip.Period()),
		slog.String("net_pay", slip.NetPay.String()),
	)

	// Eligibility gates. Failing any of them defers: the payslip is already
	// persisted, so the run still succeeds.
	account, err := s.companyRepo.GetAccount(ctx)
	if err != nil {
		result.DeferredReason = reasonNoAccount
		return result, nil
	}

	wallet, err := s.employeeRepo.GetPrimaryWallet(ctx, emp.ID)
	if err != nil {
		result.DeferredReason = reasonNoWallet
		return result, nil
	}

	if account.Balance.LessThan(slip.NetPay) {
		result.DeferredReason = reasonLowBalance
		return result, nil
	}

	if !slip.NetPay.IsPositive() {
		result.DeferredReason = reasonZeroNet
		return result, nil
	}

	if !decider.ConfirmDisbursement(slip.NetPay, account.Balance) {
		result.DeferredReason = reasonNotConfirmed
		return result, nil
	}

	transfer := s.gateway.CreateDisbursement(ctx, xendit.DisbursementRequest{
		ReferenceID:       slip.ID,
		BankCode:          wallet.BankCode,
		AccountNumber:     wallet.AccountNumber,
		AccountHolderName: wallet.AccountHolderName,
		Amount:            slip.NetPay,
		Description:       fmt.Sprintf("Gaji %s %s", emp.Name, slip.Period()),
	})
	if !transfer.Success {
		s.logger.WarnContext(ctx, "disbursement rejected, payslip stays pending",
			slog.String("payslip_id", slip.ID),
			slog.Bool("duplicate", transfer.Duplicate),
			slog.String("message", transfer.Message),
		)
		result.DeferredReason = fmt.Sprintf(reasonTransferFailed, transfer.Message)
		return result, nil
	}

	newBalance, err := s.payslipRepo.Settle(ctx, payroll.SettleParams{
		PayslipID:   slip.ID,
		AccountID:   account.ID,
		Amount:      slip.NetPay,
		TransferRef: transfer.TransactionID,
	})
	if err != nil {
		// The transfer may already be on its way while the ledger still says
		// PENDING. Surface it loudly; the duplicate guard on the external id
		// prevents a second payout on retry.
		s.logger.ErrorContext(ctx, "settlement failed after accepted transfer",
			slog.String("payslip_id", slip.ID),
			slog.String("transfer_ref", transfer.TransactionID),
			slog.Any("error", err),
		)
		return result, fmt.Errorf("failed to settle payslip %s after transfer %s: %w", slip.ID, transfer.TransactionID, err)
	}

	result.Outcome = payroll.OutcomeSettled
	result.TransferRef = transfer.TransactionID
	result.NewBalance = newBalance

	s.logger.InfoContext(ctx, "payslip settled",
		slog.String("payslip_id", slip.ID),
		slog.String("transfer_ref", transfer.TransactionID),
		slog.String("new_balance", newBalance.String()),
	)

	s.notify(ctx, emp, slip.Period(), payloadFromBreakdown(emp, breakdown, "PAID (TRANSFER)"))

	return result, nil
}

// notify delivers the payslip document best-effort. Errors are logged and
// swallowed: a settled payslip never un-settles because SMTP was down.
func (s *PayrollServiceImpl) notify(ctx context.Context, emp employee.Employee, period string, payload payroll.NotificationPayload) {
	if emp.Email == nil || *emp.Email == "" {
		return
	}
	if err := s.notifier.SendPayslip(ctx, *emp.Email, period, payload); err != nil {
		s.logger.WarnContext(ctx, "payslip notification failed",
			slog.String("employee_id", emp.ID),
			slog.String("period", period),
			slog.Any("error", err),
		)
	}
}

func payloadFromBreakdown(emp employee.Employee, b payroll.Breakdown, statusLabel string) payroll.NotificationPayload {
	positionName := "-"
	if emp.PositionName != nil {
		positionName = *emp.PositionName
	}

	return payroll.NotificationPayload{
		EmployeeName:       emp.Name,
		PositionName:       positionName,
		BasePay:            b.ProratedBasePay,
		PositionAllowance:  b.PositionAllowance,
		WeekdayOvertimePay: b.WeekdayOvertimePay,
		WeekendOvertimePay: b.WeekendOvertimePay,
		TotalOvertimePay:   b.TotalOvertimePay,
		Allowances:         lineItemMap(b.Allowances),
		Deductions:         lineItemMap(b.Deductions),
		NetPay:             b.NetPay,
		StatusLabel:        statusLabel,
	}
}

func lineItemMap(items []payroll.LineItem) map[string]decimal.Decimal {
	m := make(map[string]decimal.Decimal, len(items))
	for _, it := range items {
		m[it.Name] = it.Amount
	}
	return m
}

// ========== READ OPERATIONS ==========

func (s *PayrollServiceImpl) GetPayslip(ctx context.Context, id string) (payroll.PayslipDetailResponse, error) {
	slip, err := s.payslipRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayslipDetailResponse{}, err
	}

	allowances, deductions, err := s.payslipRepo.GetLineItems(ctx, slip.ID)
	if err != nil {
		return payroll.PayslipDetailResponse{}, err
	}

	return payroll.PayslipDetailResponse{
		PayslipResponse: payroll.ToPayslipResponse(slip),
		Allowances:      payroll.ToLineItemResponses(allowances),
		Deductions:      payroll.ToLineItemResponses(deductions),
	}, nil
}

func (s *PayrollServiceImpl) ListPayslips(ctx context.Context) ([]payroll.PayslipResponse, error) {
	slips, err := s.payslipRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]payroll.PayslipResponse, 0, len(slips))
	for _, p := range slips {
		result = append(result, payroll.ToPayslipResponse(p))
	}
	return result, nil
}
