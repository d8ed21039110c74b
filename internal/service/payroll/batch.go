package payroll

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gajihub/payroll-backend-go/internal/domain/employee"
	"github.com/gajihub/payroll-backend-go/internal/domain/payroll"
	"github.com/gajihub/payroll-backend-go/internal/pkg/xendit"
	"github.com/shopspring/decimal"
)

// ProcessPending retries every PENDING payslip in one batch. Admission is
// all-or-nothing: the batch runs only when the company balance covers the sum
// of all transferable candidates. Once admitted, items are processed
// sequentially and fail independently; a failed item stays PENDING and does
// not stop the rest.
func (s *PayrollServiceImpl) ProcessPending(ctx context.Context, decider payroll.Decider) (payroll.BatchReport, error) {
	pending, err := s.payslipRepo.ListPending(ctx)
	if err != nil {
		return payroll.BatchReport{}, err
	}

	report := payroll.BatchReport{
		TotalPending:  len(pending),
		TotalRequired: decimal.Zero,
	}

	var candidates []payroll.PendingPayslip
	for _, item := range pending {
		if !item.HasWallet() {
			report.Skipped = append(report.Skipped, payroll.SkippedPayslip{
				PayslipID:    item.PayslipID,
				EmployeeName: item.EmployeeName,
				Reason:       "no primary wallet",
			})
			continue
		}
		candidates = append(candidates, item)
		report.TotalRequired = report.TotalRequired.Add(item.NetPay)
	}
	report.Candidates = len(candidates)

	if len(candidates) == 0 {
		return report, nil
	}

	account, err := s.companyRepo.GetAccount(ctx)
	if err != nil {
		return report, err
	}

	if account.Balance.LessThan(report.TotalRequired) {
		s.logger.WarnContext(ctx, "batch rejected, balance below total required",
			slog.String("balance", account.Balance.String()),
			slog.String("total_required", report.TotalRequired.String()),
			slog.Int("candidates", len(candidates)),
		)
		return report, payroll.ErrInsufficientBalance
	}

	if !decider.ConfirmDisbursement(report.TotalRequired, account.Balance) {
		return report, payroll.ErrRunAborted
	}

	for _, item := range candidates {
		if err := s.processPendingItem(ctx, account.ID, item); err != nil {
			report.Failed++
			report.Failures = append(report.Failures, payroll.FailedTransfer{
				PayslipID:    item.PayslipID,
				EmployeeName: item.EmployeeName,
				Message:      err.Error(),
			})
			continue
		}
		report.Succeeded++
	}

	s.logger.InfoContext(ctx, "batch retry finished",
		slog.Int("total_pending", report.TotalPending),
		slog.Int("succeeded", report.Succeeded),
		slog.Int("failed", report.Failed),
		slog.Int("skipped", len(report.Skipped)),
	)

	return report, nil
}

func (s *PayrollServiceImpl) processPendingItem(ctx context.Context, accountID string, item payroll.PendingPayslip) error {
	transfer := s.gateway.CreateDisbursement(ctx, xendit.DisbursementRequest{
		ReferenceID:       item.PayslipID,
		BankCode:          *item.BankCode,
		AccountNumber:     *item.AccountNumber,
		AccountHolderName: derefOr(item.AccountHolderName, item.EmployeeName),
		Amount:            item.NetPay,
		Description:       fmt.Sprintf("Gaji Susulan %s %s", item.EmployeeName, item.Period()),
	})
	if !transfer.Success {
		s.logger.WarnContext(ctx, "batch item transfer rejected",
			slog.String("payslip_id", item.PayslipID),
			slog.Bool("duplicate", transfer.Duplicate),
			slog.String("message", transfer.Message),
		)
		return fmt.Errorf("transfer failed: %s", transfer.Message)
	}

	_, err := s.payslipRepo.Settle(ctx, payroll.SettleParams{
		PayslipID:   item.PayslipID,
		AccountID:   accountID,
		Amount:      item.NetPay,
		TransferRef: transfer.TransactionID,
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "batch item settlement failed after accepted transfer",
			slog.String("payslip_id", item.PayslipID),
			slog.String("transfer_ref", transfer.TransactionID),
			slog.Any("error", err),
		)
		return fmt.Errorf("settlement failed after transfer %s: %w", transfer.TransactionID, err)
	}

	s.notifyPendingItem(ctx, item)

	return nil
}

// notifyPendingItem reconstructs a payslip document for a batch-settled item
// from the frozen line items. The original attendance inputs are not stored,
// so the document shows the full base salary and no overtime split.
func (s *PayrollServiceImpl) notifyPendingItem(ctx context.Context, item payroll.PendingPayslip) {
	if item.Email == nil || *item.Email == "" {
		return
	}

	allowances, deductions, err := s.payslipRepo.GetLineItems(ctx, item.PayslipID)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to load line items for notification",
			slog.String("payslip_id", item.PayslipID),
			slog.Any("error", err),
		)
		return
	}

	emp := employee.Employee{
		ID:           item.EmployeeID,
		Name:         item.EmployeeName,
		Email:        item.Email,
		PositionName: item.PositionName,
	}
	payload := payroll.NotificationPayload{
		EmployeeName:      item.EmployeeName,
		PositionName:      derefOr(item.PositionName, "-"),
		BasePay:           item.BaseSalary,
		PositionAllowance: item.PositionAllowance,
		Allowances:        lineItemMap(allowances),
		Deductions:        lineItemMap(deductions),
		NetPay:            item.NetPay,
		StatusLabel:       "PAID (RETRY)",
	}

	s.notify(ctx, emp, item.Period(), payload)
}

func derefOr(s *string, fallback string) string {
	if s != nil && *s != "" {
		return *s
	}
	return fallback
}
