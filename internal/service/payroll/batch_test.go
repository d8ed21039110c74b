package payroll

import (
	"context"
	"testing"

	"github.com/gajihub/payroll-backend-go/internal/domain/payroll"
	"github.com/gajihub/payroll-backend-go/internal/pkg/xendit"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func pendingItem(id, name string, netPay int64) payroll.PendingPayslip {
	return payroll.PendingPayslip{
		PayslipID:         id,
		PeriodMonth:       8,
		PeriodYear:        2026,
		NetPay:            decimal.NewFromInt(netPay),
		EmployeeID:        "emp-" + id,
		EmployeeName:      name,
		Email:             strptr(name + "@example.com"),
		BaseSalary:        decimal.NewFromInt(netPay),
		IsActive:          true,
		BankCode:          strptr("BCA"),
		AccountNumber:     strptr("1234567890"),
		AccountHolderName: strptr(name),
	}
}

func TestProcessPending_SettlesAllCandidates(t *testing.T) {
	t.Parallel()

	f := newServiceFixture()
	f.payslips.pending = []payroll.PendingPayslip{
		pendingItem("slip-1", "Budi", 5000000),
		pendingItem("slip-2", "Siti", 4000000),
	}

	report, err := f.svc.ProcessPending(context.Background(), payroll.AutoApprove{})

	require.NoError(t, err)
	assert.Equal(t, 2, report.TotalPending)
	assert.Equal(t, 2, report.Candidates)
	assert.True(t, decimal.NewFromInt(9000000).Equal(report.TotalRequired))
	assert.Equal(t, 2, report.Succeeded)
	assert.Equal(t, 0, report.Failed)
	require.Len(t, f.gateway.calls, 2)
	assert.Contains(t, f.gateway.calls[0].Description, "Gaji Susulan Budi")
	require.Len(t, f.payslips.settleCalls, 2)
	assert.Equal(t, 2, f.notifier.calls)
}

func TestProcessPending_InsufficientTotalAdmitsNothing(t *testing.T) {
	t.Parallel()

	f := newServiceFixture()
	f.companies.account.Balance = decimal.NewFromInt(9000000)
	f.payslips.pending = []payroll.PendingPayslip{
		pendingItem("slip-1", "Budi", 6000000),
		pendingItem("slip-2", "Siti", 4000000),
	}

	// Total required 10,000,000 against a 9,000,000 balance: the whole batch
	// is rejected even though either item alone would fit.
	report, err := f.svc.ProcessPending(context.Background(), payroll.AutoApprove{})

	assert.ErrorIs(t, err, payroll.ErrInsufficientBalance)
	assert.True(t, decimal.NewFromInt(10000000).Equal(report.TotalRequired))
	assert.Equal(t, 0, report.Succeeded)
	assert.Empty(t, f.gateway.calls)
	assert.Empty(t, f.payslips.settleCalls)
}

func TestProcessPending_SkipsItemsWithoutWallet(t *testing.T) {
	t.Parallel()

	f := newServiceFixture()
	noWallet := pendingItem("slip-2", "Siti", 4000000)
	noWallet.BankCode = nil
	noWallet.AccountNumber = nil
	noWallet.AccountHolderName = nil
	f.payslips.pending = []payroll.PendingPayslip{
		pendingItem("slip-1", "Budi", 5000000),
		noWallet,
	}

	report, err := f.svc.ProcessPending(context.Background(), payroll.AutoApprove{})

	require.NoError(t, err)
	assert.Equal(t, 2, report.TotalPending)
	assert.Equal(t, 1, report.Candidates)
	// Skipped items do not count toward the required total.
	assert.True(t, decimal.NewFromInt(5000000).Equal(report.TotalRequired))
	require.Len(t, report.Skipped, 1)
	assert.Equal(t, "slip-2", report.Skipped[0].PayslipID)
	assert.Equal(t, 1, report.Succeeded)
	require.Len(t, f.gateway.calls, 1)
}

func TestProcessPending_NoCandidatesReturnsEarly(t *testing.T) {
	t.Parallel()

	f := newServiceFixture()
	noWallet := pendingItem("slip-1", "Budi", 5000000)
	noWallet.BankCode = nil
	f.payslips.pending = []payroll.PendingPayslip{noWallet}

	report, err := f.svc.ProcessPending(context.Background(), payroll.AutoApprove{})

	require.NoError(t, err)
	assert.Equal(t, 1, report.TotalPending)
	assert.Equal(t, 0, report.Candidates)
	assert.Equal(t, 0, f.companies.getAccount, "account should not be read when nothing is transferable")
	assert.Empty(t, f.gateway.calls)
}

func TestProcessPending_DeclinedBatchAborts(t *testing.T) {
	t.Parallel()

	f := newServiceFixture()
	f.payslips.pending = []payroll.PendingPayslip{pendingItem("slip-1", "Budi", 5000000)}

	_, err := f.svc.ProcessPending(context.Background(), denyDisbursement{})

	assert.ErrorIs(t, err, payroll.ErrRunAborted)
	assert.Empty(t, f.gateway.calls)
	assert.Empty(t, f.payslips.settleCalls)
}

func TestProcessPending_ItemsFailIndependently(t *testing.T) {
	t.Parallel()

	f := newServiceFixture()
	f.payslips.pending = []payroll.PendingPayslip{
		pendingItem("slip-1", "Budi", 5000000),
		pendingItem("slip-2", "Siti", 4000000),
	}
	f.gateway.results = []xendit.TransferResult{
		{Success: false, Message: "RECIPIENT_ACCOUNT_NOT_FOUND"},
		{Success: true, TransactionID: "disb-2"},
	}

	report, err := f.svc.ProcessPending(context.Background(), payroll.AutoApprove{})

	require.NoError(t, err)
	assert.Equal(t, 1, report.Succeeded)
	assert.Equal(t, 1, report.Failed)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, "slip-1", report.Failures[0].PayslipID)
	assert.Contains(t, report.Failures[0].Message, "RECIPIENT_ACCOUNT_NOT_FOUND")
	// Only the successful transfer settles.
	require.Len(t, f.payslips.settleCalls, 1)
	assert.Equal(t, "slip-2", f.payslips.settleCalls[0].PayslipID)
}

func TestProcessPending_SettleFailureCountsAsFailure(t *testing.T) {
	t.Parallel()

	f := newServiceFixture()
	f.payslips.pending = []payroll.PendingPayslip{pendingItem("slip-1", "Budi", 5000000)}
	f.payslips.settleErr = payroll.ErrPayslipNotPending

	report, err := f.svc.ProcessPending(context.Background(), payroll.AutoApprove{})

	require.NoError(t, err)
	assert.Equal(t, 0, report.Succeeded)
	assert.Equal(t, 1, report.Failed)
	require.Len(t, report.Failures, 1)
	assert.Contains(t, report.Failures[0].Message, payroll.ErrPayslipNotPending.Error())
	assert.Equal(t, 0, f.notifier.calls, "a failed settlement must not notify")
}

func TestProcessPending_EmptyLedgerReturnsZeroReport(t *testing.T) {
	t.Parallel()

	f := newServiceFixture()

	report, err := f.svc.ProcessPending(context.Background(), payroll.AutoApprove{})

	require.NoError(t, err)
	assert.Equal(t, 0, report.TotalPending)
	assert.Equal(t, 0, report.Candidates)
	assert.True(t, report.TotalRequired.IsZero())
}
