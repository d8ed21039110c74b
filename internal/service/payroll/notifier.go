package payroll

import (
	"context"
	"fmt"
	"strings"

	"github.com/gajihub/payroll-backend-go/internal/domain/payroll"
	"github.com/gajihub/payroll-backend-go/internal/pkg/email"
	"github.com/gajihub/payroll-backend-go/internal/pkg/pdf"
)

// SlipNotifier renders the payslip PDF and emails it to the employee. It
// implements payroll.Notifier.
type SlipNotifier struct {
	emails email.EmailService
}

func NewSlipNotifier(emails email.EmailService) *SlipNotifier {
	return &SlipNotifier{emails: emails}
}

func (n *SlipNotifier) SendPayslip(_ context.Context, to, period string, payload payroll.NotificationPayload) error {
	document, err := pdf.RenderSlip(pdf.SlipData{
		EmployeeName:       payload.EmployeeName,
		PositionName:       payload.PositionName,
		Period:             period,
		BasePay:            payload.BasePay,
		PositionAllowance:  payload.PositionAllowance,
		WeekdayOvertimePay: payload.WeekdayOvertimePay,
		WeekendOvertimePay: payload.WeekendOvertimePay,
		Allowances:         payload.Allowances,
		Deductions:         payload.Deductions,
		NetPay:             payload.NetPay,
		StatusLabel:        payload.StatusLabel,
	})
	if err != nil {
		return fmt.Errorf("failed to render payslip: %w", err)
	}

	filename := fmt.Sprintf("SlipGaji_%s_%s.pdf", strings.ReplaceAll(payload.EmployeeName, " ", "_"), period)

	return n.emails.SendPayslip(to,
		fmt.Sprintf("Slip Gaji %s", period),
		email.PayslipEmailData{
			EmployeeName: payload.EmployeeName,
			Period:       period,
			NetPay:       pdf.FormatRupiah(payload.NetPay),
			StatusLabel:  payload.StatusLabel,
		},
		filename, document,
	)
}
