package email

import (
	"bytes"
	"embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/gajihub/payroll-backend-go/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

const maxRetries = 3

// EmailService defines the interface for sending emails
type EmailService interface {
	SendPayslip(to, subject string, data PayslipEmailData, attachmentName string, attachment []byte) error
}

type emailServiceImpl struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

// NewEmailService creates a new email service instance
func NewEmailService(cfg config.SMTPConfig) (EmailService, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &emailServiceImpl{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

// PayslipEmailData feeds the payslip email body template.
type PayslipEmailData struct {
	EmployeeName string
	Period       string
	NetPay       string
	StatusLabel  string
}

// SendPayslip sends the payslip email with the PDF document attached.
func (s *emailServiceImpl) SendPayslip(to, subject string, data PayslipEmailData, attachmentName string, attachment []byte) error {
	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "payslip.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendWithAttachment(to, subject, body.String(), attachmentName, attachment)
}

func (s *emailServiceImpl) sendWithAttachment(to, subject, htmlBody, attachmentName string, attachment []byte) error {
	// Skip sending if SMTP is not configured
	if s.cfg.Host == "" {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	from := s.cfg.From
	boundary := "payslip-boundary-7f3a9c"

	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: %s <%s>\r\n", s.cfg.FromName, from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&msg, "Content-Type: multipart/mixed; boundary=%q\r\n", boundary)
	msg.WriteString("\r\n")

	fmt.Fprintf(&msg, "--%s\r\n", boundary)
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)
	msg.WriteString("\r\n")

	if len(attachment) > 0 {
		fmt.Fprintf(&msg, "--%s\r\n", boundary)
		msg.WriteString("Content-Type: application/pdf\r\n")
		msg.WriteString("Content-Transfer-Encoding: base64\r\n")
		fmt.Fprintf(&msg, "Content-Disposition: attachment; filename=%q\r\n", attachmentName)
		msg.WriteString("\r\n")

		encoded := base64.StdEncoding.EncodeToString(attachment)
		for len(encoded) > 76 {
			msg.WriteString(encoded[:76])
			msg.WriteString("\r\n")
			encoded = encoded[76:]
		}
		msg.WriteString(encoded)
		msg.WriteString("\r\n")
	}

	fmt.Fprintf(&msg, "--%s--\r\n", boundary)

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := smtp.SendMail(addr, auth, from, []string{to}, msg.Bytes())
		if err == nil {
			slog.Info("Email sent successfully", "to", to, "subject", subject, "attempt", attempt)
			return nil
		}

		lastErr = err
		slog.Error("Failed to send email",
			"to", to,
			"subject", subject,
			"attempt", attempt,
			"max_retries", maxRetries,
			"error", err,
		)

		// Wait before retrying (exponential backoff: 1s, 2s, 4s)
		if attempt < maxRetries {
			time.Sleep(time.Duration(1<<(attempt-1)) * time.Second)
		}
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
