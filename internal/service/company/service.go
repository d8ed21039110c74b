package company

import (
	"context"
	"log/slog"

	"github.com/gajihub/payroll-backend-go/internal/domain/company"
	"github.com/gajihub/payroll-backend-go/internal/pkg/xendit"
	"github.com/shopspring/decimal"
)

// InvoiceGateway is the funding boundary: top-up invoices and the live gateway
// balance. Implemented by *xendit.Client.
type InvoiceGateway interface {
	CreateTopUpInvoice(ctx context.Context, amount decimal.Decimal) (xendit.Invoice, error)
	GetBalance(ctx context.Context) (decimal.Decimal, error)
}

type CompanyServiceImpl struct {
	companyRepo company.CompanyRepository
	gateway     InvoiceGateway
	logger      *slog.Logger
}

func NewCompanyService(companyRepo company.CompanyRepository, gateway InvoiceGateway, logger *slog.Logger) company.CompanyService {
	return &CompanyServiceImpl{
		companyRepo: companyRepo,
		gateway:     gateway,
		logger:      logger,
	}
}

// GetAccount returns the account with its local balance. The gateway balance
// is attached best-effort; an unreachable gateway never hides the account.
func (s *CompanyServiceImpl) GetAccount(ctx context.Context) (company.AccountResponse, error) {
	account, err := s.companyRepo.GetAccount(ctx)
	if err != nil {
		return company.AccountResponse{}, err
	}

	var gatewayBalance *decimal.Decimal
	if balance, err := s.gateway.GetBalance(ctx); err != nil {
		s.logger.WarnContext(ctx, "failed to read gateway balance", slog.Any("error", err))
	} else {
		gatewayBalance = &balance
	}

	return company.ToAccountResponse(account, gatewayBalance), nil
}

func (s *CompanyServiceImpl) CreateTopUp(ctx context.Context, req company.TopUpRequest) (company.TopUpResponse, error) {
	if err := req.Validate(); err != nil {
		return company.TopUpResponse{}, err
	}

	// The account must exist before it can be funded.
	if _, err := s.companyRepo.GetAccount(ctx); err != nil {
		return company.TopUpResponse{}, err
	}

	invoice, err := s.gateway.CreateTopUpInvoice(ctx, req.Amount)
	if err != nil {
		return company.TopUpResponse{}, err
	}

	s.logger.InfoContext(ctx, "top-up invoice created",
		slog.String("invoice_id", invoice.ID),
		slog.String("amount", req.Amount.String()),
	)

	return company.TopUpResponse{
		InvoiceID:  invoice.ID,
		ExternalID: invoice.ExternalID,
		InvoiceURL: invoice.InvoiceURL,
		Status:     invoice.Status,
		Amount:     req.Amount,
	}, nil
}
