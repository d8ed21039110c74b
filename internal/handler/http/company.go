package http

import (
	"encoding/json"
	"net/http"

	"github.com/gajihub/payroll-backend-go/internal/domain/company"
	"github.com/gajihub/payroll-backend-go/internal/handler/http/response"
)

type CompanyHandler interface {
	GetAccount(w http.ResponseWriter, r *http.Request)
	CreateTopUp(w http.ResponseWriter, r *http.Request)
}

type companyHandlerImpl struct {
	companyService company.CompanyService
}

func NewCompanyHandler(companyService company.CompanyService) CompanyHandler {
	return &companyHandlerImpl{companyService: companyService}
}

func (h *companyHandlerImpl) GetAccount(w http.ResponseWriter, r *http.Request) {
	result, err := h.companyService.GetAccount(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *companyHandlerImpl) CreateTopUp(w http.ResponseWriter, r *http.Request) {
	var req company.TopUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.companyService.CreateTopUp(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Top-up invoice created", result)
}
