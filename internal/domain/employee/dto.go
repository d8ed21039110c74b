package employee

import "github.com/shopspring/decimal"

type EmployeeResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Email             *string         `json:"email,omitempty"`
	BaseSalary        decimal.Decimal `json:"base_salary"`
	PositionName      string          `json:"position_name,omitempty"`
	PositionAllowance decimal.Decimal `json:"position_allowance"`
	HasWallet         bool            `json:"has_wallet"`
}

func ToEmployeeResponse(e Employee, hasWallet bool) EmployeeResponse {
	positionName := ""
	if e.PositionName != nil {
		positionName = *e.PositionName
	}

	return EmployeeResponse{
		ID:                e.ID,
		Name:              e.Name,
		Email:             e.Email,
		BaseSalary:        e.BaseSalary,
		PositionName:      positionName,
		PositionAllowance: e.PositionAllowance,
		HasWallet:         hasWallet,
	}
}
