package request

import (
	"sistemaos/internal/usecase"

	"github.com/shopspring/decimal"
)

// ServiceRequest is the full service-catalog payload used by both create and
// update.
type ServiceRequest struct {
	Name             string          `json:"name" binding:"required"`
	Description      string          `json:"description"`
	Price            decimal.Decimal `json:"price"`
	EstimatedMinutes int             `json:"estimated_minutes"`
}

func (r ServiceRequest) ToInput() usecase.ServiceInput {
	return usecase.ServiceInput{
		Name:             r.Name,
		Description:      r.Description,
		Price:            r.Price,
		EstimatedMinutes: r.EstimatedMinutes,
	}
}
