package request

import (
	"sistemaos/internal/usecase"

	"github.com/shopspring/decimal"
)

// ProductRequest is the full product payload used by both create and update.
// Price is parsed exactly from the JSON literal, never through a float.
type ProductRequest struct {
	Name          string          `json:"name" binding:"required"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity"`
	UnitOfMeasure string          `json:"unit_of_measure"`
	Category      string          `json:"category"`
}

func (r ProductRequest) ToInput() usecase.ProductInput {
	return usecase.ProductInput{
		Name:          r.Name,
		Description:   r.Description,
		Price:         r.Price,
		StockQuantity: r.StockQuantity,
		UnitOfMeasure: r.UnitOfMeasure,
		Category:      r.Category,
	}
}
