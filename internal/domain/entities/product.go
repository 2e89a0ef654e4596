package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a part or consumable from the catalog.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Price is the current catalog price; orders copy it into their usage lines
// at billing time. Stock is tracked for the low-stock dashboard count but is
// not decremented by order creation.
type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity"`
	UnitOfMeasure string          `json:"unit_of_measure"`
	Category      string          `json:"category"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
