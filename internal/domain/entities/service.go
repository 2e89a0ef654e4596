package entities

import "github.com/shopspring/decimal"

// Service is a catalog entry describing a type of work the shop offers.
type Service struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Description      string          `json:"description"`
	Price            decimal.Decimal `json:"price"`
	EstimatedMinutes int             `json:"estimated_minutes"`
}
