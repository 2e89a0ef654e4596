package usecase

import (
	"context"
	"errors"

	"sistemaos/internal/domain/entities"
	"sistemaos/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidQuantity = errors.New("invalid usage quantity")
)

// UsageInput is one requested consumption entry: which product and how many.
type UsageInput struct {
	ProductID string
	Quantity  int
}

// IBillingEngine prices a list of usage inputs against the current catalog.

type IBillingEngine interface {
	ComputeUsage(ctx context.Context, inputs []UsageInput) ([]entities.UsageLine, decimal.Decimal, error)
}

// BillingEngine computes usage-line and order totals. It is a pure function
// over the current catalog state plus its input: unit prices are read through
// from the product repository on every call and copied into the resulting
// lines, and product stock is never touched.
type BillingEngine struct {
	products interfaces.IProductRepository
}

var _ IBillingEngine = (*BillingEngine)(nil)

func NewBillingEngine(products interfaces.IProductRepository) *BillingEngine {
	return &BillingEngine{products: products}
}

// ComputeUsage resolves every input against the catalog and returns the
// priced lines plus their exact decimal sum. An empty input yields no lines
// and a zero total. Unknown products fail with ErrProductNotFound and
// non-positive quantities with ErrInvalidQuantity; on any failure no lines
// are returned.
func (b *BillingEngine) ComputeUsage(ctx context.Context, inputs []UsageInput) ([]entities.UsageLine, decimal.Decimal, error) {
	total := decimal.Zero
	if len(inputs) == 0 {
		return nil, total, nil
	}

	lines := make([]entities.UsageLine, 0, len(inputs))
	for _, in := range inputs {
		if in.Quantity <= 0 {
			return nil, decimal.Zero, ErrInvalidQuantity
		}

		product, err := b.products.GetByID(ctx, in.ProductID)
		if err != nil {
			return nil, decimal.Zero, err
		}
		if product.ID == "" {
			return nil, decimal.Zero, ErrProductNotFound
		}

		lineTotal := product.Price.Mul(decimal.NewFromInt(int64(in.Quantity)))
		lines = append(lines, entities.UsageLine{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    in.Quantity,
			UnitPrice:   product.Price,
			LineTotal:   lineTotal,
		})
		total = total.Add(lineTotal)
	}

	return lines, total, nil
}
