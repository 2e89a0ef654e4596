package interfaces

import (
	"context"

	"sistemaos/internal/domain/entities"
)

// IProductRepository abstracts DynamoDB persistence for the product catalog.
// Lookups return a zero-ID product when the id does not exist.

type IProductRepository interface {
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	Update(ctx context.Context, p entities.Product) (entities.Product, error)
	Delete(ctx context.Context, id string) error
	FindAll(ctx context.Context) ([]entities.Product, error)
}
