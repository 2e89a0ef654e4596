package interfaces

import (
	"context"

	"sistemaos/internal/domain/entities"
)

// IClientRepository abstracts DynamoDB persistence for customer records.
//
// GetByDocument supports the duplicate-document check on create/update and
// returns a zero-ID client when no record carries the document.

type IClientRepository interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	GetByDocument(ctx context.Context, document string) (entities.Client, error)
	Update(ctx context.Context, c entities.Client) (entities.Client, error)
	Delete(ctx context.Context, id string) error
	FindAll(ctx context.Context) ([]entities.Client, error)
}
