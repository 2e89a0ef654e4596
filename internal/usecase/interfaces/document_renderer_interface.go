package interfaces

import (
	"context"

	"sistemaos/internal/domain/entities"
)

// IDocumentRenderer turns a fully resolved order snapshot into a printable
// document. Rendering may fail without affecting order state; callers report
// the failure and move on.

type IDocumentRenderer interface {
	RenderOrder(ctx context.Context, order entities.Order) ([]byte, error)
}
