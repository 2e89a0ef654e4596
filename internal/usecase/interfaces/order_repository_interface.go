package interfaces

import (
	"context"
	"time"

	"sistemaos/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for service orders.
//
// Save persists the whole aggregate, usage lines included; replacing the
// aggregate replaces its lines. Lookups return a zero-ID order when the id
// does not exist.
//
// NextOrderNumber draws from a dedicated atomic counter so concurrent
// creations can never be handed the same sequence value.

type IOrderRepository interface {
	Save(ctx context.Context, order entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	FindAll(ctx context.Context, page, size int) (entities.OrderPage, error)
	ListAll(ctx context.Context) ([]entities.Order, error)
	FindByAssignee(ctx context.Context, assigneeID string, page, size int) (entities.OrderPage, error)
	FindByOpenDateRange(ctx context.Context, start, end time.Time) ([]entities.Order, error)
	Count(ctx context.Context) (int64, error)
	NextOrderNumber(ctx context.Context) (int64, error)
}
