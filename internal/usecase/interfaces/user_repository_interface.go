package interfaces

import (
	"context"

	"sistemaos/internal/domain/entities"
)

// IUserRepository abstracts DynamoDB persistence for system accounts.
// GetByEmail backs both login and the duplicate-email check on create.

type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	GetByEmail(ctx context.Context, email string) (entities.User, error)
	Update(ctx context.Context, u entities.User) (entities.User, error)
	Delete(ctx context.Context, id string) error
	FindAll(ctx context.Context) ([]entities.User, error)
	Count(ctx context.Context) (int64, error)
}
