package usecase

import (
	"context"
	"errors"
	"strings"

	"sistemaos/internal/domain/entities"
	"sistemaos/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrServiceNotFound     = errors.New("service not found")
	ErrInvalidServiceID    = errors.New("invalid service id")
	ErrInvalidServiceInput = errors.New("invalid service input")
)

// ServiceInput is the full desired state of a service catalog entry.
type ServiceInput struct {
	Name             string
	Description      string
	Price            decimal.Decimal
	EstimatedMinutes int
}

// IServiceUseCase exposes service catalog operations.

type IServiceUseCase interface {
	Create(ctx context.Context, in ServiceInput) (entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
	Update(ctx context.Context, id string, in ServiceInput) (entities.Service, error)
	Delete(ctx context.Context, id string) error
	FindAll(ctx context.Context) ([]entities.Service, error)
}

type ServiceUseCase struct {
	repo interfaces.IServiceRepository
}

var _ IServiceUseCase = (*ServiceUseCase)(nil)

func NewServiceUseCase(repo interfaces.IServiceRepository) *ServiceUseCase {
	return &ServiceUseCase{repo: repo}
}

func (u *ServiceUseCase) Create(ctx context.Context, in ServiceInput) (entities.Service, error) {
	if strings.TrimSpace(in.Name) == "" || in.Price.IsNegative() {
		return entities.Service{}, ErrInvalidServiceInput
	}

	s := entities.Service{
		ID:               uuid.NewString(),
		Name:             in.Name,
		Description:      in.Description,
		Price:            in.Price,
		EstimatedMinutes: in.EstimatedMinutes,
	}
	return u.repo.Create(ctx, s)
}

func (u *ServiceUseCase) GetByID(ctx context.Context, id string) (entities.Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Service{}, ErrInvalidServiceID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}
	if s.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	return s, nil
}

func (u *ServiceUseCase) Update(ctx context.Context, id string, in ServiceInput) (entities.Service, error) {
	s, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}
	if strings.TrimSpace(in.Name) == "" || in.Price.IsNegative() {
		return entities.Service{}, ErrInvalidServiceInput
	}

	s.Name = in.Name
	s.Description = in.Description
	s.Price = in.Price
	s.EstimatedMinutes = in.EstimatedMinutes
	return u.repo.Update(ctx, s)
}

func (u *ServiceUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, strings.TrimSpace(id))
}

func (u *ServiceUseCase) FindAll(ctx context.Context) ([]entities.Service, error) {
	return u.repo.FindAll(ctx)
}
