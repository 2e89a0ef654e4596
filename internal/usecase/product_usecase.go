package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"sistemaos/internal/domain/entities"
	"sistemaos/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidProductID    = errors.New("invalid product id")
	ErrInvalidProductInput = errors.New("invalid product input")
)

// ProductInput is the full desired state of a catalog product.
type ProductInput struct {
	Name          string
	Description   string
	Price         decimal.Decimal
	StockQuantity int
	UnitOfMeasure string
	Category      string
}

// IProductUseCase exposes product catalog operations.

type IProductUseCase interface {
	Create(ctx context.Context, in ProductInput) (entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	Update(ctx context.Context, id string, in ProductInput) (entities.Product, error)
	Delete(ctx context.Context, id string) error
	FindAll(ctx context.Context) ([]entities.Product, error)
}

type ProductUseCase struct {
	repo interfaces.IProductRepository
}

var _ IProductUseCase = (*ProductUseCase)(nil)

func NewProductUseCase(repo interfaces.IProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

func (u *ProductUseCase) Create(ctx context.Context, in ProductInput) (entities.Product, error) {
	if strings.TrimSpace(in.Name) == "" || in.Price.IsNegative() || in.StockQuantity < 0 {
		return entities.Product{}, ErrInvalidProductInput
	}

	now := time.Now().UTC()
	p := entities.Product{
		ID:            uuid.NewString(),
		Name:          in.Name,
		Description:   in.Description,
		Price:         in.Price,
		StockQuantity: in.StockQuantity,
		UnitOfMeasure: in.UnitOfMeasure,
		Category:      in.Category,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	return u.repo.Create(ctx, p)
}

func (u *ProductUseCase) GetByID(ctx context.Context, id string) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (u *ProductUseCase) Update(ctx context.Context, id string, in ProductInput) (entities.Product, error) {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if strings.TrimSpace(in.Name) == "" || in.Price.IsNegative() || in.StockQuantity < 0 {
		return entities.Product{}, ErrInvalidProductInput
	}

	p.Name = in.Name
	p.Description = in.Description
	p.Price = in.Price
	p.StockQuantity = in.StockQuantity
	p.UnitOfMeasure = in.UnitOfMeasure
	p.Category = in.Category
	p.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, p)
}

func (u *ProductUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, strings.TrimSpace(id))
}

func (u *ProductUseCase) FindAll(ctx context.Context) ([]entities.Product, error) {
	return u.repo.FindAll(ctx)
}
