package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"sistemaos/internal/domain/entities"
	"sistemaos/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrClientNotFound       = errors.New("client not found")
	ErrClientDocumentExists = errors.New("client document already exists")
	ErrInvalidClientID      = errors.New("invalid client id")
	ErrInvalidClientInput   = errors.New("invalid client input")
)

// ClientCreateInput carries the fields required to register a customer.
type ClientCreateInput struct {
	Document string
	Name     string
	Phone    string
	Address  string
}

// IClientUseCase exposes customer catalog operations.

type IClientUseCase interface {
	Create(ctx context.Context, in ClientCreateInput) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	GetByDocument(ctx context.Context, document string) (entities.Client, error)
	Update(ctx context.Context, id string, in ClientCreateInput) (entities.Client, error)
	Delete(ctx context.Context, id string) error
	FindAll(ctx context.Context) ([]entities.Client, error)
}

type ClientUseCase struct {
	repo interfaces.IClientRepository
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(repo interfaces.IClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

func (u *ClientUseCase) Create(ctx context.Context, in ClientCreateInput) (entities.Client, error) {
	document := strings.TrimSpace(in.Document)
	if document == "" || strings.TrimSpace(in.Name) == "" {
		return entities.Client{}, ErrInvalidClientInput
	}

	// Document is the business key: one client per CPF/CNPJ.
	existing, err := u.repo.GetByDocument(ctx, document)
	if err != nil {
		return entities.Client{}, err
	}
	if existing.ID != "" {
		return entities.Client{}, ErrClientDocumentExists
	}

	now := time.Now().UTC()
	c := entities.Client{
		ID:        uuid.NewString(),
		Document:  document,
		Name:      in.Name,
		Phone:     in.Phone,
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, c)
}

func (u *ClientUseCase) GetByID(ctx context.Context, id string) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (u *ClientUseCase) GetByDocument(ctx context.Context, document string) (entities.Client, error) {
	document = strings.TrimSpace(document)
	if document == "" {
		return entities.Client{}, ErrInvalidClientInput
	}

	c, err := u.repo.GetByDocument(ctx, document)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (u *ClientUseCase) Update(ctx context.Context, id string, in ClientCreateInput) (entities.Client, error) {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}

	document := strings.TrimSpace(in.Document)
	if document == "" || strings.TrimSpace(in.Name) == "" {
		return entities.Client{}, ErrInvalidClientInput
	}

	if document != c.Document {
		existing, err := u.repo.GetByDocument(ctx, document)
		if err != nil {
			return entities.Client{}, err
		}
		if existing.ID != "" {
			return entities.Client{}, ErrClientDocumentExists
		}
	}

	c.Document = document
	c.Name = in.Name
	c.Phone = in.Phone
	c.Address = in.Address
	c.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, c)
}

func (u *ClientUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, strings.TrimSpace(id))
}

func (u *ClientUseCase) FindAll(ctx context.Context) ([]entities.Client, error) {
	return u.repo.FindAll(ctx)
}
