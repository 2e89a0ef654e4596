package usecase

import (
	"context"
	"errors"
	"strings"

	"sistemaos/internal/domain/entities"
	"sistemaos/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrUserEmailExists = errors.New("user email already exists")
	ErrInvalidUserID   = errors.New("invalid user id")
	ErrInvalidUserData = errors.New("invalid user data")
)

// UserCreateInput registers a new account. Password arrives in clear and is
// hashed before it ever reaches the repository.
type UserCreateInput struct {
	Name     string
	Email    string
	Password string
	Role     entities.UserRole
	Phone    string
	Avatar   string
}

// UserUpdateInput rewrites the profile fields. Role and password are not
// updatable through this path.
type UserUpdateInput struct {
	Name   string
	Email  string
	Phone  string
	Avatar string
}

// IUserUseCase exposes account management operations.

type IUserUseCase interface {
	Create(ctx context.Context, in UserCreateInput) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	Update(ctx context.Context, id string, in UserUpdateInput) (entities.User, error)
	Delete(ctx context.Context, id string) error
	FindAll(ctx context.Context) ([]entities.User, error)
}

type UserUseCase struct {
	repo   interfaces.IUserRepository
	hasher interfaces.IPasswordHasher
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(repo interfaces.IUserRepository, hasher interfaces.IPasswordHasher) *UserUseCase {
	return &UserUseCase{repo: repo, hasher: hasher}
}

func (u *UserUseCase) Create(ctx context.Context, in UserCreateInput) (entities.User, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" || strings.TrimSpace(in.Name) == "" || in.Password == "" || !in.Role.Valid() {
		return entities.User{}, ErrInvalidUserData
	}

	existing, err := u.repo.GetByEmail(ctx, email)
	if err != nil {
		return entities.User{}, err
	}
	if existing.ID != "" {
		return entities.User{}, ErrUserEmailExists
	}

	hash, err := u.hasher.Hash(in.Password)
	if err != nil {
		return entities.User{}, err
	}

	user := entities.User{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Email:        email,
		PasswordHash: hash,
		Role:         in.Role,
		Phone:        in.Phone,
		Avatar:       in.Avatar,
	}
	return u.repo.Create(ctx, user)
}

func (u *UserUseCase) GetByID(ctx context.Context, id string) (entities.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.User{}, ErrInvalidUserID
	}

	user, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}

func (u *UserUseCase) Update(ctx context.Context, id string, in UserUpdateInput) (entities.User, error) {
	user, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}

	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" || strings.TrimSpace(in.Name) == "" {
		return entities.User{}, ErrInvalidUserData
	}
	if email != user.Email {
		existing, err := u.repo.GetByEmail(ctx, email)
		if err != nil {
			return entities.User{}, err
		}
		if existing.ID != "" {
			return entities.User{}, ErrUserEmailExists
		}
	}

	user.Name = in.Name
	user.Email = email
	user.Phone = in.Phone
	user.Avatar = in.Avatar
	return u.repo.Update(ctx, user)
}

func (u *UserUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, strings.TrimSpace(id))
}

func (u *UserUseCase) FindAll(ctx context.Context) ([]entities.User, error) {
	return u.repo.FindAll(ctx)
}
