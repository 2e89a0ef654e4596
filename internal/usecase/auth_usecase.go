package usecase

import (
	"context"
	"errors"
	"strings"

	"sistemaos/internal/domain/entities"
	"sistemaos/internal/usecase/interfaces"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthResult is the issued credential plus the authenticated profile.
type AuthResult struct {
	Token string
	Type  string
	User  entities.User
}

// IAuthUseCase verifies credentials and issues bearer tokens.

type IAuthUseCase interface {
	Login(ctx context.Context, email, password string) (AuthResult, error)
}

type AuthUseCase struct {
	users  interfaces.IUserRepository
	hasher interfaces.IPasswordHasher
	tokens interfaces.ITokenIssuer
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(users interfaces.IUserRepository, hasher interfaces.IPasswordHasher, tokens interfaces.ITokenIssuer) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: tokens}
}

// Login authenticates by email and password. An unknown email and a wrong
// password produce the same ErrInvalidCredentials, so callers cannot probe
// which accounts exist.
func (u *AuthUseCase) Login(ctx context.Context, email, password string) (AuthResult, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return AuthResult{}, ErrInvalidCredentials
	}

	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return AuthResult{}, err
	}
	if user.ID == "" {
		return AuthResult{}, ErrInvalidCredentials
	}

	if err := u.hasher.Compare(user.PasswordHash, password); err != nil {
		return AuthResult{}, ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(user)
	if err != nil {
		return AuthResult{}, err
	}

	return AuthResult{Token: token, Type: "Bearer", User: user}, nil
}
