package interfaces

import "sistemaos/internal/domain/entities"

// TokenClaims is the identity extracted from a verified bearer token.
type TokenClaims struct {
	UserID string
	Role   entities.UserRole
}

// ITokenIssuer issues and verifies the bearer credential carried by API
// clients. The core only needs the acting user id and role back from it.

type ITokenIssuer interface {
	IssueToken(user entities.User) (string, error)
	ParseToken(token string) (TokenClaims, error)
}
