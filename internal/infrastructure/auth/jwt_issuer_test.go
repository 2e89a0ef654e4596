package auth

import (
	"errors"
	"testing"
	"time"

	"sistemaos/internal/domain/entities"
)

func TestJWTIssuer_RoundTrip(t *testing.T) {
	issuer := NewJWTIssuer("test-secret", time.Hour)

	token, err := issuer.IssueToken(entities.User{ID: "u-1", Role: entities.UserRoleAdmin})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a signed token")
	}

	claims, err := issuer.ParseToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.UserID != "u-1" || claims.Role != entities.UserRoleAdmin {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestJWTIssuer_ParseToken(t *testing.T) {
	t.Run("garbage token", func(t *testing.T) {
		issuer := NewJWTIssuer("test-secret", time.Hour)
		if _, err := issuer.ParseToken("not-a-jwt"); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		issuer := NewJWTIssuer("test-secret", time.Hour)
		other := NewJWTIssuer("other-secret", time.Hour)

		token, err := issuer.IssueToken(entities.User{ID: "u-1", Role: entities.UserRoleOperator})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := other.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		issuer := NewJWTIssuer("test-secret", time.Nanosecond)

		token, err := issuer.IssueToken(entities.User{ID: "u-1", Role: entities.UserRoleOperator})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		time.Sleep(5 * time.Millisecond)
		if _, err := issuer.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("unknown role", func(t *testing.T) {
		issuer := NewJWTIssuer("test-secret", time.Hour)

		token, err := issuer.IssueToken(entities.User{ID: "u-1", Role: "SUPERUSER"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := issuer.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})
}
