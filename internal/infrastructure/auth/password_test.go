package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("123456")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "123456" || hash == "" {
		t.Fatalf("expected a hash, got %q", hash)
	}

	if err := hasher.Compare(hash, "123456"); err != nil {
		t.Fatalf("expected match, got %v", err)
	}
	if err := hasher.Compare(hash, "wrong"); err == nil {
		t.Fatalf("expected mismatch")
	}
}
