package interfaces

// IPasswordHasher defines the hashing strategy for account credentials.

type IPasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
