package entities

// UserRole gates access to administrative operations.

type UserRole string

const (
	UserRoleAdmin    UserRole = "ADMIN"
	UserRoleOperator UserRole = "OPERATOR"
)

func (r UserRole) Valid() bool {
	return r == UserRoleAdmin || r == UserRoleOperator
}

// User is a system account (technician or administrator). PasswordHash holds
// the bcrypt hash and is never exposed through the HTTP layer.
type User struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"-"`
	Role         UserRole `json:"role"`
	Phone        string   `json:"phone"`
	Avatar       string   `json:"avatar"`
}
