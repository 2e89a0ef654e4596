package entities

import "time"

// Client is a customer record. Document (CPF/CNPJ) is unique across clients.
// Orders snapshot the client fields at creation, so editing a client never
// rewrites historical orders.
type Client struct {
	ID        string    `json:"id"`
	Document  string    `json:"document"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
