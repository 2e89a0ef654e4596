package request

import "sistemaos/internal/usecase"

// ClientRequest is the full client payload used by both create and update.
type ClientRequest struct {
	Document string `json:"document" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

func (r ClientRequest) ToInput() usecase.ClientCreateInput {
	return usecase.ClientCreateInput{
		Document: r.Document,
		Name:     r.Name,
		Phone:    r.Phone,
		Address:  r.Address,
	}
}
