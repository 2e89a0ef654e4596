package response

import "sistemaos/internal/usecase"

type TokenResponse struct {
	Token  string `json:"token"`
	Type   string `json:"type"`
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}

func FromAuthResult(r usecase.AuthResult) TokenResponse {
	return TokenResponse{
		Token:  r.Token,
		Type:   r.Type,
		ID:     r.User.ID,
		Name:   r.User.Name,
		Email:  r.User.Email,
		Role:   string(r.User.Role),
		Avatar: r.User.Avatar,
	}
}
