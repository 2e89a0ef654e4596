package request

import (
	"sistemaos/internal/domain/entities"
	"sistemaos/internal/usecase"
)

type UserCreateRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
	Phone    string `json:"phone"`
	Avatar   string `json:"avatar"`
}

func (r UserCreateRequest) ToInput() usecase.UserCreateInput {
	return usecase.UserCreateInput{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		Role:     entities.UserRole(r.Role),
		Phone:    r.Phone,
		Avatar:   r.Avatar,
	}
}

type UserUpdateRequest struct {
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email" binding:"required,email"`
	Phone  string `json:"phone"`
	Avatar string `json:"avatar"`
}

func (r UserUpdateRequest) ToInput() usecase.UserUpdateInput {
	return usecase.UserUpdateInput{
		Name:   r.Name,
		Email:  r.Email,
		Phone:  r.Phone,
		Avatar: r.Avatar,
	}
}
