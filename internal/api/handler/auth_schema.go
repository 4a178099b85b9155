package handler

import "github.com/bibliotech/catalog-api/internal/core/domain"

type registerRequest struct {
	DisplayName string `json:"displayName" validate:"required,min=3,max=30"`
	Email       string `json:"email"       validate:"required,email"`
	Password    string `json:"password"    validate:"required,min=6"`
	Role        string `json:"role"        validate:"omitempty,oneof=user admin"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerResponse struct {
	User *domain.User `json:"user"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}
