package dto

import (
	userModel "voluntariado_backend/internals/features/users/model"
)

// 🔹 Request de cadastro
type RegisterRequest struct {
	CPF      string `json:"cpf" validate:"required,min=11,max=14"`
	Name     string `json:"name" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// 🔹 Request de login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// 🔹 Login via Google (ID token do front)
type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

// 🔹 Bloco de usuário devolvido no login
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

func ToUserResponse(m *userModel.UserModel) UserResponse {
	return UserResponse{
		ID:    m.UserCPF,
		Name:  m.UserName,
		Email: m.UserEmail,
	}
}
