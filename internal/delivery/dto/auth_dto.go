package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=120"`
	Email    string `json:"email" validate:"required,email,max=120"`
	CPF      string `json:"cpf" validate:"required,cpf"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"user_type" validate:"required,oneof=client professional"`
	Phone    string `json:"phone" validate:"omitempty,max=20"`
	CEP      string `json:"cep" validate:"required,cep"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Response DTOs

type AuthResponse struct {
	Token     string        `json:"token"`
	ExpiresIn int64         `json:"expires_in"`
	User      *UserResponse `json:"user"`
	Next      string        `json:"next"`
}

type UserResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	CPF            string    `json:"cpf"`
	Phone          string    `json:"phone,omitempty"`
	Role           string    `json:"user_type"`
	CEP            string    `json:"cep,omitempty"`
	Address        string    `json:"address,omitempty"`
	Neighborhood   string    `json:"neighborhood,omitempty"`
	City           string    `json:"city,omitempty"`
	State          string    `json:"state,omitempty"`
	ProfessionalID *uint     `json:"professional_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
