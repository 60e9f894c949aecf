package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateServiceRequestRequest struct {
	Title         string          `json:"title" validate:"required,max=200"`
	Description   string          `json:"description" validate:"required"`
	Budget        decimal.Decimal `json:"budget"`
	PreferredDate string          `json:"preferred_date" validate:"omitempty,max=100"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,max=40"`
}

// Response DTOs

type ServiceRequestResponse struct {
	ID               uint            `json:"id"`
	ClientID         uuid.UUID       `json:"client_id"`
	ClientName       string          `json:"client_name,omitempty"`
	ProfessionalID   uint            `json:"professional_id"`
	ProfessionalName string          `json:"professional_name,omitempty"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	Budget           decimal.Decimal `json:"budget"`
	PreferredDate    string          `json:"preferred_date,omitempty"`
	Status           string          `json:"status"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

type DashboardResponse struct {
	Role         string                   `json:"user_type"`
	Professional *ProfessionalResponse    `json:"professional,omitempty"`
	Requests     []ServiceRequestResponse `json:"requests"`
}

// RequestFormResponse is what the quote form needs to render.
type RequestFormResponse struct {
	Professional ProfessionalResponse `json:"professional"`
}
