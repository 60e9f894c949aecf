package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateReviewRequest struct {
	RequestID *uint  `json:"request_id" validate:"omitempty,gt=0"`
	Rating    int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment   string `json:"comment" validate:"omitempty,max=2000"`
}

// Response DTOs

type ReviewResponse struct {
	ID             uint      `json:"id"`
	RequestID      uint      `json:"request_id"`
	ProfessionalID uint      `json:"professional_id"`
	ClientID       uuid.UUID `json:"client_id"`
	ClientName     string    `json:"client_name,omitempty"`
	Rating         int       `json:"rating"`
	Comment        string    `json:"comment,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type ReviewFormResponse struct {
	Professional ProfessionalResponse `json:"professional"`
}
