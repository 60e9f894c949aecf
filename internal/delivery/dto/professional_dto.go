package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CompleteProfileRequest struct {
	CategoryID      uint            `json:"category_id" validate:"required,gt=0"`
	Bio             string          `json:"bio" validate:"omitempty,max=2000"`
	ExperienceYears int             `json:"experience_years" validate:"gte=0,lte=80"`
	StartingPrice   decimal.Decimal `json:"starting_price"`
}

type SearchProfessionalsRequest struct {
	CategoryID uint
	City       string
}

// Response DTOs

type ProfessionalResponse struct {
	ID              uint              `json:"id"`
	UserID          uuid.UUID         `json:"user_id"`
	Name            string            `json:"name"`
	Phone           string            `json:"phone,omitempty"`
	City            string            `json:"city,omitempty"`
	State           string            `json:"state,omitempty"`
	Category        *CategoryResponse `json:"category,omitempty"`
	Bio             string            `json:"bio,omitempty"`
	ExperienceYears int               `json:"experience_years"`
	StartingPrice   decimal.Decimal   `json:"starting_price"`
	ProfilePhoto    string            `json:"profile_photo,omitempty"`
	Verified        bool              `json:"verified"`
	ResponseTime    string            `json:"response_time"`
	AverageRating   float64           `json:"average_rating"`
	ReviewCount     int64             `json:"review_count"`
	CreatedAt       time.Time         `json:"created_at"`
}

type ProfessionalDetailResponse struct {
	Professional ProfessionalResponse `json:"professional"`
	Reviews      []ReviewResponse     `json:"reviews"`
}

type LandingResponse struct {
	Categories    []CategoryResponse     `json:"categories"`
	Professionals []ProfessionalResponse `json:"professionals"`
}

type SearchProfessionalsResponse struct {
	Professionals []ProfessionalResponse `json:"professionals"`
	Categories    []CategoryResponse     `json:"categories"`
	CategoryID    uint                   `json:"category_id,omitempty"`
	City          string                 `json:"city,omitempty"`
	Total         int                    `json:"total"`
}
