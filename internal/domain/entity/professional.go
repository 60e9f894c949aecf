package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultResponseTime is shown until a professional sets their own estimate.
const DefaultResponseTime = "24 horas"

// Professional extends a User with role professional. One per user.
// AverageRating and ReviewCount are derived from reviews on read, never stored.
type Professional struct {
	ID              uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	CategoryID      *uint           `gorm:"index" json:"category_id,omitempty"`
	Bio             string          `gorm:"type:text" json:"bio,omitempty"`
	ExperienceYears int             `gorm:"not null;default:0" json:"experience_years"`
	StartingPrice   decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"starting_price"`
	ProfilePhoto    string          `gorm:"type:varchar(255)" json:"profile_photo,omitempty"`
	Verified        bool            `gorm:"not null;default:false" json:"verified"`
	ResponseTime    string          `gorm:"type:varchar(50);default:'24 horas'" json:"response_time"`
	CreatedAt       time.Time       `gorm:"autoCreateTime;index" json:"created_at"`

	AverageRating float64 `gorm:"-" json:"average_rating"`
	ReviewCount   int64   `gorm:"-" json:"review_count"`

	// Relationships
	User     User             `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Category *ServiceCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

func (Professional) TableName() string {
	return "professionals"
}

// ApplyRating copies a computed summary onto the profile.
func (p *Professional) ApplyRating(summary RatingSummary) {
	p.AverageRating = summary.Average
	p.ReviewCount = summary.Count
}

// RatingSummary is the aggregate of a professional's reviews.
// The zero value (no reviews) means average 0.
type RatingSummary struct {
	ProfessionalID uint
	Average        float64
	Count          int64
}
