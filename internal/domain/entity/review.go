package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Review is a client's rating of a professional for one service request.
// Immutable once created; one per request and one per (professional, client) pair.
type Review struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	RequestID      uint      `gorm:"not null;uniqueIndex" json:"request_id"`
	ProfessionalID uint      `gorm:"not null;uniqueIndex:idx_reviews_professional_client,priority:1" json:"professional_id"`
	ClientID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_professional_client,priority:2" json:"client_id"`
	Rating         int       `gorm:"not null" json:"rating"`
	Comment        string    `gorm:"type:text" json:"comment,omitempty"`
	CreatedAt      time.Time `gorm:"autoCreateTime;index" json:"created_at"`

	// Relationships
	Client       User           `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Professional Professional   `gorm:"foreignKey:ProfessionalID" json:"-"`
	Request      ServiceRequest `gorm:"foreignKey:RequestID" json:"-"`
}

func (Review) TableName() string {
	return "reviews"
}

func ValidRating(rating int) bool {
	return rating >= MinRating && rating <= MaxRating
}
