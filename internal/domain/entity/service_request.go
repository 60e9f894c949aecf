package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RequestStatus is the lifecycle state of a service request
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusAccepted RequestStatus = "accepted"
	RequestStatusFinished RequestStatus = "finished"
)

var requestTransitions = map[RequestStatus][]RequestStatus{
	RequestStatusPending:  {RequestStatusAccepted, RequestStatusFinished},
	RequestStatusAccepted: {RequestStatusFinished},
}

// IsKnown reports whether s is one of the workflow states.
func (s RequestStatus) IsKnown() bool {
	switch s {
	case RequestStatusPending, RequestStatusAccepted, RequestStatusFinished:
		return true
	default:
		return false
	}
}

// CanTransitionTo applies the strict transition table.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	for _, allowed := range requestTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ServiceRequest is a client's quote request addressed to one professional.
type ServiceRequest struct {
	ID             uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	ClientID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"client_id"`
	ProfessionalID uint            `gorm:"not null;index" json:"professional_id"`
	Title          string          `gorm:"type:varchar(200)" json:"title"`
	Description    string          `gorm:"type:text" json:"description"`
	Budget         decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"budget"`
	PreferredDate  string          `gorm:"type:varchar(100)" json:"preferred_date,omitempty"`
	Status         RequestStatus   `gorm:"type:varchar(40);not null;default:'pending';index" json:"status"`
	CreatedAt      time.Time       `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Client       User         `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Professional Professional `gorm:"foreignKey:ProfessionalID" json:"professional,omitempty"`
}

func (ServiceRequest) TableName() string {
	return "service_requests"
}

func (r *ServiceRequest) IsPending() bool {
	return r.Status == RequestStatusPending
}

func (r *ServiceRequest) IsFinished() bool {
	return r.Status == RequestStatusFinished
}

// IsParty reports whether the actor is the request's client or its target professional.
// professionalID is the actor's profile id, 0 when the actor has none.
func (r *ServiceRequest) IsParty(userID uuid.UUID, professionalID uint) bool {
	if r.ClientID == userID {
		return true
	}
	return professionalID != 0 && r.ProfessionalID == professionalID
}
