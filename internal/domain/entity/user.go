package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the shared account table for clients and professionals.
// Role is written on create only and never updated afterwards.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(120);not null" json:"name"`
	CPF          string    `gorm:"column:cpf;type:varchar(14);uniqueIndex;not null" json:"cpf"`
	Email        string    `gorm:"type:varchar(120);uniqueIndex;not null" json:"email"`
	Phone        string    `gorm:"type:varchar(20)" json:"phone,omitempty"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	Role         Role      `gorm:"type:varchar(20);not null;default:'client';index;<-:create" json:"role"`
	CEP          string    `gorm:"column:cep;type:varchar(9)" json:"cep,omitempty"`
	Address      string    `gorm:"type:varchar(200)" json:"address,omitempty"`
	Neighborhood string    `gorm:"type:varchar(120)" json:"neighborhood,omitempty"`
	City         string    `gorm:"type:varchar(120);index" json:"city,omitempty"`
	State        string    `gorm:"type:varchar(2)" json:"state,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Professional *Professional `gorm:"foreignKey:UserID" json:"professional,omitempty"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

func (u *User) IsProfessional() bool {
	return u.Role == RoleProfessional
}

func (u *User) IsClient() bool {
	return u.Role == RoleClient
}

// Actor is the authenticated caller of a usecase.
type Actor struct {
	UserID uuid.UUID
	Role   Role
}
