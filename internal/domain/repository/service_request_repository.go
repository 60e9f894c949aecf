package repository

import (
	"context"

	"github.com/davi814/projeto-pi-definitivo/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServiceRequestRepository interface {
	Create(ctx context.Context, db *gorm.DB, request *entity.ServiceRequest) error
	FindByID(ctx context.Context, db *gorm.DB, id uint) (*entity.ServiceRequest, error)
	FindByClientID(ctx context.Context, db *gorm.DB, clientID uuid.UUID) ([]entity.ServiceRequest, error)
	FindByProfessionalID(ctx context.Context, db *gorm.DB, professionalID uint) ([]entity.ServiceRequest, error)
	// FindLatestBetween returns the newest request of the pair; an empty status matches any.
	FindLatestBetween(ctx context.Context, db *gorm.DB, clientID uuid.UUID, professionalID uint, status entity.RequestStatus) (*entity.ServiceRequest, error)
	UpdateStatus(ctx context.Context, db *gorm.DB, id uint, from, to entity.RequestStatus) (int64, error)
	DeleteByParty(ctx context.Context, db *gorm.DB, clientID uuid.UUID, professionalID uint) (int64, error)
}
