package repository

import (
	"context"

	"github.com/davi814/projeto-pi-definitivo/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfessionalRepository interface {
	Create(ctx context.Context, db *gorm.DB, professional *entity.Professional) error
	FindByID(ctx context.Context, db *gorm.DB, id uint) (*entity.Professional, error)
	FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.Professional, error)
	FindLatest(ctx context.Context, db *gorm.DB, limit int) ([]entity.Professional, error)
	Search(ctx context.Context, db *gorm.DB, filter *entity.ProfessionalFilter) ([]entity.Professional, error)
	DeleteByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int64, error)
}
