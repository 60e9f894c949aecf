package repository

import (
	"context"

	"github.com/davi814/projeto-pi-definitivo/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(ctx context.Context, db *gorm.DB, review *entity.Review) error
	FindByProfessionalAndClient(ctx context.Context, db *gorm.DB, professionalID uint, clientID uuid.UUID) (*entity.Review, error)
	FindRecentByProfessional(ctx context.Context, db *gorm.DB, professionalID uint, limit int) ([]entity.Review, error)
	SummarizeByProfessionals(ctx context.Context, db *gorm.DB, professionalIDs []uint) (map[uint]entity.RatingSummary, error)
	DeleteByParty(ctx context.Context, db *gorm.DB, clientID uuid.UUID, professionalID uint) (int64, error)
}
