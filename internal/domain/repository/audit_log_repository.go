package repository

import (
	"context"

	"github.com/davi814/projeto-pi-definitivo/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuditLogRepository interface {
	Create(ctx context.Context, db *gorm.DB, log *entity.AuditLog) error
	FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]entity.AuditLog, error)
	DetachUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int64, error)
}
