package repository

import (
	"context"

	"github.com/davi814/projeto-pi-definitivo/internal/domain/entity"
	domainRepo "github.com/davi814/projeto-pi-definitivo/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type auditLogRepository struct{}

func NewAuditLogRepository() domainRepo.AuditLogRepository {
	return &auditLogRepository{}
}

func (r *auditLogRepository) Create(ctx context.Context, db *gorm.DB, log *entity.AuditLog) error {
	return db.WithContext(ctx).Create(log).Error
}

func (r *auditLogRepository) FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]entity.AuditLog, error) {
	var logs []entity.AuditLog
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

// DetachUser nulls the user reference so the trail survives account deletion.
func (r *auditLogRepository) DetachUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int64, error) {
	result := db.WithContext(ctx).Model(&entity.AuditLog{}).
		Where("user_id = ?", userID).
		Update("user_id", nil)
	return result.RowsAffected, result.Error
}
