package repository

import (
	"context"

	"github.com/davi814/projeto-pi-definitivo/internal/domain/entity"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(ctx context.Context, db *gorm.DB, category *entity.ServiceCategory) error
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.ServiceCategory, error)
	FindByID(ctx context.Context, db *gorm.DB, id uint) (*entity.ServiceCategory, error)
	FindByName(ctx context.Context, db *gorm.DB, name string) (*entity.ServiceCategory, error)
}
