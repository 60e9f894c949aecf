package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/davi814/projeto-pi-definitivo/internal/domain/entity"
	domainRepo "github.com/davi814/projeto-pi-definitivo/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type professionalRepository struct{}

func NewProfessionalRepository() domainRepo.ProfessionalRepository {
	return &professionalRepository{}
}

func (r *professionalRepository) Create(ctx context.Context, db *gorm.DB, professional *entity.Professional) error {
	return db.WithContext(ctx).Omit(clause.Associations).Create(professional).Error
}

func (r *professionalRepository) FindByID(ctx context.Context, db *gorm.DB, id uint) (*entity.Professional, error) {
	var professional entity.Professional
	err := db.WithContext(ctx).
		Preload("User").Preload("Category").
		Where("id = ?", id).
		First(&professional).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &professional, nil
}

func (r *professionalRepository) FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.Professional, error) {
	var professional entity.Professional
	err := db.WithContext(ctx).
		Preload("Category").
		Where("user_id = ?", userID).
		First(&professional).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &professional, nil
}

// FindLatest returns the most recently created profiles, newest first.
func (r *professionalRepository) FindLatest(ctx context.Context, db *gorm.DB, limit int) ([]entity.Professional, error) {
	var professionals []entity.Professional
	err := db.WithContext(ctx).
		Preload("User").Preload("Category").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&professionals).Error
	if err != nil {
		return nil, err
	}
	return professionals, nil
}

// Search filters by category and by a case-insensitive substring of the owner's city.
// Results keep insertion order.
func (r *professionalRepository) Search(ctx context.Context, db *gorm.DB, filter *entity.ProfessionalFilter) ([]entity.Professional, error) {
	var professionals []entity.Professional
	query := db.WithContext(ctx).Model(&entity.Professional{}).Select("professionals.*")

	if filter != nil {
		if filter.CategoryID != 0 {
			query = query.Where("professionals.category_id = ?", filter.CategoryID)
		}
		if city := strings.TrimSpace(filter.City); city != "" {
			query = query.
				Joins("JOIN users ON users.id = professionals.user_id").
				Where("LOWER(users.city) LIKE ?", "%"+strings.ToLower(city)+"%")
		}
	}

	err := query.
		Preload("User").Preload("Category").
		Order("professionals.id ASC").
		Find(&professionals).Error
	if err != nil {
		return nil, err
	}
	return professionals, nil
}

func (r *professionalRepository) DeleteByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int64, error) {
	result := db.WithContext(ctx).Where("user_id = ?", userID).Delete(&entity.Professional{})
	return result.RowsAffected, result.Error
}
