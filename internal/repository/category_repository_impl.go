package repository

import (
	"context"
	"errors"

	"github.com/davi814/projeto-pi-definitivo/internal/domain/entity"
	domainRepo "github.com/davi814/projeto-pi-definitivo/internal/domain/repository"

	"gorm.io/gorm"
)

type categoryRepository struct{}

func NewCategoryRepository() domainRepo.CategoryRepository {
	return &categoryRepository{}
}

func (r *categoryRepository) Create(ctx context.Context, db *gorm.DB, category *entity.ServiceCategory) error {
	return db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.ServiceCategory, error) {
	var categories []entity.ServiceCategory
	err := db.WithContext(ctx).Order("id ASC").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) FindByID(ctx context.Context, db *gorm.DB, id uint) (*entity.ServiceCategory, error) {
	var category entity.ServiceCategory
	err := db.WithContext(ctx).Where("id = ?", id).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) FindByName(ctx context.Context, db *gorm.DB, name string) (*entity.ServiceCategory, error) {
	var category entity.ServiceCategory
	err := db.WithContext(ctx).Where("name = ?", name).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}
