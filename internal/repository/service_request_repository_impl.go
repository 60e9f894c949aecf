package repository

import (
	"context"
	"errors"

	"github.com/davi814/projeto-pi-definitivo/internal/domain/entity"
	domainRepo "github.com/davi814/projeto-pi-definitivo/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type serviceRequestRepository struct{}

func NewServiceRequestRepository() domainRepo.ServiceRequestRepository {
	return &serviceRequestRepository{}
}

func (r *serviceRequestRepository) Create(ctx context.Context, db *gorm.DB, request *entity.ServiceRequest) error {
	return db.WithContext(ctx).Omit(clause.Associations).Create(request).Error
}

func (r *serviceRequestRepository) FindByID(ctx context.Context, db *gorm.DB, id uint) (*entity.ServiceRequest, error) {
	var request entity.ServiceRequest
	err := db.WithContext(ctx).
		Preload("Client").Preload("Professional.User").
		Where("id = ?", id).
		First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &request, nil
}

func (r *serviceRequestRepository) FindByClientID(ctx context.Context, db *gorm.DB, clientID uuid.UUID) ([]entity.ServiceRequest, error) {
	var requests []entity.ServiceRequest
	err := db.WithContext(ctx).
		Preload("Professional.User").
		Where("client_id = ?", clientID).
		Order("created_at DESC, id DESC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *serviceRequestRepository) FindByProfessionalID(ctx context.Context, db *gorm.DB, professionalID uint) ([]entity.ServiceRequest, error) {
	var requests []entity.ServiceRequest
	err := db.WithContext(ctx).
		Preload("Client").
		Where("professional_id = ?", professionalID).
		Order("created_at DESC, id DESC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *serviceRequestRepository) FindLatestBetween(ctx context.Context, db *gorm.DB, clientID uuid.UUID, professionalID uint, status entity.RequestStatus) (*entity.ServiceRequest, error) {
	var request entity.ServiceRequest
	query := db.WithContext(ctx).Where("client_id = ? AND professional_id = ?", clientID, professionalID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.
		Order("created_at DESC, id DESC").
		First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &request, nil
}

// UpdateStatus moves a request from one status to another.
// Returns affected rows: 0 means the status changed concurrently.
func (r *serviceRequestRepository) UpdateStatus(ctx context.Context, db *gorm.DB, id uint, from, to entity.RequestStatus) (int64, error) {
	result := db.WithContext(ctx).Model(&entity.ServiceRequest{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	return result.RowsAffected, result.Error
}

// DeleteByParty removes requests authored by clientID or addressed to professionalID.
// professionalID 0 means the user has no professional profile.
func (r *serviceRequestRepository) DeleteByParty(ctx context.Context, db *gorm.DB, clientID uuid.UUID, professionalID uint) (int64, error) {
	query := db.WithContext(ctx).Where("client_id = ?", clientID)
	if professionalID != 0 {
		query = query.Or("professional_id = ?", professionalID)
	}
	result := query.Delete(&entity.ServiceRequest{})
	return result.RowsAffected, result.Error
}
