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

type reviewRepository struct{}

func NewReviewRepository() domainRepo.ReviewRepository {
	return &reviewRepository{}
}

func (r *reviewRepository) Create(ctx context.Context, db *gorm.DB, review *entity.Review) error {
	return db.WithContext(ctx).Omit(clause.Associations).Create(review).Error
}

func (r *reviewRepository) FindByProfessionalAndClient(ctx context.Context, db *gorm.DB, professionalID uint, clientID uuid.UUID) (*entity.Review, error) {
	var review entity.Review
	err := db.WithContext(ctx).
		Where("professional_id = ? AND client_id = ?", professionalID, clientID).
		First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) FindRecentByProfessional(ctx context.Context, db *gorm.DB, professionalID uint, limit int) ([]entity.Review, error) {
	var reviews []entity.Review
	err := db.WithContext(ctx).
		Preload("Client").
		Where("professional_id = ?", professionalID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

type ratingRow struct {
	ProfessionalID uint
	AverageRating  float64
	ReviewCount    int64
}

// SummarizeByProfessionals aggregates ratings per professional.
// Professionals without reviews are absent from the map.
func (r *reviewRepository) SummarizeByProfessionals(ctx context.Context, db *gorm.DB, professionalIDs []uint) (map[uint]entity.RatingSummary, error) {
	summaries := make(map[uint]entity.RatingSummary, len(professionalIDs))
	if len(professionalIDs) == 0 {
		return summaries, nil
	}

	var rows []ratingRow
	err := db.WithContext(ctx).Model(&entity.Review{}).
		Select("professional_id, AVG(CAST(rating AS FLOAT)) AS average_rating, COUNT(*) AS review_count").
		Where("professional_id IN ?", professionalIDs).
		Group("professional_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		summaries[row.ProfessionalID] = entity.RatingSummary{
			ProfessionalID: row.ProfessionalID,
			Average:        row.AverageRating,
			Count:          row.ReviewCount,
		}
	}
	return summaries, nil
}

// DeleteByParty removes reviews written by clientID, reviews of professionalID,
// and any review attached to a request either of them is party to.
func (r *reviewRepository) DeleteByParty(ctx context.Context, db *gorm.DB, clientID uuid.UUID, professionalID uint) (int64, error) {
	requests := db.Model(&entity.ServiceRequest{}).Select("id").Where("client_id = ?", clientID)
	query := db.WithContext(ctx).Where("client_id = ?", clientID)
	if professionalID != 0 {
		requests = requests.Or("professional_id = ?", professionalID)
		query = query.Or("professional_id = ?", professionalID)
	}
	result := query.Or("request_id IN (?)", requests).Delete(&entity.Review{})
	return result.RowsAffected, result.Error
}
