package usecase

import (
	"context"

	"github.com/davi814/projeto-pi-definitivo/internal/converter"
	"github.com/davi814/projeto-pi-definitivo/internal/delivery/dto"
	"github.com/davi814/projeto-pi-definitivo/internal/domain/entity"
	"github.com/davi814/projeto-pi-definitivo/internal/domain/repository"
	"github.com/davi814/projeto-pi-definitivo/internal/service"
	"github.com/davi814/projeto-pi-definitivo/pkg/apperror"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	landingProfessionalsLimit = 6
	profileReviewsLimit       = 10
)

var (
	ErrNotProfessional      = apperror.New(apperror.KindAuthorization, "Apenas profissionais podem completar o perfil profissional")
	ErrProfileAlreadyExists = apperror.New(apperror.KindConflict, "Perfil profissional já cadastrado")
	ErrProfessionalNotFound = apperror.New(apperror.KindNotFound, "Profissional não encontrado")
	ErrInvalidStartingPrice = apperror.New(apperror.KindValidation, "Preço inicial inválido")
)

type ProfessionalUsecase interface {
	GetProfileForm(ctx context.Context, actor entity.Actor) (*dto.CategoryListResponse, error)
	CompleteProfile(ctx context.Context, actor entity.Actor, req *dto.CompleteProfileRequest) (*dto.ProfessionalResponse, error)
	GetLanding(ctx context.Context) (*dto.LandingResponse, error)
	Search(ctx context.Context, req *dto.SearchProfessionalsRequest) (*dto.SearchProfessionalsResponse, error)
	GetProfessional(ctx context.Context, id uint) (*dto.ProfessionalDetailResponse, error)
}

type professionalUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	professionalRepo repository.ProfessionalRepository
	categoryRepo     repository.CategoryRepository
	reviewRepo       repository.ReviewRepository
	auditService     service.AuditService
}

func NewProfessionalUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	professionalRepo repository.ProfessionalRepository,
	categoryRepo repository.CategoryRepository,
	reviewRepo repository.ReviewRepository,
	auditService service.AuditService,
) ProfessionalUsecase {
	return &professionalUsecase{
		db:               db,
		log:              log,
		professionalRepo: professionalRepo,
		categoryRepo:     categoryRepo,
		reviewRepo:       reviewRepo,
		auditService:     auditService,
	}
}

// GetProfileForm returns the categories to choose from.
// A professional who already has a profile gets ErrProfileAlreadyExists.
func (u *professionalUsecase) GetProfileForm(ctx context.Context, actor entity.Actor) (*dto.CategoryListResponse, error) {
	if actor.Role != entity.RoleProfessional {
		return nil, ErrNotProfessional
	}

	existing, err := u.professionalRepo.FindByUserID(ctx, u.db, actor.UserID)
	if err != nil {
		u.log.Warnf("Failed to find professional profile: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrProfileAlreadyExists
	}

	categories, err := u.categoryRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find categories: %+v", err)
		return nil, err
	}

	return &dto.CategoryListResponse{
		Categories: converter.CategoriesToResponses(categories),
	}, nil
}

// CompleteProfile creates the professional profile once. Repeated calls,
// including ones racing on the unique user_id index, report ErrProfileAlreadyExists.
func (u *professionalUsecase) CompleteProfile(ctx context.Context, actor entity.Actor, req *dto.CompleteProfileRequest) (*dto.ProfessionalResponse, error) {
	if actor.Role != entity.RoleProfessional {
		return nil, ErrNotProfessional
	}
	if req.StartingPrice.IsNegative() {
		return nil, ErrInvalidStartingPrice
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	existing, err := u.professionalRepo.FindByUserID(ctx, tx, actor.UserID)
	if err != nil {
		u.log.Warnf("Failed to find professional profile: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrProfileAlreadyExists
	}

	category, err := u.categoryRepo.FindByID(ctx, tx, req.CategoryID)
	if err != nil {
		u.log.Warnf("Failed to find category: %+v", err)
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	professional := &entity.Professional{
		UserID:          actor.UserID,
		CategoryID:      &category.ID,
		Bio:             req.Bio,
		ExperienceYears: req.ExperienceYears,
		StartingPrice:   req.StartingPrice,
		Verified:        false,
		ResponseTime:    entity.DefaultResponseTime,
	}
	if err := u.professionalRepo.Create(ctx, tx, professional); err != nil {
		if isDuplicateKeyError(err, "professionals") {
			return nil, ErrProfileAlreadyExists
		}
		u.log.Warnf("Failed to create professional profile: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &actor.UserID, entity.AuditActionProfessionalCreate, "professional", formatID(professional.ID), map[string]interface{}{
		"category_id":      category.ID,
		"experience_years": professional.ExperienceYears,
		"starting_price":   professional.StartingPrice.String(),
	}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	created, err := u.professionalRepo.FindByID(ctx, u.db, professional.ID)
	if err != nil || created == nil {
		u.log.Warnf("Failed to reload professional profile: %+v", err)
		professional.Category = category
		return converter.ProfessionalToResponse(professional), nil
	}

	return converter.ProfessionalToResponse(created), nil
}

func (u *professionalUsecase) GetLanding(ctx context.Context) (*dto.LandingResponse, error) {
	categories, err := u.categoryRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find categories: %+v", err)
		return nil, err
	}

	professionals, err := u.professionalRepo.FindLatest(ctx, u.db, landingProfessionalsLimit)
	if err != nil {
		u.log.Warnf("Failed to find latest professionals: %+v", err)
		return nil, err
	}

	if err := applyRatings(ctx, u.db, u.reviewRepo, professionals); err != nil {
		u.log.Warnf("Failed to summarize ratings: %+v", err)
		return nil, err
	}

	return &dto.LandingResponse{
		Categories:    converter.CategoriesToResponses(categories),
		Professionals: converter.ProfessionalsToResponses(professionals),
	}, nil
}

func (u *professionalUsecase) Search(ctx context.Context, req *dto.SearchProfessionalsRequest) (*dto.SearchProfessionalsResponse, error) {
	professionals, err := u.professionalRepo.Search(ctx, u.db, &entity.ProfessionalFilter{
		CategoryID: req.CategoryID,
		City:       req.City,
	})
	if err != nil {
		u.log.Warnf("Failed to search professionals: %+v", err)
		return nil, err
	}

	if err := applyRatings(ctx, u.db, u.reviewRepo, professionals); err != nil {
		u.log.Warnf("Failed to summarize ratings: %+v", err)
		return nil, err
	}

	categories, err := u.categoryRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find categories: %+v", err)
		return nil, err
	}

	return &dto.SearchProfessionalsResponse{
		Professionals: converter.ProfessionalsToResponses(professionals),
		Categories:    converter.CategoriesToResponses(categories),
		CategoryID:    req.CategoryID,
		City:          req.City,
		Total:         len(professionals),
	}, nil
}

func (u *professionalUsecase) GetProfessional(ctx context.Context, id uint) (*dto.ProfessionalDetailResponse, error) {
	professional, err := findProfessionalWithRating(ctx, u.db, u.professionalRepo, u.reviewRepo, id)
	if err != nil {
		if err != ErrProfessionalNotFound {
			u.log.Warnf("Failed to find professional: %+v", err)
		}
		return nil, err
	}

	reviews, err := u.reviewRepo.FindRecentByProfessional(ctx, u.db, id, profileReviewsLimit)
	if err != nil {
		u.log.Warnf("Failed to find reviews: %+v", err)
		return nil, err
	}

	return &dto.ProfessionalDetailResponse{
		Professional: *converter.ProfessionalToResponse(professional),
		Reviews:      converter.ReviewsToResponses(reviews),
	}, nil
}

// applyRatings fills AverageRating and ReviewCount; professionals without reviews stay at 0.
func applyRatings(ctx context.Context, db *gorm.DB, reviewRepo repository.ReviewRepository, professionals []entity.Professional) error {
	if len(professionals) == 0 {
		return nil
	}

	ids := make([]uint, len(professionals))
	for i := range professionals {
		ids[i] = professionals[i].ID
	}

	summaries, err := reviewRepo.SummarizeByProfessionals(ctx, db, ids)
	if err != nil {
		return err
	}

	for i := range professionals {
		professionals[i].ApplyRating(summaries[professionals[i].ID])
	}
	return nil
}

func findProfessionalWithRating(ctx context.Context, db *gorm.DB, professionalRepo repository.ProfessionalRepository, reviewRepo repository.ReviewRepository, id uint) (*entity.Professional, error) {
	professional, err := professionalRepo.FindByID(ctx, db, id)
	if err != nil {
		return nil, err
	}
	if professional == nil {
		return nil, ErrProfessionalNotFound
	}

	single := []entity.Professional{*professional}
	if err := applyRatings(ctx, db, reviewRepo, single); err != nil {
		return nil, err
	}
	return &single[0], nil
}
