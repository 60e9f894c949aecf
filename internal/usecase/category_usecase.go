package usecase

import (
	"context"
	"strings"

	"github.com/davi814/projeto-pi-definitivo/internal/converter"
	"github.com/davi814/projeto-pi-definitivo/internal/delivery/dto"
	"github.com/davi814/projeto-pi-definitivo/internal/domain/entity"
	"github.com/davi814/projeto-pi-definitivo/internal/domain/repository"
	"github.com/davi814/projeto-pi-definitivo/internal/service"
	"github.com/davi814/projeto-pi-definitivo/pkg/apperror"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound      = apperror.New(apperror.KindNotFound, "Categoria não encontrada")
	ErrCategoryAlreadyExists = apperror.New(apperror.KindUniqueness, "Categoria já cadastrada")
)

type CategoryUsecase interface {
	ListCategories(ctx context.Context) (*dto.CategoryListResponse, error)
	CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
}

type categoryUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	categoryRepo repository.CategoryRepository
	auditService service.AuditService
}

func NewCategoryUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	categoryRepo repository.CategoryRepository,
	auditService service.AuditService,
) CategoryUsecase {
	return &categoryUsecase{
		db:           db,
		log:          log,
		categoryRepo: categoryRepo,
		auditService: auditService,
	}
}

func (u *categoryUsecase) ListCategories(ctx context.Context) (*dto.CategoryListResponse, error) {
	categories, err := u.categoryRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find categories: %+v", err)
		return nil, err
	}

	return &dto.CategoryListResponse{
		Categories: converter.CategoriesToResponses(categories),
	}, nil
}

func (u *categoryUsecase) CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	name := strings.TrimSpace(req.Name)
	existing, err := u.categoryRepo.FindByName(ctx, tx, name)
	if err != nil {
		u.log.Warnf("Failed to find category by name: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrCategoryAlreadyExists
	}

	category := &entity.ServiceCategory{
		Name:        name,
		Icon:        req.Icon,
		Description: req.Description,
	}
	if err := u.categoryRepo.Create(ctx, tx, category); err != nil {
		if isDuplicateKeyError(err, "service_categories") {
			return nil, ErrCategoryAlreadyExists
		}
		u.log.Warnf("Failed to create category: %+v", err)
		return nil, err
	}

	response := converter.CategoryToResponse(category)
	if err := u.auditService.LogCreate(ctx, tx, nil, entity.AuditActionCategoryCreate, "service_category", formatID(category.ID), response); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return response, nil
}
