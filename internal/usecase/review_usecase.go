package usecase

import (
	"context"
	"strings"

	"github.com/davi814/projeto-pi-definitivo/config"
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
	ErrReviewerNotClient  = apperror.New(apperror.KindAuthorization, "Apenas clientes podem avaliar profissionais")
	ErrInvalidRating      = apperror.New(apperror.KindValidation, "A nota deve estar entre 1 e 5")
	ErrAlreadyReviewed    = apperror.New(apperror.KindConflict, "Você já avaliou este profissional")
	ErrNoServiceRequest   = apperror.New(apperror.KindState, "Solicite um serviço antes de avaliar este profissional")
	ErrRequestNotFinished = apperror.New(apperror.KindState, "O serviço precisa estar finalizado para ser avaliado")
)

type ReviewUsecase interface {
	GetReviewForm(ctx context.Context, actor entity.Actor, professionalID uint) (*dto.ReviewFormResponse, error)
	SubmitReview(ctx context.Context, actor entity.Actor, professionalID uint, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error)
}

type reviewUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	reviewRepo       repository.ReviewRepository
	requestRepo      repository.ServiceRequestRepository
	professionalRepo repository.ProfessionalRepository
	auditService     service.AuditService
	strictStatus     bool
}

func NewReviewUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	reviewRepo repository.ReviewRepository,
	requestRepo repository.ServiceRequestRepository,
	professionalRepo repository.ProfessionalRepository,
	auditService service.AuditService,
	workflow config.WorkflowConfig,
) ReviewUsecase {
	return &reviewUsecase{
		db:               db,
		log:              log,
		reviewRepo:       reviewRepo,
		requestRepo:      requestRepo,
		professionalRepo: professionalRepo,
		auditService:     auditService,
		strictStatus:     workflow.StrictStatus,
	}
}

func (u *reviewUsecase) GetReviewForm(ctx context.Context, actor entity.Actor, professionalID uint) (*dto.ReviewFormResponse, error) {
	if actor.Role != entity.RoleClient {
		return nil, ErrReviewerNotClient
	}

	professional, err := findProfessionalWithRating(ctx, u.db, u.professionalRepo, u.reviewRepo, professionalID)
	if err != nil {
		if err != ErrProfessionalNotFound {
			u.log.Warnf("Failed to find professional: %+v", err)
		}
		return nil, err
	}

	return &dto.ReviewFormResponse{
		Professional: *converter.ProfessionalToResponse(professional),
	}, nil
}

// SubmitReview records a client's single review of a professional. The review is
// tied to a service request between them: the one given, or else the latest one.
func (u *reviewUsecase) SubmitReview(ctx context.Context, actor entity.Actor, professionalID uint, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	if actor.Role != entity.RoleClient {
		return nil, ErrReviewerNotClient
	}
	if !entity.ValidRating(req.Rating) {
		return nil, ErrInvalidRating
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	professional, err := u.professionalRepo.FindByID(ctx, tx, professionalID)
	if err != nil {
		u.log.Warnf("Failed to find professional: %+v", err)
		return nil, err
	}
	if professional == nil {
		return nil, ErrProfessionalNotFound
	}

	existing, err := u.reviewRepo.FindByProfessionalAndClient(ctx, tx, professional.ID, actor.UserID)
	if err != nil {
		u.log.Warnf("Failed to find review: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyReviewed
	}

	request, err := u.findReviewedRequest(ctx, tx, actor, professional.ID, req.RequestID)
	if err != nil {
		return nil, err
	}
	if u.strictStatus && !request.IsFinished() {
		return nil, ErrRequestNotFinished
	}

	review := &entity.Review{
		RequestID:      request.ID,
		ProfessionalID: professional.ID,
		ClientID:       actor.UserID,
		Rating:         req.Rating,
		Comment:        strings.TrimSpace(req.Comment),
	}
	if err := u.reviewRepo.Create(ctx, tx, review); err != nil {
		if isDuplicateKeyError(err, "reviews") {
			return nil, ErrAlreadyReviewed
		}
		u.log.Warnf("Failed to create review: %+v", err)
		return nil, err
	}

	response := converter.ReviewToResponse(review)
	if err := u.auditService.LogCreate(ctx, tx, &actor.UserID, entity.AuditActionReviewCreate, "review", formatID(review.ID), response); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return response, nil
}

func (u *reviewUsecase) findReviewedRequest(ctx context.Context, tx *gorm.DB, actor entity.Actor, professionalID uint, requestID *uint) (*entity.ServiceRequest, error) {
	if requestID != nil {
		request, err := u.requestRepo.FindByID(ctx, tx, *requestID)
		if err != nil {
			u.log.Warnf("Failed to find service request: %+v", err)
			return nil, err
		}
		if request == nil {
			return nil, ErrServiceRequestNotFound
		}
		if request.ClientID != actor.UserID || request.ProfessionalID != professionalID {
			return nil, ErrAccessDenied
		}
		return request, nil
	}

	// In strict mode only finished work is reviewable, so prefer the newest finished request
	if u.strictStatus {
		finished, err := u.requestRepo.FindLatestBetween(ctx, tx, actor.UserID, professionalID, entity.RequestStatusFinished)
		if err != nil {
			u.log.Warnf("Failed to find finished service request: %+v", err)
			return nil, err
		}
		if finished != nil {
			return finished, nil
		}
	}

	request, err := u.requestRepo.FindLatestBetween(ctx, tx, actor.UserID, professionalID, "")
	if err != nil {
		u.log.Warnf("Failed to find service request: %+v", err)
		return nil, err
	}
	if request == nil {
		return nil, ErrNoServiceRequest
	}
	return request, nil
}
