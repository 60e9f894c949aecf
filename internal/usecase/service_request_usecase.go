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
	ErrNotClient               = apperror.New(apperror.KindAuthorization, "Apenas clientes podem solicitar orçamentos")
	ErrAccessDenied            = apperror.New(apperror.KindAuthorization, "Acesso negado")
	ErrProfileRequired         = apperror.New(apperror.KindNotFound, "Complete seu perfil profissional")
	ErrServiceRequestNotFound  = apperror.New(apperror.KindNotFound, "Solicitação não encontrada")
	ErrInvalidBudget           = apperror.New(apperror.KindValidation, "Orçamento inválido")
	ErrInvalidStatus           = apperror.New(apperror.KindValidation, "Status inválido")
	ErrInvalidStatusTransition = apperror.New(apperror.KindState, "Transição de status não permitida")
	ErrStatusChanged           = apperror.New(apperror.KindState, "O status da solicitação mudou, tente novamente")
)

type ServiceRequestUsecase interface {
	GetRequestForm(ctx context.Context, actor entity.Actor, professionalID uint) (*dto.RequestFormResponse, error)
	CreateRequest(ctx context.Context, actor entity.Actor, professionalID uint, req *dto.CreateServiceRequestRequest) (*dto.ServiceRequestResponse, error)
	GetDashboard(ctx context.Context, actor entity.Actor) (*dto.DashboardResponse, error)
	GetRequest(ctx context.Context, actor entity.Actor, id uint) (*dto.ServiceRequestResponse, error)
	UpdateStatus(ctx context.Context, actor entity.Actor, id uint, req *dto.UpdateStatusRequest) (*dto.ServiceRequestResponse, error)
}

type serviceRequestUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	requestRepo      repository.ServiceRequestRepository
	professionalRepo repository.ProfessionalRepository
	reviewRepo       repository.ReviewRepository
	auditService     service.AuditService
	strictStatus     bool
}

func NewServiceRequestUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	requestRepo repository.ServiceRequestRepository,
	professionalRepo repository.ProfessionalRepository,
	reviewRepo repository.ReviewRepository,
	auditService service.AuditService,
	workflow config.WorkflowConfig,
) ServiceRequestUsecase {
	return &serviceRequestUsecase{
		db:               db,
		log:              log,
		requestRepo:      requestRepo,
		professionalRepo: professionalRepo,
		reviewRepo:       reviewRepo,
		auditService:     auditService,
		strictStatus:     workflow.StrictStatus,
	}
}

func (u *serviceRequestUsecase) GetRequestForm(ctx context.Context, actor entity.Actor, professionalID uint) (*dto.RequestFormResponse, error) {
	if actor.Role != entity.RoleClient {
		return nil, ErrNotClient
	}

	professional, err := findProfessionalWithRating(ctx, u.db, u.professionalRepo, u.reviewRepo, professionalID)
	if err != nil {
		if err != ErrProfessionalNotFound {
			u.log.Warnf("Failed to find professional: %+v", err)
		}
		return nil, err
	}

	return &dto.RequestFormResponse{
		Professional: *converter.ProfessionalToResponse(professional),
	}, nil
}

func (u *serviceRequestUsecase) CreateRequest(ctx context.Context, actor entity.Actor, professionalID uint, req *dto.CreateServiceRequestRequest) (*dto.ServiceRequestResponse, error) {
	if actor.Role != entity.RoleClient {
		return nil, ErrNotClient
	}
	if req.Budget.IsNegative() {
		return nil, ErrInvalidBudget
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

	request := &entity.ServiceRequest{
		ClientID:       actor.UserID,
		ProfessionalID: professional.ID,
		Title:          strings.TrimSpace(req.Title),
		Description:    req.Description,
		Budget:         req.Budget,
		PreferredDate:  req.PreferredDate,
		Status:         entity.RequestStatusPending,
	}
	if err := u.requestRepo.Create(ctx, tx, request); err != nil {
		u.log.Warnf("Failed to create service request: %+v", err)
		return nil, err
	}
	request.Professional = *professional

	response := converter.ServiceRequestToResponse(request)
	if err := u.auditService.LogCreate(ctx, tx, &actor.UserID, entity.AuditActionRequestCreate, "service_request", formatID(request.ID), response); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return response, nil
}

// GetDashboard lists the requests a professional received or a client sent, newest first.
func (u *serviceRequestUsecase) GetDashboard(ctx context.Context, actor entity.Actor) (*dto.DashboardResponse, error) {
	switch actor.Role {
	case entity.RoleProfessional:
		professional, err := u.professionalRepo.FindByUserID(ctx, u.db, actor.UserID)
		if err != nil {
			u.log.Warnf("Failed to find professional profile: %+v", err)
			return nil, err
		}
		if professional == nil {
			return nil, ErrProfileRequired
		}

		professional, err = findProfessionalWithRating(ctx, u.db, u.professionalRepo, u.reviewRepo, professional.ID)
		if err != nil {
			u.log.Warnf("Failed to load professional profile: %+v", err)
			return nil, err
		}

		requests, err := u.requestRepo.FindByProfessionalID(ctx, u.db, professional.ID)
		if err != nil {
			u.log.Warnf("Failed to find service requests: %+v", err)
			return nil, err
		}

		return &dto.DashboardResponse{
			Role:         actor.Role.String(),
			Professional: converter.ProfessionalToResponse(professional),
			Requests:     converter.ServiceRequestsToResponses(requests),
		}, nil

	case entity.RoleClient:
		requests, err := u.requestRepo.FindByClientID(ctx, u.db, actor.UserID)
		if err != nil {
			u.log.Warnf("Failed to find service requests: %+v", err)
			return nil, err
		}

		return &dto.DashboardResponse{
			Role:     actor.Role.String(),
			Requests: converter.ServiceRequestsToResponses(requests),
		}, nil

	default:
		return nil, ErrAccessDenied
	}
}

func (u *serviceRequestUsecase) GetRequest(ctx context.Context, actor entity.Actor, id uint) (*dto.ServiceRequestResponse, error) {
	request, err := u.requestRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find service request: %+v", err)
		return nil, err
	}
	if request == nil {
		return nil, ErrServiceRequestNotFound
	}

	if err := u.authorizeParty(ctx, u.db, actor, request); err != nil {
		return nil, err
	}

	return converter.ServiceRequestToResponse(request), nil
}

// UpdateStatus lets either party move the request along its lifecycle.
// The row is re-read inside the transaction and the write is guarded on the
// status that was read, so a concurrent change surfaces as ErrStatusChanged.
func (u *serviceRequestUsecase) UpdateStatus(ctx context.Context, actor entity.Actor, id uint, req *dto.UpdateStatusRequest) (*dto.ServiceRequestResponse, error) {
	next := entity.RequestStatus(strings.TrimSpace(req.Status))
	if next == "" {
		return nil, ErrInvalidStatus
	}
	if u.strictStatus && !next.IsKnown() {
		return nil, ErrInvalidStatus
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	request, err := u.requestRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find service request: %+v", err)
		return nil, err
	}
	if request == nil {
		return nil, ErrServiceRequestNotFound
	}

	if err := u.authorizeParty(ctx, tx, actor, request); err != nil {
		return nil, err
	}

	previous := request.Status
	if u.strictStatus && !previous.CanTransitionTo(next) {
		return nil, ErrInvalidStatusTransition
	}

	rows, err := u.requestRepo.UpdateStatus(ctx, tx, request.ID, previous, next)
	if err != nil {
		u.log.Warnf("Failed to update service request status: %+v", err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrStatusChanged
	}

	if err := u.auditService.LogUpdate(ctx, tx, &actor.UserID, entity.AuditActionRequestStatusUpdate, "service_request", formatID(request.ID), previous, next); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	updated, err := u.requestRepo.FindByID(ctx, tx, request.ID)
	if err != nil {
		u.log.Warnf("Failed to reload service request: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ServiceRequestToResponse(updated), nil
}

// authorizeParty allows only the request's client or its target professional.
func (u *serviceRequestUsecase) authorizeParty(ctx context.Context, db *gorm.DB, actor entity.Actor, request *entity.ServiceRequest) error {
	var professionalID uint
	if actor.Role == entity.RoleProfessional {
		professional, err := u.professionalRepo.FindByUserID(ctx, db, actor.UserID)
		if err != nil {
			u.log.Warnf("Failed to find professional profile: %+v", err)
			return err
		}
		if professional != nil {
			professionalID = professional.ID
		}
	}

	if !request.IsParty(actor.UserID, professionalID) {
		return ErrAccessDenied
	}
	return nil
}
