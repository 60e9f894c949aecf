package usecase

import (
	"context"
	"strings"

	"github.com/davi814/projeto-pi-definitivo/internal/converter"
	"github.com/davi814/projeto-pi-definitivo/internal/delivery/dto"
	"github.com/davi814/projeto-pi-definitivo/internal/domain/entity"
	"github.com/davi814/projeto-pi-definitivo/internal/domain/repository"
	"github.com/davi814/projeto-pi-definitivo/internal/infrastructure/cep"
	"github.com/davi814/projeto-pi-definitivo/internal/service"
	"github.com/davi814/projeto-pi-definitivo/pkg/apperror"
	"github.com/davi814/projeto-pi-definitivo/pkg/jwt"
	"github.com/davi814/projeto-pi-definitivo/pkg/validator"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	PathCompleteProfile = "/completar-perfil-profissional"
	PathDashboard       = "/dashboard"
	PathHome            = "/"
	PathLogin           = "/login"
)

var (
	ErrInvalidCPF         = apperror.New(apperror.KindValidation, "CPF inválido")
	ErrInvalidRole        = apperror.New(apperror.KindValidation, "Tipo de usuário inválido")
	ErrEmailAlreadyExists = apperror.New(apperror.KindUniqueness, "Email já cadastrado")
	ErrCPFAlreadyExists   = apperror.New(apperror.KindUniqueness, "CPF já cadastrado")
	ErrInvalidCredentials = apperror.New(apperror.KindUnauthenticated, "Email ou senha inválidos")
	ErrUserNotFound       = apperror.New(apperror.KindNotFound, "Usuário não encontrado")
)

type AuthUsecase interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Logout(ctx context.Context, userID uuid.UUID, tokenID string) error
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
	DeleteAccount(ctx context.Context, actor entity.Actor) error
}

type authUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	userRepo         repository.UserRepository
	requestRepo      repository.ServiceRequestRepository
	reviewRepo       repository.ReviewRepository
	professionalRepo repository.ProfessionalRepository
	auditLogRepo     repository.AuditLogRepository
	cepResolver      cep.Resolver
	jwtService       *jwt.JWTService
	sessions         service.SessionStore
	auditService     service.AuditService
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	requestRepo repository.ServiceRequestRepository,
	reviewRepo repository.ReviewRepository,
	professionalRepo repository.ProfessionalRepository,
	auditLogRepo repository.AuditLogRepository,
	cepResolver cep.Resolver,
	jwtService *jwt.JWTService,
	sessions service.SessionStore,
	auditService service.AuditService,
) AuthUsecase {
	return &authUsecase{
		db:               db,
		log:              log,
		userRepo:         userRepo,
		requestRepo:      requestRepo,
		reviewRepo:       reviewRepo,
		professionalRepo: professionalRepo,
		auditLogRepo:     auditLogRepo,
		cepResolver:      cepResolver,
		jwtService:       jwtService,
		sessions:         sessions,
		auditService:     auditService,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	cpf := validator.NormalizeCPF(req.CPF)
	if !validator.IsValidCPF(cpf) {
		return nil, ErrInvalidCPF
	}

	role, ok := entity.ParseRole(req.Role)
	if !ok {
		return nil, ErrInvalidRole
	}

	// Resolve the address before opening the transaction, it is a network call
	address, err := u.cepResolver.Resolve(ctx, req.CEP)
	if err != nil {
		return nil, ErrInvalidCEP
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	email := normalizeEmail(req.Email)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	existing, err := u.userRepo.FindByEmail(ctx, tx, email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	existing, err = u.userRepo.FindByCPF(ctx, tx, cpf)
	if err != nil {
		u.log.Warnf("Failed to find user by CPF: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrCPFAlreadyExists
	}

	user := &entity.User{
		Name:         strings.TrimSpace(req.Name),
		CPF:          cpf,
		Email:        email,
		Phone:        req.Phone,
		PasswordHash: string(hashedPassword),
		Role:         role,
		CEP:          address.CEP,
		Address:      address.Street,
		Neighborhood: address.Neighborhood,
		City:         address.City,
		State:        address.State,
	}

	if err := u.userRepo.Create(ctx, tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		if isDuplicateKeyError(err, "cpf") {
			return nil, ErrCPFAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &user.ID, entity.AuditActionUserRegister, "user", user.ID.String(), map[string]interface{}{
		"email": user.Email,
		"role":  user.Role,
		"city":  user.City,
	}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
		// Don't fail the transaction for audit log errors
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	next := PathHome
	if user.IsProfessional() {
		next = PathCompleteProfile
	}

	resp := &dto.AuthResponse{
		User: converter.UserToResponse(user),
		Next: next,
	}

	// The account exists at this point; a session failure only means the user logs in manually
	token, err := u.issueSession(ctx, user)
	if err != nil {
		u.log.Warnf("Failed to issue session after register: %+v", err)
		resp.Next = PathLogin
		return resp, nil
	}
	resp.Token = token
	resp.ExpiresIn = int64(u.jwtService.GetAccessExpiry().Seconds())

	return resp, nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	// Find user by email (read-only, no transaction needed)
	user, err := u.userRepo.FindByEmail(ctx, u.db, normalizeEmail(req.Email))
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := u.issueSession(ctx, user)
	if err != nil {
		u.log.Warnf("Failed to issue session: %+v", err)
		return nil, err
	}

	return &dto.AuthResponse{
		Token:     token,
		ExpiresIn: int64(u.jwtService.GetAccessExpiry().Seconds()),
		User:      converter.UserToResponse(user),
		Next:      PathDashboard,
	}, nil
}

func (u *authUsecase) issueSession(ctx context.Context, user *entity.User) (string, error) {
	token, tokenID, err := u.jwtService.GenerateSessionToken(user.ID, user.Email, user.Role.String())
	if err != nil {
		return "", err
	}

	if err := u.sessions.Save(ctx, user.ID, tokenID, u.jwtService.GetAccessExpiry()); err != nil {
		return "", err
	}

	return token, nil
}

func (u *authUsecase) Logout(ctx context.Context, userID uuid.UUID, tokenID string) error {
	if err := u.sessions.Revoke(ctx, userID, tokenID); err != nil {
		u.log.Warnf("Failed to revoke session: %+v", err)
		return err
	}
	return nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToResponse(user), nil
}

// DeleteAccount removes the user and everything hanging off it in one transaction:
// reviews, service requests on either side, the professional profile, then the user.
// Audit rows survive with a NULL user.
func (u *authUsecase) DeleteAccount(ctx context.Context, actor entity.Actor) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(ctx, tx, actor.UserID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	var professionalID uint
	if user.Professional != nil {
		professionalID = user.Professional.ID
	}

	reviews, err := u.reviewRepo.DeleteByParty(ctx, tx, user.ID, professionalID)
	if err != nil {
		u.log.Warnf("Failed to delete reviews: %+v", err)
		return err
	}

	requests, err := u.requestRepo.DeleteByParty(ctx, tx, user.ID, professionalID)
	if err != nil {
		u.log.Warnf("Failed to delete service requests: %+v", err)
		return err
	}

	if professionalID != 0 {
		if _, err := u.professionalRepo.DeleteByUserID(ctx, tx, user.ID); err != nil {
			u.log.Warnf("Failed to delete professional profile: %+v", err)
			return err
		}
	}

	if _, err := u.auditLogRepo.DetachUser(ctx, tx, user.ID); err != nil {
		u.log.Warnf("Failed to detach audit logs: %+v", err)
		return err
	}

	if _, err := u.userRepo.Delete(ctx, tx, user.ID); err != nil {
		u.log.Warnf("Failed to delete user: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, nil, entity.AuditActionUserDelete, "user", user.ID.String(), map[string]interface{}{
		"role":             user.Role,
		"professional_id":  professionalID,
		"reviews_deleted":  reviews,
		"requests_deleted": requests,
	}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	if err := u.sessions.RevokeAll(ctx, user.ID); err != nil {
		u.log.Warnf("Failed to revoke sessions of deleted user: %+v", err)
	}

	return nil
}
