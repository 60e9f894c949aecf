package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/davi814/projeto-pi-definitivo/config"
	"github.com/davi814/projeto-pi-definitivo/internal/delivery/dto"
	"github.com/davi814/projeto-pi-definitivo/internal/domain/entity"
	"github.com/davi814/projeto-pi-definitivo/internal/infrastructure/cep"
	"github.com/davi814/projeto-pi-definitivo/internal/infrastructure/database"
	"github.com/davi814/projeto-pi-definitivo/internal/repository"
	"github.com/davi814/projeto-pi-definitivo/internal/service"
	"github.com/davi814/projeto-pi-definitivo/pkg/jwt"
	"github.com/davi814/projeto-pi-definitivo/pkg/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Valid CPFs, one per registered test user.
var testCPFs = []string{
	"529.982.247-25",
	"111.444.777-35",
	"123.456.789-09",
	"987.654.321-00",
	"246.813.579-28",
	"135.792.468-28",
	"314.159.265-90",
	"271.828.182-05",
	"161.803.398-05",
	"141.421.356-51",
}

type fakeResolver struct {
	addresses map[string]cep.Address
}

func newFakeResolver() *fakeResolver {
	return &fakeResolver{addresses: map[string]cep.Address{
		"01310100": {CEP: "01310100", Street: "Avenida Paulista", Neighborhood: "Bela Vista", City: "São Paulo", State: "SP"},
		"20040020": {CEP: "20040020", Street: "Avenida Rio Branco", Neighborhood: "Centro", City: "Rio de Janeiro", State: "RJ"},
	}}
}

func (f *fakeResolver) Resolve(ctx context.Context, raw string) (*cep.Address, error) {
	digits, ok := validator.NormalizeCEP(raw)
	if !ok {
		return nil, cep.ErrNotFound
	}
	address, ok := f.addresses[digits]
	if !ok {
		return nil, cep.ErrNotFound
	}
	return &address, nil
}

type fakeSessionStore struct {
	sessions map[string]bool
	failSave bool
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: map[string]bool{}}
}

func (s *fakeSessionStore) key(userID uuid.UUID, tokenID string) string {
	return userID.String() + ":" + tokenID
}

func (s *fakeSessionStore) Save(ctx context.Context, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	if s.failSave {
		return errors.New("redis unavailable")
	}
	s.sessions[s.key(userID, tokenID)] = true
	return nil
}

func (s *fakeSessionStore) Exists(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error) {
	return s.sessions[s.key(userID, tokenID)], nil
}

func (s *fakeSessionStore) Revoke(ctx context.Context, userID uuid.UUID, tokenID string) error {
	delete(s.sessions, s.key(userID, tokenID))
	return nil
}

func (s *fakeSessionStore) RevokeAll(ctx context.Context, userID uuid.UUID) error {
	prefix := userID.String() + ":"
	for key := range s.sessions {
		if strings.HasPrefix(key, prefix) {
			delete(s.sessions, key)
		}
	}
	return nil
}

func (s *fakeSessionStore) countFor(userID uuid.UUID) int {
	prefix := userID.String() + ":"
	n := 0
	for key := range s.sessions {
		if strings.HasPrefix(key, prefix) {
			n++
		}
	}
	return n
}

type testEnv struct {
	t            *testing.T
	db           *gorm.DB
	jwtService   *jwt.JWTService
	sessions     *fakeSessionStore
	auth         AuthUsecase
	professional ProfessionalUsecase
	request      ServiceRequestUsecase
	review       ReviewUsecase
	category     CategoryUsecase
	address      AddressUsecase
	auditLog     AuditLogUsecase
	nextCPF      int
}

func newTestEnv(t *testing.T, strictStatus bool) *testEnv {
	t.Helper()

	db, err := database.NewSQLiteConnection(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	log := logrus.New()
	log.SetOutput(io.Discard)

	userRepo := repository.NewUserRepository()
	categoryRepo := repository.NewCategoryRepository()
	professionalRepo := repository.NewProfessionalRepository()
	requestRepo := repository.NewServiceRequestRepository()
	reviewRepo := repository.NewReviewRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	auditService := service.NewAuditService(log, auditLogRepo)
	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", AccessExpiry: time.Hour})
	sessions := newFakeSessionStore()
	resolver := newFakeResolver()
	workflow := config.WorkflowConfig{StrictStatus: strictStatus}

	return &testEnv{
		t:            t,
		db:           db,
		jwtService:   jwtService,
		sessions:     sessions,
		auth:         NewAuthUsecase(db, log, userRepo, requestRepo, reviewRepo, professionalRepo, auditLogRepo, resolver, jwtService, sessions, auditService),
		professional: NewProfessionalUsecase(db, log, professionalRepo, categoryRepo, reviewRepo, auditService),
		request:      NewServiceRequestUsecase(db, log, requestRepo, professionalRepo, reviewRepo, auditService, workflow),
		review:       NewReviewUsecase(db, log, reviewRepo, requestRepo, professionalRepo, auditService, workflow),
		category:     NewCategoryUsecase(db, log, categoryRepo, auditService),
		address:      NewAddressUsecase(log, resolver),
		auditLog:     NewAuditLogUsecase(db, log, auditLogRepo),
	}
}

func (e *testEnv) register(role entity.Role) (*dto.AuthResponse, entity.Actor) {
	e.t.Helper()
	require.Less(e.t, e.nextCPF, len(testCPFs), "out of test CPFs")
	cpf := testCPFs[e.nextCPF]
	e.nextCPF++

	resp, err := e.auth.Register(context.Background(), &dto.RegisterRequest{
		Name:     fmt.Sprintf("User %d", e.nextCPF),
		Email:    fmt.Sprintf("user%d@example.com", e.nextCPF),
		CPF:      cpf,
		Password: "senha123",
		Role:     role.String(),
		Phone:    "11999990000",
		CEP:      "01310-100",
	})
	require.NoError(e.t, err)
	return resp, entity.Actor{UserID: resp.User.ID, Role: role}
}

func (e *testEnv) createCategory(name string) *dto.CategoryResponse {
	e.t.Helper()
	category, err := e.category.CreateCategory(context.Background(), &dto.CreateCategoryRequest{Name: name, Icon: "fa-wrench"})
	require.NoError(e.t, err)
	return category
}

// registerProfessional registers a professional and completes the profile.
func (e *testEnv) registerProfessional(categoryID uint) (entity.Actor, *dto.ProfessionalResponse) {
	e.t.Helper()
	_, actor := e.register(entity.RoleProfessional)
	profile, err := e.professional.CompleteProfile(context.Background(), actor, &dto.CompleteProfileRequest{
		CategoryID:      categoryID,
		Bio:             "Profissional experiente",
		ExperienceYears: 5,
		StartingPrice:   decimal.NewFromInt(80),
	})
	require.NoError(e.t, err)
	return actor, profile
}

func (e *testEnv) createRequest(client entity.Actor, professionalID uint) *dto.ServiceRequestResponse {
	e.t.Helper()
	request, err := e.request.CreateRequest(context.Background(), client, professionalID, &dto.CreateServiceRequestRequest{
		Title:       "Trocar torneira",
		Description: "Torneira da cozinha vazando",
		Budget:      decimal.RequireFromString("150.00"),
	})
	require.NoError(e.t, err)
	return request
}

func (e *testEnv) finishRequest(actor entity.Actor, requestID uint) {
	e.t.Helper()
	_, err := e.request.UpdateStatus(context.Background(), actor, requestID, &dto.UpdateStatusRequest{Status: string(entity.RequestStatusFinished)})
	require.NoError(e.t, err)
}
