package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/davi814/projeto-pi-definitivo/config"
	"github.com/davi814/projeto-pi-definitivo/internal/delivery/dto"
	"github.com/davi814/projeto-pi-definitivo/internal/delivery/http/handler"
	"github.com/davi814/projeto-pi-definitivo/internal/delivery/http/middleware"
	"github.com/davi814/projeto-pi-definitivo/internal/domain/entity"
	"github.com/davi814/projeto-pi-definitivo/internal/service"
	"github.com/davi814/projeto-pi-definitivo/internal/usecase"
	"github.com/davi814/projeto-pi-definitivo/pkg/jwt"
	"github.com/davi814/projeto-pi-definitivo/pkg/validator"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// profileFormStub answers the profile form as if the profile already existed.
type profileFormStub struct {
	usecase.ProfessionalUsecase
	calls int
}

func (s *profileFormStub) GetProfileForm(ctx context.Context, actor entity.Actor) (*dto.CategoryListResponse, error) {
	s.calls++
	return nil, usecase.ErrProfileAlreadyExists
}

type routerFixture struct {
	handler  http.Handler
	jwt      *jwt.JWTService
	sessions service.SessionStore
	profiles *profileFormStub
}

func newRouterFixture(t *testing.T) *routerFixture {
	log := logrus.New()
	log.SetOutput(io.Discard)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "router-secret", AccessExpiry: time.Hour})
	sessions := service.NewRedisSessionStore(client, log)
	profiles := &profileFormStub{}

	router := NewRouter(
		handler.NewAuthHandler(nil, validator.NewValidator(), false),
		handler.NewProfessionalHandler(profiles, validator.NewValidator()),
		handler.NewServiceRequestHandler(nil, validator.NewValidator()),
		handler.NewReviewHandler(nil, validator.NewValidator()),
		handler.NewAddressHandler(nil),
		handler.NewAuditLogHandler(nil),
		middleware.NewAuthMiddleware(jwtService, sessions, log),
		middleware.NewCORSMiddleware(config.AppConfig{}),
		middleware.NewLoggingMiddleware(log),
	)

	return &routerFixture{
		handler:  router.Setup(),
		jwt:      jwtService,
		sessions: sessions,
		profiles: profiles,
	}
}

func (f *routerFixture) login(t *testing.T, role entity.Role) string {
	t.Helper()
	userID := uuid.New()
	token, tokenID, err := f.jwt.GenerateSessionToken(userID, "ana@example.com", role.String())
	require.NoError(t, err)
	require.NoError(t, f.sessions.Save(context.Background(), userID, tokenID, time.Hour))
	return token
}

func (f *routerFixture) do(method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func TestRouter_CompleteProfileIsProfessionalOnly(t *testing.T) {
	f := newRouterFixture(t)
	clientToken := f.login(t, entity.RoleClient)

	for _, method := range []string{http.MethodGet, http.MethodPost} {
		rec := f.do(method, "/completar-perfil-profissional", clientToken)
		assert.Equal(t, http.StatusForbidden, rec.Code, method)
		assert.Contains(t, rec.Body.String(), "Apenas profissionais")
	}

	rec := f.do(http.MethodGet, "/completar-perfil-profissional", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Zero(t, f.profiles.calls)

	rec = f.do(http.MethodGet, "/completar-perfil-profissional", f.login(t, entity.RoleProfessional))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, usecase.PathDashboard, rec.Header().Get("Location"))
	assert.Equal(t, 1, f.profiles.calls)
}

func TestRouter_HealthCheck(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
}
