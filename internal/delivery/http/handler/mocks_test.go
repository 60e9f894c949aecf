package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/davi814/projeto-pi-definitivo/internal/delivery/dto"
	"github.com/davi814/projeto-pi-definitivo/internal/delivery/http/middleware"
	"github.com/davi814/projeto-pi-definitivo/internal/domain/entity"
	"github.com/davi814/projeto-pi-definitivo/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAuthUsecase struct {
	mock.Mock
}

func (m *mockAuthUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*dto.AuthResponse)
	return resp, args.Error(1)
}

func (m *mockAuthUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*dto.AuthResponse)
	return resp, args.Error(1)
}

func (m *mockAuthUsecase) Logout(ctx context.Context, userID uuid.UUID, tokenID string) error {
	return m.Called(ctx, userID, tokenID).Error(0)
}

func (m *mockAuthUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	args := m.Called(ctx, userID)
	resp, _ := args.Get(0).(*dto.UserResponse)
	return resp, args.Error(1)
}

func (m *mockAuthUsecase) DeleteAccount(ctx context.Context, actor entity.Actor) error {
	return m.Called(ctx, actor).Error(0)
}

type mockProfessionalUsecase struct {
	mock.Mock
}

func (m *mockProfessionalUsecase) GetProfileForm(ctx context.Context, actor entity.Actor) (*dto.CategoryListResponse, error) {
	args := m.Called(ctx, actor)
	resp, _ := args.Get(0).(*dto.CategoryListResponse)
	return resp, args.Error(1)
}

func (m *mockProfessionalUsecase) CompleteProfile(ctx context.Context, actor entity.Actor, req *dto.CompleteProfileRequest) (*dto.ProfessionalResponse, error) {
	args := m.Called(ctx, actor, req)
	resp, _ := args.Get(0).(*dto.ProfessionalResponse)
	return resp, args.Error(1)
}

func (m *mockProfessionalUsecase) GetLanding(ctx context.Context) (*dto.LandingResponse, error) {
	args := m.Called(ctx)
	resp, _ := args.Get(0).(*dto.LandingResponse)
	return resp, args.Error(1)
}

func (m *mockProfessionalUsecase) Search(ctx context.Context, req *dto.SearchProfessionalsRequest) (*dto.SearchProfessionalsResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*dto.SearchProfessionalsResponse)
	return resp, args.Error(1)
}

func (m *mockProfessionalUsecase) GetProfessional(ctx context.Context, id uint) (*dto.ProfessionalDetailResponse, error) {
	args := m.Called(ctx, id)
	resp, _ := args.Get(0).(*dto.ProfessionalDetailResponse)
	return resp, args.Error(1)
}

type mockServiceRequestUsecase struct {
	mock.Mock
}

func (m *mockServiceRequestUsecase) GetRequestForm(ctx context.Context, actor entity.Actor, professionalID uint) (*dto.RequestFormResponse, error) {
	args := m.Called(ctx, actor, professionalID)
	resp, _ := args.Get(0).(*dto.RequestFormResponse)
	return resp, args.Error(1)
}

func (m *mockServiceRequestUsecase) CreateRequest(ctx context.Context, actor entity.Actor, professionalID uint, req *dto.CreateServiceRequestRequest) (*dto.ServiceRequestResponse, error) {
	args := m.Called(ctx, actor, professionalID, req)
	resp, _ := args.Get(0).(*dto.ServiceRequestResponse)
	return resp, args.Error(1)
}

func (m *mockServiceRequestUsecase) GetDashboard(ctx context.Context, actor entity.Actor) (*dto.DashboardResponse, error) {
	args := m.Called(ctx, actor)
	resp, _ := args.Get(0).(*dto.DashboardResponse)
	return resp, args.Error(1)
}

func (m *mockServiceRequestUsecase) GetRequest(ctx context.Context, actor entity.Actor, id uint) (*dto.ServiceRequestResponse, error) {
	args := m.Called(ctx, actor, id)
	resp, _ := args.Get(0).(*dto.ServiceRequestResponse)
	return resp, args.Error(1)
}

func (m *mockServiceRequestUsecase) UpdateStatus(ctx context.Context, actor entity.Actor, id uint, req *dto.UpdateStatusRequest) (*dto.ServiceRequestResponse, error) {
	args := m.Called(ctx, actor, id, req)
	resp, _ := args.Get(0).(*dto.ServiceRequestResponse)
	return resp, args.Error(1)
}

type mockReviewUsecase struct {
	mock.Mock
}

func (m *mockReviewUsecase) GetReviewForm(ctx context.Context, actor entity.Actor, professionalID uint) (*dto.ReviewFormResponse, error) {
	args := m.Called(ctx, actor, professionalID)
	resp, _ := args.Get(0).(*dto.ReviewFormResponse)
	return resp, args.Error(1)
}

func (m *mockReviewUsecase) SubmitReview(ctx context.Context, actor entity.Actor, professionalID uint, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	args := m.Called(ctx, actor, professionalID, req)
	resp, _ := args.Get(0).(*dto.ReviewResponse)
	return resp, args.Error(1)
}

type mockAddressUsecase struct {
	mock.Mock
}

func (m *mockAddressUsecase) LookupCEP(ctx context.Context, rawCEP string) (*dto.AddressResponse, error) {
	args := m.Called(ctx, rawCEP)
	resp, _ := args.Get(0).(*dto.AddressResponse)
	return resp, args.Error(1)
}

// newRequest builds a request as the router would hand it over: route vars
// set and, when actor is non-nil, the authenticated identity in context.
func newRequest(method, target, body string, vars map[string]string, actor *entity.Actor) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if vars != nil {
		req = mux.SetURLVars(req, vars)
	}
	if actor != nil {
		ctx := context.WithValue(req.Context(), middleware.UserIDKey, actor.UserID)
		ctx = context.WithValue(ctx, middleware.RoleKey, actor.Role)
		ctx = context.WithValue(ctx, middleware.TokenIDKey, "token-1")
		req = req.WithContext(ctx)
	}
	return req
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}
