package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/davi814/projeto-pi-definitivo/internal/delivery/dto"
	"github.com/davi814/projeto-pi-definitivo/internal/domain/entity"
	"github.com/davi814/projeto-pi-definitivo/internal/usecase"
	"github.com/davi814/projeto-pi-definitivo/pkg/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestProfessionalHandler_CompleteProfile(t *testing.T) {
	actor := entity.Actor{UserID: uuid.New(), Role: entity.RoleProfessional}
	body := `{"category_id": 2, "bio": "Eletricista", "experience_years": 5, "starting_price": "120.50"}`

	t.Run("created", func(t *testing.T) {
		uc := new(mockProfessionalUsecase)
		h := NewProfessionalHandler(uc, validator.NewValidator())
		uc.On("CompleteProfile", mock.Anything, actor, mock.MatchedBy(func(req *dto.CompleteProfileRequest) bool {
			return req.CategoryID == 2 && req.StartingPrice.String() == "120.5"
		})).Return(&dto.ProfessionalResponse{ID: 9}, nil)

		rec := httptest.NewRecorder()
		h.CompleteProfile(rec, newRequest(http.MethodPost, "/completar-perfil-profissional", body, nil, &actor))

		assert.Equal(t, http.StatusCreated, rec.Code)
		resp := decodeResponse(t, rec)
		assert.Equal(t, "Perfil profissional criado com sucesso!", resp.Message)
		assert.Equal(t, usecase.PathDashboard, resp.Redirect)
		uc.AssertExpectations(t)
	})

	t.Run("existing profile redirects to dashboard", func(t *testing.T) {
		uc := new(mockProfessionalUsecase)
		h := NewProfessionalHandler(uc, validator.NewValidator())
		uc.On("CompleteProfile", mock.Anything, actor, mock.Anything).Return(nil, usecase.ErrProfileAlreadyExists)

		rec := httptest.NewRecorder()
		h.CompleteProfile(rec, newRequest(http.MethodPost, "/completar-perfil-profissional", body, nil, &actor))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, usecase.PathDashboard, rec.Header().Get("Location"))
	})

	t.Run("client is forbidden", func(t *testing.T) {
		client := entity.Actor{UserID: uuid.New(), Role: entity.RoleClient}
		uc := new(mockProfessionalUsecase)
		h := NewProfessionalHandler(uc, validator.NewValidator())
		uc.On("CompleteProfile", mock.Anything, client, mock.Anything).Return(nil, usecase.ErrNotProfessional)

		rec := httptest.NewRecorder()
		h.CompleteProfile(rec, newRequest(http.MethodPost, "/completar-perfil-profissional", body, nil, &client))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, usecase.PathCompleteProfile, decodeResponse(t, rec).Redirect)
	})

	t.Run("unknown category", func(t *testing.T) {
		uc := new(mockProfessionalUsecase)
		h := NewProfessionalHandler(uc, validator.NewValidator())
		uc.On("CompleteProfile", mock.Anything, actor, mock.Anything).Return(nil, usecase.ErrCategoryNotFound)

		rec := httptest.NewRecorder()
		h.CompleteProfile(rec, newRequest(http.MethodPost, "/completar-perfil-profissional", body, nil, &actor))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("anonymous", func(t *testing.T) {
		uc := new(mockProfessionalUsecase)
		h := NewProfessionalHandler(uc, validator.NewValidator())

		rec := httptest.NewRecorder()
		h.CompleteProfile(rec, newRequest(http.MethodPost, "/completar-perfil-profissional", body, nil, nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "/login", decodeResponse(t, rec).Redirect)
	})
}

func TestProfessionalHandler_CompleteProfileFormRedirectsWhenDone(t *testing.T) {
	actor := entity.Actor{UserID: uuid.New(), Role: entity.RoleProfessional}
	uc := new(mockProfessionalUsecase)
	h := NewProfessionalHandler(uc, validator.NewValidator())
	uc.On("GetProfileForm", mock.Anything, actor).Return(nil, usecase.ErrProfileAlreadyExists)

	rec := httptest.NewRecorder()
	h.CompleteProfileForm(rec, newRequest(http.MethodGet, "/completar-perfil-profissional", "", nil, &actor))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, usecase.PathDashboard, rec.Header().Get("Location"))
}

func TestProfessionalHandler_Search(t *testing.T) {
	t.Run("filters reach the usecase", func(t *testing.T) {
		uc := new(mockProfessionalUsecase)
		h := NewProfessionalHandler(uc, validator.NewValidator())
		uc.On("Search", mock.Anything, &dto.SearchProfessionalsRequest{CategoryID: 4, City: "paulo"}).
			Return(&dto.SearchProfessionalsResponse{Total: 0}, nil)

		rec := httptest.NewRecorder()
		h.Search(rec, newRequest(http.MethodGet, "/buscar?category=4&city=paulo", "", nil, nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		uc.AssertExpectations(t)
	})

	t.Run("non numeric category is rejected", func(t *testing.T) {
		uc := new(mockProfessionalUsecase)
		h := NewProfessionalHandler(uc, validator.NewValidator())

		rec := httptest.NewRecorder()
		h.Search(rec, newRequest(http.MethodGet, "/buscar?category=abc&city=paulo", "", nil, nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeResponse(t, rec)
		assert.Equal(t, "Categoria inválida", resp.Message)
		assert.Equal(t, "/buscar", resp.Redirect)
		uc.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
	})
}

func TestProfessionalHandler_GetProfessional(t *testing.T) {
	t.Run("non numeric id", func(t *testing.T) {
		uc := new(mockProfessionalUsecase)
		h := NewProfessionalHandler(uc, validator.NewValidator())

		rec := httptest.NewRecorder()
		h.GetProfessional(rec, newRequest(http.MethodGet, "/profissional/abc", "", map[string]string{"id": "abc"}, nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		uc.AssertNotCalled(t, "GetProfessional", mock.Anything, mock.Anything)
	})

	t.Run("missing professional", func(t *testing.T) {
		uc := new(mockProfessionalUsecase)
		h := NewProfessionalHandler(uc, validator.NewValidator())
		uc.On("GetProfessional", mock.Anything, uint(42)).Return(nil, usecase.ErrProfessionalNotFound)

		rec := httptest.NewRecorder()
		h.GetProfessional(rec, newRequest(http.MethodGet, "/profissional/42", "", map[string]string{"id": "42"}, nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
