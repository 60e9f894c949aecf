package handler

import (
	"errors"
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

func TestServiceRequestHandler_Dashboard(t *testing.T) {
	t.Run("professional without profile is sent to completion", func(t *testing.T) {
		actor := entity.Actor{UserID: uuid.New(), Role: entity.RoleProfessional}
		uc := new(mockServiceRequestUsecase)
		h := NewServiceRequestHandler(uc, validator.NewValidator())
		uc.On("GetDashboard", mock.Anything, actor).Return(nil, usecase.ErrProfileRequired)

		rec := httptest.NewRecorder()
		h.Dashboard(rec, newRequest(http.MethodGet, "/dashboard", "", nil, &actor))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, usecase.PathCompleteProfile, rec.Header().Get("Location"))
	})

	t.Run("client list", func(t *testing.T) {
		actor := entity.Actor{UserID: uuid.New(), Role: entity.RoleClient}
		uc := new(mockServiceRequestUsecase)
		h := NewServiceRequestHandler(uc, validator.NewValidator())
		uc.On("GetDashboard", mock.Anything, actor).Return(&dto.DashboardResponse{Role: "client"}, nil)

		rec := httptest.NewRecorder()
		h.Dashboard(rec, newRequest(http.MethodGet, "/dashboard", "", nil, &actor))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unexpected failure hides details", func(t *testing.T) {
		actor := entity.Actor{UserID: uuid.New(), Role: entity.RoleClient}
		uc := new(mockServiceRequestUsecase)
		h := NewServiceRequestHandler(uc, validator.NewValidator())
		uc.On("GetDashboard", mock.Anything, actor).Return(nil, errors.New("connection reset"))

		rec := httptest.NewRecorder()
		h.Dashboard(rec, newRequest(http.MethodGet, "/dashboard", "", nil, &actor))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "connection reset")
	})
}

func TestServiceRequestHandler_CreateRequest(t *testing.T) {
	actor := entity.Actor{UserID: uuid.New(), Role: entity.RoleClient}
	vars := map[string]string{"professional_id": "3"}
	body := `{"title": "Pintura", "description": "Sala e quarto", "budget": "800", "preferred_date": "sábado"}`

	t.Run("created", func(t *testing.T) {
		uc := new(mockServiceRequestUsecase)
		h := NewServiceRequestHandler(uc, validator.NewValidator())
		uc.On("CreateRequest", mock.Anything, actor, uint(3), mock.Anything).
			Return(&dto.ServiceRequestResponse{ID: 1, Status: "pending"}, nil)

		rec := httptest.NewRecorder()
		h.CreateRequest(rec, newRequest(http.MethodPost, "/solicitar-orcamento/3", body, vars, &actor))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "Solicitação enviada com sucesso!", decodeResponse(t, rec).Message)
	})

	t.Run("missing title", func(t *testing.T) {
		uc := new(mockServiceRequestUsecase)
		h := NewServiceRequestHandler(uc, validator.NewValidator())

		rec := httptest.NewRecorder()
		h.CreateRequest(rec, newRequest(http.MethodPost, "/solicitar-orcamento/3", `{"description": "x"}`, vars, &actor))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		uc.AssertNotCalled(t, "CreateRequest", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown professional points back at the form", func(t *testing.T) {
		uc := new(mockServiceRequestUsecase)
		h := NewServiceRequestHandler(uc, validator.NewValidator())
		uc.On("CreateRequest", mock.Anything, actor, uint(3), mock.Anything).Return(nil, usecase.ErrProfessionalNotFound)

		rec := httptest.NewRecorder()
		h.CreateRequest(rec, newRequest(http.MethodPost, "/solicitar-orcamento/3", body, vars, &actor))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "/solicitar-orcamento/3", decodeResponse(t, rec).Redirect)
	})
}

func TestServiceRequestHandler_UpdateStatus(t *testing.T) {
	actor := entity.Actor{UserID: uuid.New(), Role: entity.RoleClient}
	vars := map[string]string{"request_id": "5"}

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantKind   string
	}{
		{"third party", usecase.ErrAccessDenied, http.StatusForbidden, "AUTHORIZATION_ERROR"},
		{"bad transition", usecase.ErrInvalidStatusTransition, http.StatusConflict, "STATE_ERROR"},
		{"missing request", usecase.ErrServiceRequestNotFound, http.StatusNotFound, "NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(mockServiceRequestUsecase)
			h := NewServiceRequestHandler(uc, validator.NewValidator())
			uc.On("UpdateStatus", mock.Anything, actor, uint(5), mock.Anything).Return(nil, tt.err)

			rec := httptest.NewRecorder()
			h.UpdateStatus(rec, newRequest(http.MethodPost, "/atualizar-status/5", `{"status":"accepted"}`, vars, &actor))

			assert.Equal(t, tt.wantStatus, rec.Code)
			resp := decodeResponse(t, rec)
			assert.Equal(t, tt.wantKind, resp.Error)
			assert.Equal(t, usecase.PathDashboard, resp.Redirect)
		})
	}

	t.Run("updated", func(t *testing.T) {
		uc := new(mockServiceRequestUsecase)
		h := NewServiceRequestHandler(uc, validator.NewValidator())
		uc.On("UpdateStatus", mock.Anything, actor, uint(5), &dto.UpdateStatusRequest{Status: "finished"}).
			Return(&dto.ServiceRequestResponse{ID: 5, Status: "finished"}, nil)

		rec := httptest.NewRecorder()
		h.UpdateStatus(rec, newRequest(http.MethodPost, "/atualizar-status/5", `{"status":"finished"}`, vars, &actor))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Status atualizado com sucesso!", decodeResponse(t, rec).Message)
	})
}
