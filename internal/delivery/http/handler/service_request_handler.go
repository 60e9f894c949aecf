package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/davi814/projeto-pi-definitivo/internal/delivery/dto"
	"github.com/davi814/projeto-pi-definitivo/internal/usecase"
	"github.com/davi814/projeto-pi-definitivo/pkg/response"
	"github.com/davi814/projeto-pi-definitivo/pkg/validator"
)

type ServiceRequestHandler struct {
	requestUsecase usecase.ServiceRequestUsecase
	validator      *validator.CustomValidator
}

func NewServiceRequestHandler(requestUsecase usecase.ServiceRequestUsecase, validator *validator.CustomValidator) *ServiceRequestHandler {
	return &ServiceRequestHandler{
		requestUsecase: requestUsecase,
		validator:      validator,
	}
}

func (h *ServiceRequestHandler) RequestForm(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	professionalID, ok := pathID(r, "professional_id")
	if !ok {
		response.NotFound(w, usecase.ErrProfessionalNotFound.Error())
		return
	}

	form, err := h.requestUsecase.GetRequestForm(r.Context(), actor, professionalID)
	if err != nil {
		writeError(w, err, usecase.PathHome, "Erro ao carregar formulário")
		return
	}

	response.Success(w, http.StatusOK, "", form)
}

// CreateRequest sends a quote request to a professional
// @Summary Request a quote
// @Tags Service Requests
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param professional_id path int true "Professional ID"
// @Param request body dto.CreateServiceRequestRequest true "Service Request"
// @Success 201 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /solicitar-orcamento/{professional_id} [post]
func (h *ServiceRequestHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	professionalID, ok := pathID(r, "professional_id")
	if !ok {
		response.NotFound(w, usecase.ErrProfessionalNotFound.Error())
		return
	}

	var req dto.CreateServiceRequestRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	created, err := h.requestUsecase.CreateRequest(r.Context(), actor, professionalID, &req)
	if err != nil {
		writeError(w, err, fmt.Sprintf("/solicitar-orcamento/%d", professionalID), "Erro ao enviar solicitação")
		return
	}

	response.SuccessWithRedirect(w, http.StatusCreated, "Solicitação enviada com sucesso!", created, usecase.PathDashboard)
}

// Dashboard lists the requests relevant to the caller's role.
func (h *ServiceRequestHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	dashboard, err := h.requestUsecase.GetDashboard(r.Context(), actor)
	if err != nil {
		if errors.Is(err, usecase.ErrProfileRequired) {
			response.SeeOther(w, usecase.PathCompleteProfile, err.Error())
			return
		}
		writeError(w, err, usecase.PathHome, "Erro ao carregar painel")
		return
	}

	response.Success(w, http.StatusOK, "", dashboard)
}

func (h *ServiceRequestHandler) GetRequest(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	requestID, ok := pathID(r, "request_id")
	if !ok {
		response.NotFound(w, usecase.ErrServiceRequestNotFound.Error())
		return
	}

	request, err := h.requestUsecase.GetRequest(r.Context(), actor, requestID)
	if err != nil {
		writeError(w, err, usecase.PathDashboard, "Erro ao carregar solicitação")
		return
	}

	response.Success(w, http.StatusOK, "", request)
}

// UpdateStatus moves a request through its workflow
// @Summary Update a service request status
// @Tags Service Requests
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request_id path int true "Service Request ID"
// @Param request body dto.UpdateStatusRequest true "Status"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /atualizar-status/{request_id} [post]
func (h *ServiceRequestHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	requestID, ok := pathID(r, "request_id")
	if !ok {
		response.NotFound(w, usecase.ErrServiceRequestNotFound.Error())
		return
	}

	var req dto.UpdateStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	updated, err := h.requestUsecase.UpdateStatus(r.Context(), actor, requestID, &req)
	if err != nil {
		writeError(w, err, usecase.PathDashboard, "Erro ao atualizar status")
		return
	}

	response.SuccessWithRedirect(w, http.StatusOK, "Status atualizado com sucesso!", updated, usecase.PathDashboard)
}
