package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/davi814/projeto-pi-definitivo/internal/delivery/dto"
	"github.com/davi814/projeto-pi-definitivo/internal/usecase"
	"github.com/davi814/projeto-pi-definitivo/pkg/apperror"
	"github.com/davi814/projeto-pi-definitivo/pkg/response"
	"github.com/davi814/projeto-pi-definitivo/pkg/validator"
)

type ProfessionalHandler struct {
	professionalUsecase usecase.ProfessionalUsecase
	validator           *validator.CustomValidator
}

func NewProfessionalHandler(professionalUsecase usecase.ProfessionalUsecase, validator *validator.CustomValidator) *ProfessionalHandler {
	return &ProfessionalHandler{
		professionalUsecase: professionalUsecase,
		validator:           validator,
	}
}

// Landing returns the categories and the newest professionals
// @Summary Landing page data
// @Tags Professionals
// @Produce json
// @Success 200 {object} response.Response
// @Router / [get]
func (h *ProfessionalHandler) Landing(w http.ResponseWriter, r *http.Request) {
	landing, err := h.professionalUsecase.GetLanding(r.Context())
	if err != nil {
		response.InternalServerError(w, "Erro ao carregar a página inicial")
		return
	}

	response.Success(w, http.StatusOK, "", landing)
}

// Search filters professionals by category and city.
func (h *ProfessionalHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := dto.SearchProfessionalsRequest{
		City: strings.TrimSpace(query.Get("city")),
	}
	if raw := strings.TrimSpace(query.Get("category")); raw != "" {
		categoryID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			response.ErrorWithRedirect(w, http.StatusBadRequest, "Categoria inválida", apperror.KindValidation.String(), "/buscar")
			return
		}
		req.CategoryID = uint(categoryID)
	}

	result, err := h.professionalUsecase.Search(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Erro ao buscar profissionais")
		return
	}

	response.Success(w, http.StatusOK, "", result)
}

func (h *ProfessionalHandler) GetProfessional(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.NotFound(w, usecase.ErrProfessionalNotFound.Error())
		return
	}

	detail, err := h.professionalUsecase.GetProfessional(r.Context(), id)
	if err != nil {
		writeError(w, err, "/buscar", "Erro ao carregar profissional")
		return
	}

	response.Success(w, http.StatusOK, "", detail)
}

// CompleteProfileForm returns the categories the profile form offers.
func (h *ProfessionalHandler) CompleteProfileForm(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	form, err := h.professionalUsecase.GetProfileForm(r.Context(), actor)
	if err != nil {
		if errors.Is(err, usecase.ErrProfileAlreadyExists) {
			response.SeeOther(w, usecase.PathDashboard, "Perfil profissional já cadastrado")
			return
		}
		writeError(w, err, usecase.PathHome, "Erro ao carregar categorias")
		return
	}

	response.Success(w, http.StatusOK, "", form)
}

// CompleteProfile creates the professional profile
// @Summary Complete the professional profile
// @Tags Professionals
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CompleteProfileRequest true "Profile Request"
// @Success 201 {object} response.Response
// @Success 303 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /completar-perfil-profissional [post]
func (h *ProfessionalHandler) CompleteProfile(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	var req dto.CompleteProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	profile, err := h.professionalUsecase.CompleteProfile(r.Context(), actor, &req)
	if err != nil {
		if errors.Is(err, usecase.ErrProfileAlreadyExists) {
			response.SeeOther(w, usecase.PathDashboard, "Perfil profissional já cadastrado")
			return
		}
		writeError(w, err, usecase.PathCompleteProfile, "Erro ao criar perfil profissional")
		return
	}

	response.SuccessWithRedirect(w, http.StatusCreated, "Perfil profissional criado com sucesso!", profile, usecase.PathDashboard)
}
