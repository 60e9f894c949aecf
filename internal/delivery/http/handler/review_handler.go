package handler

import (
	"fmt"
	"net/http"

	"github.com/davi814/projeto-pi-definitivo/internal/delivery/dto"
	"github.com/davi814/projeto-pi-definitivo/internal/usecase"
	"github.com/davi814/projeto-pi-definitivo/pkg/response"
	"github.com/davi814/projeto-pi-definitivo/pkg/validator"
)

type ReviewHandler struct {
	reviewUsecase usecase.ReviewUsecase
	validator     *validator.CustomValidator
}

func NewReviewHandler(reviewUsecase usecase.ReviewUsecase, validator *validator.CustomValidator) *ReviewHandler {
	return &ReviewHandler{
		reviewUsecase: reviewUsecase,
		validator:     validator,
	}
}

func (h *ReviewHandler) ReviewForm(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	professionalID, ok := pathID(r, "professional_id")
	if !ok {
		response.NotFound(w, usecase.ErrProfessionalNotFound.Error())
		return
	}

	form, err := h.reviewUsecase.GetReviewForm(r.Context(), actor, professionalID)
	if err != nil {
		writeError(w, err, usecase.PathDashboard, "Erro ao carregar formulário")
		return
	}

	response.Success(w, http.StatusOK, "", form)
}

// SubmitReview rates a professional
// @Summary Review a professional
// @Tags Reviews
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param professional_id path int true "Professional ID"
// @Param request body dto.CreateReviewRequest true "Review"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /avaliar/{professional_id} [post]
func (h *ReviewHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	professionalID, ok := pathID(r, "professional_id")
	if !ok {
		response.NotFound(w, usecase.ErrProfessionalNotFound.Error())
		return
	}

	var req dto.CreateReviewRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	review, err := h.reviewUsecase.SubmitReview(r.Context(), actor, professionalID, &req)
	if err != nil {
		writeError(w, err, fmt.Sprintf("/avaliar/%d", professionalID), "Erro ao enviar avaliação")
		return
	}

	response.SuccessWithRedirect(w, http.StatusCreated, "Avaliação enviada com sucesso!", review, fmt.Sprintf("/profissional/%d", professionalID))
}
