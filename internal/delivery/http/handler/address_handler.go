package handler

import (
	"net/http"

	"github.com/davi814/projeto-pi-definitivo/internal/usecase"
	"github.com/davi814/projeto-pi-definitivo/pkg/response"

	"github.com/gorilla/mux"
)

type AddressHandler struct {
	addressUsecase usecase.AddressUsecase
}

func NewAddressHandler(addressUsecase usecase.AddressUsecase) *AddressHandler {
	return &AddressHandler{
		addressUsecase: addressUsecase,
	}
}

// ValidateCEP resolves a postal code for the registration form. The body is
// the bare address object so the form script can fill fields directly.
// @Summary Resolve a CEP
// @Tags Address
// @Produce json
// @Param cep path string true "CEP"
// @Success 200 {object} dto.AddressResponse
// @Failure 400 {object} map[string]string
// @Router /api/validar-cep/{cep} [get]
func (h *AddressHandler) ValidateCEP(w http.ResponseWriter, r *http.Request) {
	address, err := h.addressUsecase.LookupCEP(r.Context(), mux.Vars(r)["cep"])
	if err != nil {
		response.JSON(w, http.StatusBadRequest, map[string]string{"error": usecase.ErrInvalidCEP.Error()})
		return
	}

	response.JSON(w, http.StatusOK, address)
}
