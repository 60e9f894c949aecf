package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/davi814/projeto-pi-definitivo/internal/delivery/http/middleware"
	"github.com/davi814/projeto-pi-definitivo/internal/domain/entity"
	"github.com/davi814/projeto-pi-definitivo/pkg/apperror"
	"github.com/davi814/projeto-pi-definitivo/pkg/response"

	"github.com/gorilla/mux"
)

// writeError maps a usecase error to its status. Classified errors carry a
// user facing message and point back at the form that produced them.
func writeError(w http.ResponseWriter, err error, redirect, fallback string) {
	status := apperror.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		response.InternalServerError(w, fallback)
		return
	}
	response.ErrorWithRedirect(w, status, err.Error(), apperror.KindOf(err).String(), redirect)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		response.Error(w, http.StatusBadRequest, "Corpo da requisição inválido", nil)
		return false
	}
	return true
}

// pathID parses a numeric route variable.
func pathID(r *http.Request, name string) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)[name], 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func requireActor(w http.ResponseWriter, r *http.Request) (entity.Actor, bool) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Faça login para continuar")
	}
	return actor, ok
}
