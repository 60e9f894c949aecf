package handler

import (
	"net/http"

	"github.com/davi814/projeto-pi-definitivo/internal/delivery/http/middleware"
	"github.com/davi814/projeto-pi-definitivo/internal/usecase"
	"github.com/davi814/projeto-pi-definitivo/pkg/response"
)

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogUsecase: auditLogUsecase,
	}
}

// GetMyActivity lists the audit trail of the authenticated user, newest first.
func (h *AuditLogHandler) GetMyActivity(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	logs, err := h.auditLogUsecase.GetUserActivity(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Erro ao carregar atividade")
		return
	}

	response.Success(w, http.StatusOK, "", logs)
}
