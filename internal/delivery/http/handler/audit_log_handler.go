package handler

import (
	"net/http"

	"go-medical-console/internal/delivery/dto"
	"go-medical-console/internal/usecase"
	"go-medical-console/pkg/response"

	"github.com/spf13/cast"
)

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogUsecase: auditLogUsecase,
	}
}

func (h *AuditLogHandler) GetAuditLog(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	auditLog, err := h.auditLogUsecase.GetAuditLog(r.Context(), id)
	if err != nil {
		if err == usecase.ErrAuditLogNotFound {
			response.NotFound(w, "Entrée de journal introuvable")
			return
		}
		response.InternalServerError(w, "Impossible de charger le journal")
		return
	}

	response.Success(w, http.StatusOK, "", auditLog)
}

func (h *AuditLogHandler) GetAllAuditLogs(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	query := &dto.AuditLogQuery{
		Action:   values.Get("action"),
		Resource: values.Get("resource"),
		Page:     cast.ToInt(values.Get("page")),
		PerPage:  cast.ToInt(values.Get("per_page")),
	}
	if raw := values.Get("user_id"); raw != "" {
		userID := cast.ToInt64(raw)
		query.UserID = &userID
	}

	auditLogs, err := h.auditLogUsecase.GetAllAuditLogs(r.Context(), query)
	if err != nil {
		response.InternalServerError(w, "Impossible de charger le journal")
		return
	}

	response.Success(w, http.StatusOK, "", auditLogs)
}
