package handler

import (
	"errors"
	"net/http"
	"strconv"

	"foodstall-backend/internal/usecase"
	"foodstall-backend/pkg/response"

	"github.com/gorilla/mux"
)

const msgAuditLogNotFound = "Audit log not found"

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogUsecase: auditLogUsecase,
	}
}

func (h *AuditLogHandler) GetAuditLog(w http.ResponseWriter, r *http.Request) {
	auditLogID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.NotFound(w, msgAuditLogNotFound)
		return
	}

	auditLog, err := h.auditLogUsecase.GetAuditLog(r.Context(), auditLogID)
	if err != nil {
		if errors.Is(err, usecase.ErrAuditLogNotFound) {
			response.NotFound(w, msgAuditLogNotFound)
			return
		}
		response.InternalServerError(w, "Failed to get audit log", err)
		return
	}

	response.Success(w, http.StatusOK, "Audit log retrieved successfully", "auditLog", auditLog)
}

func (h *AuditLogHandler) GetAllAuditLogs(w http.ResponseWriter, r *http.Request) {
	auditLogs, err := h.auditLogUsecase.GetAllAuditLogs(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get audit logs", err)
		return
	}

	response.Success(w, http.StatusOK, "Audit logs retrieved successfully", "auditLogs", auditLogs)
}
