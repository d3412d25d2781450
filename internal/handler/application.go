package handler

import (
	"log/slog"
	"net/http"

	"github.com/hirebase/hirebase-go/internal/middleware"
	"github.com/hirebase/hirebase-go/internal/model"
	"github.com/hirebase/hirebase-go/internal/service"
)

// ApplicationHandler serves the application listing for authenticated users.
type ApplicationHandler struct {
	service *service.ApplicationService
}

// NewApplicationHandler creates a new ApplicationHandler.
func NewApplicationHandler(svc *service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{service: svc}
}

// HandleListApplications handles GET /applications requests.
func (h *ApplicationHandler) HandleListApplications(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.SubjectFromContext(r.Context()); !ok {
		writeJSON(w, http.StatusUnauthorized, model.ErrorEnvelope{
			Error: model.ErrorBody{ErrorCode: -1, ErrorMsg: "unauthenticated"},
		})
		slog.Warn("applications rejected", "handler", "application", "reason", "no authenticated subject")
		return
	}

	applications, err := h.service.ListApplications(r.Context())
	if err != nil {
		writeText(w, http.StatusInternalServerError, "An unknown error occurred")
		slog.Error("applications failed", "handler", "application", "reason", "store failure", "error", err)
		return
	}

	writeJSON(w, http.StatusOK, model.ApplicationsResponse{
		Message:      "Applications gotten successfully",
		Applications: applications,
	})
	slog.Info("applications listed", "handler", "application", "reason", "sent all applications", "count", len(applications))
}
