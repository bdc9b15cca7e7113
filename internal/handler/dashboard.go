package handler

import (
	"log/slog"
	"net/http"

	"github.com/keymint/keymint/internal/service"
)

// DashboardHandler serves the aggregated admin dashboard data.
type DashboardHandler struct {
	svc    *service.DashboardService
	logger *slog.Logger
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(svc *service.DashboardService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		svc:    svc,
		logger: logger,
	}
}

// Data handles GET /dashboard-data.
// Returns all users and all API keys with derived status, or a single
// failure if either listing fails.
func (h *DashboardHandler) Data(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.svc.GetDashboard(r.Context())
	if err != nil {
		h.logger.Error("failed to load dashboard", slog.String("error", err.Error()))
		writeFailure(w, http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"users":   dashboard.Users,
		"apikeys": dashboard.APIKeys,
	})
}
