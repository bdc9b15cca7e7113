package handler

import (
	"log/slog"
	"net/http"

	"github.com/keymint/keymint/internal/service"
)

// APIKeyHandler handles API key issuance endpoints.
type APIKeyHandler struct {
	svc    *service.LifecycleService
	logger *slog.Logger
}

// NewAPIKeyHandler creates a new APIKeyHandler.
func NewAPIKeyHandler(svc *service.LifecycleService, logger *slog.Logger) *APIKeyHandler {
	return &APIKeyHandler{
		svc:    svc,
		logger: logger,
	}
}

// Create handles POST /create.
// Issues a fresh key without persisting it; the key is only stored once a
// user registers with it.
func (h *APIKeyHandler) Create(w http.ResponseWriter, r *http.Request) {
	key, err := h.svc.IssueKey(r.Context())
	if err != nil {
		h.logger.Error("failed to issue API key", slog.String("error", err.Error()))
		writeFailure(w, http.StatusInternalServerError)
		return
	}

	h.logger.Info("api_key_issued")

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"apiKey":  key,
	})
}
