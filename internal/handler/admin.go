package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/keymint/keymint/internal/service"
)

// AdminHandler handles admin registration and login endpoints.
type AdminHandler struct {
	svc    *service.AdminService
	logger *slog.Logger
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(svc *service.AdminService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		svc:    svc,
		logger: logger,
	}
}

// credentialsRequest mirrors the JSON body of the admin endpoints.
type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles POST /register-admin.
func (h *AdminHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest)
		return
	}

	admin, err := h.svc.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			writeFailure(w, http.StatusConflict)
			return
		}
		h.logger.Error("failed to register admin", slog.String("error", err.Error()))
		writeFailure(w, http.StatusInternalServerError)
		return
	}

	h.logger.Info("admin_registered", slog.Int64("admin_id", admin.ID))

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// Login handles POST /login-admin.
// Unknown email and wrong password produce the same response.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest)
		return
	}

	admin, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			writeFailure(w, http.StatusUnauthorized)
			return
		}
		h.logger.Error("failed to process admin login", slog.String("error", err.Error()))
		writeFailure(w, http.StatusInternalServerError)
		return
	}

	h.logger.Info("admin_login", slog.Int64("admin_id", admin.ID))

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
