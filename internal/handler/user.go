package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/keymint/keymint/internal/service"
)

// UserHandler handles user registration and removal endpoints.
type UserHandler struct {
	svc    *service.LifecycleService
	logger *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc *service.LifecycleService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		svc:    svc,
		logger: logger,
	}
}

// saveUserRequest mirrors the JSON body of POST /save-user.
type saveUserRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	APIKey    string `json:"apiKey"`
}

// Save handles POST /save-user.
func (h *UserHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req saveUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest)
		return
	}

	input := service.RegisterUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Key:       req.APIKey,
	}

	user, err := h.svc.RegisterUser(r.Context(), input)
	if err != nil {
		if errors.Is(err, service.ErrMissingKey) {
			writeFailure(w, http.StatusBadRequest)
			return
		}
		h.logger.Error("failed to register user", slog.String("error", err.Error()))
		writeFailure(w, http.StatusInternalServerError)
		return
	}

	h.logger.Info("user_registered",
		slog.Int64("user_id", user.ID),
		slog.Int64("apikey_id", user.APIKeyID),
	)

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// Delete handles DELETE /delete-user/{id}.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeFailure(w, http.StatusBadRequest)
		return
	}

	if err := h.svc.RemoveUser(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeFailure(w, http.StatusNotFound)
			return
		}
		h.logger.Error("failed to remove user",
			slog.Int64("user_id", id),
			slog.String("error", err.Error()),
		)
		writeFailure(w, http.StatusInternalServerError)
		return
	}

	h.logger.Info("user_removed", slog.Int64("user_id", id))

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
