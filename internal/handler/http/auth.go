package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/internal/utils"
	"github.com/MKhiriev/go-contacts/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := utils.DecodeJSON(r, &request); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	registeredUser, err := h.services.UserService.RegisterUser(ctx, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Str("user_id", registeredUser.ID).Msg("user registered")

	if !h.setAuthorization(w, r, registeredUser) {
		return
	}
	utils.WriteJSON(w, registeredUser, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := utils.DecodeJSON(r, &request); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("user_id", foundUser.ID).Msg("user successfully logged in")

	if !h.setAuthorization(w, r, foundUser) {
		return
	}
	utils.WriteJSON(w, foundUser, http.StatusOK)
}

// setAuthorization issues a token for user and puts it in the
// "Authorization" response header. It writes the error response itself and
// reports false when the token could not be created.
func (h *Handler) setAuthorization(w http.ResponseWriter, r *http.Request, user models.User) bool {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		writeError(w, r, err)
		return false
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	return true
}
