package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-contacts/internal/utils"
	"github.com/MKhiriev/go-contacts/models"
	"github.com/go-chi/chi/v5"
)

// showUserInfo returns the part of the target's profile the caller may see.
func (h *Handler) showUserInfo(w http.ResponseWriter, r *http.Request) {
	requesterID, err := authUserID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	info, err := h.services.UserService.ShowUserInfo(r.Context(), requesterID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, info, http.StatusOK)
}

func (h *Handler) getMe(w http.ResponseWriter, r *http.Request) {
	userID, err := authUserID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) updateMe(w http.ResponseWriter, r *http.Request) {
	userID, err := authUserID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var update models.UserUpdate
	if err = utils.DecodeJSON(r, &update); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	user, err := h.services.UserService.UpdateUser(r.Context(), userID, userID, update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) deleteMe(w http.ResponseWriter, r *http.Request) {
	userID, err := authUserID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.UserService.DeleteUser(r.Context(), userID, userID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
