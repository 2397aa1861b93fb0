// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-contacts/internal/utils"
	"github.com/MKhiriev/go-contacts/models"
	"github.com/go-chi/chi/v5"
)

// Every circle endpoint acts on behalf of the authenticated user, who is
// passed to the service as the circle owner.

func (h *Handler) createCircle(w http.ResponseWriter, r *http.Request) {
	ownerID, err := authUserID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var request models.CircleNameRequest
	if err = utils.DecodeJSON(r, &request); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	circle, err := h.services.CircleService.CreateCustomCircle(r.Context(), ownerID, request.Name)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, circle, http.StatusCreated)
}

func (h *Handler) getDefaultCircle(w http.ResponseWriter, r *http.Request) {
	ownerID, err := authUserID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	circle, err := h.services.CircleService.GetDefaultCircle(r.Context(), ownerID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, circle, http.StatusOK)
}

func (h *Handler) hasContact(w http.ResponseWriter, r *http.Request) {
	ownerID, err := authUserID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	circleID, contactID := chi.URLParam(r, "id"), chi.URLParam(r, "contactID")

	isContact, err := h.services.CircleService.HasContact(r.Context(), circleID, ownerID, contactID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.HasContactResponse{
		CircleID:  circleID,
		ContactID: contactID,
		IsContact: isContact,
	}, http.StatusOK)
}

func (h *Handler) addContact(w http.ResponseWriter, r *http.Request) {
	ownerID, err := authUserID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	circle, err := h.services.CircleService.AddContact(r.Context(), chi.URLParam(r, "id"), ownerID, chi.URLParam(r, "contactID"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, circle, http.StatusOK)
}

func (h *Handler) removeContact(w http.ResponseWriter, r *http.Request) {
	ownerID, err := authUserID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	circle, err := h.services.CircleService.RemoveContact(r.Context(), chi.URLParam(r, "id"), ownerID, chi.URLParam(r, "contactID"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, circle, http.StatusOK)
}

// updateAllowedInfo merges a partial policy such as {"email1": true} into the
// circle's current one.
func (h *Handler) updateAllowedInfo(w http.ResponseWriter, r *http.Request) {
	ownerID, err := authUserID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var partial models.AllowedInfo
	if err = utils.DecodeJSON(r, &partial); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	circle, err := h.services.CircleService.UpdateAllowedInfo(r.Context(), chi.URLParam(r, "id"), ownerID, partial)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, circle, http.StatusOK)
}

func (h *Handler) updateCircleName(w http.ResponseWriter, r *http.Request) {
	ownerID, err := authUserID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var request models.CircleNameRequest
	if err = utils.DecodeJSON(r, &request); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	circle, err := h.services.CircleService.UpdateName(r.Context(), chi.URLParam(r, "id"), ownerID, request.Name)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, circle, http.StatusOK)
}

func (h *Handler) deleteCircle(w http.ResponseWriter, r *http.Request) {
	ownerID, err := authUserID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.CircleService.DeleteCircle(r.Context(), chi.URLParam(r, "id"), ownerID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
