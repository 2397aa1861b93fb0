package http

import (
	"net/http"

	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/internal/utils"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createHandshake(w http.ResponseWriter, r *http.Request) {
	senderID, err := authUserID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	handshake, err := h.services.HandshakeService.CreateHandshake(r.Context(), senderID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, handshake, http.StatusCreated)
}

// acceptHandshake makes the caller and the handshake sender mutual contacts.
func (h *Handler) acceptHandshake(w http.ResponseWriter, r *http.Request) {
	receiverID, err := authUserID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	handshakeID := chi.URLParam(r, "id")
	if err = h.services.HandshakeService.AcceptHandshake(r.Context(), handshakeID, receiverID); err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().
		Str("handshake_id", handshakeID).
		Str("receiver_id", receiverID).
		Msg("handshake accepted")

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteHandshake(w http.ResponseWriter, r *http.Request) {
	senderID, err := authUserID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.HandshakeService.DeleteHandshake(r.Context(), senderID, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
