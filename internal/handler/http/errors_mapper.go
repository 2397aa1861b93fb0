package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/internal/service"
	"github.com/MKhiriev/go-contacts/internal/utils"
	"github.com/MKhiriev/go-contacts/models"
)

// errorStatuses is walked in order, so errors that wrap a broader kind
// must be listed before the kind itself.
var errorStatuses = []struct {
	err    error
	status int
}{
	// authentication problems are 401, ownership problems are 403
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized},
	{ErrNoUserInContext, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{service.ErrWrongCredentials, http.StatusUnauthorized},

	{models.ErrNotFound, http.StatusNotFound},
	{models.ErrUnauthorized, http.StatusForbidden},
	{models.ErrInvalidOperation, http.StatusBadRequest},
	{models.ErrValidation, http.StatusBadRequest},
	{models.ErrConstraintViolation, http.StatusConflict},
	{models.ErrExpiredOrInvalid, http.StatusGone},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and writes it as a [models.ErrorResponse]. Messages of
// unclassified errors are not exposed to the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	response := models.ErrorResponse{
		Error:  err.Error(),
		Reason: models.Reason(err),
	}

	if status == http.StatusInternalServerError {
		log.Err(err).Msg("unexpected error occurred")
		response.Error = http.StatusText(http.StatusInternalServerError)
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	if _, err = utils.WriteJSON(w, response, status); err != nil {
		log.Err(err).Msg("error writing error response")
	}
}
