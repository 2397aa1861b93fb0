package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.AuthService.ParseToken] and stores the authenticated user's id
// in the request context with [utils.WithUserID].
//
// Requests are rejected with 401 when the header is absent
// ([ErrEmptyAuthorizationHeader]), malformed ([ErrInvalidAuthorizationHeader])
// or carries a token that is expired or otherwise invalid.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err))
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		logger.FromContext(ctx).Debug().Str("user_id", token.UserID).Msg("request authenticated")

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(ctx, token.UserID)))
	})
}

// authUserID returns the id stored by [Handler.auth].
func authUserID(r *http.Request) (string, error) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return "", ErrNoUserInContext
	}
	return userID, nil
}
