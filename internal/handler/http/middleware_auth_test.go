package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-contacts/internal/service"
	"github.com/MKhiriev/go-contacts/internal/utils"
	"github.com/MKhiriev/go-contacts/models"
	"github.com/stretchr/testify/assert"
)

// runAuth passes a request with the given Authorization header through the
// auth middleware and reports the user id seen by the next handler.
func runAuth(t *testing.T, authHeader string) (*httptest.ResponseRecorder, string, bool) {
	t.Helper()

	h := newTestHandler(&service.Services{AuthService: tokenAuth()})

	var (
		gotUserID string
		called    bool
	)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		gotUserID, _ = utils.GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rec, req)

	return rec, gotUserID, called
}

func TestAuth_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantCalled bool
		wantUserID string
	}{
		{"valid token", "Bearer " + testToken, http.StatusOK, true, testUserID},
		{"scheme is case insensitive", "bearer " + testToken, http.StatusOK, true, testUserID},
		{"missing header", "", http.StatusUnauthorized, false, ""},
		{"token without scheme", testToken, http.StatusUnauthorized, false, ""},
		{"wrong scheme", "Basic " + testToken, http.StatusUnauthorized, false, ""},
		{"scheme only", "Bearer", http.StatusUnauthorized, false, ""},
		{"rejected token", "Bearer expired.jwt.token", http.StatusUnauthorized, false, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec, userID, called := runAuth(t, tc.header)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantCalled, called)
			assert.Equal(t, tc.wantUserID, userID)
			if !tc.wantCalled {
				assert.Equal(t, models.ReasonUnauthorized, decodeError(t, rec).Reason)
			}
		})
	}
}

func TestAuthUserID_MissingFromContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, err := authUserID(req)
	assert.ErrorIs(t, err, ErrNoUserInContext)

	userID, err := authUserID(req.WithContext(utils.WithUserID(req.Context(), "u-1")))
	assert.NoError(t, err)
	assert.Equal(t, "u-1", userID)
}
