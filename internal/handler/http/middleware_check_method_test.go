// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-contacts/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// buildRouter creates a minimal chi.Mux with a set of routes for tests.
// It intentionally does not use Handler.Init() to avoid service setup.
func buildRouter() *chi.Mux {
	router := chi.NewRouter()

	router.Get("/api/items", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Delete("/api/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	router.Route("/api/nested", func(r chi.Router) {
		r.Put("/{id}/members/{memberID}", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{"registered static route", http.MethodGet, "/api/items", http.StatusOK},
		{"registered parameterised route", http.MethodDelete, "/api/items/42", http.StatusNoContent},
		{"registered nested route", http.MethodPut, "/api/nested/1/members/2", http.StatusOK},
		{"wrong method on static route", http.MethodPost, "/api/items", http.StatusNotFound},
		{"wrong method on parameterised route", http.MethodGet, "/api/items/42", http.StatusNotFound},
		{"wrong method on nested route", http.MethodDelete, "/api/nested/1/members/2", http.StatusNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tc.expectedStatus, rec.Code)
			if tc.expectedStatus == http.StatusNotFound {
				assert.Equal(t, models.ReasonNotFound, decodeError(t, rec).Reason)
			}
		})
	}
}
