// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// Chi answers 405 whenever a path matches a registered route but the method
// is not handled. This handler answers 404 with the regular JSON error body
// instead, hiding the existence of the route from callers that use an
// unsupported method.
//
// Routes are resolved with [chi.Mux.Match], so parameterised patterns such as
// /api/circles/{id} are matched the same way the router matches them. If the
// method turns out to be registered after all, the request is handed back to
// the router.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		writeError(w, r, ErrRouteNotFound)
	}
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, ErrRouteNotFound)
}
