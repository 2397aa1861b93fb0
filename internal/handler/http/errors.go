// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"

	"github.com/MKhiriev/go-contacts/models"
)

// Sentinel errors produced by the transport layer itself. Callers can match
// against them with [errors.Is]; each one wraps a kind from the models package.
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = fmt.Errorf("%w: empty `Authorization` header", models.ErrUnauthorized)

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = fmt.Errorf("%w: invalid `Authorization` header", models.ErrUnauthorized)

	// ErrNoUserInContext means a protected handler ran without the auth
	// middleware in front of it.
	ErrNoUserInContext = fmt.Errorf("%w: no authenticated user in request context", models.ErrUnauthorized)

	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = fmt.Errorf("%w: invalid JSON was passed", models.ErrValidation)

	// ErrRouteNotFound is written for unknown paths and unsupported methods.
	ErrRouteNotFound = fmt.Errorf("route %w", models.ErrNotFound)
)
