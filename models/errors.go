// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

// Error kinds shared by every layer of the application.
//
// Each sentinel error declared in the store, service and validators packages
// wraps exactly one of these kinds, so callers can classify any failure with
// [errors.Is] without knowing which layer produced it. The HTTP layer maps
// kinds to status codes; [Reason] maps them to stable machine-readable codes.
var (
	// ErrNotFound means an identifier did not resolve to a record.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized means the caller does not own the resource or is not
	// a member of any circle granting access to it.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidOperation means the action is forbidden by the current state
	// of the entity (e.g. renaming a default circle).
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrValidation means the provided input is malformed.
	ErrValidation = errors.New("validation failed")

	// ErrConstraintViolation means the storage layer rejected the write
	// because of a uniqueness or check constraint.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrExpiredOrInvalid means a time-limited token is gone, either because
	// it never existed or because it expired and was purged.
	ErrExpiredOrInvalid = errors.New("expired or invalid")
)

// Stable reason codes returned to API clients.
const (
	ReasonNotFound            = "not_found"
	ReasonUnauthorized        = "unauthorized"
	ReasonInvalidOperation    = "invalid_operation"
	ReasonValidation          = "validation"
	ReasonConstraintViolation = "constraint_violation"
	ReasonExpiredOrInvalid    = "expired_or_invalid"
	ReasonInternal            = "internal"
)

var reasons = []struct {
	kind   error
	reason string
}{
	{ErrNotFound, ReasonNotFound},
	{ErrUnauthorized, ReasonUnauthorized},
	{ErrInvalidOperation, ReasonInvalidOperation},
	{ErrValidation, ReasonValidation},
	{ErrConstraintViolation, ReasonConstraintViolation},
	{ErrExpiredOrInvalid, ReasonExpiredOrInvalid},
}

// Reason returns the stable reason code of err, or [ReasonInternal] when err
// does not wrap any known kind.
func Reason(err error) string {
	for _, r := range reasons {
		if errors.Is(err, r.kind) {
			return r.reason
		}
	}
	return ReasonInternal
}
