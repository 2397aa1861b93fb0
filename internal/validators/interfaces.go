// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks client input before it reaches the services.
//
// A single Validator implementation knows every request model of the
// contacts API: registration and login payloads, partial profile updates,
// circle names and allowed-info policies. Callers may pass field names to
// restrict validation to a subset of the rules; when omitted, every rule
// of the model is applied.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// and cross-field rules. Every error returned wraps models.ErrValidation.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
