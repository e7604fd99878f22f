// SPDX-License-Identifier: Apache-2.0

// Package validators provides input validation for the application's domain
// models and a set of standalone advisory checks for individual field values.
//
// Two styles coexist:
//  1. Validator: generic interface enforcing business rules on whole request
//     models. Used by services before touching storage; failures are errors.
//  2. Advisory field checks (ValidateEmail, ValidatePhone, ...): pure
//     functions returning a structured models.ValidationResult. They never
//     fail hard; callers decide how to surface the collected messages.
//
// This package decouples validation logic from transport layers and storage,
// enabling reusable, composable, and testable validation strategies.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
