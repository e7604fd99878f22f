// SPDX-License-Identifier: Apache-2.0

package http

import "errors"

// Sentinel errors produced while parsing the "Authorization" request
// header. The auth middleware treats all of them as a 401.
var (
	// ErrEmptyAuthorizationHeader: the request carries no Authorization
	// header at all.
	ErrEmptyAuthorizationHeader = errors.New("missing `Authorization` header")

	// ErrInvalidAuthorizationHeader: the header cannot be split into a
	// scheme and a token value.
	ErrInvalidAuthorizationHeader = errors.New("malformed `Authorization` header")

	// ErrEmptyToken: the scheme prefix is present but the token value is
	// empty.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)
