// SPDX-License-Identifier: Apache-2.0

// Package adapter provides transport-layer abstractions for communicating
// with the peoplescope server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/peoplescope/peoplescope/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// peoplescope server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to
// the sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It should be called immediately after a
	// successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register sends a registration request with the provided credentials.
	// On success it stores the returned bearer token via SetToken and returns
	// the server-assigned user record.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates the user. On success it stores the returned bearer
	// token via SetToken and returns the server-side user record.
	Login(ctx context.Context, user models.User) (models.User, error)

	// Search runs a people search on the server and returns the sanitized
	// results with their summary. Requires a valid bearer token.
	Search(ctx context.Context, query string) (models.SearchResponse, error)

	// GetProfile fetches the full profile of one person, including gated
	// fields and their required subscription levels. Requires a valid bearer
	// token.
	GetProfile(ctx context.Context, personID int64) (models.Profile, error)

	// Version returns the server's application version.
	Version(ctx context.Context) (string, error)
}
