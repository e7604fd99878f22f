package service

import (
	"context"

	"github.com/peoplescope/peoplescope/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService handles account registration and sign-in from the
// terminal client's point of view. Successful calls leave the transport
// adapter holding a bearer token, which makes the session authenticated.
type ClientAuthService interface {
	// Register validates the credentials locally and creates a new account on
	// the server.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login validates the credentials locally and authenticates against the
	// server.
	Login(ctx context.Context, user models.User) (models.User, error)

	// Authenticated reports whether the session currently holds a bearer
	// token.
	Authenticated() bool
}

// ClientSearchService runs people searches and profile fetches through the
// server, falling back to the local cache when the server is unreachable.
// It also owns the session's ordered list of filter tags.
type ClientSearchService interface {
	// Search returns results for the query. The bool reports whether the
	// response was served from the local cache instead of the server.
	Search(ctx context.Context, query string) (models.SearchResponse, bool, error)

	// GetProfile returns the full profile of one person. The bool reports
	// whether the profile came from the local cache.
	GetProfile(ctx context.Context, personID int64) (models.Profile, bool, error)

	// AddFilter appends a removable filter tag built from the raw query and
	// returns it.
	AddFilter(query string) models.FilterItem

	// RemoveFilter deletes the filter with the given id. Unknown ids are
	// ignored.
	RemoveFilter(id string)

	// Filters returns a snapshot of the current filter tags in insertion
	// order.
	Filters() []models.FilterItem
}

// ClientAppInfoService exposes server metadata to the client UI.
type ClientAppInfoService interface {
	// ServerVersion asks the server for its application version.
	ServerVersion(ctx context.Context) (string, error)
}
