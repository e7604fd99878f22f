package store

import (
	"context"
	"time"

	"github.com/peoplescope/peoplescope/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SearchCacheRepository is the client's local cache of server responses.
// It lets the terminal client replay the last results for a query when the
// server is unreachable.
type SearchCacheRepository interface {
	// SaveSearch stores the response for the normalized query, replacing any
	// previous entry.
	SaveSearch(ctx context.Context, query string, response models.SearchResponse) error

	// GetSearch returns the cached response for the normalized query and the
	// time it was fetched, or [ErrCachedSearchNotFound].
	GetSearch(ctx context.Context, query string) (models.SearchResponse, time.Time, error)

	// SaveProfile stores a fetched profile, replacing any previous entry.
	SaveProfile(ctx context.Context, profile models.Profile) error

	// GetProfile returns the cached profile for the person id, or
	// [ErrPersonNotFound].
	GetProfile(ctx context.Context, personID int64) (models.Profile, error)

	// PruneStale deletes every cached entry fetched more than ttl ago and
	// reports how many rows were removed.
	PruneStale(ctx context.Context, ttl time.Duration) (int64, error)
}
