package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/peoplescope/peoplescope/internal/logger"
	"github.com/peoplescope/peoplescope/internal/search"
	"github.com/peoplescope/peoplescope/models"
)

// searchCacheRepository is the SQLite-backed implementation of
// [SearchCacheRepository]. Responses are stored as JSON blobs keyed by the
// normalized query text, so differently-spaced spellings of the same query
// share one cache entry.
type searchCacheRepository struct {
	*DB
	logger *logger.Logger
}

// NewSearchCacheRepository constructs a [SearchCacheRepository] backed by
// the provided local database connection and logger.
func NewSearchCacheRepository(db *DB, logger *logger.Logger) SearchCacheRepository {
	logger.Debug().Msg("creating search cache repository")
	return &searchCacheRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *searchCacheRepository) SaveSearch(ctx context.Context, query string, response models.SearchResponse) error {
	payload, err := json.Marshal(response)
	if err != nil {
		return fmt.Errorf("encode cached search: %w", err)
	}

	_, err = r.ExecContext(ctx, saveSearch, search.NormalizeQuery(query), string(payload), time.Now().UTC())
	if err != nil {
		r.logger.Err(err).Str("func", "searchCacheRepository.SaveSearch").Msg("failed to save cached search")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *searchCacheRepository) GetSearch(ctx context.Context, query string) (models.SearchResponse, time.Time, error) {
	var payload string
	var fetchedAt time.Time

	row := r.QueryRowContext(ctx, getSearch, search.NormalizeQuery(query))
	if err := row.Scan(&payload, &fetchedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SearchResponse{}, time.Time{}, ErrCachedSearchNotFound
		}
		r.logger.Err(err).Str("func", "searchCacheRepository.GetSearch").Msg("failed to scan cached search")
		return models.SearchResponse{}, time.Time{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	var response models.SearchResponse
	if err := json.Unmarshal([]byte(payload), &response); err != nil {
		return models.SearchResponse{}, time.Time{}, fmt.Errorf("decode cached search: %w", err)
	}

	return response, fetchedAt, nil
}

func (r *searchCacheRepository) SaveProfile(ctx context.Context, profile models.Profile) error {
	payload, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode cached profile: %w", err)
	}

	_, err = r.ExecContext(ctx, saveProfile, profile.Person.ID, string(payload), time.Now().UTC())
	if err != nil {
		r.logger.Err(err).Str("func", "searchCacheRepository.SaveProfile").Msg("failed to save cached profile")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *searchCacheRepository) GetProfile(ctx context.Context, personID int64) (models.Profile, error) {
	var payload string

	row := r.QueryRowContext(ctx, getProfile, personID)
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Profile{}, ErrPersonNotFound
		}
		r.logger.Err(err).Str("func", "searchCacheRepository.GetProfile").Msg("failed to scan cached profile")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	var profile models.Profile
	if err := json.Unmarshal([]byte(payload), &profile); err != nil {
		return models.Profile{}, fmt.Errorf("decode cached profile: %w", err)
	}

	return profile, nil
}

// PruneStale evicts entries older than ttl from both cache tables.
func (r *searchCacheRepository) PruneStale(ctx context.Context, ttl time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-ttl)

	var pruned int64
	for _, query := range []string{pruneSearches, pruneProfiles} {
		result, err := r.ExecContext(ctx, query, cutoff)
		if err != nil {
			r.logger.Err(err).Str("func", "searchCacheRepository.PruneStale").Msg("failed to prune cache")
			return pruned, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		affected, err := result.RowsAffected()
		if err == nil {
			pruned += affected
		}
	}

	return pruned, nil
}
