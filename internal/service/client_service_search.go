// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/peoplescope/peoplescope/internal/adapter"
	"github.com/peoplescope/peoplescope/internal/logger"
	"github.com/peoplescope/peoplescope/internal/search"
	"github.com/peoplescope/peoplescope/internal/store"
	"github.com/peoplescope/peoplescope/models"
)

type clientSearchService struct {
	serverAdapter adapter.ServerAdapter
	cache         store.SearchCacheRepository
	ids           search.IDSource

	mu      sync.Mutex
	filters []models.FilterItem

	logger *logger.Logger
}

func NewClientSearchService(
	serverAdapter adapter.ServerAdapter,
	cache store.SearchCacheRepository,
	ids search.IDSource,
	logger *logger.Logger,
) ClientSearchService {
	return &clientSearchService{
		serverAdapter: serverAdapter,
		cache:         cache,
		ids:           ids,
		logger:        logger,
	}
}

// Search implements [ClientSearchService]. The server is always asked first;
// a fresh response is written through to the local cache. When the server
// call fails and a cached response exists for the same normalized query, the
// cached response is returned with fromCache set to true. A cache write
// failure is logged but never surfaced, the response is already in hand.
func (s *clientSearchService) Search(ctx context.Context, query string) (models.SearchResponse, bool, error) {
	log := s.logger.With().Str("func", "clientSearchService.Search").Logger()

	if !search.ValidateQuery(query) {
		return models.SearchResponse{}, false, fmt.Errorf("%w: empty search query", ErrInvalidDataProvided)
	}

	response, err := s.serverAdapter.Search(ctx, query)
	if err == nil {
		if saveErr := s.cache.SaveSearch(ctx, query, response); saveErr != nil {
			log.Warn().Err(saveErr).Msg("failed to cache search response")
		}
		return response, false, nil
	}

	log.Warn().Err(err).Str("query", query).Msg("server search failed, trying local cache")

	cached, fetchedAt, cacheErr := s.cache.GetSearch(ctx, query)
	if cacheErr != nil {
		return models.SearchResponse{}, false, fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	}

	log.Info().Time("fetchedAt", fetchedAt).Msg("served search from local cache")
	return cached, true, nil
}

// GetProfile implements [ClientSearchService] with the same write-through and
// fallback behavior as Search.
func (s *clientSearchService) GetProfile(ctx context.Context, personID int64) (models.Profile, bool, error) {
	log := s.logger.With().Str("func", "clientSearchService.GetProfile").Logger()

	profile, err := s.serverAdapter.GetProfile(ctx, personID)
	if err == nil {
		if saveErr := s.cache.SaveProfile(ctx, profile); saveErr != nil {
			log.Warn().Err(saveErr).Msg("failed to cache profile")
		}
		return profile, false, nil
	}

	log.Warn().Err(err).Int64("personID", personID).Msg("server profile fetch failed, trying local cache")

	cached, cacheErr := s.cache.GetProfile(ctx, personID)
	if cacheErr != nil {
		return models.Profile{}, false, fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	}

	return cached, true, nil
}

// AddFilter implements [ClientSearchService].
func (s *clientSearchService) AddFilter(query string) models.FilterItem {
	item := search.NewFilterFromQuery(query, s.ids)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = append(s.filters, item)

	return item
}

// RemoveFilter implements [ClientSearchService].
func (s *clientSearchService) RemoveFilter(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = search.RemoveFilter(s.filters, id)
}

// Filters implements [ClientSearchService]. The returned slice is a copy,
// callers may hold it across later mutations.
func (s *clientSearchService) Filters() []models.FilterItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]models.FilterItem, len(s.filters))
	copy(snapshot, s.filters)
	return snapshot
}
