package service

import (
	"context"
	"fmt"

	"github.com/peoplescope/peoplescope/internal/config"
	"github.com/peoplescope/peoplescope/internal/logger"
	"github.com/peoplescope/peoplescope/internal/search"
	"github.com/peoplescope/peoplescope/internal/store"
	"github.com/peoplescope/peoplescope/models"
)

// defaultResultLimit caps a single search when no limit is configured.
const defaultResultLimit = 50

// searchService is the concrete implementation of SearchService. It chains
// the person repository with the pure pipeline stages: the repository
// matches records, sanitization drops malformed rows, and the summary
// aggregates what is left.
type searchService struct {
	personRepository store.PersonRepository
	resultLimit      uint64

	logger *logger.Logger
}

// NewSearchService constructs a SearchService over the given repository.
func NewSearchService(personRepository store.PersonRepository, cfg config.Search, logger *logger.Logger) SearchService {
	limit := uint64(defaultResultLimit)
	if cfg.ResultLimit > 0 {
		limit = uint64(cfg.ResultLimit)
	}

	return &searchService{
		personRepository: personRepository,
		resultLimit:      limit,
		logger:           logger,
	}
}

// Search implements SearchService. The query is normalized before it
// reaches the repository, so the response echoes the canonical form the
// client should cache under.
func (s *searchService) Search(ctx context.Context, query string) (models.SearchResponse, error) {
	log := logger.FromContext(ctx)

	normalized := search.NormalizeQuery(query)

	results, err := s.personRepository.Search(ctx, normalized, s.resultLimit)
	if err != nil {
		log.Err(err).Str("query", normalized).Msg("person search failed")
		return models.SearchResponse{}, fmt.Errorf("person search failed: %w", err)
	}

	sanitized := search.SanitizeResults(results)
	if dropped := len(results) - len(sanitized); dropped > 0 {
		log.Warn().Int("dropped", dropped).Str("query", normalized).Msg("dropped malformed person records")
	}

	return models.SearchResponse{
		Query:   normalized,
		Results: sanitized,
		Summary: search.Summarize(sanitized),
	}, nil
}
