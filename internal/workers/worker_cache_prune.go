package workers

import (
	"context"
	"time"

	"github.com/peoplescope/peoplescope/internal/logger"
	"github.com/peoplescope/peoplescope/internal/store"
)

// cachePruneWorker periodically deletes cached search responses and profiles
// older than the configured TTL. The client cache only has to survive short
// server outages, so anything beyond the freshness window is dead weight.
type cachePruneWorker struct {
	cache    store.SearchCacheRepository
	interval time.Duration
	ttl      time.Duration

	stop chan struct{}
	done chan struct{}

	logger *logger.Logger
}

func newCachePruneWorker(cache store.SearchCacheRepository, interval, ttl time.Duration, logger *logger.Logger) *cachePruneWorker {
	return &cachePruneWorker{
		cache:    cache,
		interval: interval,
		ttl:      ttl,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
		logger:   logger,
	}
}

// Run starts the prune loop in its own goroutine and returns immediately.
// One prune pass is executed right away so a long-stopped client does not
// carry stale entries until the first tick.
func (w *cachePruneWorker) Run() {
	go func() {
		defer close(w.done)

		w.prune()

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				w.prune()
			case <-w.stop:
				return
			}
		}
	}()
}

// Stop signals the loop to finish and waits for the in-flight pass.
func (w *cachePruneWorker) Stop() {
	close(w.stop)
	<-w.done
}

func (w *cachePruneWorker) prune() {
	log := w.logger.With().Str("func", "cachePruneWorker.prune").Logger()

	removed, err := w.cache.PruneStale(context.Background(), w.ttl)
	if err != nil {
		log.Warn().Err(err).Msg("cache prune failed")
		return
	}
	if removed > 0 {
		log.Debug().Int64("removed", removed).Msg("pruned stale cache entries")
	}
}
