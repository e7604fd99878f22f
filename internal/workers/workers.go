package workers

import (
	"github.com/peoplescope/peoplescope/internal/config"
	"github.com/peoplescope/peoplescope/internal/logger"
	"github.com/peoplescope/peoplescope/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the client's background jobs: currently a single
// periodic pruner that evicts stale entries from the local search cache.
func NewWorkers(cache store.SearchCacheRepository, cfg config.ClientWorkers, cacheCfg config.ClientCache, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			newCachePruneWorker(cache, cfg.CachePruneInterval, cacheCfg.TTL, logger),
		},
	}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop signals every stoppable worker to finish. Safe to call once after Run.
func (w *Workers) Stop() {
	for _, worker := range w.workers {
		if s, ok := worker.(Stopper); ok {
			s.Stop()
		}
	}
}
