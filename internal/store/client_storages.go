package store

import (
	"context"
	"fmt"

	"github.com/peoplescope/peoplescope/internal/config"
	"github.com/peoplescope/peoplescope/internal/logger"
)

// ClientStorages groups all client-side repositories into a single value
// that can be passed around the client service layer.
type ClientStorages struct {
	// SearchCache is the SQLite-backed cache of server responses used for
	// offline replay.
	SearchCache SearchCacheRepository
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It opens (and creates, if necessary) the local
// SQLite cache file, applies the schema, and wires the cache repository.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new client storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.Cache, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.MigrateClient(context.Background()); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		SearchCache: NewSearchCacheRepository(db, logger),
	}, nil
}
