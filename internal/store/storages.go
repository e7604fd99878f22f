package store

import (
	"context"
	"fmt"

	"github.com/peoplescope/peoplescope/internal/config"
	"github.com/peoplescope/peoplescope/internal/logger"
)

// Storages groups all server-side repositories into a single value that can
// be passed to the service layer.
type Storages struct {
	PersonRepository PersonRepository
	UserRepository   UserRepository
}

// NewStorages initialises the server storage layer: it connects to
// PostgreSQL, runs pending schema migrations, and wires the repositories.
func NewStorages(ctx context.Context, cfg config.DB, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		PersonRepository: NewPersonRepository(db, logger),
		UserRepository:   NewUserRepository(db, logger),
	}, nil
}
