package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/peoplescope/peoplescope/internal/adapter"
	"github.com/peoplescope/peoplescope/internal/logger"
	"github.com/peoplescope/peoplescope/internal/validators"
	"github.com/peoplescope/peoplescope/models"
)

type clientAuthService struct {
	serverAdapter adapter.ServerAdapter
	validator     validators.Validator
	logger        *logger.Logger
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		serverAdapter: serverAdapter,
		validator:     validators.NewPersonValidator(),
		logger:        logger,
	}
}

// Register implements [ClientAuthService]. Credentials are validated locally
// before any network round-trip so that obviously bad input never leaves the
// client.
func (s *clientAuthService) Register(ctx context.Context, user models.User) (models.User, error) {
	log := s.logger.With().Str("func", "clientAuthService.Register").Logger()

	if err := s.validator.Validate(ctx, user); err != nil {
		log.Debug().Err(err).Msg("credentials rejected locally")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	registered, err := s.serverAdapter.Register(ctx, user)
	if err != nil {
		if errors.Is(err, adapter.ErrConflict) {
			return models.User{}, fmt.Errorf("login is already taken: %w", err)
		}
		return models.User{}, fmt.Errorf("register: %w", err)
	}

	log.Info().Str("login", registered.Login).Msg("registered new account")
	return registered, nil
}

// Login implements [ClientAuthService].
func (s *clientAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	log := s.logger.With().Str("func", "clientAuthService.Login").Logger()

	if err := s.validator.Validate(ctx, user); err != nil {
		log.Debug().Err(err).Msg("credentials rejected locally")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	foundUser, err := s.serverAdapter.Login(ctx, user)
	if err != nil {
		if errors.Is(err, adapter.ErrUnauthorized) {
			return models.User{}, fmt.Errorf("%w: %w", ErrWrongPassword, err)
		}
		return models.User{}, fmt.Errorf("login: %w", err)
	}

	log.Info().Str("login", foundUser.Login).Msg("signed in")
	return foundUser, nil
}

// Authenticated implements [ClientAuthService].
func (s *clientAuthService) Authenticated() bool {
	return s.serverAdapter.Token() != ""
}
