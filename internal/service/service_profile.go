package service

import (
	"context"
	"fmt"

	"github.com/peoplescope/peoplescope/internal/logger"
	"github.com/peoplescope/peoplescope/internal/store"
	"github.com/peoplescope/peoplescope/models"
)

// profileService is the concrete implementation of ProfileService.
//
// Profiles are returned in full, including values the caller's subscription
// may not grant: gating is a presentation concern applied by the client, not
// an access-control mechanism enforced here.
type profileService struct {
	personRepository store.PersonRepository

	logger *logger.Logger
}

// NewProfileService constructs a ProfileService over the given repository.
func NewProfileService(personRepository store.PersonRepository, logger *logger.Logger) ProfileService {
	return &profileService{
		personRepository: personRepository,
		logger:           logger,
	}
}

// GetProfile implements ProfileService.
func (s *profileService) GetProfile(ctx context.Context, personID int64) (models.Profile, error) {
	log := logger.FromContext(ctx)

	profile, err := s.personRepository.GetProfile(ctx, personID)
	if err != nil {
		log.Err(err).Int64("person_id", personID).Msg("profile lookup failed")
		return models.Profile{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	return profile, nil
}
