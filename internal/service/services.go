package service

import (
	"fmt"

	"github.com/peoplescope/peoplescope/internal/config"
	"github.com/peoplescope/peoplescope/internal/logger"
	"github.com/peoplescope/peoplescope/internal/store"
)

type Services struct {
	AuthService    AuthService
	SearchService  SearchService
	ProfileService ProfileService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service init: %w", err)
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		SearchService:  NewSearchService(storages.PersonRepository, cfg.Search, logger),
		ProfileService: NewProfileService(storages.PersonRepository, logger),
		AppInfoService: appInfoService,
	}, nil
}
