package service

import (
	"github.com/peoplescope/peoplescope/internal/adapter"
	"github.com/peoplescope/peoplescope/internal/logger"
	"github.com/peoplescope/peoplescope/internal/store"
	"github.com/peoplescope/peoplescope/internal/utils"
)

// ClientServices bundles the terminal client's service layer.
type ClientServices struct {
	AuthService    ClientAuthService
	SearchService  ClientSearchService
	AppInfoService ClientAppInfoService
}

func NewClientServices(serverAdapter adapter.ServerAdapter, storages *store.ClientStorages, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:    NewClientAuthService(serverAdapter, logger),
		SearchService:  NewClientSearchService(serverAdapter, storages.SearchCache, utils.NewUUIDGenerator(), logger),
		AppInfoService: NewClientAppInfoService(serverAdapter, logger),
	}
}
