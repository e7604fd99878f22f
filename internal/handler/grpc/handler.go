package grpc

import (
	"github.com/peoplescope/peoplescope/internal/logger"
	"github.com/peoplescope/peoplescope/internal/service"
)

// Handler is the root gRPC transport handler. It holds the service layer and
// logger shared by all gRPC method handlers. An instance is created once at
// startup.
type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}
