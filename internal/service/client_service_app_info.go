package service

import (
	"context"
	"fmt"

	"github.com/peoplescope/peoplescope/internal/adapter"
	"github.com/peoplescope/peoplescope/internal/logger"
)

type clientAppInfoService struct {
	serverAdapter adapter.ServerAdapter
	logger        *logger.Logger
}

func NewClientAppInfoService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAppInfoService {
	return &clientAppInfoService{serverAdapter: serverAdapter, logger: logger}
}

// ServerVersion implements [ClientAppInfoService].
func (s *clientAppInfoService) ServerVersion(ctx context.Context) (string, error) {
	version, err := s.serverAdapter.Version(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	}
	return version, nil
}
