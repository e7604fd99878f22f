package server

import (
	"fmt"
	"net"

	"google.golang.org/grpc"

	"github.com/peoplescope/peoplescope/internal/config"
	handlerGRPC "github.com/peoplescope/peoplescope/internal/handler/grpc"
	"github.com/peoplescope/peoplescope/internal/logger"
)

// grpcServer hosts the gRPC transport. Service registration lives with the
// gRPC handler package; this type only owns the listener lifecycle.
type grpcServer struct {
	handler *handlerGRPC.Handler

	server          *grpc.Server
	gRPCNetListener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *handlerGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("gRPC listen on %s: %w", cfg.GRPCAddress, err)
	}

	return &grpcServer{
		handler:         handler,
		server:          grpc.NewServer(),
		gRPCNetListener: listener,
		logger:          logger,
	}, nil
}

func (g *grpcServer) RunServer() {
	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		g.logger.Error().Err(err).Msg("gRPC server Serve")
	}
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("GRPC server Shutdown")
	g.server.GracefulStop()
}
