package grpc

import (
	"context"
	"fmt"
	"net"

	"github.com/DRSN-tech/movie-recommender/internal/cfg"
	"github.com/DRSN-tech/movie-recommender/internal/usecase"
	"github.com/DRSN-tech/movie-recommender/pkg/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// ServiceName - имя сервиса в grpc.health.v1.
const ServiceName = "recommender.v1.Recommender"

type GRPCServer struct {
	server *grpc.Server
	health *health.Server
	cfg    *cfg.GRPCConfig
	logger logger.Logger
}

func NewGRPCServer(cfg *cfg.GRPCConfig, logger logger.Logger) *GRPCServer {
	return &GRPCServer{
		server: grpc.NewServer(),
		health: health.NewServer(),
		cfg:    cfg,
		logger: logger,
	}
}

// RegisterServices регистрирует health и reflection. До построения индекса сервис NOT_SERVING.
func (s *GRPCServer) RegisterServices(uc usecase.RecommenderUC) {
	healthpb.RegisterHealthServer(s.server, s.health)
	reflection.Register(s.server)

	s.SyncHealth(context.Background(), uc)
}

// SyncHealth выставляет статус по состоянию индекса.
func (s *GRPCServer) SyncHealth(ctx context.Context, uc usecase.RecommenderUC) {
	_, err := uc.Info(ctx)
	status := servingStatus(err)

	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
	s.logger.Debugf("gRPC health status set to %s", status)
}

func (s *GRPCServer) Serve(lis net.Listener) error {
	return s.server.Serve(lis)
}

func (s *GRPCServer) Start() error {
	addr := fmt.Sprintf(":%s", s.cfg.Port)
	lis, err := net.Listen(s.cfg.NetworkMode, addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	return s.Serve(lis)
}

// Stop переводит все сервисы в NOT_SERVING и останавливает сервер.
func (s *GRPCServer) Stop(ctx context.Context) error {
	s.health.Shutdown()

	done := make(chan struct{})
	go func() {
		s.server.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Infof("gRPC server stopped gracefully")
		return nil
	case <-ctx.Done():
		s.server.Stop()
		s.logger.Warnf("gRPC server forced to stop after timeout")
		return ctx.Err()
	}
}
