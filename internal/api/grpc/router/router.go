package router

import (
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/dtroode/recipe-server/internal/api/grpc/middleware"
	"github.com/dtroode/recipe-server/internal/logger"
)

// Router builds the gRPC server exposing the health service.
type Router struct {
	health healthpb.HealthServer
	logger *logger.Logger
}

// New creates new gRPC Router instance.
func New(health healthpb.HealthServer, logger *logger.Logger) *Router {
	return &Router{
		health: health,
		logger: logger,
	}
}

// Register returns a gRPC server with logging and panic recovery
// interceptors and the health service registered.
func (r *Router) Register() *grpc.Server {
	logging := middleware.NewLogging(r.logger)
	recovery := middleware.NewRecovery(r.logger)

	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			logging.Unary(),
			recovery.Unary(),
		),
		grpc.ChainStreamInterceptor(
			logging.Stream(),
			recovery.Stream(),
		),
	)
	healthpb.RegisterHealthServer(s, r.health)

	return s
}
