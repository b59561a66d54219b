package health

import (
	"context"
	"time"

	grpchealth "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/dtroode/recipe-server/internal/logger"
	"github.com/dtroode/recipe-server/internal/model"
)

// ServiceName is the health service name of the recipe API. The empty name
// reports overall server health and tracks the same status.
const ServiceName = "recipe.v1.RecipeAPI"

const probeTimeout = 3 * time.Second

// Checker reports SERVING while the database answers pings.
type Checker struct {
	server   *grpchealth.Server
	pinger   model.Pinger
	interval time.Duration
	logger   *logger.Logger

	last healthpb.HealthCheckResponse_ServingStatus
}

// NewChecker creates a Checker that starts as NOT_SERVING until the first
// successful probe.
func NewChecker(pinger model.Pinger, interval time.Duration, logger *logger.Logger) *Checker {
	c := &Checker{
		server:   grpchealth.NewServer(),
		pinger:   pinger,
		interval: interval,
		logger:   logger,
		last:     healthpb.HealthCheckResponse_UNKNOWN,
	}
	c.set(healthpb.HealthCheckResponse_NOT_SERVING)
	return c
}

// Server returns the grpc.health.v1.Health implementation.
func (c *Checker) Server() healthpb.HealthServer {
	return c.server
}

// Run probes the database every interval until ctx is done, then marks every
// service NOT_SERVING for good.
func (c *Checker) Run(ctx context.Context) error {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		c.Probe(ctx)

		select {
		case <-ctx.Done():
			c.server.Shutdown()
			c.logger.Info("Health checker: stopped")
			return nil
		case <-ticker.C:
		}
	}
}

// Probe pings the database once and updates the serving status.
func (c *Checker) Probe(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	pingCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	if err := c.pinger.Ping(pingCtx); err != nil {
		status = healthpb.HealthCheckResponse_NOT_SERVING
		if c.last != status {
			c.logger.Warn("Health checker: database ping failed",
				"error", err.Error())
		}
	}

	if c.last != status {
		c.logger.Info("Health checker: status changed",
			"from", c.last.String(),
			"to", status.String())
		c.set(status)
	}

	return status
}

func (c *Checker) set(status healthpb.HealthCheckResponse_ServingStatus) {
	c.server.SetServingStatus("", status)
	c.server.SetServingStatus(ServiceName, status)
	c.last = status
}
