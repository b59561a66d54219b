package database

import (
	"context"
	"fmt"
	"time"

	"github.com/dtroode/recipe-server/internal/logger"
)

// pingTimeout bounds a single connectivity attempt.
const pingTimeout = 5 * time.Second

// Pinger is implemented by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// WaitForConnection blocks until db answers a ping, retrying every interval
// with no upper bound on attempts. It returns early only when ctx is done.
func WaitForConnection(ctx context.Context, db Pinger, interval time.Duration, log *logger.Logger) error {
	log.Info("waiting for database")

	for attempt := 1; ; attempt++ {
		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		err := db.PingContext(pingCtx)
		cancel()
		if err == nil {
			log.Info("database available", "attempts", attempt)
			return nil
		}

		log.Warn("database unavailable, waiting",
			"attempt", attempt,
			"retry_in", interval.String(),
			"error", err.Error())

		timer := time.NewTimer(interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("stopped waiting for database: %w", ctx.Err())
		case <-timer.C:
		}
	}
}
