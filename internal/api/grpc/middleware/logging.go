package middleware

import (
	"context"
	"log/slog"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"google.golang.org/grpc"

	"github.com/dtroode/recipe-server/internal/logger"
)

// Logging logs finished gRPC calls with method, code and duration.
type Logging struct {
	logger *logger.Logger
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

// Logger adapts the application logger to the interceptor logger.
// Interceptor levels share their numeric values with slog.
func (l *Logging) Logger() logging.Logger {
	return logging.LoggerFunc(func(ctx context.Context, lvl logging.Level, msg string, fields ...any) {
		l.logger.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}

func (l *Logging) options() []logging.Option {
	return []logging.Option{
		logging.WithLogOnEvents(logging.FinishCall),
	}
}

// Unary returns the unary logging interceptor.
func (l *Logging) Unary() grpc.UnaryServerInterceptor {
	return logging.UnaryServerInterceptor(l.Logger(), l.options()...)
}

// Stream returns the stream logging interceptor. Health Watch calls are
// streams.
func (l *Logging) Stream() grpc.StreamServerInterceptor {
	return logging.StreamServerInterceptor(l.Logger(), l.options()...)
}
