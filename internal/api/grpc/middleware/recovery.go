package middleware

import (
	"fmt"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/recipe-server/internal/logger"
)

// Recovery turns handler panics into codes.Internal.
type Recovery struct {
	logger *logger.Logger
}

func NewRecovery(logger *logger.Logger) *Recovery {
	return &Recovery{logger: logger}
}

// Handle logs the panic value and returns the error sent to the client.
func (r *Recovery) Handle(p any) error {
	r.logger.Error("gRPC panic recovered",
		"panic", fmt.Sprint(p))
	return status.Error(codes.Internal, "internal server error")
}

func (r *Recovery) Unary() grpc.UnaryServerInterceptor {
	return recovery.UnaryServerInterceptor(recovery.WithRecoveryHandler(r.Handle))
}

func (r *Recovery) Stream() grpc.StreamServerInterceptor {
	return recovery.StreamServerInterceptor(recovery.WithRecoveryHandler(r.Handle))
}
