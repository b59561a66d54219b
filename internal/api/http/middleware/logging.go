package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/recipe-server/internal/logger"
)

// Logging logs every HTTP request with its outcome.
type Logging struct {
	logger *logger.Logger
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

// Handle logs method, path, status and duration for each request.
func (l *Logging) Handle(c *gin.Context) {
	start := time.Now()

	c.Next()

	status := c.Writer.Status()
	attrs := []any{
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", status,
		"duration_ms", time.Since(start).Milliseconds(),
		"request_id", c.GetString(RequestIDKey),
	}

	switch {
	case status >= 500:
		if len(c.Errors) > 0 {
			attrs = append(attrs, "error", c.Errors.String())
		}
		l.logger.Error("HTTP request failed", attrs...)
	case status >= 400:
		l.logger.Info("HTTP request rejected", attrs...)
	default:
		l.logger.Info("HTTP request completed", attrs...)
	}
}
