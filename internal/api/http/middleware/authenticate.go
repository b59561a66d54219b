package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/recipe-server/internal/logger"
	"github.com/dtroode/recipe-server/internal/model"
)

const (
	msgNotProvided   = "Authentication credentials were not provided."
	msgInvalidToken  = "Invalid token."
	msgNoCredentials = "Invalid token header. No credentials provided."
	msgHasSpaces     = "Invalid token header. Token string should not contain spaces."
)

// authKeywords are the accepted Authorization header schemes, compared
// case-insensitively.
var authKeywords = []string{"bearer", "token"}

// Authenticator resolves a token key to a user.
type Authenticator interface {
	Authenticate(ctx context.Context, key string) (model.User, error)
}

// UserSetter attaches the authenticated user to the request.
type UserSetter interface {
	SetUser(c *gin.Context, user model.User)
}

// Authenticate rejects requests without a valid token before any handler runs.
type Authenticate struct {
	authenticator  Authenticator
	contextManager UserSetter
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(authenticator Authenticator, contextManager UserSetter, logger *logger.Logger) *Authenticate {
	return &Authenticate{authenticator: authenticator, contextManager: contextManager, logger: logger}
}

// Handle parses the Authorization header, validates the token and stores the
// user on the context.
func (m *Authenticate) Handle(c *gin.Context) {
	key, msg := parseAuthorization(c.GetHeader("Authorization"))
	if msg != "" {
		abortUnauthorized(c, msg)
		return
	}

	user, err := m.authenticator.Authenticate(c.Request.Context(), key)
	if errors.Is(err, model.ErrUnauthorized) {
		abortUnauthorized(c, msgInvalidToken)
		return
	}
	if err != nil {
		m.logger.Error("Authenticate middleware: token lookup failed",
			"path", c.Request.URL.Path,
			"error", err.Error())
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": "internal server error"})
		return
	}

	m.contextManager.SetUser(c, user)
	c.Next()
}

// parseAuthorization returns the token key, or a message describing why the
// header is unusable.
func parseAuthorization(header string) (string, string) {
	parts := strings.Fields(header)
	if len(parts) == 0 || !isAuthKeyword(parts[0]) {
		return "", msgNotProvided
	}

	switch len(parts) {
	case 1:
		return "", msgNoCredentials
	case 2:
		return parts[1], ""
	default:
		return "", msgHasSpaces
	}
}

func isAuthKeyword(s string) bool {
	for _, k := range authKeywords {
		if strings.EqualFold(s, k) {
			return true
		}
	}
	return false
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.Header("WWW-Authenticate", "Token")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": msg})
}
