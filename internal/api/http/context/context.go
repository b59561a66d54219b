package context

import (
	"github.com/gin-gonic/gin"

	"github.com/dtroode/recipe-server/internal/model"
)

// userKey is the gin context key holding the authenticated user.
const userKey = "recipe.user"

// Manager stores and retrieves the authenticated user on a gin context.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetUser attaches user to the request context.
func (m *Manager) SetUser(c *gin.Context, user model.User) {
	c.Set(userKey, user)
}

// GetUser returns the user set by SetUser. The boolean is false when the
// request was not authenticated.
func (m *Manager) GetUser(c *gin.Context) (model.User, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return model.User{}, false
	}

	user, ok := v.(model.User)
	return user, ok
}
