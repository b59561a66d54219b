package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/recipe-server/internal/model"
)

const (
	msgNotFound           = "Not found."
	msgInvalidCredentials = "Unable to authenticate with provided credentials."
	msgInvalidToken       = "Invalid token."
	msgInternal           = "internal server error"
)

// requestError is a malformed request body or query.
type requestError struct {
	detail string
}

func (e *requestError) Error() string {
	return e.detail
}

// writeError maps err to a status code and JSON body.
func writeError(c *gin.Context, err error) {
	var verr *model.ValidationError
	var rerr *requestError

	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, verr.Fields)
	case errors.As(err, &rerr):
		c.JSON(http.StatusBadRequest, gin.H{"detail": rerr.detail})
	case errors.Is(err, model.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, gin.H{model.NonFieldErrorsKey: []string{msgInvalidCredentials}})
	case errors.Is(err, model.ErrUnauthorized):
		c.Header("WWW-Authenticate", "Token")
		c.JSON(http.StatusUnauthorized, gin.H{"detail": msgInvalidToken})
	case errors.Is(err, model.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": msgNotFound})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": msgInternal})
	}
}

// NotFound answers requests that match no route.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"detail": msgNotFound})
}

// MethodNotAllowed answers requests whose path exists under another method.
func MethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, gin.H{"detail": `Method "` + c.Request.Method + `" not allowed.`})
}
