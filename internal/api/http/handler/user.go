package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/recipe-server/internal/logger"
	"github.com/dtroode/recipe-server/internal/model"
)

// UserService defines account registration.
type UserService interface {
	CreateUser(ctx context.Context, email, password string, fields model.UserFields) (model.User, error)
}

// AuthService defines token issuance and profile operations.
type AuthService interface {
	IssueToken(ctx context.Context, email, password string) (string, error)
	GetProfile(user model.User) model.Profile
	UpdateProfile(ctx context.Context, user model.User, update model.ProfileUpdate) (model.User, error)
	RevokeToken(ctx context.Context, user model.User) error
}

// UserGetter returns the authenticated user of a request.
type UserGetter interface {
	GetUser(c *gin.Context) (model.User, bool)
}

type createUserRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"max=255"`
}

type tokenRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type updateUserRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Name     *string `json:"name"`
}

// User handles account, token and profile endpoints.
type User struct {
	userService    UserService
	authService    AuthService
	contextManager UserGetter
	logger         *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(userService UserService, authService AuthService, contextManager UserGetter, logger *logger.Logger) *User {
	return &User{
		userService:    userService,
		authService:    authService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Create registers a new account.
func (h *User) Create(c *gin.Context) {
	var req createUserRequest
	if err := bindJSON(c, &req); err != nil {
		writeError(c, err)
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req.Email, req.Password, model.UserFields{Name: req.Name})
	if err != nil {
		h.logger.Debug("User handler: create user failed",
			"error", err.Error())
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toUserResponse(h.authService.GetProfile(user)))
}

// Token exchanges credentials for the caller's token.
func (h *User) Token(c *gin.Context) {
	var req tokenRequest
	if err := bindJSON(c, &req); err != nil {
		writeError(c, err)
		return
	}

	key, err := h.authService.IssueToken(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, tokenResponse{Token: key})
}

// RevokeToken logs the caller out.
func (h *User) RevokeToken(c *gin.Context) {
	user, ok := h.contextManager.GetUser(c)
	if !ok {
		writeError(c, model.ErrUnauthorized)
		return
	}

	if err := h.authService.RevokeToken(c.Request.Context(), user); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Me returns the caller's profile.
func (h *User) Me(c *gin.Context) {
	user, ok := h.contextManager.GetUser(c)
	if !ok {
		writeError(c, model.ErrUnauthorized)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(h.authService.GetProfile(user)))
}

// UpdateMe applies a partial update to the caller's profile. PUT and PATCH
// behave the same.
func (h *User) UpdateMe(c *gin.Context) {
	user, ok := h.contextManager.GetUser(c)
	if !ok {
		writeError(c, model.ErrUnauthorized)
		return
	}

	var req updateUserRequest
	if err := bindJSON(c, &req); err != nil {
		writeError(c, err)
		return
	}

	updated, err := h.authService.UpdateProfile(c.Request.Context(), user, model.ProfileUpdate{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	h.logger.Info("User handler: profile updated",
		"user_id", updated.ID)

	c.JSON(http.StatusOK, toUserResponse(h.authService.GetProfile(updated)))
}
