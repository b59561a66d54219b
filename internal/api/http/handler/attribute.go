package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dtroode/recipe-server/internal/logger"
	"github.com/dtroode/recipe-server/internal/model"
)

// AttributeService defines listing and creation of tags or ingredients.
type AttributeService[T model.OwnedAttribute] interface {
	List(ctx context.Context, ownerID uuid.UUID, assignedOnly bool) ([]T, error)
	Create(ctx context.Context, ownerID uuid.UUID, name string) (T, error)
}

type attributeRequest struct {
	Name string `json:"name" binding:"required"`
}

// Attribute handles the tag and ingredient collections.
type Attribute[T model.OwnedAttribute] struct {
	service        AttributeService[T]
	contextManager UserGetter
	logger         *logger.Logger
}

// NewAttribute creates a new Attribute handler.
func NewAttribute[T model.OwnedAttribute](service AttributeService[T], contextManager UserGetter, logger *logger.Logger) *Attribute[T] {
	return &Attribute[T]{
		service:        service,
		contextManager: contextManager,
		logger:         logger,
	}
}

// List returns the caller's attributes. assigned_only=1 limits the result to
// attributes used by at least one recipe.
func (h *Attribute[T]) List(c *gin.Context) {
	user, ok := h.contextManager.GetUser(c)
	if !ok {
		writeError(c, model.ErrUnauthorized)
		return
	}

	assignedOnly, err := parseAssignedOnly(c.Query("assigned_only"))
	if err != nil {
		writeError(c, err)
		return
	}

	items, err := h.service.List(c.Request.Context(), user.ID, assignedOnly)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toAttributeResponses(items))
}

func (h *Attribute[T]) Create(c *gin.Context) {
	user, ok := h.contextManager.GetUser(c)
	if !ok {
		writeError(c, model.ErrUnauthorized)
		return
	}

	var req attributeRequest
	if err := bindJSON(c, &req); err != nil {
		writeError(c, err)
		return
	}

	item, err := h.service.Create(c.Request.Context(), user.ID, req.Name)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toAttributeResponse(item))
}

func parseAssignedOnly(raw string) (bool, error) {
	if raw == "" {
		return false, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return false, model.NewValidationError("assigned_only", "A valid integer is required.")
	}
	return n != 0, nil
}
