package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dtroode/recipe-server/internal/logger"
	"github.com/dtroode/recipe-server/internal/model"
)

const msgNoFile = "No file was submitted."

// RecipeService defines recipe operations scoped to an owner.
type RecipeService interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]model.Recipe, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (model.RecipeDetail, error)
	Create(ctx context.Context, ownerID uuid.UUID, params model.RecipeParams) (model.Recipe, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, params model.RecipeParams, partial bool) (model.Recipe, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	UploadImage(ctx context.Context, ownerID, id uuid.UUID, upload model.ImageUpload, r io.Reader) (model.Recipe, error)
}

// recipeRequest holds client-supplied recipe fields. Absent fields stay nil.
type recipeRequest struct {
	Title       *string          `json:"title"`
	TimeMinutes *int             `json:"time_minutes"`
	Price       *decimal.Decimal `json:"price"`
	Link        *string          `json:"link"`
	Tags        *[]uuid.UUID     `json:"tags"`
	Ingredients *[]uuid.UUID     `json:"ingredients"`
}

// recipeFields are the request keys that reject an explicit null.
var recipeFields = []string{"title", "time_minutes", "price", "link", "tags", "ingredients"}

// UnmarshalJSON decodes the request and reports fields sent as null, which
// would otherwise be indistinguishable from absent ones.
func (r *recipeRequest) UnmarshalJSON(data []byte) error {
	type plain recipeRequest
	if err := json.Unmarshal(data, (*plain)(r)); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	v := &model.ValidationError{}
	for _, field := range recipeFields {
		if value, ok := raw[field]; ok && bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
			v.Add(field, model.MsgNull)
		}
	}
	return v.Err()
}

func (r recipeRequest) params() model.RecipeParams {
	p := model.RecipeParams{
		Title:       r.Title,
		TimeMinutes: r.TimeMinutes,
		Price:       r.Price,
		Link:        r.Link,
	}
	if r.Tags != nil {
		p.HasTags = true
		p.TagIDs = *r.Tags
	}
	if r.Ingredients != nil {
		p.HasIngredients = true
		p.IngredientIDs = *r.Ingredients
	}
	return p
}

// Recipe handles the recipe collection and item endpoints.
type Recipe struct {
	service        RecipeService
	contextManager UserGetter
	logger         *logger.Logger
}

// NewRecipe creates a new Recipe handler.
func NewRecipe(service RecipeService, contextManager UserGetter, logger *logger.Logger) *Recipe {
	return &Recipe{
		service:        service,
		contextManager: contextManager,
		logger:         logger,
	}
}

func (h *Recipe) List(c *gin.Context) {
	user, ok := h.contextManager.GetUser(c)
	if !ok {
		writeError(c, model.ErrUnauthorized)
		return
	}

	recipes, err := h.service.List(c.Request.Context(), user.ID)
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]recipeResponse, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, toRecipeResponse(r))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Recipe) Create(c *gin.Context) {
	user, ok := h.contextManager.GetUser(c)
	if !ok {
		writeError(c, model.ErrUnauthorized)
		return
	}

	var req recipeRequest
	if err := bindJSON(c, &req); err != nil {
		writeError(c, err)
		return
	}

	recipe, err := h.service.Create(c.Request.Context(), user.ID, req.params())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toRecipeResponse(recipe))
}

// Get returns the detail view with nested tags and ingredients.
func (h *Recipe) Get(c *gin.Context) {
	user, id, ok := h.target(c)
	if !ok {
		return
	}

	detail, err := h.service.Get(c.Request.Context(), user.ID, id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toRecipeDetailResponse(detail))
}

// Update serves PUT (full) and PATCH (partial).
func (h *Recipe) Update(c *gin.Context) {
	user, id, ok := h.target(c)
	if !ok {
		return
	}

	var req recipeRequest
	if err := bindJSON(c, &req); err != nil {
		writeError(c, err)
		return
	}

	partial := c.Request.Method == http.MethodPatch
	recipe, err := h.service.Update(c.Request.Context(), user.ID, id, req.params(), partial)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toRecipeResponse(recipe))
}

func (h *Recipe) Delete(c *gin.Context) {
	user, id, ok := h.target(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), user.ID, id); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UploadImage stores the multipart "image" file and links it to the recipe.
func (h *Recipe) UploadImage(c *gin.Context) {
	user, id, ok := h.target(c)
	if !ok {
		return
	}

	fh, err := c.FormFile("image")
	if err != nil {
		writeError(c, model.NewValidationError("image", msgNoFile))
		return
	}

	f, err := fh.Open()
	if err != nil {
		writeError(c, err)
		return
	}
	defer f.Close()

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = mime.TypeByExtension(filepath.Ext(fh.Filename))
	}

	recipe, err := h.service.UploadImage(c.Request.Context(), user.ID, id, model.ImageUpload{
		Filename:    fh.Filename,
		ContentType: contentType,
		Size:        fh.Size,
	}, f)
	if err != nil {
		writeError(c, err)
		return
	}

	h.logger.Info("Recipe handler: image uploaded",
		"recipe_id", recipe.ID)

	c.JSON(http.StatusOK, recipeImageResponse{ID: recipe.ID, Link: recipe.Link})
}

// target resolves the caller and the recipe id path parameter. A malformed
// id is reported as not found.
func (h *Recipe) target(c *gin.Context) (model.User, uuid.UUID, bool) {
	user, ok := h.contextManager.GetUser(c)
	if !ok {
		writeError(c, model.ErrUnauthorized)
		return model.User{}, uuid.Nil, false
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeError(c, model.ErrNotFound)
		return model.User{}, uuid.Nil, false
	}

	return user, id, true
}
