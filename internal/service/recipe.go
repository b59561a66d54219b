package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/recipe-server/internal/logger"
	"github.com/dtroode/recipe-server/internal/model"
)

// ErrStorageDisabled is returned by UploadImage when no object storage is
// configured.
var ErrStorageDisabled = errors.New("image storage is disabled")

// Recipe manages the caller's recipes and their tag and ingredient links.
type Recipe struct {
	recipeStore     model.RecipeStore
	tagStore        model.AttributeStore[model.Tag]
	ingredientStore model.AttributeStore[model.Ingredient]
	storage         model.Storage
	logger          *logger.Logger
}

// NewRecipe creates the recipe service. storage may be nil, in which case
// image uploads fail with ErrStorageDisabled.
func NewRecipe(
	recipeStore model.RecipeStore,
	tagStore model.AttributeStore[model.Tag],
	ingredientStore model.AttributeStore[model.Ingredient],
	storage model.Storage,
	logger *logger.Logger,
) *Recipe {
	return &Recipe{
		recipeStore:     recipeStore,
		tagStore:        tagStore,
		ingredientStore: ingredientStore,
		storage:         storage,
		logger:          logger,
	}
}

func (s *Recipe) List(ctx context.Context, ownerID uuid.UUID) ([]model.Recipe, error) {
	recipes, err := s.recipeStore.List(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	return recipes, nil
}

// Get returns the recipe with its tags and ingredients resolved.
func (s *Recipe) Get(ctx context.Context, ownerID, id uuid.UUID) (model.RecipeDetail, error) {
	recipe, err := s.recipeStore.Get(ctx, ownerID, id)
	if err != nil {
		return model.RecipeDetail{}, err
	}

	tags, err := s.tagStore.GetByIDs(ctx, ownerID, recipe.TagIDs)
	if err != nil {
		return model.RecipeDetail{}, fmt.Errorf("failed to get recipe tags: %w", err)
	}
	ingredients, err := s.ingredientStore.GetByIDs(ctx, ownerID, recipe.IngredientIDs)
	if err != nil {
		return model.RecipeDetail{}, fmt.Errorf("failed to get recipe ingredients: %w", err)
	}

	return model.RecipeDetail{
		Recipe:      recipe,
		Tags:        tags,
		Ingredients: ingredients,
	}, nil
}

func (s *Recipe) Create(ctx context.Context, ownerID uuid.UUID, params model.RecipeParams) (model.Recipe, error) {
	s.logger.Debug("Recipe service: creating recipe",
		"user_id", ownerID)

	v := validateRecipe(params, true)
	tagIDs, ingredientIDs, err := s.resolveAttributes(ctx, ownerID, params, v)
	if err != nil {
		return model.Recipe{}, err
	}
	if err := v.Err(); err != nil {
		return model.Recipe{}, err
	}

	now := time.Now()
	recipe := model.Recipe{
		ID:            uuid.Must(uuid.NewV7()),
		UserID:        ownerID,
		Title:         strings.TrimSpace(*params.Title),
		TimeMinutes:   *params.TimeMinutes,
		Price:         *params.Price,
		TagIDs:        tagIDs,
		IngredientIDs: ingredientIDs,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if params.Link != nil {
		recipe.Link = strings.TrimSpace(*params.Link)
	}

	saved, err := s.recipeStore.Create(ctx, recipe)
	if err != nil {
		s.logger.Error("Recipe service: failed to create recipe",
			"user_id", ownerID,
			"error", err.Error())
		return model.Recipe{}, fmt.Errorf("failed to create recipe: %w", err)
	}

	s.logger.Info("Recipe service: recipe created",
		"user_id", ownerID,
		"recipe_id", saved.ID)

	return saved, nil
}

// Update changes the supplied fields of a recipe. Supplied tag or
// ingredient lists replace the whole association set. With partial unset,
// title, time_minutes and price are required.
func (s *Recipe) Update(ctx context.Context, ownerID, id uuid.UUID, params model.RecipeParams, partial bool) (model.Recipe, error) {
	s.logger.Debug("Recipe service: updating recipe",
		"user_id", ownerID,
		"recipe_id", id,
		"partial", partial)

	recipe, err := s.recipeStore.Get(ctx, ownerID, id)
	if err != nil {
		return model.Recipe{}, err
	}

	v := validateRecipe(params, !partial)
	tagIDs, ingredientIDs, err := s.resolveAttributes(ctx, ownerID, params, v)
	if err != nil {
		return model.Recipe{}, err
	}
	if err := v.Err(); err != nil {
		return model.Recipe{}, err
	}

	if params.Title != nil {
		recipe.Title = strings.TrimSpace(*params.Title)
	}
	if params.TimeMinutes != nil {
		recipe.TimeMinutes = *params.TimeMinutes
	}
	if params.Price != nil {
		recipe.Price = *params.Price
	}
	if params.Link != nil {
		recipe.Link = strings.TrimSpace(*params.Link)
	}
	if params.HasTags {
		recipe.TagIDs = tagIDs
	}
	if params.HasIngredients {
		recipe.IngredientIDs = ingredientIDs
	}

	saved, err := s.recipeStore.Update(ctx, model.RecipeUpdate{
		Recipe:             recipe,
		ReplaceTags:        params.HasTags,
		ReplaceIngredients: params.HasIngredients,
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Recipe{}, err
		}
		s.logger.Error("Recipe service: failed to update recipe",
			"user_id", ownerID,
			"recipe_id", id,
			"error", err.Error())
		return model.Recipe{}, fmt.Errorf("failed to update recipe: %w", err)
	}

	return saved, nil
}

// Delete removes the recipe; its tags and ingredients are kept.
func (s *Recipe) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := s.recipeStore.Delete(ctx, ownerID, id); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete recipe: %w", err)
	}

	s.logger.Info("Recipe service: recipe deleted",
		"user_id", ownerID,
		"recipe_id", id)

	return nil
}

// UploadImage stores an image for the recipe and points its link at it.
func (s *Recipe) UploadImage(ctx context.Context, ownerID, id uuid.UUID, upload model.ImageUpload, r io.Reader) (model.Recipe, error) {
	if s.storage == nil {
		return model.Recipe{}, ErrStorageDisabled
	}

	recipe, err := s.recipeStore.Get(ctx, ownerID, id)
	if err != nil {
		return model.Recipe{}, err
	}

	if !strings.HasPrefix(upload.ContentType, "image/") {
		return model.Recipe{}, model.NewValidationError("image", model.MsgNotImage)
	}

	key := imageKey(ownerID, id, upload.Filename)
	if err := s.storage.Upload(ctx, key, r, upload.Size, upload.ContentType); err != nil {
		s.logger.Error("Recipe service: failed to upload image",
			"recipe_id", id,
			"key", key,
			"error", err.Error())
		return model.Recipe{}, fmt.Errorf("failed to upload image: %w", err)
	}

	recipe.Link = s.storage.URL(key)
	saved, err := s.recipeStore.Update(ctx, model.RecipeUpdate{Recipe: recipe})
	if err != nil {
		if delErr := s.storage.Delete(ctx, key); delErr != nil {
			s.logger.Warn("Recipe service: failed to remove orphaned image",
				"key", key,
				"error", delErr.Error())
		}
		return model.Recipe{}, fmt.Errorf("failed to save image link: %w", err)
	}

	s.logger.Info("Recipe service: image uploaded",
		"recipe_id", id,
		"key", key)

	return saved, nil
}

func imageKey(ownerID, recipeID uuid.UUID, filename string) string {
	return fmt.Sprintf("recipes/%s/%s/%s%s", ownerID, recipeID, uuid.NewString(), strings.ToLower(path.Ext(filename)))
}

func validateRecipe(params model.RecipeParams, requireAll bool) *model.ValidationError {
	v := &model.ValidationError{}

	if params.Title != nil {
		validateText(v, "title", strings.TrimSpace(*params.Title), false)
	} else if requireAll {
		v.Add("title", model.MsgRequired)
	}

	if params.TimeMinutes != nil {
		if *params.TimeMinutes < 0 {
			v.Add("time_minutes", model.MsgNegative)
		}
	} else if requireAll {
		v.Add("time_minutes", model.MsgRequired)
	}

	if params.Price != nil {
		validatePrice(v, *params.Price)
	} else if requireAll {
		v.Add("price", model.MsgRequired)
	}

	if params.Link != nil {
		validateText(v, "link", strings.TrimSpace(*params.Link), true)
	}

	return v
}

// resolveAttributes collapses duplicate ids and checks that every supplied
// id names an attribute of ownerID, recording misses on v.
func (s *Recipe) resolveAttributes(ctx context.Context, ownerID uuid.UUID, params model.RecipeParams, v *model.ValidationError) ([]uuid.UUID, []uuid.UUID, error) {
	var tagIDs, ingredientIDs []uuid.UUID

	if params.HasTags {
		tagIDs = uniqueIDs(params.TagIDs)
		found, err := s.tagStore.GetByIDs(ctx, ownerID, tagIDs)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get tags: %w", err)
		}
		if len(found) != len(tagIDs) {
			v.Add("tags", model.MsgUnknownID)
		}
	}

	if params.HasIngredients {
		ingredientIDs = uniqueIDs(params.IngredientIDs)
		found, err := s.ingredientStore.GetByIDs(ctx, ownerID, ingredientIDs)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get ingredients: %w", err)
		}
		if len(found) != len(ingredientIDs) {
			v.Add("ingredients", model.MsgUnknownID)
		}
	}

	return tagIDs, ingredientIDs, nil
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}
