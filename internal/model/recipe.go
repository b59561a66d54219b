package model

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecipeStore defines owner-scoped persistence for recipes and their
// tag/ingredient associations.
type RecipeStore interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]Recipe, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (Recipe, error)
	Create(ctx context.Context, recipe Recipe) (Recipe, error)
	Update(ctx context.Context, update RecipeUpdate) (Recipe, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

// Recipe represents a stored recipe. TagIDs and IngredientIDs reference
// attributes of the same owner.
type Recipe struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Title         string
	TimeMinutes   int
	Price         decimal.Decimal
	Link          string
	TagIDs        []uuid.UUID
	IngredientIDs []uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// RecipeDetail is a recipe with its associations resolved.
type RecipeDetail struct {
	Recipe
	Tags        []Tag
	Ingredients []Ingredient
}

// RecipeUpdate is a full row to persist plus which association sets to
// replace.
type RecipeUpdate struct {
	Recipe             Recipe
	ReplaceTags        bool
	ReplaceIngredients bool
}

// RecipeParams carries client-supplied recipe fields. Nil fields were not
// supplied.
type RecipeParams struct {
	Title          *string
	TimeMinutes    *int
	Price          *decimal.Decimal
	Link           *string
	TagIDs         []uuid.UUID
	IngredientIDs  []uuid.UUID
	HasTags        bool
	HasIngredients bool
}

// ImageUpload describes an uploaded recipe image.
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
}
