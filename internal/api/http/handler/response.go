package handler

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dtroode/recipe-server/internal/model"
)

type userResponse struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type attributeResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type recipeResponse struct {
	ID          uuid.UUID   `json:"id"`
	Title       string      `json:"title"`
	TimeMinutes int         `json:"time_minutes"`
	Price       string      `json:"price"`
	Link        string      `json:"link"`
	Tags        []uuid.UUID `json:"tags"`
	Ingredients []uuid.UUID `json:"ingredients"`
}

type recipeDetailResponse struct {
	ID          uuid.UUID           `json:"id"`
	Title       string              `json:"title"`
	TimeMinutes int                 `json:"time_minutes"`
	Price       string              `json:"price"`
	Link        string              `json:"link"`
	Tags        []attributeResponse `json:"tags"`
	Ingredients []attributeResponse `json:"ingredients"`
}

type recipeImageResponse struct {
	ID   uuid.UUID `json:"id"`
	Link string    `json:"link"`
}

func toUserResponse(p model.Profile) userResponse {
	return userResponse{Email: p.Email, Name: p.Name}
}

func toAttributeResponse[T model.OwnedAttribute](item T) attributeResponse {
	a := model.Attribute(item)
	return attributeResponse{ID: a.ID, Name: a.Name}
}

func toAttributeResponses[T model.OwnedAttribute](items []T) []attributeResponse {
	out := make([]attributeResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toAttributeResponse(item))
	}
	return out
}

// formatPrice renders a price with exactly two decimal places.
func formatPrice(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func nonNilIDs(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return []uuid.UUID{}
	}
	return ids
}

func toRecipeResponse(r model.Recipe) recipeResponse {
	return recipeResponse{
		ID:          r.ID,
		Title:       r.Title,
		TimeMinutes: r.TimeMinutes,
		Price:       formatPrice(r.Price),
		Link:        r.Link,
		Tags:        nonNilIDs(r.TagIDs),
		Ingredients: nonNilIDs(r.IngredientIDs),
	}
}

func toRecipeDetailResponse(d model.RecipeDetail) recipeDetailResponse {
	return recipeDetailResponse{
		ID:          d.ID,
		Title:       d.Title,
		TimeMinutes: d.TimeMinutes,
		Price:       formatPrice(d.Price),
		Link:        d.Link,
		Tags:        toAttributeResponses(d.Tags),
		Ingredients: toAttributeResponses(d.Ingredients),
	}
}
