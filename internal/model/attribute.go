package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Attribute is the shape shared by tags and ingredients: a named label
// owned by a single user.
type Attribute struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	CreatedAt time.Time
}

// Tag labels recipes, e.g. "vegan" or "dessert".
type Tag Attribute

// Ingredient is a recipe component, e.g. "cinnamon".
type Ingredient Attribute

// OwnedAttribute is satisfied by the attribute entity types.
type OwnedAttribute interface {
	Tag | Ingredient
}

// AttributeKind names an attribute entity type.
type AttributeKind string

const (
	KindTag        AttributeKind = "tag"
	KindIngredient AttributeKind = "ingredient"
)

// KindOf returns the kind of the attribute type T.
func KindOf[T OwnedAttribute]() AttributeKind {
	var zero T
	switch any(zero).(type) {
	case Tag:
		return KindTag
	default:
		return KindIngredient
	}
}

// AttributeStore defines owner-scoped persistence for one attribute type.
type AttributeStore[T OwnedAttribute] interface {
	List(ctx context.Context, ownerID uuid.UUID, assignedOnly bool) ([]T, error)
	GetByIDs(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]T, error)
	Create(ctx context.Context, attr T) (T, error)
}
