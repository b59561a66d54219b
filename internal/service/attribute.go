package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/recipe-server/internal/logger"
	"github.com/dtroode/recipe-server/internal/model"
)

// Attributes manages the caller's tags or ingredients.
type Attributes[T model.OwnedAttribute] struct {
	store  model.AttributeStore[T]
	kind   model.AttributeKind
	logger *logger.Logger
}

func NewAttributes[T model.OwnedAttribute](store model.AttributeStore[T], logger *logger.Logger) *Attributes[T] {
	return &Attributes[T]{
		store:  store,
		kind:   model.KindOf[T](),
		logger: logger,
	}
}

// List returns the owner's attributes, ordered by name descending. With
// assignedOnly set, attributes no recipe refers to are left out.
func (s *Attributes[T]) List(ctx context.Context, ownerID uuid.UUID, assignedOnly bool) ([]T, error) {
	items, err := s.store.List(ctx, ownerID, assignedOnly)
	if err != nil {
		s.logger.Error("Attribute service: failed to list",
			"kind", s.kind,
			"user_id", ownerID,
			"error", err.Error())
		return nil, fmt.Errorf("failed to list %ss: %w", s.kind, err)
	}

	return items, nil
}

func (s *Attributes[T]) Create(ctx context.Context, ownerID uuid.UUID, name string) (T, error) {
	var zero T

	name = strings.TrimSpace(name)
	v := &model.ValidationError{}
	validateText(v, "name", name, false)
	if err := v.Err(); err != nil {
		return zero, err
	}

	saved, err := s.store.Create(ctx, T(model.Attribute{
		ID:        uuid.Must(uuid.NewV7()),
		UserID:    ownerID,
		Name:      name,
		CreatedAt: time.Now(),
	}))
	if err != nil {
		s.logger.Error("Attribute service: failed to create",
			"kind", s.kind,
			"user_id", ownerID,
			"error", err.Error())
		return zero, fmt.Errorf("failed to create %s: %w", s.kind, err)
	}

	s.logger.Info("Attribute service: created",
		"kind", s.kind,
		"user_id", ownerID,
		"id", model.Attribute(saved).ID)

	return saved, nil
}
