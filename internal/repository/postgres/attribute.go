package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/recipe-server/internal/model"
)

var (
	_ model.AttributeStore[model.Tag]        = (*AttributeRepository[model.Tag])(nil)
	_ model.AttributeStore[model.Ingredient] = (*AttributeRepository[model.Ingredient])(nil)
)

// attributeTable describes where an attribute kind and its recipe links live.
type attributeTable struct {
	name       string
	joinTable  string
	joinColumn string
}

var attributeTables = map[model.AttributeKind]attributeTable{
	model.KindTag:        {name: "tags", joinTable: "recipe_tags", joinColumn: "tag_id"},
	model.KindIngredient: {name: "ingredients", joinTable: "recipe_ingredients", joinColumn: "ingredient_id"},
}

// AttributeRepository stores tags or ingredients depending on T.
type AttributeRepository[T model.OwnedAttribute] struct {
	db    *Connection
	table attributeTable
}

func NewAttributeRepository[T model.OwnedAttribute](db *Connection) *AttributeRepository[T] {
	return &AttributeRepository[T]{
		db:    db,
		table: attributeTables[model.KindOf[T]()],
	}
}

func NewTagRepository(db *Connection) *AttributeRepository[model.Tag] {
	return NewAttributeRepository[model.Tag](db)
}

func NewIngredientRepository(db *Connection) *AttributeRepository[model.Ingredient] {
	return NewAttributeRepository[model.Ingredient](db)
}

// List returns the owner's attributes ordered by name descending. With
// assignedOnly, only attributes linked to at least one recipe are returned.
func (r *AttributeRepository[T]) List(ctx context.Context, ownerID uuid.UUID, assignedOnly bool) ([]T, error) {
	query := fmt.Sprintf(`
		SELECT a.id, a.user_id, a.name, a.created_at
		FROM %[1]s a
		WHERE a.user_id = $1
		  AND (NOT $2::boolean OR EXISTS (
			SELECT 1 FROM %[2]s j
			JOIN recipes rc ON rc.id = j.recipe_id
			WHERE j.%[3]s = a.id AND rc.user_id = $1
		  ))
		ORDER BY a.name DESC, a.id`,
		r.table.name, r.table.joinTable, r.table.joinColumn)

	return r.query(ctx, query, ownerID, assignedOnly)
}

// GetByIDs returns the subset of ids owned by ownerID.
func (r *AttributeRepository[T]) GetByIDs(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]T, error) {
	if len(ids) == 0 {
		return []T{}, nil
	}

	query := fmt.Sprintf(`
		SELECT id, user_id, name, created_at
		FROM %s
		WHERE user_id = $1 AND id = ANY($2::uuid[])
		ORDER BY name, id`, r.table.name)

	return r.query(ctx, query, ownerID, ids)
}

func (r *AttributeRepository[T]) Create(ctx context.Context, attr T) (T, error) {
	a := model.Attribute(attr)
	query := fmt.Sprintf(`
		INSERT INTO %s (id, user_id, name, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, name, created_at`, r.table.name)

	var saved model.Attribute
	err := r.db.QueryRow(ctx, query, a.ID, a.UserID, a.Name, a.CreatedAt).
		Scan(&saved.ID, &saved.UserID, &saved.Name, &saved.CreatedAt)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("failed to create %s: %w", model.KindOf[T](), err)
	}

	return T(saved), nil
}

func (r *AttributeRepository[T]) query(ctx context.Context, query string, args ...any) ([]T, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", r.table.name, err)
	}
	defer rows.Close()

	result := make([]T, 0)
	for rows.Next() {
		var a model.Attribute
		if err := rows.Scan(&a.ID, &a.UserID, &a.Name, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", r.table.name, err)
		}
		result = append(result, T(a))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s: %w", r.table.name, err)
	}

	return result, nil
}
