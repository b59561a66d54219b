package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/dtroode/recipe-server/internal/model"
)

var _ model.RecipeStore = (*RecipeRepository)(nil)

const recipeSelect = `
	SELECT r.id, r.user_id, r.title, r.time_minutes, r.price::text, r.link,
		ARRAY(SELECT tag_id FROM recipe_tags WHERE recipe_id = r.id ORDER BY tag_id),
		ARRAY(SELECT ingredient_id FROM recipe_ingredients WHERE recipe_id = r.id ORDER BY ingredient_id),
		r.created_at, r.updated_at
	FROM recipes r`

type RecipeRepository struct {
	db *Connection
}

func NewRecipeRepository(db *Connection) *RecipeRepository {
	return &RecipeRepository{
		db: db,
	}
}

func scanRecipe(row pgx.Row) (model.Recipe, error) {
	var (
		recipe model.Recipe
		price  string
	)
	err := row.Scan(
		&recipe.ID, &recipe.UserID, &recipe.Title, &recipe.TimeMinutes, &price, &recipe.Link,
		&recipe.TagIDs, &recipe.IngredientIDs,
		&recipe.CreatedAt, &recipe.UpdatedAt,
	)
	if err != nil {
		return model.Recipe{}, err
	}

	recipe.Price, err = decimal.NewFromString(price)
	if err != nil {
		return model.Recipe{}, fmt.Errorf("failed to parse price %q: %w", price, err)
	}
	return recipe, nil
}

// List returns all recipes of ownerID ordered by id.
func (r *RecipeRepository) List(ctx context.Context, ownerID uuid.UUID) ([]model.Recipe, error) {
	rows, err := r.db.Query(ctx, recipeSelect+` WHERE r.user_id = $1 ORDER BY r.id`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	defer rows.Close()

	recipes := make([]model.Recipe, 0)
	for rows.Next() {
		recipe, err := scanRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recipe: %w", err)
		}
		recipes = append(recipes, recipe)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate recipes: %w", err)
	}

	return recipes, nil
}

func (r *RecipeRepository) Get(ctx context.Context, ownerID, id uuid.UUID) (model.Recipe, error) {
	return r.get(ctx, r.db, ownerID, id)
}

func (r *RecipeRepository) get(ctx context.Context, q querier, ownerID, id uuid.UUID) (model.Recipe, error) {
	recipe, err := scanRecipe(q.QueryRow(ctx, recipeSelect+` WHERE r.user_id = $1 AND r.id = $2`, ownerID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Recipe{}, model.ErrNotFound
		}
		return model.Recipe{}, fmt.Errorf("failed to get recipe: %w", err)
	}

	return recipe, nil
}

// Create inserts the recipe and its associations in one transaction.
func (r *RecipeRepository) Create(ctx context.Context, recipe model.Recipe) (model.Recipe, error) {
	var saved model.Recipe
	err := r.db.WithTx(ctx, func(tx pgx.Tx) error {
		query := `INSERT INTO recipes (id, user_id, title, time_minutes, price, link, created_at, updated_at)
				  VALUES ($1, $2, $3, $4, $5::numeric, $6, $7, $8)`

		_, err := tx.Exec(ctx, query,
			recipe.ID, recipe.UserID, recipe.Title, recipe.TimeMinutes, recipe.Price.String(), recipe.Link,
			recipe.CreatedAt, recipe.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to create recipe: %w", err)
		}

		if err := linkAttributes(ctx, tx, model.KindTag, recipe.UserID, recipe.ID, recipe.TagIDs); err != nil {
			return err
		}
		if err := linkAttributes(ctx, tx, model.KindIngredient, recipe.UserID, recipe.ID, recipe.IngredientIDs); err != nil {
			return err
		}

		saved, err = r.get(ctx, tx, recipe.UserID, recipe.ID)
		return err
	})
	if err != nil {
		return model.Recipe{}, err
	}

	return saved, nil
}

// Update overwrites the scalar fields of the recipe and replaces the
// association sets selected by update.
func (r *RecipeRepository) Update(ctx context.Context, update model.RecipeUpdate) (model.Recipe, error) {
	recipe := update.Recipe

	var saved model.Recipe
	err := r.db.WithTx(ctx, func(tx pgx.Tx) error {
		query := `UPDATE recipes
				  SET title = $3, time_minutes = $4, price = $5::numeric, link = $6, updated_at = NOW()
				  WHERE user_id = $1 AND id = $2`

		tag, err := tx.Exec(ctx, query,
			recipe.UserID, recipe.ID, recipe.Title, recipe.TimeMinutes, recipe.Price.String(), recipe.Link,
		)
		if err != nil {
			return fmt.Errorf("failed to update recipe: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return model.ErrNotFound
		}

		if update.ReplaceTags {
			if err := replaceAttributes(ctx, tx, model.KindTag, recipe.UserID, recipe.ID, recipe.TagIDs); err != nil {
				return err
			}
		}
		if update.ReplaceIngredients {
			if err := replaceAttributes(ctx, tx, model.KindIngredient, recipe.UserID, recipe.ID, recipe.IngredientIDs); err != nil {
				return err
			}
		}

		saved, err = r.get(ctx, tx, recipe.UserID, recipe.ID)
		return err
	})
	if err != nil {
		return model.Recipe{}, err
	}

	return saved, nil
}

func (r *RecipeRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM recipes WHERE user_id = $1 AND id = $2`, ownerID, id)
	if err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

// linkAttributes associates the recipe with those ids that belong to ownerID.
func linkAttributes(ctx context.Context, q querier, kind model.AttributeKind, ownerID, recipeID uuid.UUID, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	table := attributeTables[kind]
	query := fmt.Sprintf(`
		INSERT INTO %[1]s (recipe_id, %[2]s)
		SELECT $1, a.id FROM %[3]s a
		WHERE a.user_id = $2 AND a.id = ANY($3::uuid[])
		ON CONFLICT DO NOTHING`,
		table.joinTable, table.joinColumn, table.name)

	if _, err := q.Exec(ctx, query, recipeID, ownerID, ids); err != nil {
		return fmt.Errorf("failed to link %s: %w", table.name, err)
	}
	return nil
}

func replaceAttributes(ctx context.Context, q querier, kind model.AttributeKind, ownerID, recipeID uuid.UUID, ids []uuid.UUID) error {
	table := attributeTables[kind]
	query := fmt.Sprintf(`DELETE FROM %s WHERE recipe_id = $1`, table.joinTable)

	if _, err := q.Exec(ctx, query, recipeID); err != nil {
		return fmt.Errorf("failed to unlink %s: %w", table.name, err)
	}
	return linkAttributes(ctx, q, kind, ownerID, recipeID, ids)
}
