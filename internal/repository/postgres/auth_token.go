package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/recipe-server/internal/model"
)

var _ model.AuthTokenStore = (*AuthTokenRepository)(nil)

type AuthTokenRepository struct {
	db *Connection
}

func NewAuthTokenRepository(db *Connection) *AuthTokenRepository {
	return &AuthTokenRepository{
		db: db,
	}
}

func scanAuthToken(row pgx.Row) (model.AuthToken, error) {
	var t model.AuthToken
	err := row.Scan(&t.Key, &t.UserID, &t.CreatedAt, &t.ExpiresAt)
	return t, err
}

func (r *AuthTokenRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (model.AuthToken, error) {
	query := `SELECT key, user_id, created_at, expires_at FROM auth_tokens WHERE user_id = $1`

	t, err := scanAuthToken(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.AuthToken{}, model.ErrNotFound
		}
		return model.AuthToken{}, fmt.Errorf("failed to get token by user id: %w", err)
	}

	return t, nil
}

func (r *AuthTokenRepository) GetByKey(ctx context.Context, key string) (model.AuthToken, error) {
	query := `SELECT key, user_id, created_at, expires_at FROM auth_tokens WHERE key = $1`

	t, err := scanAuthToken(r.db.QueryRow(ctx, query, key))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.AuthToken{}, model.ErrNotFound
		}
		return model.AuthToken{}, fmt.Errorf("failed to get token by key: %w", err)
	}

	return t, nil
}

// Create stores token unless the user already holds one, in which case the
// existing token is returned unchanged. Concurrent calls for one user all
// return the same token.
func (r *AuthTokenRepository) Create(ctx context.Context, token model.AuthToken) (model.AuthToken, error) {
	query := `
		WITH inserted AS (
			INSERT INTO auth_tokens (key, user_id, created_at, expires_at)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (user_id) DO NOTHING
			RETURNING key, user_id, created_at, expires_at
		)
		SELECT key, user_id, created_at, expires_at FROM inserted
		UNION ALL
		SELECT key, user_id, created_at, expires_at FROM auth_tokens
		WHERE user_id = $2 AND NOT EXISTS (SELECT 1 FROM inserted)
		LIMIT 1`

	saved, err := scanAuthToken(r.db.QueryRow(ctx, query, token.Key, token.UserID, token.CreatedAt, token.ExpiresAt))
	if errors.Is(err, pgx.ErrNoRows) {
		// A concurrent insert committed after this statement's snapshot was
		// taken; the row is visible to a new statement.
		return r.GetByUserID(ctx, token.UserID)
	}
	if err != nil {
		return model.AuthToken{}, fmt.Errorf("failed to create token: %w", err)
	}

	return saved, nil
}

func (r *AuthTokenRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	query := `DELETE FROM auth_tokens WHERE user_id = $1`

	if _, err := r.db.Exec(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}

	return nil
}
