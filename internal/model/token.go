package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AuthTokenStore persists the single bearer token of each user.
type AuthTokenStore interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (AuthToken, error)
	GetByKey(ctx context.Context, key string) (AuthToken, error)
	Create(ctx context.Context, token AuthToken) (AuthToken, error)
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}

// AuthToken binds an opaque key to a user.
type AuthToken struct {
	Key       string
	UserID    uuid.UUID
	CreatedAt time.Time
	ExpiresAt *time.Time
}

// Expired reports whether the token has an expiry in the past relative to now.
func (t AuthToken) Expired(now time.Time) bool {
	return t.ExpiresAt != nil && !now.Before(*t.ExpiresAt)
}

// TokenManager generates and verifies signed token keys.
type TokenManager interface {
	GenerateKey(userID uuid.UUID, expiresAt *time.Time) (string, error)
	ParseKey(key string) (uuid.UUID, error)
}
