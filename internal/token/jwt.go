package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dtroode/recipe-server/internal/model"
)

// Claims represents the signed content of an auth token key.
type Claims struct {
	jwt.RegisteredClaims
	UserID uuid.UUID `json:"user_id"`
}

// JWT implements TokenManager backed by symmetric HMAC. Keys are opaque to
// clients; the signature lets the server reject forged keys without a
// database lookup.
type JWT struct {
	secretKey string
	now       func() time.Time
}

// NewJWT creates a new token manager with the provided secret key.
func NewJWT(secretKey string) *JWT {
	return &JWT{secretKey: secretKey, now: time.Now}
}

var _ model.TokenManager = (*JWT)(nil)

// GenerateKey creates a signed key for userID. A nil expiresAt produces a
// key without expiry.
func (j *JWT) GenerateKey(userID uuid.UUID, expiresAt *time.Time) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       uuid.NewString(),
			IssuedAt: jwt.NewNumericDate(j.now()),
		},
		UserID: userID,
	}
	if expiresAt != nil {
		claims.ExpiresAt = jwt.NewNumericDate(*expiresAt)
	}

	key, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token key: %w", err)
	}

	return key, nil
}

// ParseKey validates the signature and expiry of key and returns its user ID.
func (j *JWT) ParseKey(key string) (uuid.UUID, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(key, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	}, jwt.WithTimeFunc(j.now))
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse token key: %w", err)
	}
	if !token.Valid {
		return uuid.Nil, fmt.Errorf("token key is invalid")
	}
	if claims.UserID == uuid.Nil {
		return uuid.Nil, fmt.Errorf("token key has no subject")
	}
	return claims.UserID, nil
}
