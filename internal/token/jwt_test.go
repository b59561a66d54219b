package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestJWT_Key_Roundtrip(t *testing.T) {
	j := NewJWT("secret")
	u := uuid.New()

	key, err := j.GenerateKey(u, nil)
	require.NoError(t, err)
	require.NotEmpty(t, key)

	got, err := j.ParseKey(key)
	require.NoError(t, err)
	require.Equal(t, u, got)
}

func TestJWT_Keys_AreUnique(t *testing.T) {
	j := NewJWT("secret")
	u := uuid.New()

	a, err := j.GenerateKey(u, nil)
	require.NoError(t, err)
	b, err := j.GenerateKey(u, nil)
	require.NoError(t, err)

	require.NotEqual(t, a, b)
}

func TestJWT_WrongSecret(t *testing.T) {
	key, err := NewJWT("secret").GenerateKey(uuid.New(), nil)
	require.NoError(t, err)

	_, err = NewJWT("other").ParseKey(key)
	require.Error(t, err)
}

func TestJWT_Malformed(t *testing.T) {
	_, err := NewJWT("secret").ParseKey("not-a-token")
	require.Error(t, err)
}

func TestJWT_ExpiryValidation(t *testing.T) {
	j := NewJWT("secret")
	u := uuid.New()

	exp := time.Now().Add(time.Hour)
	key, err := j.GenerateKey(u, &exp)
	require.NoError(t, err)

	_, err = j.ParseKey(key)
	require.NoError(t, err)

	j.now = func() time.Time { return exp.Add(time.Minute) }
	_, err = j.ParseKey(key)
	require.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWT_MissingUser(t *testing.T) {
	j := NewJWT("secret")

	key, err := j.GenerateKey(uuid.Nil, nil)
	require.NoError(t, err)

	_, err = j.ParseKey(key)
	require.Error(t, err)
}
