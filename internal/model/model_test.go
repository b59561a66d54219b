package model

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "test@GMAIL.com", want: "test@gmail.com"},
		{in: "Test.User@Example.ORG", want: "Test.User@example.org"},
		{in: "  padded@Host.io ", want: "padded@host.io"},
		{in: "weird@name@DOMAIN.com", want: "weird@name@domain.com"},
		{in: "no-at-sign", want: "no-at-sign"},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, NormalizeEmail(tt.in))
		})
	}
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	v := &ValidationError{}
	assert.True(t, v.Empty())
	assert.NoError(t, v.Err())

	v.Add("name", MsgBlank)
	v.Add("email", MsgRequired)
	v.Add("email", MsgInvalidEmail)

	err := v.Err()
	require.Error(t, err)

	var target *ValidationError
	require.True(t, errors.As(err, &target))
	assert.Equal(t, []string{MsgRequired, MsgInvalidEmail}, target.Fields["email"])
	assert.Equal(t, "validation failed: email: This field is required. Enter a valid email address.; name: This field may not be blank.", err.Error())
}

func TestAuthToken_Expired(t *testing.T) {
	t.Parallel()

	now := time.Now()
	past := now.Add(-time.Minute)
	future := now.Add(time.Minute)

	assert.False(t, AuthToken{}.Expired(now))
	assert.True(t, AuthToken{ExpiresAt: &past}.Expired(now))
	assert.True(t, AuthToken{ExpiresAt: &now}.Expired(now))
	assert.False(t, AuthToken{ExpiresAt: &future}.Expired(now))
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, KindTag, KindOf[Tag]())
	assert.Equal(t, KindIngredient, KindOf[Ingredient]())
}
