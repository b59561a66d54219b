package model

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	Create(ctx context.Context, user User) (User, error)
	Update(ctx context.Context, user User) (User, error)
}

// User represents a stored account with its password hash.
type User struct {
	ID          uuid.UUID
	Email       string
	Password    string
	Name        string
	IsActive    bool
	IsStaff     bool
	IsSuperuser bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// UserFields holds optional attributes for user creation.
type UserFields struct {
	Name        string
	IsStaff     bool
	IsSuperuser bool
}

// ProfileUpdate is a partial update of the caller's own account.
// Nil fields are left unchanged.
type ProfileUpdate struct {
	Name     *string
	Email    *string
	Password *string
}

// Profile is the public projection of a user.
type Profile struct {
	Name  string
	Email string
}

// NormalizeEmail lowercases the domain part of an address and keeps the
// local part as given.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at] + "@" + strings.ToLower(email[at+1:])
}

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Check(hash, plain string) bool
}
