package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dtroode/recipe-server/internal/logger"
	"github.com/dtroode/recipe-server/internal/model"
)

// Auth issues and validates bearer tokens and manages the caller's profile.
type Auth struct {
	userStore  model.UserStore
	tokenStore model.AuthTokenStore
	manager    model.TokenManager
	hasher     model.PasswordHasher
	tokenTTL   time.Duration
	logger     *logger.Logger
	now        func() time.Time
}

// NewAuth creates the auth service. A zero tokenTTL issues tokens that
// never expire.
func NewAuth(
	userStore model.UserStore,
	tokenStore model.AuthTokenStore,
	manager model.TokenManager,
	hasher model.PasswordHasher,
	tokenTTL time.Duration,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:  userStore,
		tokenStore: tokenStore,
		manager:    manager,
		hasher:     hasher,
		tokenTTL:   tokenTTL,
		logger:     logger,
		now:        time.Now,
	}
}

// IssueToken exchanges credentials for the user's token, creating one on
// first login.
func (a *Auth) IssueToken(ctx context.Context, email, password string) (string, error) {
	email = model.NormalizeEmail(email)

	a.logger.Debug("Auth service: issuing token",
		"email", email)

	v := &model.ValidationError{}
	if email == "" {
		v.Add("email", model.MsgBlank)
	}
	if password == "" {
		v.Add("password", model.MsgBlank)
	}
	if err := v.Err(); err != nil {
		return "", err
	}

	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		a.logger.Info("Auth service: unknown email",
			"email", email)
		return "", model.ErrInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("failed to get user by email: %w", err)
	}

	if !user.IsActive || !a.hasher.Check(user.Password, password) {
		a.logger.Info("Auth service: credentials rejected",
			"user_id", user.ID)
		return "", model.ErrInvalidCredentials
	}

	existing, err := a.tokenStore.GetByUserID(ctx, user.ID)
	switch {
	case err == nil && !existing.Expired(a.now()):
		return existing.Key, nil
	case err == nil:
		a.logger.Info("Auth service: replacing expired token",
			"user_id", user.ID)
		if err := a.tokenStore.DeleteByUserID(ctx, user.ID); err != nil {
			return "", fmt.Errorf("failed to delete expired token: %w", err)
		}
	case !errors.Is(err, model.ErrNotFound):
		return "", fmt.Errorf("failed to get token: %w", err)
	}

	now := a.now()
	var expiresAt *time.Time
	if a.tokenTTL > 0 {
		exp := now.Add(a.tokenTTL)
		expiresAt = &exp
	}

	key, err := a.manager.GenerateKey(user.ID, expiresAt)
	if err != nil {
		return "", fmt.Errorf("failed to generate token key: %w", err)
	}

	saved, err := a.tokenStore.Create(ctx, model.AuthToken{
		Key:       key,
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: expiresAt,
	})
	if err != nil {
		a.logger.Error("Auth service: failed to store token",
			"user_id", user.ID,
			"error", err.Error())
		return "", fmt.Errorf("failed to store token: %w", err)
	}

	a.logger.Info("Auth service: token issued",
		"user_id", user.ID)

	return saved.Key, nil
}

// Authenticate resolves a presented key to an active user.
func (a *Auth) Authenticate(ctx context.Context, key string) (model.User, error) {
	if key == "" {
		return model.User{}, model.ErrUnauthorized
	}

	userID, err := a.manager.ParseKey(key)
	if err != nil {
		a.logger.Debug("Auth service: rejected token key",
			"error", err.Error())
		return model.User{}, model.ErrUnauthorized
	}

	token, err := a.tokenStore.GetByKey(ctx, key)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, model.ErrUnauthorized
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get token: %w", err)
	}
	if token.UserID != userID {
		return model.User{}, model.ErrUnauthorized
	}
	if token.Expired(a.now()) {
		return model.User{}, fmt.Errorf("%w: %w", model.ErrUnauthorized, model.ErrTokenExpired)
	}

	user, err := a.userStore.GetByID(ctx, token.UserID)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, model.ErrUnauthorized
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	if !user.IsActive {
		return model.User{}, model.ErrUnauthorized
	}

	return user, nil
}

func (a *Auth) GetProfile(user model.User) model.Profile {
	return model.Profile{
		Name:  user.Name,
		Email: user.Email,
	}
}

// UpdateProfile applies the supplied fields to user. A new password is
// hashed before storing.
func (a *Auth) UpdateProfile(ctx context.Context, user model.User, update model.ProfileUpdate) (model.User, error) {
	a.logger.Debug("Auth service: updating profile",
		"user_id", user.ID)

	v := &model.ValidationError{}
	if update.Email != nil {
		email := model.NormalizeEmail(*update.Email)
		update.Email = &email
		validateEmail(v, email)
	}
	if update.Password != nil {
		validatePassword(v, *update.Password)
	}
	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		update.Name = &name
		validateText(v, "name", name, true)
	}
	if err := v.Err(); err != nil {
		return model.User{}, err
	}

	if update.Email != nil && *update.Email != user.Email {
		other, err := a.userStore.GetByEmail(ctx, *update.Email)
		if err == nil && other.ID != user.ID {
			return model.User{}, model.NewValidationError("email", model.MsgEmailTaken)
		}
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
		}
		user.Email = *update.Email
	}
	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Password != nil {
		hash, err := a.hasher.Hash(*update.Password)
		if err != nil {
			return model.User{}, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = hash
	}

	saved, err := a.userStore.Update(ctx, user)
	if errors.Is(err, model.ErrAlreadyExists) {
		return model.User{}, model.NewValidationError("email", model.MsgEmailTaken)
	}
	if err != nil {
		a.logger.Error("Auth service: failed to update profile",
			"user_id", user.ID,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	return saved, nil
}

// RevokeToken deletes the user's token; the next login issues a new one.
func (a *Auth) RevokeToken(ctx context.Context, user model.User) error {
	if err := a.tokenStore.DeleteByUserID(ctx, user.ID); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	a.logger.Info("Auth service: token revoked",
		"user_id", user.ID)

	return nil
}
