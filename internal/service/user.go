package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/recipe-server/internal/logger"
	"github.com/dtroode/recipe-server/internal/model"
)

// User creates accounts and verifies passwords.
type User struct {
	userStore model.UserStore
	hasher    model.PasswordHasher
	logger    *logger.Logger
}

func NewUser(userStore model.UserStore, hasher model.PasswordHasher, logger *logger.Logger) *User {
	return &User{
		userStore: userStore,
		hasher:    hasher,
		logger:    logger,
	}
}

// CreateUser registers an active account. The email domain is lowercased
// before storing.
func (s *User) CreateUser(ctx context.Context, email, password string, fields model.UserFields) (model.User, error) {
	email = model.NormalizeEmail(email)
	fields.Name = strings.TrimSpace(fields.Name)

	s.logger.Debug("User service: creating user",
		"email", email)

	v := &model.ValidationError{}
	validateEmail(v, email)
	validatePassword(v, password)
	validateText(v, "name", fields.Name, true)
	if err := v.Err(); err != nil {
		return model.User{}, err
	}

	_, err := s.userStore.GetByEmail(ctx, email)
	if err == nil {
		s.logger.Info("User service: email already registered",
			"email", email)
		return model.User{}, model.NewValidationError("email", model.MsgEmailTaken)
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := model.User{
		ID:          uuid.Must(uuid.NewV7()),
		Email:       email,
		Password:    hash,
		Name:        fields.Name,
		IsActive:    true,
		IsStaff:     fields.IsStaff,
		IsSuperuser: fields.IsSuperuser,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	saved, err := s.userStore.Create(ctx, user)
	if errors.Is(err, model.ErrAlreadyExists) {
		return model.User{}, model.NewValidationError("email", model.MsgEmailTaken)
	}
	if err != nil {
		s.logger.Error("User service: failed to create user",
			"email", email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("User service: user created",
		"user_id", saved.ID,
		"email", saved.Email)

	return saved, nil
}

// CreateSuperuser registers an account with staff and superuser flags set.
func (s *User) CreateSuperuser(ctx context.Context, email, password string) (model.User, error) {
	return s.CreateUser(ctx, email, password, model.UserFields{
		IsStaff:     true,
		IsSuperuser: true,
	})
}

func (s *User) CheckPassword(user model.User, password string) bool {
	return s.hasher.Check(user.Password, password)
}
