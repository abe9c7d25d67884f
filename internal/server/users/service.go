// Package users contains the user model, storage access, and the
// authentication service built on top of them.
package users

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"userauth-server/internal/common"
	"userauth-server/internal/logging"
	"userauth-server/internal/server/auth"
)

// Service implements registration and credential verification on top of a
// Repository and the auth primitives.
type Service struct {
	repo   Repository
	logger logging.Logger
}

func NewService(repo Repository, logger logging.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreateUser registers a new user and returns the sanitized record.
//
// Duplicate emails keep their identity (common.ErrEmailTaken) so the
// transport layer can map them to a conflict response; every other failure
// is logged with its cause and collapsed into common.ErrUserCreation.
// Emails are normalized to lower case before lookup and insert, so
// uniqueness is case-insensitive.
func (s *Service) CreateUser(ctx context.Context, name, email, password, role string) (*SanitizedUser, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if role == "" {
		role = DefaultRole
	}

	_, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		return nil, common.ErrEmailTaken
	}
	if !errors.Is(err, common.ErrNotFound) {
		s.logger.Error(ctx, "user lookup failed", "email", email, "error", err)
		return nil, common.ErrUserCreation
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		s.logger.Error(ctx, "password hashing failed", "error", err)
		return nil, common.ErrUserCreation
	}

	user := &User{
		ID:       uuid.NewString(),
		Name:     name,
		Email:    email,
		Password: hashed,
		Role:     role,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrEmailTaken) {
			return nil, common.ErrEmailTaken
		}
		s.logger.Error(ctx, "user insert failed", "email", email, "error", err)
		return nil, common.ErrUserCreation
	}

	s.logger.Info(ctx, "user created", "id", created.ID, "email", created.Email)
	return created.Sanitized(), nil
}

// AuthenticateUser verifies the supplied credentials and returns the
// sanitized user. Unlike CreateUser, failures keep their specific identity:
// common.ErrUserNotFound for an unknown email, common.ErrInvalidCredentials
// for a password mismatch.
func (s *Service) AuthenticateUser(ctx context.Context, email, password string) (*SanitizedUser, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			s.logger.Warn(ctx, "authentication failed: unknown email", "email", email)
			return nil, common.ErrUserNotFound
		}
		s.logger.Error(ctx, "user lookup failed", "email", email, "error", err)
		return nil, err
	}

	ok, err := auth.CheckPassword(password, user.Password)
	if err != nil {
		s.logger.Error(ctx, "password comparison failed", "error", err)
		return nil, err
	}
	if !ok {
		s.logger.Warn(ctx, "authentication failed: password mismatch", "email", email)
		return nil, common.ErrInvalidCredentials
	}

	s.logger.Info(ctx, "user authenticated", "id", user.ID, "email", user.Email)
	return user.Sanitized(), nil
}

// GetByID loads a user by id and returns the sanitized record, or
// common.ErrUserNotFound.
func (s *Service) GetByID(ctx context.Context, id string) (*SanitizedUser, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUserNotFound
		}
		s.logger.Error(ctx, "user lookup failed", "id", id, "error", err)
		return nil, err
	}
	return user.Sanitized(), nil
}
