// Package services contains the application services sitting between the
// transport layer and the repositories.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/logging"
	"github.com/dmitrijs2005/taskkeeper/internal/server/auth"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/users"
	"golang.org/x/crypto/bcrypt"
)

// UserService implements registration and login. Both operations end with a
// freshly issued session token; there is no separate "session" to store.
type UserService struct {
	repo   users.Repository
	tokens *auth.TokenService
	logger logging.Logger
}

func NewUserService(repo users.Repository, tokens *auth.TokenService, logger logging.Logger) *UserService {
	return &UserService{
		repo:   repo,
		tokens: tokens,
		logger: logger.With("module", "user_service"),
	}
}

// Register creates an account with a bcrypt-hashed password and returns a
// session token for the new user. A duplicate email surfaces as
// common.ErrorAlreadyExists.
func (s *UserService) Register(ctx context.Context, email, password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing error: %w", err)
	}

	user, err := s.repo.Create(ctx, email, string(hash))
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			s.logger.Warn(ctx, "registration with taken email", "email", email)
			return "", err
		}
		return "", fmt.Errorf("error creating user: %w", err)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("error issuing token: %w", err)
	}

	s.logger.Info(ctx, "user registered", "user_id", user.ID)
	return token, nil
}

// Login verifies the credentials and returns a session token. An unknown
// email and a wrong password both surface as common.ErrorInvalidCredentials
// so that callers cannot probe which emails are registered.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorInvalidCredentials
		}
		return "", fmt.Errorf("error fetching user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", common.ErrorInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("error issuing token: %w", err)
	}

	s.logger.Info(ctx, "user logged in", "user_id", user.ID)
	return token, nil
}
