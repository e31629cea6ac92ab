// Package auth implements registration, login, and the token-based
// request authentication for the API. New accounts start unapproved and
// cannot use the writing endpoints until an administrator flips the
// flag.
package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/diksiai/internal/store"
	"github.com/diksiai/pkg/models"
)

// Authentication failures callers are expected to map to HTTP statuses.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("incorrect email/username or password")
	ErrNotApproved        = errors.New("account is pending approval")
)

// RegisterParams holds validated registration input.
type RegisterParams struct {
	Email    string
	Username string
	FullName string
	Password string
}

// Service implements the authentication flows over the user store.
type Service struct {
	users  *store.UserStore
	tokens *TokenService
}

// NewService creates an auth service.
func NewService(users *store.UserStore, tokens *TokenService) *Service {
	return &Service{users: users, tokens: tokens}
}

// Tokens exposes the underlying token service for middleware wiring.
func (s *Service) Tokens() *TokenService {
	return s.tokens
}

// Register creates a new unapproved user after checking that email and
// username are unclaimed.
func (s *Service) Register(ctx context.Context, p RegisterParams) (*models.User, error) {
	if _, err := s.users.GetByEmail(ctx, p.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	if _, err := s.users.GetByUsername(ctx, p.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	return s.users.Create(ctx, p.Email, p.Username, p.FullName, string(hash))
}

// Authenticate verifies credentials and issues an access token. The
// login value may be either email or username. Unknown logins and wrong
// passwords return the same error so the response does not leak which
// accounts exist.
func (s *Service) Authenticate(ctx context.Context, login, password string, rememberMe bool) (*models.User, string, error) {
	user, err := s.users.GetByLogin(ctx, login)
	if errors.Is(err, store.ErrNotFound) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	if !user.IsApproved {
		return nil, "", ErrNotApproved
	}

	token, _, err := s.tokens.CreateAccessToken(user.ID, rememberMe)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// UserByID loads a user for the authentication middleware.
func (s *Service) UserByID(ctx context.Context, id int64) (*models.User, error) {
	return s.users.GetByID(ctx, id)
}
