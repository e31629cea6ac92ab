package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/diksiai/pkg/models"
)

// UserStore handles user rows.
type UserStore struct {
	db *sql.DB
}

// NewUserStore creates a user store.
func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

const userColumns = "id, email, username, full_name, password_hash, is_approved, created_at, updated_at"

func scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID, &user.Email, &user.Username, &user.FullName,
		&user.PasswordHash, &user.IsApproved, &user.CreatedAt, &user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	return user, nil
}

// Create inserts a new, unapproved user.
func (s *UserStore) Create(ctx context.Context, email, username, fullName, passwordHash string) (*models.User, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO users (email, username, full_name, password_hash, is_approved)
		VALUES ($1, $2, $3, $4, FALSE)
		RETURNING `+userColumns+`
	`, email, username, fullName, passwordHash)
	return scanUser(row)
}

// GetByID returns a user by ID.
func (s *UserStore) GetByID(ctx context.Context, id int64) (*models.User, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+userColumns+` FROM users WHERE id = $1
	`, id)
	return scanUser(row)
}

// GetByEmail returns a user by email.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+userColumns+` FROM users WHERE email = $1
	`, email)
	return scanUser(row)
}

// GetByUsername returns a user by username.
func (s *UserStore) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+userColumns+` FROM users WHERE username = $1
	`, username)
	return scanUser(row)
}

// GetByLogin returns a user whose email or username matches the login.
func (s *UserStore) GetByLogin(ctx context.Context, login string) (*models.User, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+userColumns+` FROM users WHERE email = $1 OR username = $1
	`, login)
	return scanUser(row)
}
