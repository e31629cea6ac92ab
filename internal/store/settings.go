package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/diksiai/pkg/models"
)

// SettingsStore handles per-user settings. Custom prompts are stored as
// a JSONB column keyed by writing style.
type SettingsStore struct {
	db *sql.DB
}

// NewSettingsStore creates a settings store.
func NewSettingsStore(db *sql.DB) *SettingsStore {
	return &SettingsStore{db: db}
}

func scanSettings(row *sql.Row) (*models.UserSettings, error) {
	s := &models.UserSettings{}
	var prompts []byte
	err := row.Scan(&s.ID, &s.UserID, &prompts, &s.CreatedAt, &s.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan settings: %w", err)
	}

	s.CustomPrompts = map[string]string{}
	if len(prompts) > 0 {
		if err := json.Unmarshal(prompts, &s.CustomPrompts); err != nil {
			return nil, fmt.Errorf("failed to decode custom prompts: %w", err)
		}
	}
	return s, nil
}

// GetOrCreate returns the user's settings, creating an empty row on
// first access.
func (s *SettingsStore) GetOrCreate(ctx context.Context, userID int64) (*models.UserSettings, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO user_settings (user_id, custom_prompts)
		VALUES ($1, '{}')
		ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING id, user_id, custom_prompts, created_at, updated_at
	`, userID)
	return scanSettings(row)
}

// Update replaces the user's custom prompts.
func (s *SettingsStore) Update(ctx context.Context, userID int64, customPrompts map[string]string) (*models.UserSettings, error) {
	if customPrompts == nil {
		customPrompts = map[string]string{}
	}
	encoded, err := json.Marshal(customPrompts)
	if err != nil {
		return nil, fmt.Errorf("failed to encode custom prompts: %w", err)
	}

	row := s.db.QueryRowContext(ctx, `
		INSERT INTO user_settings (user_id, custom_prompts)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET custom_prompts = EXCLUDED.custom_prompts, updated_at = NOW()
		RETURNING id, user_id, custom_prompts, created_at, updated_at
	`, userID, encoded)
	return scanSettings(row)
}

// CustomPromptsForUser returns the user's prompt overrides, or nil when
// the user has no settings row. Used on the AI request path where a
// missing row must not create one.
func (s *SettingsStore) CustomPromptsForUser(ctx context.Context, userID int64) (map[string]string, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, custom_prompts, created_at, updated_at
		FROM user_settings WHERE user_id = $1
	`, userID)
	settings, err := scanSettings(row)
	if err == ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return settings.CustomPrompts, nil
}
