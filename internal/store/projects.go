package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/diksiai/pkg/models"
)

// ProjectStore handles project rows. Every read and write is scoped to
// the owning user.
type ProjectStore struct {
	db *sql.DB
}

// NewProjectStore creates a project store.
func NewProjectStore(db *sql.DB) *ProjectStore {
	return &ProjectStore{db: db}
}

// ProjectUpdate carries the fields of a partial update. Nil fields are
// left unchanged.
type ProjectUpdate struct {
	Title       *string
	Description *string
}

const projectColumns = "id, user_id, title, description, created_at, updated_at"

func scanProject(row *sql.Row) (*models.Project, error) {
	p := &models.Project{}
	var description sql.NullString
	err := row.Scan(&p.ID, &p.UserID, &p.Title, &description, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan project: %w", err)
	}
	p.Description = description.String
	return p, nil
}

// Create inserts a new project for the user.
func (s *ProjectStore) Create(ctx context.Context, userID int64, title, description string) (*models.Project, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO projects (user_id, title, description)
		VALUES ($1, $2, $3)
		RETURNING `+projectColumns+`
	`, userID, title, description)
	return scanProject(row)
}

// GetByID returns a project only if it belongs to the user.
func (s *ProjectStore) GetByID(ctx context.Context, projectID, userID int64) (*models.Project, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+projectColumns+` FROM projects
		WHERE id = $1 AND user_id = $2
	`, projectID, userID)
	return scanProject(row)
}

// ListForUser returns the user's projects with chapter counts, most
// recently updated first.
func (s *ProjectStore) ListForUser(ctx context.Context, userID int64) ([]models.ProjectListItem, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT p.id, p.title, p.description, p.created_at, p.updated_at,
		       COUNT(c.id) AS chapter_count
		FROM projects p
		LEFT JOIN chapters c ON c.project_id = p.id
		WHERE p.user_id = $1
		GROUP BY p.id
		ORDER BY p.updated_at DESC NULLS LAST, p.created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	items := []models.ProjectListItem{}
	for rows.Next() {
		var item models.ProjectListItem
		var description sql.NullString
		if err := rows.Scan(&item.ID, &item.Title, &description, &item.CreatedAt, &item.UpdatedAt, &item.ChapterCount); err != nil {
			return nil, fmt.Errorf("failed to scan project list item: %w", err)
		}
		item.Description = description.String
		items = append(items, item)
	}
	return items, rows.Err()
}

// Update applies a partial update and bumps updated_at. Returns
// ErrNotFound when the project does not belong to the user.
func (s *ProjectStore) Update(ctx context.Context, projectID, userID int64, update ProjectUpdate) (*models.Project, error) {
	row := s.db.QueryRowContext(ctx, `
		UPDATE projects
		SET title = COALESCE($3, title),
		    description = COALESCE($4, description),
		    updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING `+projectColumns+`
	`, projectID, userID, update.Title, update.Description)
	return scanProject(row)
}

// Delete removes a project and its chapters.
func (s *ProjectStore) Delete(ctx context.Context, projectID, userID int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM chapters WHERE project_id IN (
			SELECT id FROM projects WHERE id = $1 AND user_id = $2
		)
	`, projectID, userID); err != nil {
		return fmt.Errorf("failed to delete chapters: %w", err)
	}

	res, err := tx.ExecContext(ctx, `
		DELETE FROM projects WHERE id = $1 AND user_id = $2
	`, projectID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return tx.Commit()
}
