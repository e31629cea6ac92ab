package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/diksiai/pkg/models"
)

// ChapterStore handles chapter rows. Ownership checks go through the
// parent project.
type ChapterStore struct {
	db *sql.DB
}

// NewChapterStore creates a chapter store.
func NewChapterStore(db *sql.DB) *ChapterStore {
	return &ChapterStore{db: db}
}

// ChapterUpdate carries the fields of a partial update. Nil fields are
// left unchanged.
type ChapterUpdate struct {
	Title   *string
	Content *string
	Order   *int
}

const chapterColumns = `id, project_id, title, content, "order", created_at, updated_at`

func scanChapter(row *sql.Row) (*models.Chapter, error) {
	ch := &models.Chapter{}
	var content sql.NullString
	err := row.Scan(&ch.ID, &ch.ProjectID, &ch.Title, &content, &ch.Order, &ch.CreatedAt, &ch.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan chapter: %w", err)
	}
	ch.Content = content.String
	return ch, nil
}

// Create inserts a chapter into a project the user owns.
func (s *ChapterStore) Create(ctx context.Context, projectID, userID int64, title, content string, order int) (*models.Chapter, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO chapters (project_id, title, content, "order")
		SELECT p.id, $3, $4, $5
		FROM projects p
		WHERE p.id = $1 AND p.user_id = $2
		RETURNING `+chapterColumns+`
	`, projectID, userID, title, content, order)
	return scanChapter(row)
}

// ListForProject returns a project's chapters in reading order, only if
// the project belongs to the user.
func (s *ChapterStore) ListForProject(ctx context.Context, projectID, userID int64) ([]models.Chapter, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT c.id, c.project_id, c.title, c.content, c."order", c.created_at, c.updated_at
		FROM chapters c
		JOIN projects p ON p.id = c.project_id
		WHERE c.project_id = $1 AND p.user_id = $2
		ORDER BY c."order", c.id
	`, projectID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list chapters: %w", err)
	}
	defer rows.Close()

	chapters := []models.Chapter{}
	for rows.Next() {
		var ch models.Chapter
		var content sql.NullString
		if err := rows.Scan(&ch.ID, &ch.ProjectID, &ch.Title, &content, &ch.Order, &ch.CreatedAt, &ch.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan chapter: %w", err)
		}
		ch.Content = content.String
		chapters = append(chapters, ch)
	}
	return chapters, rows.Err()
}

// GetByID returns a chapter only if its project belongs to the user.
func (s *ChapterStore) GetByID(ctx context.Context, chapterID, projectID, userID int64) (*models.Chapter, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT c.id, c.project_id, c.title, c.content, c."order", c.created_at, c.updated_at
		FROM chapters c
		JOIN projects p ON p.id = c.project_id
		WHERE c.id = $1 AND c.project_id = $2 AND p.user_id = $3
	`, chapterID, projectID, userID)
	return scanChapter(row)
}

// Update applies a partial update and bumps updated_at.
func (s *ChapterStore) Update(ctx context.Context, chapterID, projectID, userID int64, update ChapterUpdate) (*models.Chapter, error) {
	row := s.db.QueryRowContext(ctx, `
		UPDATE chapters c
		SET title = COALESCE($4, c.title),
		    content = COALESCE($5, c.content),
		    "order" = COALESCE($6, c."order"),
		    updated_at = NOW()
		FROM projects p
		WHERE c.id = $1 AND c.project_id = $2 AND p.id = c.project_id AND p.user_id = $3
		RETURNING c.id, c.project_id, c.title, c.content, c."order", c.created_at, c.updated_at
	`, chapterID, projectID, userID, update.Title, update.Content, update.Order)
	return scanChapter(row)
}

// Delete removes a chapter.
func (s *ChapterStore) Delete(ctx context.Context, chapterID, projectID, userID int64) error {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM chapters c
		USING projects p
		WHERE c.id = $1 AND c.project_id = $2 AND p.id = c.project_id AND p.user_id = $3
	`, chapterID, projectID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete chapter: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
