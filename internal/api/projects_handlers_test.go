package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diksiai/internal/api/auth"
	"github.com/diksiai/internal/store"
	"github.com/diksiai/pkg/models"
)

type fakeProjectStore struct {
	project *models.Project
	err     error
}

func (f *fakeProjectStore) ListForUser(ctx context.Context, userID int64) ([]models.ProjectListItem, error) {
	return nil, f.err
}

func (f *fakeProjectStore) Create(ctx context.Context, userID int64, title, description string) (*models.Project, error) {
	return f.project, f.err
}

func (f *fakeProjectStore) GetByID(ctx context.Context, projectID, userID int64) (*models.Project, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.project == nil || f.project.ID != projectID || f.project.UserID != userID {
		return nil, store.ErrNotFound
	}
	return f.project, nil
}

func (f *fakeProjectStore) Update(ctx context.Context, projectID, userID int64, update store.ProjectUpdate) (*models.Project, error) {
	return f.project, f.err
}

func (f *fakeProjectStore) Delete(ctx context.Context, projectID, userID int64) error {
	return f.err
}

type fakeChapterStore struct {
	chapters []models.Chapter
	err      error
}

func (f *fakeChapterStore) Create(ctx context.Context, projectID, userID int64, title, content string, order int) (*models.Chapter, error) {
	return nil, f.err
}

func (f *fakeChapterStore) GetByID(ctx context.Context, chapterID, projectID, userID int64) (*models.Chapter, error) {
	return nil, store.ErrNotFound
}

func (f *fakeChapterStore) ListForProject(ctx context.Context, projectID, userID int64) ([]models.Chapter, error) {
	return f.chapters, f.err
}

func (f *fakeChapterStore) Update(ctx context.Context, chapterID, projectID, userID int64, update store.ChapterUpdate) (*models.Chapter, error) {
	return nil, f.err
}

func (f *fakeChapterStore) Delete(ctx context.Context, chapterID, projectID, userID int64) error {
	return f.err
}

func projectTestContext(t *testing.T, user *models.User, projectID string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/projects/"+projectID, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("project_id")
	c.SetParamValues(projectID)
	c.Set(string(auth.UserContextKey), user)
	return c, rec
}

func TestHandleGetProject_EmbedsChapters(t *testing.T) {
	user := &models.User{ID: 7}
	project := &models.Project{ID: 3, UserID: 7, Title: "Senja", CreatedAt: time.Now()}
	chapters := []models.Chapter{
		{ID: 1, ProjectID: 3, Title: "Bab Satu", Order: 0},
		{ID: 2, ProjectID: 3, Title: "Bab Dua", Order: 1},
	}

	h := NewProjectHandlers(
		&fakeProjectStore{project: project},
		&fakeChapterStore{chapters: chapters},
	)

	c, rec := projectTestContext(t, user, "3")
	require.NoError(t, h.handleGet(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var got models.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Chapters, 2)
	assert.Equal(t, "Bab Satu", got.Chapters[0].Title)
	assert.Equal(t, "Bab Dua", got.Chapters[1].Title)
}

func TestHandleGetProject_ForeignProjectIs404(t *testing.T) {
	// The project belongs to user 9; user 7 must see a 404, not a 403.
	h := NewProjectHandlers(
		&fakeProjectStore{project: &models.Project{ID: 3, UserID: 9}},
		&fakeChapterStore{},
	)

	c, _ := projectTestContext(t, &models.User{ID: 7}, "3")
	err := h.handleGet(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}
