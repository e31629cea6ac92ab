package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/diksiai/internal/api/auth"
	"github.com/diksiai/internal/store"
	"github.com/diksiai/pkg/models"
)

const (
	maxTitleLength       = 255
	maxDescriptionLength = 2000
	maxContentLength     = 500000
	maxChapterOrder      = 10000
)

type projectCreateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type projectUpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

type chapterCreateRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Order   int    `json:"order"`
}

type chapterUpdateRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Order   *int    `json:"order"`
}

type projectStore interface {
	ListForUser(ctx context.Context, userID int64) ([]models.ProjectListItem, error)
	Create(ctx context.Context, userID int64, title, description string) (*models.Project, error)
	GetByID(ctx context.Context, projectID, userID int64) (*models.Project, error)
	Update(ctx context.Context, projectID, userID int64, update store.ProjectUpdate) (*models.Project, error)
	Delete(ctx context.Context, projectID, userID int64) error
}

type chapterStore interface {
	Create(ctx context.Context, projectID, userID int64, title, content string, order int) (*models.Chapter, error)
	GetByID(ctx context.Context, chapterID, projectID, userID int64) (*models.Chapter, error)
	ListForProject(ctx context.Context, projectID, userID int64) ([]models.Chapter, error)
	Update(ctx context.Context, chapterID, projectID, userID int64, update store.ChapterUpdate) (*models.Chapter, error)
	Delete(ctx context.Context, chapterID, projectID, userID int64) error
}

// ProjectHandlers exposes project and chapter CRUD. Every route is
// scoped to the authenticated user; rows owned by someone else come
// back as 404.
type ProjectHandlers struct {
	projects projectStore
	chapters chapterStore
}

// NewProjectHandlers creates the project handlers.
func NewProjectHandlers(projects projectStore, chapters chapterStore) *ProjectHandlers {
	return &ProjectHandlers{projects: projects, chapters: chapters}
}

// Register mounts the project routes on an already-authenticated group.
func (h *ProjectHandlers) Register(g *echo.Group) {
	g.GET("", h.handleList)
	g.POST("", h.handleCreate)
	g.GET("/:project_id", h.handleGet)
	g.PUT("/:project_id", h.handleUpdate)
	g.DELETE("/:project_id", h.handleDelete)

	g.POST("/:project_id/chapters", h.handleCreateChapter)
	g.GET("/:project_id/chapters/:chapter_id", h.handleGetChapter)
	g.PUT("/:project_id/chapters/:chapter_id", h.handleUpdateChapter)
	g.DELETE("/:project_id/chapters/:chapter_id", h.handleDeleteChapter)
}

func (h *ProjectHandlers) handleList(c echo.Context) error {
	user := auth.CurrentUser(c)
	items, err := h.projects.ListForUser(c.Request().Context(), user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list projects")
	}
	return c.JSON(http.StatusOK, items)
}

func (h *ProjectHandlers) handleCreate(c echo.Context) error {
	var req projectCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := validateTitle(req.Title); err != nil {
		return err
	}
	if len(req.Description) > maxDescriptionLength {
		return echo.NewHTTPError(http.StatusBadRequest, "Description must be at most 2000 characters")
	}

	user := auth.CurrentUser(c)
	project, err := h.projects.Create(c.Request().Context(), user.ID, req.Title, req.Description)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create project")
	}
	project.Chapters = []models.Chapter{}
	return c.JSON(http.StatusOK, project)
}

func (h *ProjectHandlers) handleGet(c echo.Context) error {
	projectID, err := pathID(c, "project_id")
	if err != nil {
		return err
	}

	user := auth.CurrentUser(c)
	project, err := h.projects.GetByID(c.Request().Context(), projectID, user.ID)
	if errors.Is(err, store.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Project not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load project")
	}

	// The detail representation carries the full chapter list; list
	// rows only carry counts.
	project.Chapters, err = h.chapters.ListForProject(c.Request().Context(), projectID, user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load chapters")
	}
	return c.JSON(http.StatusOK, project)
}

func (h *ProjectHandlers) handleUpdate(c echo.Context) error {
	projectID, err := pathID(c, "project_id")
	if err != nil {
		return err
	}

	var req projectUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if req.Title != nil {
		if err := validateTitle(*req.Title); err != nil {
			return err
		}
	}
	if req.Description != nil && len(*req.Description) > maxDescriptionLength {
		return echo.NewHTTPError(http.StatusBadRequest, "Description must be at most 2000 characters")
	}

	user := auth.CurrentUser(c)
	project, err := h.projects.Update(c.Request().Context(), projectID, user.ID, store.ProjectUpdate{
		Title:       req.Title,
		Description: req.Description,
	})
	if errors.Is(err, store.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Project not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update project")
	}

	project.Chapters, err = h.chapters.ListForProject(c.Request().Context(), projectID, user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load chapters")
	}
	return c.JSON(http.StatusOK, project)
}

func (h *ProjectHandlers) handleDelete(c echo.Context) error {
	projectID, err := pathID(c, "project_id")
	if err != nil {
		return err
	}

	user := auth.CurrentUser(c)
	err = h.projects.Delete(c.Request().Context(), projectID, user.ID)
	if errors.Is(err, store.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Project not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete project")
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Project deleted successfully"})
}

func (h *ProjectHandlers) handleCreateChapter(c echo.Context) error {
	projectID, err := pathID(c, "project_id")
	if err != nil {
		return err
	}

	var req chapterCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := validateChapter(req.Title, req.Content, req.Order); err != nil {
		return err
	}

	user := auth.CurrentUser(c)
	chapter, err := h.chapters.Create(c.Request().Context(), projectID, user.ID, req.Title, req.Content, req.Order)
	if errors.Is(err, store.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Project not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create chapter")
	}
	return c.JSON(http.StatusOK, chapter)
}

func (h *ProjectHandlers) handleGetChapter(c echo.Context) error {
	projectID, chapterID, err := chapterPathIDs(c)
	if err != nil {
		return err
	}

	user := auth.CurrentUser(c)
	chapter, err := h.chapters.GetByID(c.Request().Context(), chapterID, projectID, user.ID)
	if errors.Is(err, store.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Chapter not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load chapter")
	}
	return c.JSON(http.StatusOK, chapter)
}

func (h *ProjectHandlers) handleUpdateChapter(c echo.Context) error {
	projectID, chapterID, err := chapterPathIDs(c)
	if err != nil {
		return err
	}

	var req chapterUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if req.Title != nil {
		if err := validateTitle(*req.Title); err != nil {
			return err
		}
	}
	if req.Content != nil && len(*req.Content) > maxContentLength {
		return echo.NewHTTPError(http.StatusBadRequest, "Content is too large")
	}
	if req.Order != nil && (*req.Order < 0 || *req.Order > maxChapterOrder) {
		return echo.NewHTTPError(http.StatusBadRequest, "Chapter order is out of range")
	}

	user := auth.CurrentUser(c)
	chapter, err := h.chapters.Update(c.Request().Context(), chapterID, projectID, user.ID, store.ChapterUpdate{
		Title:   req.Title,
		Content: req.Content,
		Order:   req.Order,
	})
	if errors.Is(err, store.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Chapter not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update chapter")
	}
	return c.JSON(http.StatusOK, chapter)
}

func (h *ProjectHandlers) handleDeleteChapter(c echo.Context) error {
	projectID, chapterID, err := chapterPathIDs(c)
	if err != nil {
		return err
	}

	user := auth.CurrentUser(c)
	err = h.chapters.Delete(c.Request().Context(), chapterID, projectID, user.ID)
	if errors.Is(err, store.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Chapter not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete chapter")
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Chapter deleted successfully"})
}

func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid "+name)
	}
	return id, nil
}

func chapterPathIDs(c echo.Context) (projectID, chapterID int64, err error) {
	projectID, err = pathID(c, "project_id")
	if err != nil {
		return 0, 0, err
	}
	chapterID, err = pathID(c, "chapter_id")
	if err != nil {
		return 0, 0, err
	}
	return projectID, chapterID, nil
}

func validateTitle(title string) error {
	if title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Title is required")
	}
	if len(title) > maxTitleLength {
		return echo.NewHTTPError(http.StatusBadRequest, "Title must be at most 255 characters")
	}
	return nil
}

func validateChapter(title, content string, order int) error {
	if err := validateTitle(title); err != nil {
		return err
	}
	if len(content) > maxContentLength {
		return echo.NewHTTPError(http.StatusBadRequest, "Content is too large")
	}
	if order < 0 || order > maxChapterOrder {
		return echo.NewHTTPError(http.StatusBadRequest, "Chapter order is out of range")
	}
	return nil
}
