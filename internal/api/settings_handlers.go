package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/diksiai/internal/api/auth"
	"github.com/diksiai/internal/store"
	"github.com/diksiai/internal/styles"
)

const (
	maxPromptKeyLength   = 50
	maxPromptValueLength = 5000
	maxCustomPrompts     = 20
)

type settingsUpdateRequest struct {
	CustomPrompts map[string]string `json:"custom_prompts"`
}

// SettingsHandlers exposes user settings and the built-in prompt
// catalogs.
type SettingsHandlers struct {
	settings *store.SettingsStore
}

// NewSettingsHandlers creates the settings handlers.
func NewSettingsHandlers(settings *store.SettingsStore) *SettingsHandlers {
	return &SettingsHandlers{settings: settings}
}

// Register mounts the settings routes. The default prompt catalog is
// public; per-user settings require an approved account.
func (h *SettingsHandlers) Register(g *echo.Group, authService *auth.Service) {
	limit := rateLimit(rateLimitDefault)
	authed := []echo.MiddlewareFunc{limit, auth.RequireAuth(authService), auth.RequireApproved()}

	g.GET("/default-prompts", h.handleDefaultPrompts, limit)
	g.GET("/me", h.handleGetSettings, authed...)
	g.PUT("/me", h.handleUpdateSettings, authed...)
}

func (h *SettingsHandlers) handleDefaultPrompts(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"writing_styles": styles.WritingStyleCatalog(),
		"title_styles":   styles.TitleStyleCatalog(),
	})
}

func (h *SettingsHandlers) handleGetSettings(c echo.Context) error {
	user := auth.CurrentUser(c)
	settings, err := h.settings.GetOrCreate(c.Request().Context(), user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load settings")
	}
	return c.JSON(http.StatusOK, settings)
}

func (h *SettingsHandlers) handleUpdateSettings(c echo.Context) error {
	var req settingsUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := validateCustomPrompts(req.CustomPrompts); err != nil {
		return err
	}

	user := auth.CurrentUser(c)
	settings, err := h.settings.Update(c.Request().Context(), user.ID, req.CustomPrompts)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update settings")
	}
	return c.JSON(http.StatusOK, settings)
}

func validateCustomPrompts(prompts map[string]string) error {
	if len(prompts) > maxCustomPrompts {
		return echo.NewHTTPError(http.StatusBadRequest, "Too many custom prompts")
	}
	for key, value := range prompts {
		if key == "" || len(key) > maxPromptKeyLength {
			return echo.NewHTTPError(http.StatusBadRequest, "Custom prompt keys must be 1 to 50 characters")
		}
		if len(value) > maxPromptValueLength {
			return echo.NewHTTPError(http.StatusBadRequest, "Custom prompt values must be at most 5000 characters")
		}
	}
	return nil
}
