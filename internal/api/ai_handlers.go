package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/diksiai/internal/ai"
	"github.com/diksiai/internal/api/auth"
	"github.com/diksiai/internal/store"
)

// Minimum input lengths in runes. Shorter inputs produce useless model
// output, so they are rejected up front.
const (
	minContinuationContext = 50
	minReviewContent       = 50
	minTitleContent        = 100
	maxContextLength       = 5000
)

type continuationRequest struct {
	Context        string   `json:"context"`
	MaxTokens      int      `json:"max_tokens"`
	Temperature    *float64 `json:"temperature"`
	WritingStyle   string   `json:"writing_style"`
	ParagraphCount int      `json:"paragraph_count"`
	BriefIdea      string   `json:"brief_idea"`
	Model          string   `json:"model"`
}

type continuationResponse struct {
	Continuation string `json:"continuation"`
	Model        string `json:"model"`
}

type improvementRequest struct {
	Text         string   `json:"text"`
	Instruction  string   `json:"instruction"`
	Temperature  *float64 `json:"temperature"`
	WritingStyle string   `json:"writing_style"`
	Model        string   `json:"model"`
}

type improvementResponse struct {
	ImprovedText string `json:"improved_text"`
	Model        string `json:"model"`
}

type titleSuggestionRequest struct {
	Content     string   `json:"content"`
	TitleStyle  string   `json:"title_style"`
	Temperature *float64 `json:"temperature"`
	Model       string   `json:"model"`
}

type titleSuggestionResponse struct {
	Titles []string `json:"titles"`
	Model  string   `json:"model"`
}

type liveReviewRequest struct {
	Content     string   `json:"content"`
	Temperature *float64 `json:"temperature"`
	Model       string   `json:"model"`
}

type liveReviewResponse struct {
	Issues []ai.ReviewIssue `json:"issues"`
	Model  string           `json:"model"`
}

// AIHandlers exposes the LLM-backed writing endpoints.
type AIHandlers struct {
	service  *ai.Service
	settings *store.SettingsStore
}

// NewAIHandlers creates the AI handlers.
func NewAIHandlers(service *ai.Service, settings *store.SettingsStore) *AIHandlers {
	return &AIHandlers{service: service, settings: settings}
}

// Register mounts the AI routes. All writing routes require an approved
// account; status only reports availability and stays open.
func (h *AIHandlers) Register(g *echo.Group, authService *auth.Service) {
	aiLimit := rateLimit(rateLimitAI)
	authed := []echo.MiddlewareFunc{aiLimit, auth.RequireAuth(authService), auth.RequireApproved()}

	g.POST("/continue", h.handleContinue, authed...)
	g.POST("/improve", h.handleImprove, authed...)
	g.POST("/suggest-title", h.handleSuggestTitle, authed...)
	g.POST("/live-review", h.handleLiveReview, authed...)
	g.GET("/status", h.handleStatus, rateLimit(rateLimitDefault))
}

func (h *AIHandlers) handleContinue(c echo.Context) error {
	var req continuationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if n := len([]rune(req.Context)); n < minContinuationContext {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Context must be at least %d characters", minContinuationContext))
	} else if n > maxContextLength {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Context must be at most %d characters", maxContextLength))
	}

	ctx := newAIRequestContext("continuation")
	ctx.logStart(map[string]interface{}{
		"context_length": len(req.Context),
		"max_tokens":     req.MaxTokens,
		"temperature":    req.Temperature,
	})

	if err := h.checkModel(ctx, req.Model); err != nil {
		return err
	}

	customPrompts, err := h.customPrompts(c)
	if err != nil {
		ctx.logError(err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load user settings")
	}

	ctx.logProcessing(req.Model)
	continuation, err := h.service.Continue(c.Request().Context(), ai.ContinuationParams{
		Context:        req.Context,
		MaxTokens:      req.MaxTokens,
		Temperature:    req.Temperature,
		WritingStyle:   req.WritingStyle,
		ParagraphCount: req.ParagraphCount,
		BriefIdea:      req.BriefIdea,
		Model:          req.Model,
		CustomPrompts:  customPrompts,
	})
	if err != nil {
		ctx.logError(err)
		return aiError("generating continuation", err)
	}

	ctx.logSuccess(map[string]interface{}{"continuation_length": len(continuation)})
	return c.JSON(http.StatusOK, continuationResponse{Continuation: continuation, Model: req.Model})
}

func (h *AIHandlers) handleImprove(c echo.Context) error {
	var req improvementRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if req.Text == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Text is required")
	}

	ctx := newAIRequestContext("improvement")
	ctx.logStart(map[string]interface{}{"text_length": len(req.Text)})

	if err := h.checkModel(ctx, req.Model); err != nil {
		return err
	}

	customPrompts, err := h.customPrompts(c)
	if err != nil {
		ctx.logError(err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load user settings")
	}

	ctx.logProcessing(req.Model)
	improved, err := h.service.Improve(c.Request().Context(), ai.ImprovementParams{
		Text:          req.Text,
		Instruction:   req.Instruction,
		Temperature:   req.Temperature,
		WritingStyle:  req.WritingStyle,
		Model:         req.Model,
		CustomPrompts: customPrompts,
	})
	if err != nil {
		ctx.logError(err)
		return aiError("improving text", err)
	}

	ctx.logSuccess(map[string]interface{}{"improved_text_length": len(improved)})
	return c.JSON(http.StatusOK, improvementResponse{ImprovedText: improved, Model: req.Model})
}

func (h *AIHandlers) handleSuggestTitle(c echo.Context) error {
	var req titleSuggestionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if len([]rune(req.Content)) < minTitleContent {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Content must be at least %d characters", minTitleContent))
	}

	ctx := newAIRequestContext("title suggestion")
	ctx.logStart(map[string]interface{}{
		"content_length": len(req.Content),
		"title_style":    req.TitleStyle,
	})

	if err := h.checkModel(ctx, req.Model); err != nil {
		return err
	}

	ctx.logProcessing(req.Model)
	titles, err := h.service.SuggestTitles(c.Request().Context(), ai.TitleParams{
		Content:     req.Content,
		TitleStyle:  req.TitleStyle,
		Temperature: req.Temperature,
		Model:       req.Model,
	})
	if err != nil {
		ctx.logError(err)
		return aiError("generating title suggestions", err)
	}

	ctx.logSuccess(map[string]interface{}{"titles_count": len(titles)})
	return c.JSON(http.StatusOK, titleSuggestionResponse{Titles: titles, Model: req.Model})
}

func (h *AIHandlers) handleLiveReview(c echo.Context) error {
	var req liveReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if len([]rune(req.Content)) < minReviewContent {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Content must be at least %d characters", minReviewContent))
	}

	ctx := newAIRequestContext("live review")
	ctx.logStart(map[string]interface{}{"content_length": len(req.Content)})

	if err := h.checkModel(ctx, req.Model); err != nil {
		return err
	}

	ctx.logProcessing(req.Model)
	issues, err := h.service.LiveReview(c.Request().Context(), ai.ReviewParams{
		Content:     req.Content,
		Temperature: req.Temperature,
		Model:       req.Model,
	})
	if err != nil {
		ctx.logError(err)
		return aiError("during live review", err)
	}

	ctx.logSuccess(map[string]interface{}{"issues_count": len(issues)})
	return c.JSON(http.StatusOK, liveReviewResponse{Issues: issues, Model: req.Model})
}

func (h *AIHandlers) handleStatus(c echo.Context) error {
	status := "unavailable"
	if h.service.IsModelAvailable(ai.DefaultModel) {
		status = "available"
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status": status,
		"providers": map[string]interface{}{
			"available_models": h.service.ProviderInfo(),
		},
	})
}

// checkModel gates the request on credential availability before any
// provider call is attempted.
func (h *AIHandlers) checkModel(ctx *aiRequestContext, model string) error {
	ctx.logModelCheck(model)
	if !h.service.IsModelAvailable(model) {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "AI model is not available. Please check API key configuration.")
	}
	return nil
}

func (h *AIHandlers) customPrompts(c echo.Context) (map[string]string, error) {
	user := auth.CurrentUser(c)
	if user == nil {
		return nil, nil
	}
	return h.settings.CustomPromptsForUser(c.Request().Context(), user.ID)
}

// aiError maps service failures to HTTP errors. Configuration problems
// surface as 503 so clients can distinguish them from provider faults.
func aiError(operation string, err error) error {
	if errors.Is(err, ai.ErrModelUnavailable) {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "AI model is not available. Please check API key configuration.")
	}
	return echo.NewHTTPError(http.StatusInternalServerError, fmt.Sprintf("Error %s: %v", operation, err))
}
