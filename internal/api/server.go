// Package api wires the HTTP surface: routing, middleware, request
// validation, and the translation between transport and the ai, auth,
// and store packages.
package api

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"

	"github.com/diksiai/internal/ai"
	"github.com/diksiai/internal/api/auth"
	"github.com/diksiai/internal/config"
	"github.com/diksiai/internal/store"
)

// Server represents the API server
type Server struct {
	echo *echo.Echo
	host string
	port int
}

// NewServer creates the API server and mounts all routes.
func NewServer(cfg *config.Config, db *sql.DB, aiService *ai.Service) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())

	server := &Server{
		echo: e,
		host: cfg.Server.Host,
		port: cfg.Server.Port,
	}

	tokenService := auth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenExpiryMinutes)
	authService := auth.NewService(store.NewUserStore(db), tokenService)

	settingsStore := store.NewSettingsStore(db)
	requireApproved := []echo.MiddlewareFunc{
		rateLimit(rateLimitDefault),
		auth.RequireAuth(authService),
		auth.RequireApproved(),
	}

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
	})

	authGroup := e.Group("/auth")
	authGroup.Use(authTierRateLimits())
	auth.NewHandlers(authService).Register(authGroup)

	aiGroup := e.Group("/api/ai")
	NewAIHandlers(aiService, settingsStore).Register(aiGroup, authService)

	projectsGroup := e.Group("/projects", requireApproved...)
	NewProjectHandlers(store.NewProjectStore(db), store.NewChapterStore(db)).Register(projectsGroup)

	settingsGroup := e.Group("/settings")
	NewSettingsHandlers(settingsStore).Register(settingsGroup, authService)

	return server
}

// authTierRateLimits applies the per-route limits for the auth group:
// registration and login get their own tight buckets, everything else
// the default tier.
func authTierRateLimits() echo.MiddlewareFunc {
	registerLimit := rateLimit(rateLimitRegister)
	loginLimit := rateLimit(rateLimitLogin)
	defaultLimit := rateLimit(rateLimitDefault)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			switch c.Path() {
			case "/auth/register":
				return registerLimit(next)(c)
			case "/auth/login":
				return loginLimit(next)(c)
			default:
				return defaultLimit(next)(c)
			}
		}
	}
}

// Start runs the server until an interrupt, then shuts down gracefully.
func (s *Server) Start() error {
	go func() {
		addr := fmt.Sprintf("%s:%d", s.host, s.port)
		log.Info().Str("addr", addr).Msg("Starting API server")
		if err := s.echo.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("shutting down the server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.echo.Shutdown(ctx)
}
