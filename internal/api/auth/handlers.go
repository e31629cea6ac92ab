package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/diksiai/pkg/models"
)

const (
	maxUsernameLength = 50
	maxFullNameLength = 100
	minPasswordLength = 8
	maxPasswordLength = 128
)

type registerRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
}

type loginRequest struct {
	Login      string `json:"login"`
	Password   string `json:"password"`
	RememberMe bool   `json:"remember_me"`
}

type tokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        *models.User `json:"user"`
}

// Handlers exposes the authentication endpoints.
type Handlers struct {
	service *Service
}

// NewHandlers creates the auth handlers.
func NewHandlers(service *Service) *Handlers {
	return &Handlers{service: service}
}

// Register mounts the auth routes on a group. The caller attaches rate
// limiting per route tier.
func (h *Handlers) Register(g *echo.Group) {
	g.POST("/register", h.handleRegister)
	g.POST("/login", h.handleLogin)
	g.GET("/me", h.handleMe, RequireAuth(h.service), RequireApproved())
	g.POST("/logout", h.handleLogout)
}

func (h *Handlers) handleRegister(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := validateRegistration(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Register(c.Request().Context(), RegisterParams{
		Email:    strings.TrimSpace(req.Email),
		Username: strings.TrimSpace(req.Username),
		FullName: strings.TrimSpace(req.FullName),
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, ErrEmailTaken) || errors.Is(err, ErrUsernameTaken) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to register user")
	}

	return c.JSON(http.StatusCreated, user)
}

func (h *Handlers) handleLogin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if req.Login == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Login and password are required")
	}

	user, token, err := h.service.Authenticate(c.Request().Context(), req.Login, req.Password, req.RememberMe)
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrNotApproved):
		return echo.NewHTTPError(http.StatusForbidden, "Your account is pending approval. Please contact an administrator.")
	case err != nil:
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to log in")
	}

	return c.JSON(http.StatusOK, tokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user,
	})
}

func (h *Handlers) handleMe(c echo.Context) error {
	return c.JSON(http.StatusOK, CurrentUser(c))
}

func (h *Handlers) handleLogout(c echo.Context) error {
	// Tokens are stateless; the client discards its copy.
	return c.JSON(http.StatusOK, map[string]string{"message": "Successfully logged out"})
}

func validateRegistration(req registerRequest) error {
	email := strings.TrimSpace(req.Email)
	username := strings.TrimSpace(req.Username)

	if email == "" || !strings.Contains(email, "@") {
		return errors.New("a valid email is required")
	}
	if username == "" {
		return errors.New("username is required")
	}
	if len(username) > maxUsernameLength {
		return errors.New("username must be at most 50 characters")
	}
	if len(strings.TrimSpace(req.FullName)) > maxFullNameLength {
		return errors.New("full name must be at most 100 characters")
	}
	if len(req.Password) < minPasswordLength {
		return errors.New("password must be at least 8 characters")
	}
	if len(req.Password) > maxPasswordLength {
		return errors.New("password must be at most 128 characters")
	}
	return nil
}
