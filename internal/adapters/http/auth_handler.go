package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskloop/core/internal/application/services"
	"github.com/taskloop/core/internal/domain/entities"
	"github.com/taskloop/core/internal/infrastructure/logger"
	"github.com/taskloop/core/internal/ports"
)

// AuthHandler handles registration and authentication requests
type AuthHandler struct {
	authService *services.AuthService
	logger      *logger.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Register handles POST /auth/register. Missing fields produce one
// generic message; unlike task validation, this path is not itemized
// per field.
func (h *AuthHandler) Register(c echo.Context) error {
	var req ports.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	_, err := h.authService.Register(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, entities.ErrMissingFields) {
			return c.JSON(http.StatusBadRequest, ports.ErrorResponse{Error: "All fields are required"})
		}
		if errors.Is(err, entities.ErrUserAlreadyExists) {
			return c.JSON(http.StatusBadRequest, ports.ErrorResponse{Error: err.Error()})
		}
		h.logger.Errorw("Registration failed", "error", err, "username", req.Username)
		return c.JSON(http.StatusBadRequest, ports.ErrorResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusCreated, map[string]string{"status": "User created successfully"})
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req ports.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Username and password are required")
	}

	response, err := h.authService.Login(c.Request().Context(), req)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
	}

	return c.JSON(http.StatusOK, response)
}

// RefreshToken handles POST /auth/refresh
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var req RefreshTokenRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	response, err := h.authService.RefreshToken(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid refresh token")
	}

	return c.JSON(http.StatusOK, response)
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(c echo.Context) error {
	userID := getUserIDFromContext(c)

	if err := h.authService.Logout(c.Request().Context(), userID); err != nil {
		h.logger.Errorw("Logout failed", "error", err, "user_id", userID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Logout failed")
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "Logged out successfully"})
}

// RefreshTokenRequest is the refresh endpoint's request body.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh" validate:"required"`
}
