package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/tasklight/core/internal/application/services"
	"github.com/tasklight/core/internal/infrastructure/logger"
	"github.com/tasklight/core/internal/ports"
)

// AuthHandler handles authentication-related requests
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

// Register handles account registration
func (h *AuthHandler) Register(c echo.Context) error {
	var req ports.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	response, err := h.authService.Register(c.Request().Context(), req)
	if err != nil {
		h.logger.Warn("Registration failed", "error", err, "username", req.Username)
		return mapError(err)
	}

	return c.JSON(http.StatusOK, response)
}

// Login handles user login
func (h *AuthHandler) Login(c echo.Context) error {
	var req ports.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	response, err := h.authService.Login(c.Request().Context(), req)
	if err != nil {
		h.logger.Warn("Login failed", "username", req.Username)
		return mapError(err)
	}

	return c.JSON(http.StatusOK, response)
}

// ownerID extracts the verified user id placed in the context by the
// auth middleware.
func ownerID(c echo.Context) int64 {
	switch v := c.Get("user_id").(type) {
	case int64:
		return v
	case string:
		id, _ := strconv.ParseInt(v, 10, 64)
		return id
	default:
		return 0
	}
}
