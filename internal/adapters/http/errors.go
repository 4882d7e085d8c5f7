package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tasklight/core/internal/domain/entities"
)

// mapError translates store and service errors to HTTP responses. Every
// NotFound is uniform: it never distinguishes "does not exist" from
// "exists but belongs to someone else". Raw storage errors become a
// generic 500 body; the original text only goes to the log.
func mapError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, entities.ErrInvalidInput):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, entities.ErrNothingToUpdate):
		return echo.NewHTTPError(http.StatusNotFound, "nothing to update")
	case errors.Is(err, entities.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, entities.ErrInvalidCredentials):
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, entities.ErrUnauthenticated):
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
	case errors.Is(err, entities.ErrUserNotFound),
		errors.Is(err, entities.ErrListNotFound),
		errors.Is(err, entities.ErrTaskNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
