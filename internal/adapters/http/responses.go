package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/taskloop/core/internal/domain/entities"
	"github.com/taskloop/core/internal/ports"
)

// taskError maps task service errors onto the API's error shapes.
// Validation failures carry their field-keyed messages; everything the
// caller is not allowed to see collapses into one generic not-found.
func taskError(c echo.Context, err error) error {
	var verr *entities.ValidationError
	if errors.As(err, &verr) {
		return c.JSON(http.StatusBadRequest, ports.ValidationErrorResponse{Errors: verr.Fields})
	}

	if errors.Is(err, entities.ErrTaskNotFound) {
		return c.JSON(http.StatusNotFound, ports.MessageResponse{Detail: "Not found."})
	}

	return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
}

// getUserIDFromContext extracts the owner ID resolved by the auth
// middleware. uuid.Nil matches no task, so an unauthenticated slip
// cannot leak data.
func getUserIDFromContext(c echo.Context) uuid.UUID {
	user := c.Get("user")
	if user == nil {
		return uuid.Nil
	}

	if userStr, ok := user.(string); ok {
		userID, _ := uuid.Parse(userStr)
		return userID
	}

	return uuid.Nil
}
