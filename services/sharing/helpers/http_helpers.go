package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/CHOWHITHA-ANANTHA/share-nest-01/internal/sharingerrors"
	"github.com/CHOWHITHA-ANANTHA/share-nest-01/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, sharingerrors.ErrItemNotFound):
		return http.StatusNotFound, "item not found"
	case errors.Is(err, sharingerrors.ErrNoActiveUser):
		return http.StatusUnauthorized, "no active session"
	case errors.Is(err, sharingerrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid login credentials"
	case errors.Is(err, sharingerrors.ErrEmptyPost):
		return http.StatusBadRequest, "post text is empty"
	case errors.Is(err, sharingerrors.ErrInvalidItem):
		return http.StatusBadRequest, "invalid item details"
	case errors.Is(err, sharingerrors.ErrInvalidRequest):
		return http.StatusBadRequest, "invalid request details"
	case errors.Is(err, sharingerrors.ErrUnknownPage):
		return http.StatusBadRequest, "unknown page"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
