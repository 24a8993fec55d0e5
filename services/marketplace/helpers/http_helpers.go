package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"campustrade/internal/marketerrors"
	"campustrade/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// HandleServiceError maps err, writes the JSON error and logs it at a level
// matching the status.
func HandleServiceError(c *gin.Context, handlerName, message string, err error, ctx map[string]any) {
	status, public := MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", public, err), public)

	if ctx == nil {
		ctx = map[string]any{}
	}
	ctx["handler"] = handlerName
	ctx["error"] = err.Error()
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": "+message, ctx)
		return
	}
	utils.Warn(handlerName+": "+message, ctx)
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, marketerrors.ErrItemNotFound):
		return http.StatusNotFound, "item not found"
	case errors.Is(err, marketerrors.ErrOrderNotFound):
		return http.StatusNotFound, "order not found"
	case errors.Is(err, marketerrors.ErrLineNotFound):
		return http.StatusNotFound, "cart line not found"
	case errors.Is(err, marketerrors.ErrWishlistEntryNotFound):
		return http.StatusNotFound, "wishlist entry not found"
	case errors.Is(err, marketerrors.ErrDuplicateItem):
		return http.StatusConflict, "item already listed"
	case errors.Is(err, marketerrors.ErrItemUnavailable):
		return http.StatusConflict, "item is no longer available"
	case errors.Is(err, marketerrors.ErrInvalidListing):
		return http.StatusBadRequest, "invalid listing details"
	case errors.Is(err, marketerrors.ErrInvalidQuantity):
		return http.StatusBadRequest, "invalid quantity"
	case errors.Is(err, marketerrors.ErrEmptyCart):
		return http.StatusBadRequest, "cart is empty"
	case errors.Is(err, marketerrors.ErrInvalidCheckout):
		return http.StatusBadRequest, "invalid checkout details"
	case errors.Is(err, marketerrors.ErrInvalidRequest):
		return http.StatusBadRequest, "invalid request"
	case errors.Is(err, marketerrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid email or password"
	case errors.Is(err, marketerrors.ErrNoCurrentUser):
		return http.StatusUnauthorized, "no user signed in"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
