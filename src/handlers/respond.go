package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/debreiyesus/church-server/src/logging"
	"github.com/debreiyesus/church-server/src/middleware"
	"github.com/debreiyesus/church-server/src/services"
)

// respondError maps service errors to HTTP status codes. Validation and
// conflict failures are 400 with the service's message; unexpected errors
// are logged and returned as 500 with the underlying message.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": errorMessage(err, services.ErrValidation)})
	case errors.Is(err, services.ErrConflict):
		c.JSON(http.StatusBadRequest, gin.H{"error": errorMessage(err, services.ErrConflict)})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
	case errors.Is(err, services.ErrSMSNotConfigured):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "SMS service not configured"})
	default:
		logger := logging.ComponentLogger("http", middleware.GetRequestID(c))
		logger.Error().
			Err(err).
			Str("path", c.Request.URL.Path).
			Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// errorMessage strips the sentinel prefix so clients see only the detail
func errorMessage(err, sentinel error) string {
	msg := strings.TrimPrefix(err.Error(), sentinel.Error()+": ")
	if msg == "" {
		return sentinel.Error()
	}
	return msg
}
