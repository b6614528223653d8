package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/connectus-hq/connectus-backend/internal/platform/apierr"
	"github.com/connectus-hq/connectus-backend/internal/platform/logger"
)

// Envelope is the uniform response body on every endpoint.
type Envelope struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Error   string      `json:"error,omitempty"`
}

func Respond(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Envelope{Message: message, Data: data})
}

// RespondError maps a service error to the envelope. Domain errors carry
// their own status via apierr; anything else is logged and surfaced as a
// generic 500 without leaking internals.
func RespondError(c *gin.Context, log *logger.Logger, err error) {
	var apiErr *apierr.Error
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Status, Envelope{
			Message: http.StatusText(apiErr.Status),
			Error:   apiErr.Error(),
		})
		return
	}
	if log != nil {
		log.Error("Unhandled request error", "error", err, "path", c.FullPath())
	}
	c.JSON(http.StatusInternalServerError, Envelope{
		Message: "Internal server error",
		Error:   "internal server error",
	})
}

func RespondBadRequest(c *gin.Context, detail string) {
	c.JSON(http.StatusBadRequest, Envelope{Message: "Bad request", Error: detail})
}

func AbortUnauthorized(c *gin.Context, detail string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, Envelope{Message: "Unauthorized", Error: detail})
}

func AbortForbidden(c *gin.Context, detail string) {
	c.AbortWithStatusJSON(http.StatusForbidden, Envelope{Message: "Forbidden", Error: detail})
}
