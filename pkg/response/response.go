package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/escola-hub/escola-api/pkg/errors"
)

// Envelope represents the common response contract.
type Envelope struct {
	Data    interface{}      `json:"data,omitempty"`
	Message string           `json:"message,omitempty"`
	Error   *appErrors.Error `json:"error,omitempty"`
}

// JSON sends a success response.
func JSON(c *gin.Context, status int, data interface{}) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(status, Envelope{Data: data})
}

// Created responds with HTTP 201 Created.
func Created(c *gin.Context, data interface{}) {
	JSON(c, http.StatusCreated, data)
}

// Ack sends a 200 response carrying a human-readable acknowledgment message.
func Ack(c *gin.Context, message string) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(http.StatusOK, Envelope{Message: message})
}

// Error sends an error response converting the error to the common structure.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(appErr.Status, Envelope{Error: appErr})
}
