package httpapi

import (
	"github.com/gin-gonic/gin"
)

const (
	statusSuccess = "success"
	statusFailed  = "failed"
)

// Envelope is the body of every API response.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// RespondOK writes a success envelope.
func RespondOK(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Envelope{
		Status:  statusSuccess,
		Message: message,
		Data:    data,
	})
}

// RespondError writes a failure envelope. Failures carry no data.
func RespondError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, Envelope{
		Status:  statusFailed,
		Message: message,
	})
}
