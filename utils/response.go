package utils

import (
	"github.com/gin-gonic/gin"
)

// Envelope is the body of every JSON API response.
// Exactly one of Data and Error is set.
type Envelope struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// JSONResponse sends a successful envelope
func JSONResponse(c *gin.Context, status int, data any, message string) {
	c.JSON(status, Envelope{Status: status, Message: message, Data: data})
}

// JSONError sends an error envelope
func JSONError(c *gin.Context, status int, err error, message string) {
	c.JSON(status, errorEnvelope(status, err, message))
}

// AbortWithJSONError sends an error envelope and stops the handler chain
func AbortWithJSONError(c *gin.Context, status int, err error, message string) {
	c.AbortWithStatusJSON(status, errorEnvelope(status, err, message))
}

func errorEnvelope(status int, err error, message string) Envelope {
	env := Envelope{Status: status, Message: message}
	if err != nil {
		env.Error = err.Error()
	}
	return env
}
