package response

import (
	"github.com/gin-gonic/gin"
)

// Response is the envelope every endpoint returns. Message is only set on
// failures; Data only on successes.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Data:    data,
	})
}

func Fail(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Message: message,
	})
}

// Common error responses
func BadRequest(c *gin.Context, message string) {
	Fail(c, 400, message)
}

func NotFound(c *gin.Context, message string) {
	Fail(c, 404, message)
}

func InternalServerError(c *gin.Context, message string) {
	Fail(c, 500, message)
}
