package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/cosmintrica/fishing-records/internal/models/api_error"
)

// ErrorHandler converts the first error collected during the request into
// the JSON error response.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors[0]
			api_error.ToResponse(c, err.Err)
		}
	}
}
