package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"book-catalog/internal/shared/response"
)

// APIKeyAuth guards write endpoints with a static X-API-KEY header.
// Constant-time compare so the key length doesn't leak through timing.
func APIKeyAuth(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		provided := c.GetHeader("X-API-KEY")
		if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
			response.Unauthorized(c, "Wrong API token provided")
			return
		}

		c.Next()
	}
}
