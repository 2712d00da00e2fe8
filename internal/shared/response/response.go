package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The wire format mirrors the public API contract:
// {"data": ...} for reads, {"errors": {field: [messages]}} for
// validation failures, {"error": "..."} for everything else.

// Data wraps a successful payload.
func Data(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{"data": data})
}

// Status reports a submission outcome, e.g. {"status": "Sent!"}.
func Status(c *gin.Context, statusCode int, status string) {
	c.JSON(statusCode, gin.H{"status": status})
}

// FieldErrors returns 422 with per-field validation messages.
func FieldErrors(c *gin.Context, errs map[string][]string) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
}

// Error returns a generic error body without leaking internals.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

// Unauthorized rejects a request that failed the API key check.
func Unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": message})
}
