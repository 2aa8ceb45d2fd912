package utils

import "github.com/gin-gonic/gin"

// RespondError writes the API error envelope: {"error": message}.
// 400 for validation failures, 500 for persistence failures.
func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, gin.H{"error": err.Error()})
}
