// Package response writes the JSON envelope the EstimateAI web client
// consumes: {"success":true,"data":...} on the happy path,
// {"success":false,"error":{"code","message"}} otherwise. Error codes are
// stable strings the frontend switches on (e.g. INVALID_STATUS_TRANSITION,
// STALE_DRAFT), so handlers pass them explicitly rather than deriving them
// from the HTTP status.
package response

import "github.com/gin-gonic/gin"

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// ErrorWithDetails carries a free-form details payload, used for per-field
// validation feedback.
func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}
