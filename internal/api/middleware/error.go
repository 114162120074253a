package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vessel-propsim/internal/api/models"
)

// ErrorHandler recovers panics into the uniform ErrorResponse body the
// simulation handlers use for their own failures.
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		msg := "simulation service failed unexpectedly"
		switch v := recovered.(type) {
		case string:
			msg = v
		case error:
			msg = v.Error()
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INTERNAL_ERROR",
				Message: msg,
			},
		})
	})
}
