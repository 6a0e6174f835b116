package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "luckyten/internal/domain/error"
	coreport "luckyten/internal/domain/port/core"
	"luckyten/internal/infrastructure/adapter/api/dto"
)

// ErrorHandler recovers from panics and returns a generic 500 response
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Panic recovered in API request", map[string]any{
					"error":      err,
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
					"client_ip":  c.ClientIP(),
					"request_id": c.GetString(RequestIDKey),
				})

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Code:    domainerr.ErrorCode(domainerr.ErrInternalServer),
					Message: "Internal server error",
				})
			}
		}()

		c.Next()
	}
}
