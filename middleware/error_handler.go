package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"store-api/httputil"
)

// Recovery converts panics into a 500 in the uniform error envelope. The
// panic is logged; the response message stays generic.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, err interface{}) {
		logger.Error("panic recovered",
			zap.Any("error", err),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
		)
		httputil.Error(c, 500, "Internal server error", nil)
	})
}

// NotFound handles requests for unknown routes.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		httputil.Error(c, 404, fmt.Sprintf("Route %s %s not found", c.Request.Method, c.Request.URL.Path), nil)
	}
}
