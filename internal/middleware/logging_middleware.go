package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"adsgateway-service/internal/pkg/response"
)

// LoggingMiddleware writes one structured access-log line per request,
// including the correlation ID.
func LoggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("request_id", response.RequestID(c)),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}
