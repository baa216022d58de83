package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"adsgateway-service/internal/pkg/apierror"
	"adsgateway-service/internal/pkg/response"
)

func RecoveryMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("panic recovered",
					zap.Any("error", err),
					zap.String("path", c.Request.URL.Path),
					zap.String("request_id", response.RequestID(c)),
				)
				response.Fail(c, apierror.New(apierror.KindUnavailable, "internal server error"))
			}
		}()
		c.Next()
	}
}
