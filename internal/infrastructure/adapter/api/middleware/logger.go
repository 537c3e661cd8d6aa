package middleware

import (
	"github.com/gin-gonic/gin"
	coreport "github.com/kunalPisolkar24/payflow/internal/domain/port/core"
	"github.com/kunalPisolkar24/payflow/internal/infrastructure/adapter/requestid"
)

// Logger middleware logs every request once it has been served
func Logger(logger coreport.Logger, timeProvider coreport.TimeProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := timeProvider.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		statusCode := c.Writer.Status()
		fields := map[string]any{
			"method":     method,
			"path":       path,
			"status":     statusCode,
			"latency_ms": timeProvider.Since(start).Milliseconds(),
			"ip":         c.ClientIP(),
			"request_id": requestid.FromContext(c.Request.Context()),
			"user_agent": c.Request.UserAgent(),
		}
		if identity, ok := CurrentIdentity(c); ok {
			fields["user_id"] = identity.UserID
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.Errors()
		}

		switch {
		case statusCode >= 500:
			logger.Error("Request failed", fields)
		case statusCode >= 400:
			logger.Warn("Request rejected", fields)
		default:
			logger.Info("Request processed", fields)
		}
	}
}
