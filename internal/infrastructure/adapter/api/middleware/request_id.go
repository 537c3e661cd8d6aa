package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/kunalPisolkar24/payflow/internal/infrastructure/adapter/requestid"
)

// RequestID reuses a well-formed incoming X-Request-ID or assigns a new one,
// stores it in the request context and echoes it in the response
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestid.Header)
		if !requestid.Valid(id) {
			id = requestid.New()
		}

		c.Request = c.Request.WithContext(requestid.WithRequestID(c.Request.Context(), id))
		c.Header(requestid.Header, id)

		c.Next()
	}
}
