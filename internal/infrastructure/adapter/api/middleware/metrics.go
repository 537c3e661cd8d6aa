package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	coreport "github.com/kunalPisolkar24/payflow/internal/domain/port/core"
)

// HTTPObserver records served requests
type HTTPObserver interface {
	ObserveHTTPRequest(method, route string, status int, duration time.Duration)
}

// unmatchedRoute labels requests that matched no route
const unmatchedRoute = "unmatched"

// Metrics records the method, matched route, status and latency of every request
func Metrics(observer HTTPObserver, timeProvider coreport.TimeProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := timeProvider.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		observer.ObserveHTTPRequest(c.Request.Method, route, c.Writer.Status(), timeProvider.Since(start))
	}
}
