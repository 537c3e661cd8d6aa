package middleware

import (
	"context"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	errs "github.com/kunalPisolkar24/payflow/internal/domain/error"
	coreport "github.com/kunalPisolkar24/payflow/internal/domain/port/core"
	"github.com/kunalPisolkar24/payflow/internal/infrastructure/adapter/api/dto"
	"github.com/kunalPisolkar24/payflow/internal/infrastructure/adapter/ratelimit"
)

// Limiter decides whether a client may issue another request
type Limiter interface {
	Allow(ctx context.Context, clientKey string) (ratelimit.Decision, error)
}

// RateLimitObserver is notified of rejected requests
type RateLimitObserver interface {
	ObserveRateLimited()
}

// RateLimit applies limiter per client IP. Limiter errors let the request through.
func RateLimit(limiter Limiter, observer RateLimitObserver, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		decision, err := limiter.Allow(c.Request.Context(), "ip:"+c.ClientIP())
		if err != nil {
			logger.Warn("Rate limiter unavailable, allowing request", map[string]any{
				"error": err.Error(),
				"ip":    c.ClientIP(),
			})
			c.Next()
			return
		}

		resetSeconds := strconv.Itoa(int(math.Ceil(decision.ResetAfter.Seconds())))
		c.Header("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
		c.Header("X-RateLimit-Reset", resetSeconds)

		if !decision.Allowed {
			if observer != nil {
				observer.ObserveRateLimited()
			}
			c.Header("Retry-After", resetSeconds)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Code:    errs.ErrorCode(errs.ErrRateLimited),
				Message: "Too many requests, please try again later",
			})
			return
		}

		c.Next()
	}
}
