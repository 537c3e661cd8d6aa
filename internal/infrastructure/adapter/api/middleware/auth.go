package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	errs "github.com/kunalPisolkar24/payflow/internal/domain/error"
	coreport "github.com/kunalPisolkar24/payflow/internal/domain/port/core"
	"github.com/kunalPisolkar24/payflow/internal/infrastructure/adapter/api/dto"
)

const identityKey = "identity"

// Auth rejects requests without a valid bearer token and attaches the caller's identity
func Auth(tokens coreport.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			abortUnauthorized(c)
			return
		}

		identity, err := tokens.Parse(strings.TrimSpace(token))
		if err != nil {
			abortUnauthorized(c)
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// CurrentIdentity returns the identity attached by Auth
func CurrentIdentity(c *gin.Context) (*coreport.Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return nil, false
	}
	identity, ok := value.(*coreport.Identity)
	return identity, ok && identity != nil
}

func abortUnauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", `Bearer realm="payflow"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
		Code:    errs.ErrorCode(errs.ErrUnauthorized),
		Message: "Unauthorized",
	})
}
