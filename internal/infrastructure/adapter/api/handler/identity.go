package handler

import (
	"github.com/gin-gonic/gin"
	errs "github.com/kunalPisolkar24/payflow/internal/domain/error"
	coreport "github.com/kunalPisolkar24/payflow/internal/domain/port/core"
	"github.com/kunalPisolkar24/payflow/internal/infrastructure/adapter/api/middleware"
)

// callerID returns the authenticated user ID, writing a 401 when there is none
func callerID(c *gin.Context, logger coreport.Logger) (uint64, bool) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		respondError(c, logger, errs.ErrUnauthorized)
		return 0, false
	}
	return identity.UserID, true
}
