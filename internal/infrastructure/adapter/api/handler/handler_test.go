package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	errs "github.com/kunalPisolkar24/payflow/internal/domain/error"
	coreport "github.com/kunalPisolkar24/payflow/internal/domain/port/core"
	"github.com/kunalPisolkar24/payflow/internal/infrastructure/adapter/api/middleware"
	"github.com/kunalPisolkar24/payflow/internal/infrastructure/adapter/logger"
	coremocks "github.com/kunalPisolkar24/payflow/mocks/port/core"
	"github.com/stretchr/testify/mock"
)

const testToken = "valid-token"

func init() {
	gin.SetMode(gin.TestMode)
}

// newAuthedRouter returns a router whose protected group accepts testToken as user 1
func newAuthedRouter(t *testing.T) (*gin.Engine, *gin.RouterGroup) {
	tokens := coremocks.NewMockTokenManager(t)
	tokens.EXPECT().Parse(testToken).Return(&coreport.Identity{UserID: 1, Email: "asha@payflow.dev"}, nil).Maybe()
	tokens.EXPECT().Parse(mock.Anything).Return(nil, errs.ErrUnauthorized).Maybe()

	router := gin.New()
	protected := router.Group("/api")
	protected.Use(middleware.Auth(tokens))
	return router, protected
}

func performRequest(router http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func testLogger() coreport.Logger {
	return logger.NewNoopLogger()
}
