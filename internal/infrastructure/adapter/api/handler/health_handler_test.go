package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthHandler_Health(t *testing.T) {
	testCases := []struct {
		name           string
		pingErr        error
		expectedStatus int
		expectedBody   string
	}{
		{"Database reachable", nil, http.StatusOK, `{"status":"ok","database":"up"}`},
		{"Database down", errors.New("dial tcp: connection refused"), http.StatusServiceUnavailable, `{"status":"degraded","database":"down"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewHealthHandler(pingerFunc(func(context.Context) error { return tc.pingErr }), testLogger())
			router := gin.New()
			router.GET("/health", h.Health)

			w := performRequest(router, http.MethodGet, "/health", "", "")

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.JSONEq(t, tc.expectedBody, w.Body.String())
		})
	}
}
