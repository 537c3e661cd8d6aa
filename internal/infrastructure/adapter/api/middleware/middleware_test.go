package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	errs "github.com/kunalPisolkar24/payflow/internal/domain/error"
	coreport "github.com/kunalPisolkar24/payflow/internal/domain/port/core"
	"github.com/kunalPisolkar24/payflow/internal/infrastructure/adapter/logger"
	"github.com/kunalPisolkar24/payflow/internal/infrastructure/adapter/ratelimit"
	"github.com/kunalPisolkar24/payflow/internal/infrastructure/adapter/requestid"
	coremocks "github.com/kunalPisolkar24/payflow/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuth(t *testing.T) {
	tokens := coremocks.NewMockTokenManager(t)
	tokens.EXPECT().Parse("good").Return(&coreport.Identity{UserID: 42, Email: "asha@payflow.dev"}, nil).Maybe()
	tokens.EXPECT().Parse("expired").Return(nil, errs.ErrUnauthorized).Maybe()

	router := gin.New()
	router.GET("/me", Auth(tokens), func(c *gin.Context) {
		identity, ok := CurrentIdentity(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"id": identity.UserID})
	})

	testCases := []struct {
		name           string
		header         string
		expectedStatus int
	}{
		{"Valid bearer token", "Bearer good", http.StatusOK},
		{"Lower-case scheme", "bearer good", http.StatusOK},
		{"Missing header", "", http.StatusUnauthorized},
		{"Wrong scheme", "Basic good", http.StatusUnauthorized},
		{"Empty token", "Bearer ", http.StatusUnauthorized},
		{"Rejected token", "Bearer expired", http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}

			w := serve(router, req)

			assert.Equal(t, tc.expectedStatus, w.Code)
			if tc.expectedStatus == http.StatusUnauthorized {
				assert.Contains(t, w.Header().Get("WWW-Authenticate"), "Bearer")
			} else {
				assert.JSONEq(t, `{"id":42}`, w.Body.String())
			}
		})
	}
}

func TestCurrentIdentity_Absent(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	identity, ok := CurrentIdentity(c)

	assert.False(t, ok)
	assert.Nil(t, identity)
}

type stubLimiter struct {
	decision ratelimit.Decision
	err      error
	keys     []string
}

func (s *stubLimiter) Allow(_ context.Context, clientKey string) (ratelimit.Decision, error) {
	s.keys = append(s.keys, clientKey)
	return s.decision, s.err
}

// windowLimiter allows limit requests per key and rejects the rest.
type windowLimiter struct {
	limit  int
	counts map[string]int
}

func (l *windowLimiter) Allow(_ context.Context, clientKey string) (ratelimit.Decision, error) {
	l.counts[clientKey]++
	used := l.counts[clientKey]
	if used > l.limit {
		return ratelimit.Decision{Allowed: false, Limit: l.limit, ResetAfter: time.Minute}, nil
	}
	return ratelimit.Decision{Allowed: true, Limit: l.limit, Remaining: l.limit - used, ResetAfter: time.Minute}, nil
}

type countingObserver struct{ rejected int }

func (o *countingObserver) ObserveRateLimited() { o.rejected++ }

func TestRateLimit(t *testing.T) {
	newRouter := func(limiter Limiter, observer RateLimitObserver) *gin.Engine {
		router := gin.New()
		router.Use(RateLimit(limiter, observer, logger.NewNoopLogger()))
		router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
		return router
	}

	t.Run("Allowed request carries quota headers", func(t *testing.T) {
		limiter := &stubLimiter{decision: ratelimit.Decision{Allowed: true, Limit: 10, Remaining: 7, ResetAfter: 42500 * time.Millisecond}}
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "203.0.113.9:5555"

		w := serve(newRouter(limiter, nil), req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "10", w.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, "7", w.Header().Get("X-RateLimit-Remaining"))
		assert.Equal(t, "43", w.Header().Get("X-RateLimit-Reset"))
		assert.Equal(t, []string{"ip:203.0.113.9"}, limiter.keys)
	})

	t.Run("Exhausted quota is rejected", func(t *testing.T) {
		limiter := &stubLimiter{decision: ratelimit.Decision{Allowed: false, Limit: 10, ResetAfter: 30 * time.Second}}
		observer := &countingObserver{}

		w := serve(newRouter(limiter, observer), httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "30", w.Header().Get("Retry-After"))
		assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
		assert.JSONEq(t, `{"code":4290,"message":"Too many requests, please try again later"}`, w.Body.String())
		assert.Equal(t, 1, observer.rejected)
	})

	t.Run("Limiter failure lets the request through", func(t *testing.T) {
		limiter := &stubLimiter{decision: ratelimit.Decision{Allowed: true}, err: errors.New("redis: connection refused")}

		w := serve(newRouter(limiter, nil), httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
	})

	t.Run("Forged forwarding headers share the peer quota", func(t *testing.T) {
		limiter := &windowLimiter{limit: 10, counts: map[string]int{}}
		observer := &countingObserver{}
		router := newRouter(limiter, observer)
		require.NoError(t, router.SetTrustedProxies(nil))

		rejected := 0
		for i := 0; i < 50; i++ {
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.RemoteAddr = "203.0.113.7:5555"
			req.Header.Set("X-Forwarded-For", fmt.Sprintf("198.51.100.%d", i))
			req.Header.Set("X-Real-IP", fmt.Sprintf("192.0.2.%d", i))

			if serve(router, req).Code == http.StatusTooManyRequests {
				rejected++
			}
		}

		assert.Equal(t, 40, rejected)
		assert.Equal(t, 40, observer.rejected)
		assert.Equal(t, map[string]int{"ip:203.0.113.7": 50}, limiter.counts)
	})

	t.Run("Trusted proxy forwards the client address", func(t *testing.T) {
		limiter := &stubLimiter{decision: ratelimit.Decision{Allowed: true, Limit: 10, Remaining: 9}}
		router := newRouter(limiter, nil)
		require.NoError(t, router.SetTrustedProxies([]string{"10.0.0.0/8"}))

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.1.2.3:443"
		req.Header.Set("X-Forwarded-For", "198.51.100.20")

		w := serve(router, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []string{"ip:198.51.100.20"}, limiter.keys)
	})
}

func TestRequestID(t *testing.T) {
	var seen string
	router := gin.New()
	router.Use(RequestID())
	router.GET("/ping", func(c *gin.Context) {
		seen = requestid.FromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	t.Run("Reuses a valid incoming ID", func(t *testing.T) {
		id := requestid.New()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(requestid.Header, id)

		w := serve(router, req)

		assert.Equal(t, id, w.Header().Get(requestid.Header))
		assert.Equal(t, id, seen)
	})

	t.Run("Replaces a malformed ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(requestid.Header, "<script>")

		w := serve(router, req)

		got := w.Header().Get(requestid.Header)
		assert.NotEqual(t, "<script>", got)
		assert.True(t, requestid.Valid(got))
		assert.Equal(t, got, seen)
	})
}

func TestCORS(t *testing.T) {
	newRouter := func(origins []string) *gin.Engine {
		router := gin.New()
		router.Use(CORS(origins))
		router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
		return router
	}

	t.Run("Allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", "https://app.payflow.dev")

		w := serve(newRouter([]string{"https://app.payflow.dev"}), req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "https://app.payflow.dev", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Unknown origin gets no CORS headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", "https://evil.example")

		w := serve(newRouter([]string{"https://app.payflow.dev"}), req)

		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Wildcard preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
		req.Header.Set("Origin", "http://localhost:3000")

		w := serve(newRouter([]string{"*"}), req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Authorization")
	})
}

func TestErrorHandler(t *testing.T) {
	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Error("Panic recovered in API request", mock.MatchedBy(func(fields map[string]any) bool {
		return fields["error"] == "boom" && fields["path"] == "/panic"
	})).Once()

	router := gin.New()
	router.Use(ErrorHandler(mockLogger))
	router.GET("/panic", func(*gin.Context) { panic("boom") })

	w := serve(router, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"code":5000,"message":"Internal server error"}`, w.Body.String())
}

func fixedClock(t *testing.T, elapsed time.Duration) *coremocks.MockTimeProvider {
	clock := coremocks.NewMockTimeProvider(t)
	clock.EXPECT().Now().Return(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)).Maybe()
	clock.EXPECT().Since(mock.Anything).Return(elapsed).Maybe()
	return clock
}

func TestLogger(t *testing.T) {
	testCases := []struct {
		name   string
		status int
		level  string
	}{
		{"Success is info", http.StatusOK, "Info"},
		{"Client error is a warning", http.StatusBadRequest, "Warn"},
		{"Server error is an error", http.StatusInternalServerError, "Error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockLogger := coremocks.NewMockLogger(t)
			matchFields := mock.MatchedBy(func(fields map[string]any) bool {
				return fields["status"] == tc.status && fields["path"] == "/ping" && fields["latency_ms"] == int64(12)
			})
			switch tc.level {
			case "Info":
				mockLogger.EXPECT().Info("Request processed", matchFields).Once()
			case "Warn":
				mockLogger.EXPECT().Warn("Request rejected", matchFields).Once()
			case "Error":
				mockLogger.EXPECT().Error("Request failed", matchFields).Once()
			}

			router := gin.New()
			router.Use(Logger(mockLogger, fixedClock(t, 12*time.Millisecond)))
			router.GET("/ping", func(c *gin.Context) { c.Status(tc.status) })

			serve(router, httptest.NewRequest(http.MethodGet, "/ping", nil))
		})
	}
}

type recordedRequest struct {
	method, route string
	status        int
	duration      time.Duration
}

type recordingObserver struct{ requests []recordedRequest }

func (o *recordingObserver) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	o.requests = append(o.requests, recordedRequest{method, route, status, duration})
}

func TestMetrics(t *testing.T) {
	observer := &recordingObserver{}
	router := gin.New()
	router.Use(Metrics(observer, fixedClock(t, 5*time.Millisecond)))
	router.GET("/api/users/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	serve(router, httptest.NewRequest(http.MethodGet, "/api/users/7", nil))
	serve(router, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	require.Len(t, observer.requests, 2)
	assert.Equal(t, recordedRequest{http.MethodGet, "/api/users/:id", http.StatusOK, 5 * time.Millisecond}, observer.requests[0])
	assert.Equal(t, recordedRequest{http.MethodGet, unmatchedRoute, http.StatusNotFound, 5 * time.Millisecond}, observer.requests[1])
}
