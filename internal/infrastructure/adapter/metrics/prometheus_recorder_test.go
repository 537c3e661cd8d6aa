package metrics

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	coreport "github.com/kunalPisolkar24/payflow/internal/domain/port/core"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_ObserveOperation(t *testing.T) {
	recorder := NewRecorder()

	recorder.ObserveOperation("withdraw", coreport.OutcomeSuccess, 20*time.Millisecond)
	recorder.ObserveOperation("withdraw", coreport.OutcomeRejected, 5*time.Millisecond)
	recorder.ObserveOperation("withdraw", coreport.OutcomeSuccess, 10*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(recorder.operationsTotal.WithLabelValues("withdraw", coreport.OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(recorder.operationsTotal.WithLabelValues("withdraw", coreport.OutcomeRejected)))
	assert.Equal(t, 1, testutil.CollectAndCount(recorder.operationDuration))
}

func TestRecorder_HTTPAndRateLimit(t *testing.T) {
	recorder := NewRecorder()

	recorder.ObserveHTTPRequest(http.MethodGet, "/api/wallet/balance", http.StatusOK, time.Millisecond)
	recorder.ObserveRateLimited()
	recorder.ObserveRateLimited()

	assert.Equal(t, 1.0, testutil.ToFloat64(recorder.httpRequestsTotal.WithLabelValues("GET", "/api/wallet/balance", "200")))
	assert.Equal(t, 2.0, testutil.ToFloat64(recorder.rateLimitedTotal))
}

// unusedConnector lets sql.OpenDB build a pool that never dials
type unusedConnector struct{}

func (unusedConnector) Connect(context.Context) (driver.Conn, error) {
	return nil, errors.New("not connected")
}

func (unusedConnector) Driver() driver.Driver {
	return nil
}

func TestRecorder_Handler(t *testing.T) {
	recorder := NewRecorder()
	recorder.ObserveOperation("deposit", coreport.OutcomeSuccess, time.Millisecond)
	require.NoError(t, recorder.RegisterDBStats(sql.OpenDB(unusedConnector{}), "payflow"))

	rec := httptest.NewRecorder()
	recorder.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `payflow_wallet_operations_total{operation="deposit",outcome="success"} 1`)
	assert.Contains(t, rec.Body.String(), "go_sql_max_open_connections")
}
