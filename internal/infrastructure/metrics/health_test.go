package metrics

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func TestHealthChecker_AllHealthy(t *testing.T) {
	h := NewHealthChecker("1.0.0")
	h.AddCheck("postgres", PingCheck(stubPinger{}))

	status := h.Check(context.Background())
	assert.True(t, status.Healthy)
	assert.Equal(t, "All checks passed", status.Message)
	assert.Equal(t, "OK", status.Checks["postgres"].Message)
}

func TestHealthChecker_Handler(t *testing.T) {
	h := NewHealthChecker("1.0.0")
	h.AddCheck("postgres", PingCheck(stubPinger{}))
	h.AddCheck("redis", PingCheck(stubPinger{err: errors.New("connection refused")}))

	rec := httptest.NewRecorder()
	h.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var status HealthStatus
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&status))
	assert.False(t, status.Healthy)
	assert.Equal(t, "Some checks failed: redis", status.Message)
	assert.Equal(t, "connection refused", status.Checks["redis"].Message)
	assert.True(t, status.Checks["postgres"].Healthy)
}
