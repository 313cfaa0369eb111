package health

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthAlwaysHealthyWithoutVerbose(t *testing.T) {
	m := NewManager("test")
	m.RegisterChecker(NewStaticChecker("broken", CheckResult{Status: StatusUnhealthy}))

	resp := m.Health(context.Background(), false)
	assert.Equal(t, StatusHealthy, resp.Status)
	assert.Empty(t, resp.Checks)

	verbose := m.Health(context.Background(), true)
	assert.Equal(t, StatusUnhealthy, verbose.Status)
	assert.Contains(t, verbose.Checks, "broken")
}

func TestReadyAggregation(t *testing.T) {
	m := NewManager("test")
	assert.True(t, m.Ready(context.Background()).Ready, "no checkers means ready")

	m.RegisterChecker(NewStaticChecker("ok", CheckResult{Status: StatusHealthy}))
	m.RegisterChecker(NewStaticChecker("limp", CheckResult{Status: StatusDegraded}))
	resp := m.Ready(context.Background())
	assert.True(t, resp.Ready, "degraded components keep the service ready")
	assert.Equal(t, StatusDegraded, resp.Status)

	m.RegisterChecker(NewStaticChecker("down", CheckResult{Status: StatusUnhealthy}))
	resp = m.Ready(context.Background())
	assert.False(t, resp.Ready)
	assert.Equal(t, StatusUnhealthy, resp.Status)
}

func TestServeEndpoints(t *testing.T) {
	m := NewManager("test")
	m.RegisterChecker(NewStaticChecker("down", CheckResult{Status: StatusUnhealthy}))

	rec := httptest.NewRecorder()
	m.ServeHealth(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code, "liveness stays 200")

	rec = httptest.NewRecorder()
	m.ServeReady(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestUpstreamChecker(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound) // bare root 404s, still reachable
	}))
	defer srv.Close()

	c := NewUpstreamChecker("catalog", srv.URL)
	require.Equal(t, StatusHealthy, c.Check(context.Background()).Status)

	srv.Close()
	assert.Equal(t, StatusUnhealthy, c.Check(context.Background()).Status)
}

func TestUpstreamCheckerDegradedOn5xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewUpstreamChecker("catalog", srv.URL)
	assert.Equal(t, StatusDegraded, c.Check(context.Background()).Status)
}
