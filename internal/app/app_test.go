package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	contractshttp "github.com/apflow/apflow/internal/contracts/http"
	"github.com/apflow/apflow/internal/observability"
	_ "github.com/apflow/apflow/testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("APP_ADDR", ":9090")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.AppAddr)
	assert.Equal(t, 60, cfg.RateLimitPerMinute)
	assert.Equal(t, int64(1<<20), cfg.MaxBodyBytes)
	assert.Equal(t, 30*time.Second, cfg.AppRequestTimeout)
	assert.False(t, cfg.IsProduction())
	assert.True(t, cfg.TestMode)
}

func TestLoadConfigRejectsNonPositiveLimits(t *testing.T) {
	t.Setenv("RATE_LIMIT_PER_MINUTE", "0")
	_, err := LoadConfig()
	assert.Error(t, err)

	t.Setenv("RATE_LIMIT_PER_MINUTE", "10")
	t.Setenv("MAX_BODY_BYTES", "-1")
	_, err = LoadConfig()
	assert.Error(t, err)

	t.Setenv("MAX_BODY_BYTES", "lots")
	_, err = LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigTestMode(t *testing.T) {
	t.Setenv("APFLOW_TEST_MODE", "false")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.False(t, cfg.TestMode)

	t.Setenv("APFLOW_TEST_MODE", "maybe")
	_, err = LoadConfig()
	assert.Error(t, err)
}

func TestLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, &Config{LogFormat: "json", LogLevel: "debug"}).Debug("hello", slog.String("entity", "invoice"))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "hello", line["msg"])
	assert.Equal(t, "invoice", line["entity"])
	assert.Contains(t, line, "source")

	buf.Reset()
	newLogger(&buf, &Config{}).Debug("hidden")
	assert.Empty(t, buf.String())
}

func newTestRouter(cfg *Config) (http.Handler, *observability.Metrics) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	metrics := observability.NewMetrics()
	return NewRouter(RouterParams{
		Logger:           logger,
		Config:           cfg,
		ContractsHandler: contractshttp.NewHandler(logger, nil, metrics, cfg.MaxBodyBytes),
		Metrics:          metrics,
	}), metrics
}

func TestRouterServesContracts(t *testing.T) {
	router, _ := newTestRouter(&Config{RateLimitPerMinute: 100, MaxBodyBytes: 1 << 20})

	req := httptest.NewRequest(http.MethodPost, "/v1/contracts/magic_link", strings.NewReader(`{"email":"ann@example.com"}`))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, "DENY", rr.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
	assert.NotEmpty(t, rr.Header().Get("Content-Security-Policy"))

	metrics := httptest.NewRecorder()
	router.ServeHTTP(metrics, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, metrics.Code)
	assert.Contains(t, metrics.Body.String(), `apflow_contract_validations_total{entity="magic_link",operation="create",outcome="valid"} 1`)
	assert.Contains(t, metrics.Body.String(), `route="/v1/contracts/{entity}"`)
}

func TestRouterHealthAndNotFound(t *testing.T) {
	router, _ := newTestRouter(&Config{RateLimitPerMinute: 100})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "application/problem+json", rr.Header().Get("Content-Type"))
}

func TestRouterRateLimit(t *testing.T) {
	router, metrics := newTestRouter(&Config{RateLimitPerMinute: 2})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.RemoteAddr = "203.0.113.7:4000"
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	rr := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rr.Body.String(), `apflow_http_requests_total{code="429",route="unknown"} 1`)
	assert.Contains(t, rr.Body.String(), `apflow_http_requests_total{code="200",route="/healthz"} 2`)
}

func TestServeStopsOnCancel(t *testing.T) {
	cfg := &Config{AppAddr: "127.0.0.1:0", AppReadTimeout: time.Second, AppWriteTimeout: time.Second}
	srv := NewServer(cfg, http.NotFoundHandler())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Serve(ctx, srv, slog.New(slog.NewTextHandler(io.Discard, nil)), time.Second)
	}()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServeReportsListenErrors(t *testing.T) {
	srv := NewServer(&Config{AppAddr: "256.0.0.1:bad"}, http.NotFoundHandler())
	err := Serve(context.Background(), srv, nil, time.Second)
	assert.Error(t, err)
}
