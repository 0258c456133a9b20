package router

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creativedrywall/chat-assistant/internal/business"
	"github.com/creativedrywall/chat-assistant/internal/chat"
	"github.com/creativedrywall/chat-assistant/pkg/logging"
)

func newTestRouter(t *testing.T, cfg *Config) http.Handler {
	t.Helper()
	logger := logging.NewWithWriter("error", io.Discard)
	if cfg == nil {
		cfg = &Config{}
	}
	if cfg.ChatHandler == nil {
		svc := chat.NewService(business.Default(), nil, chat.Options{}, logger, nil)
		cfg.ChatHandler = chat.NewHandler(svc, logger)
	}
	cfg.Logger = logger
	return New(cfg)
}

func TestRouterHealthCheck(t *testing.T) {
	r := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRouterMetricsEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := newTestRouter(t, &Config{
		MetricsHandler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouterChatRoute(t *testing.T) {
	r := newTestRouter(t, nil)

	body := `{"message":"how much for a quote?"}`
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "free, no-obligation quotes")
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouterChatPreflight(t *testing.T) {
	r := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/chat", nil)
	req.Header.Set("Origin", "https://creativedrywall.buzz")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouterRateLimitsChat(t *testing.T) {
	r := newTestRouter(t, &Config{
		RateLimitPerSec: 0.001,
		RateLimitBurst:  1,
	})

	post := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"message":"how much?"}`))
		req.RemoteAddr = "10.0.0.1:4000"
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec
	}

	require.Equal(t, http.StatusOK, post().Code)
	assert.Equal(t, http.StatusTooManyRequests, post().Code)
}

func TestRouterUnknownPath(t *testing.T) {
	r := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
