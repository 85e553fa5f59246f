package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	"github.com/yanqian/outfitcast/internal/domain/outfit"
	"github.com/yanqian/outfitcast/internal/domain/outfitcast"
	"github.com/yanqian/outfitcast/internal/domain/weather"
	"github.com/yanqian/outfitcast/internal/infra/config"
	apperrors "github.com/yanqian/outfitcast/pkg/errors"
	"github.com/yanqian/outfitcast/pkg/metrics"
)

func TestRouter_ForecastSuccess(t *testing.T) {
	server := newRouterUnderTest(t, testConfig(), nil)

	recorder := performRequest(server, http.MethodPost, "/api/v1/forecasts", `{"location":"Kerala — Thiruvananthapuram","at":"2025-01-15T10:30:00Z"}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	var got outfitcast.Result
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Equal(t, "Kerala — Thiruvananthapuram", got.Location)
	require.Equal(t, "Thiruvananthapuram", got.City)
	require.Equal(t, weather.ConditionStorm, got.Weather.Condition)
	require.Equal(t, 26, got.Weather.TemperatureC)
	require.Equal(t, outfit.BandWarm, got.Recommendation.Band)
	require.Equal(t, 88, got.Recommendation.ConfidencePct)
	require.Len(t, got.Recommendation.Alternates, 2)
	require.Len(t, got.Hourly, 6)
	require.Equal(t, "10 AM", got.Hourly[0].Hour)
	require.True(t, got.GeneratedAt.Equal(time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)))
}

func TestRouter_ForecastInvalidJSON(t *testing.T) {
	server := newRouterUnderTest(t, testConfig(), nil)

	recorder := performRequest(server, http.MethodPost, "/api/v1/forecasts", `{"location":123}`)
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "invalid_request", errBody["error"]["code"])
	require.NotEmpty(t, errBody["error"]["message"])
}

func TestRouter_ForecastBlankLocation(t *testing.T) {
	server := newRouterUnderTest(t, testConfig(), nil)

	recorder := performRequest(server, http.MethodPost, "/api/v1/forecasts", `{"location":"  "}`)
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "invalid_input", errBody["error"]["code"])
	require.Contains(t, errBody["error"]["message"], "location cannot be empty")
}

func TestRouter_ForecastUnknownLocation(t *testing.T) {
	strict := newRouterUnderTest(t, testConfig(), nil)
	recorder := performRequest(strict, http.MethodPost, "/api/v1/forecasts", `{"location":"Atlantis — Poseidonia"}`)
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	require.Equal(t, "unknown_location", decodeErrorBody(t, recorder.Body.Bytes())["error"]["code"])

	cfg := testConfig()
	cfg.Forecast.StrictLocations = false
	lenient := newRouterUnderTest(t, cfg, nil)
	recorder = performRequest(lenient, http.MethodPost, "/api/v1/forecasts", `{"location":"Atlantis — Poseidonia"}`)
	require.Equal(t, http.StatusOK, recorder.Code)
}

func TestRouter_ForecastInternalError(t *testing.T) {
	svc := &stubForecaster{
		forecastFn: func(ctx context.Context, req outfitcast.Request) (outfitcast.Result, error) {
			return outfitcast.Result{}, apperrors.Wrap(apperrors.CodeInternal, "forecast generation failed", errors.New("boom"))
		},
	}
	server := newRouterUnderTest(t, testConfig(), svc)

	recorder := performRequest(server, http.MethodPost, "/api/v1/forecasts", `{"location":"Goa — Panaji"}`)
	require.Equal(t, http.StatusInternalServerError, recorder.Code)
	require.Equal(t, "forecast_failed", decodeErrorBody(t, recorder.Body.Bytes())["error"]["code"])
}

func TestRouter_ListLocations(t *testing.T) {
	server := newRouterUnderTest(t, testConfig(), nil)

	recorder := performRequest(server, http.MethodGet, "/api/v1/locations", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Locations []string `json:"locations"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Len(t, body.Locations, 36)
	require.Contains(t, body.Locations, "Ladakh — Leh")
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	server := newRouterUnderTest(t, testConfig(), nil)

	recorder := performRequest(server, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	require.JSONEq(t, `{"status":"healthy"}`, recorder.Body.String())

	performRequest(server, http.MethodPost, "/api/v1/forecasts", `{"location":"Goa — Panaji"}`)
	recorder = performRequest(server, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Contains(t, recorder.Body.String(), "outfitcast_forecasts_total")
	require.Contains(t, recorder.Body.String(), "outfitcast_http_request_duration_seconds")
}

func TestRouter_RequestID(t *testing.T) {
	server := newRouterUnderTest(t, testConfig(), nil)

	recorder := performRequest(server, http.MethodGet, "/healthz", "")
	require.NotEmpty(t, recorder.Header().Get(requestIDHeader))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/forecasts", bytes.NewBufferString(`{"location":""}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(requestIDHeader, "req-42")
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)

	require.Equal(t, "req-42", rec.Header().Get(requestIDHeader))
	require.Equal(t, "req-42", decodeErrorBody(t, rec.Body.Bytes())["error"]["requestId"])
}

func TestRouter_RateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.HTTP.RateLimit = config.RateLimitConfig{Enabled: true, RequestsPerMinute: 1, Burst: 1}
	server := newRouterUnderTest(t, cfg, nil)

	first := performRequest(server, http.MethodGet, "/api/v1/locations", "")
	require.Equal(t, http.StatusOK, first.Code)

	second := performRequest(server, http.MethodGet, "/api/v1/locations", "")
	require.Equal(t, http.StatusTooManyRequests, second.Code)
	require.Equal(t, "rate_limit_exceeded", decodeErrorBody(t, second.Body.Bytes())["error"]["code"])

	// health checks are never limited
	require.Equal(t, http.StatusOK, performRequest(server, http.MethodGet, "/healthz", "").Code)
}

func TestRouter_CORSPreflight(t *testing.T) {
	cfg := testConfig()
	cfg.HTTP.CORSOrigins = []string{"https://outfitcast.example"}
	server := newRouterUnderTest(t, cfg, nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/forecasts", nil)
	req.Header.Set("Origin", "https://outfitcast.example")
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "https://outfitcast.example", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestIPRateLimiterRefills(t *testing.T) {
	now := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	limiter := newIPRateLimiter(config.RateLimitConfig{Enabled: true, RequestsPerMinute: 60, Burst: 2}, func() time.Time { return now })

	require.True(t, limiter.allow("10.0.0.1"))
	require.True(t, limiter.allow("10.0.0.1"))
	require.False(t, limiter.allow("10.0.0.1"))
	require.True(t, limiter.allow("10.0.0.2"))

	now = now.Add(time.Second)
	require.True(t, limiter.allow("10.0.0.1"))

	now = now.Add(10 * time.Minute)
	limiter.allow("10.0.0.3")
	require.Len(t, limiter.visitors, 1)
}

func TestResolveOrigin(t *testing.T) {
	require.Equal(t, "*", resolveOrigin("https://a.example", nil))
	require.Equal(t, "https://a.example", resolveOrigin("https://a.example", []string{"https://b.example", "https://A.example"}))
	require.Equal(t, "https://b.example", resolveOrigin("https://c.example", []string{"https://b.example"}))
	require.Equal(t, "*", resolveOrigin("", []string{"*"}))
}

func performRequest(server *http.Server, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)
	return rec
}

func testConfig() *config.Config {
	return &config.Config{
		HTTP: config.HTTPConfig{
			Address:      ":0",
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
		},
		Forecast: config.ForecastConfig{StrictLocations: true},
	}
}

// newRouterUnderTest uses the real forecast service unless svc is given.
func newRouterUnderTest(t *testing.T, cfg *config.Config, svc outfitcast.Service) *http.Server {
	t.Helper()
	m := metrics.New()
	if svc == nil {
		clock := clockwork.NewFakeClockAt(time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC))
		svc = outfitcast.NewService(outfitcast.Config{}, clock, m, newTestLogger())
	}
	handler := NewHandler(cfg, svc, newTestLogger())
	return NewRouter(cfg, handler, m)
}

func newTestLogger() *slog.Logger {
	handler := slog.NewTextHandler(io.Discard, nil)
	return slog.New(handler)
}

type stubForecaster struct {
	forecastFn func(ctx context.Context, req outfitcast.Request) (outfitcast.Result, error)
}

func (s *stubForecaster) Forecast(ctx context.Context, req outfitcast.Request) (outfitcast.Result, error) {
	if s.forecastFn != nil {
		return s.forecastFn(ctx, req)
	}
	return outfitcast.Result{}, nil
}

func (s *stubForecaster) Locations() []string {
	return outfitcast.DefaultLocations()
}

func decodeErrorBody(t *testing.T, raw []byte) map[string]map[string]string {
	t.Helper()
	var body map[string]map[string]string
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}
