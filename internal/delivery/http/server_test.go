package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cycleroute-microservice/internal/config"
	"github.com/cycleroute-microservice/internal/delivery/http/handler"
)

type stubChecker struct {
	err error
}

func (s stubChecker) Health(context.Context) error {
	return s.err
}

func newTestServer(health map[string]HealthChecker) *Server {
	cfg := &config.Config{Routing: config.DefaultRoutingConfig()}
	logger := zap.NewNop()
	return NewServer(cfg, logger,
		handler.NewRouteHandler(nil, cfg.Routing.RequestTimeout, logger),
		handler.NewSegmentHandler(nil, cfg.Routing.RequestTimeout, logger),
		handler.NewScoreHandler(nil, logger),
		handler.NewStatsHandler(nil, logger),
		health,
	)
}

func TestServer_Health(t *testing.T) {
	tests := []struct {
		name   string
		health map[string]HealthChecker
		status int
		state  string
	}{
		{"healthy", map[string]HealthChecker{"postgres": stubChecker{}, "redis": stubChecker{}}, 200, "healthy"},
		{"redis down", map[string]HealthChecker{"postgres": stubChecker{}, "redis": stubChecker{errors.New("refused")}}, 503, "unhealthy"},
		{"no dependencies", nil, 200, "healthy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(tt.health)

			resp, err := s.App().Test(httptest.NewRequest("GET", "/api/v1/health", nil))
			require.NoError(t, err)
			raw, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(raw, &body))
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, tt.state, body["status"])
		})
	}
}

func TestServer_UnknownRoute(t *testing.T) {
	s := newTestServer(nil)

	resp, err := s.App().Test(httptest.NewRequest("GET", "/api/v1/nowhere", nil))

	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestServer_InvalidParamsNeverReachUseCase(t *testing.T) {
	// Handlers are built with nil services; a 400 proves validation runs first.
	s := newTestServer(nil)

	for _, path := range []string{
		"/api/v1/route/x/41.39/2.18/41.4",
		"/api/v1/segment/select/0",
		"/api/v1/scores/current/abc",
	} {
		resp, err := s.App().Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode, path)
	}
}
