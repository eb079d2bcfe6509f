package handler_test

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cycleroute-microservice/internal/delivery/http/handler"
	"github.com/cycleroute-microservice/internal/domain"
)

type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) GetStatistics(ctx context.Context) (*domain.NetworkStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NetworkStats), args.Error(1)
}

func (m *MockStatsService) RefreshStatistics(ctx context.Context) (*domain.NetworkStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NetworkStats), args.Error(1)
}

func statsApp(svc handler.StatsService) *fiber.App {
	h := handler.NewStatsHandler(svc, zap.NewNop())
	app := fiber.New()
	app.Get("/stats", h.GetStatistics)
	return app
}

func TestStatsHandler_GetStatistics(t *testing.T) {
	t.Run("served", func(t *testing.T) {
		svc := &MockStatsService{}
		svc.On("GetStatistics", mock.Anything).Return(&domain.NetworkStats{
			Network: domain.GraphStats{Ways: 3, Edges: 4},
		}, nil)

		status, body := get(t, statsApp(svc), "/stats")

		assert.Equal(t, 200, status)
		var stats domain.NetworkStats
		require.NoError(t, json.Unmarshal(body.Data, &stats))
		assert.Equal(t, 3, stats.Network.Ways)
		assert.Equal(t, 4, stats.Network.Edges)
		svc.AssertNotCalled(t, "RefreshStatistics", mock.Anything)
	})

	t.Run("refresh", func(t *testing.T) {
		svc := &MockStatsService{}
		svc.On("RefreshStatistics", mock.Anything).Return(&domain.NetworkStats{}, nil)

		status, _ := get(t, statsApp(svc), "/stats?refresh=true")

		assert.Equal(t, 200, status)
		svc.AssertExpectations(t)
	})

	t.Run("datastore failure", func(t *testing.T) {
		svc := &MockStatsService{}
		svc.On("GetStatistics", mock.Anything).Return(nil, stderrors.New("down"))

		status, body := get(t, statsApp(svc), "/stats")

		assert.Equal(t, 500, status)
		assert.Equal(t, "INTERNAL_SERVER_ERROR", body.Error["code"])
	})
}
