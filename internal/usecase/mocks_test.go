package usecase_test

import (
	"context"
	"time"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/mock"

	"github.com/cycleroute-microservice/internal/domain"
)

// MockGraphRepository is a mock of GraphRepository
type MockGraphRepository struct {
	mock.Mock
}

func (m *MockGraphRepository) FindClosestNode(ctx context.Context, lng, lat, radius float64) (*domain.Node, error) {
	args := m.Called(ctx, lng, lat, radius)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Node), args.Error(1)
}

func (m *MockGraphRepository) GetEdgesInBound(ctx context.Context, bound orb.Bound) ([]*domain.Edge, error) {
	args := m.Called(ctx, bound)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Edge), args.Error(1)
}

// MockWayRepository is a mock of WayRepository
type MockWayRepository struct {
	mock.Mock
}

func (m *MockWayRepository) GetWay(ctx context.Context, wayID int64) (*domain.Way, error) {
	args := m.Called(ctx, wayID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Way), args.Error(1)
}

func (m *MockWayRepository) GetWaysInBound(ctx context.Context, bound orb.Bound) ([]*domain.Way, error) {
	args := m.Called(ctx, bound)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Way), args.Error(1)
}

// MockScoreRepository is a mock of ScoreRepository
type MockScoreRepository struct {
	mock.Mock
}

func (m *MockScoreRepository) ListByWayIDs(ctx context.Context, wayIDs []int64, limit int) ([]*domain.CyclabilityScore, error) {
	args := m.Called(ctx, wayIDs, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.CyclabilityScore), args.Error(1)
}

func (m *MockScoreRepository) ListRecentInBound(ctx context.Context, bound orb.Bound, limit int) ([]*domain.CyclabilityScore, error) {
	args := m.Called(ctx, bound, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.CyclabilityScore), args.Error(1)
}

func (m *MockScoreRepository) Insert(ctx context.Context, score *domain.CyclabilityScore) (int32, error) {
	args := m.Called(ctx, score)
	return args.Get(0).(int32), args.Error(1)
}

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	args := m.Called(ctx, stream, group, messageID)
	return args.Error(0)
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}

// MockStatsRepository is a mock of StatsRepository
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) GetStatistics(ctx context.Context) (*domain.NetworkStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NetworkStats), args.Error(1)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) GetStats(ctx context.Context) (*domain.NetworkStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NetworkStats), args.Error(1)
}

func (m *MockCacheRepository) SetStats(ctx context.Context, stats *domain.NetworkStats, ttl time.Duration) error {
	args := m.Called(ctx, stats, ttl)
	return args.Error(0)
}
