package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cycleroute-microservice/internal/config"
	"github.com/cycleroute-microservice/internal/domain"
	"github.com/cycleroute-microservice/internal/pkg/errors"
	"github.com/cycleroute-microservice/internal/pkg/geometry"
	"github.com/cycleroute-microservice/internal/usecase"
	"github.com/cycleroute-microservice/internal/usecase/dto"
)

func fixtureWay(id, source, target int64, geo ...orb.Point) *domain.Way {
	projected := make([]orb.Point, 0, len(geo))
	for _, p := range geo {
		projected = append(projected, geometry.ToProjected(p))
	}
	return &domain.Way{WayID: id, Source: source, Target: target, Geom: projected, Length: geometry.Length(projected)}
}

func strPtr(s string) *string { return &s }

func newSegmentUseCase(ways *MockWayRepository, scores *MockScoreRepository) *usecase.SegmentUseCase {
	return usecase.NewSegmentUseCase(ways, scores, config.DefaultRoutingConfig(), zap.NewNop())
}

func TestSegmentUseCase_Select(t *testing.T) {
	ctx := context.Background()

	t.Run("returns geometry and latest score", func(t *testing.T) {
		ways := &MockWayRepository{}
		scores := &MockScoreRepository{}
		uc := newSegmentUseCase(ways, scores)

		way := fixtureWay(10, 1, 2, geoA, geoB)
		way.Name = strPtr("Rue Rachel")
		ways.On("GetWay", ctx, int64(10)).Return(way, nil)

		t0 := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
		scores.On("ListByWayIDs", ctx, []int64{10}, 0).Return([]*domain.CyclabilityScore{
			{ID: 2, Score: 0.3, WayIDs: []int64{10}, CreatedAt: t0.Add(time.Hour)},
			{ID: 1, Score: 0.9, WayIDs: []int64{10}, CreatedAt: t0},
		}, nil)

		resp, err := uc.Select(ctx, 10)

		require.NoError(t, err)
		assert.Equal(t, "Rue Rachel", resp.Name)
		assert.Equal(t, int64(1), resp.Source)
		assert.Empty(t, resp.Error)
		points := decodeGeometry(t, resp.Geometry)
		require.Len(t, points, 2)
		assert.InDelta(t, geoB.Lon(), points[1][0], 1e-9)
		require.NotNil(t, resp.Score)
		assert.Equal(t, 0.3, resp.Score.Score)
	})

	t.Run("unknown segment", func(t *testing.T) {
		ways := &MockWayRepository{}
		uc := newSegmentUseCase(ways, &MockScoreRepository{})
		ways.On("GetWay", ctx, int64(404)).Return(nil, errors.ErrWayNotFound)

		resp, err := uc.Select(ctx, 404)

		require.NoError(t, err)
		assert.Equal(t, "Unknown segment", resp.Error)
		assert.JSONEq(t, "[]", string(resp.Geometry))
	})

	t.Run("database failure", func(t *testing.T) {
		ways := &MockWayRepository{}
		uc := newSegmentUseCase(ways, &MockScoreRepository{})
		ways.On("GetWay", ctx, int64(5)).Return(nil, errors.ErrDatabaseError)

		_, err := uc.Select(ctx, 5)

		assert.ErrorIs(t, err, errors.ErrDatabaseError)
	})
}

func TestSegmentUseCase_Merge(t *testing.T) {
	ctx := context.Background()

	// 1 --10-- 2 --11-- 3 --12-- 4
	anchor := fixtureWay(10, 1, 2, geoA, geoB)
	middle := fixtureWay(11, 2, 3, geoB, geoC)
	far := fixtureWay(12, 3, 4, geoC, orb.Point{-73.57, 45.50})

	t.Run("keeps the candidate with most points", func(t *testing.T) {
		ways := &MockWayRepository{}
		uc := newSegmentUseCase(ways, &MockScoreRepository{})

		ways.On("GetWay", mock.Anything, int64(10)).Return(anchor, nil)
		ways.On("GetWay", mock.Anything, int64(12)).Return(far, nil)
		ways.On("GetWay", mock.Anything, int64(99)).Return(nil, errors.ErrWayNotFound)
		ways.On("GetWaysInBound", ctx, mock.Anything).Return([]*domain.Way{anchor, middle, far}, nil)

		resp, err := uc.Merge(ctx, dto.MergeRequest{AnchorWayID: 10, WayIDs: "12,99"})

		require.NoError(t, err)
		assert.Empty(t, resp.Error)
		// source of the anchor to target of the group crosses all three ways
		assert.Equal(t, []int64{10, 11, 12}, resp.WayIDs)
		assert.Equal(t, int64(1), resp.Source)
		assert.Equal(t, int64(4), resp.Target)
		assert.Len(t, decodeGeometry(t, resp.Geometry), 6)
	})

	t.Run("no targets returns the anchor", func(t *testing.T) {
		ways := &MockWayRepository{}
		uc := newSegmentUseCase(ways, &MockScoreRepository{})
		ways.On("GetWay", mock.Anything, int64(10)).Return(anchor, nil)

		resp, err := uc.Merge(ctx, dto.MergeRequest{AnchorWayID: 10, WayIDs: "none"})

		require.NoError(t, err)
		assert.Equal(t, []int64{10}, resp.WayIDs)
		assert.Len(t, decodeGeometry(t, resp.Geometry), 2)
		ways.AssertNotCalled(t, "GetWaysInBound", mock.Anything, mock.Anything)
	})

	t.Run("unknown anchor", func(t *testing.T) {
		ways := &MockWayRepository{}
		uc := newSegmentUseCase(ways, &MockScoreRepository{})
		ways.On("GetWay", mock.Anything, int64(7)).Return(nil, errors.ErrWayNotFound)
		ways.On("GetWay", mock.Anything, int64(12)).Return(far, nil)

		resp, err := uc.Merge(ctx, dto.MergeRequest{AnchorWayID: 7, WayIDs: "12"})

		require.NoError(t, err)
		assert.Equal(t, "Unknown segment", resp.Error)
		assert.JSONEq(t, "[]", string(resp.Geometry))
	})

	t.Run("disconnected target", func(t *testing.T) {
		ways := &MockWayRepository{}
		uc := newSegmentUseCase(ways, &MockScoreRepository{})
		island := fixtureWay(20, 50, 51, geoD, orb.Point{-73.49, 45.55})

		ways.On("GetWay", mock.Anything, int64(10)).Return(anchor, nil)
		ways.On("GetWay", mock.Anything, int64(20)).Return(island, nil)
		ways.On("GetWaysInBound", ctx, mock.Anything).Return([]*domain.Way{anchor, island}, nil)

		resp, err := uc.Merge(ctx, dto.MergeRequest{AnchorWayID: 10, WayIDs: "20"})

		require.NoError(t, err)
		assert.NotEmpty(t, resp.Error)
		assert.JSONEq(t, "[]", string(resp.Geometry))
	})
}
