package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/cycleroute-microservice/internal/domain"
	"github.com/cycleroute-microservice/internal/domain/repository"
	"github.com/cycleroute-microservice/internal/repository/postgres/testhelpers"
)

// StatsRepositoryTestSuite тестирует все методы StatsRepository
type StatsRepositoryTestSuite struct {
	suite.Suite
	testDB *testhelpers.TestDB
	repo   repository.StatsRepository
	ctx    context.Context
}

func (s *StatsRepositoryTestSuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDB(s.T())

	s.Require().NoError(testhelpers.ApplyMigrations(s.testDB.DB.DB, "../../../migrations"))

	s.repo = testhelpers.NewStatsRepositoryForTest(s.testDB.DB, s.testDB.Logger)
}

func (s *StatsRepositoryTestSuite) TearDownSuite() {
	if s.testDB != nil {
		_ = s.testDB.Cleanup(context.Background())
		s.testDB.Close()
	}
}

func (s *StatsRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.Require().NoError(s.testDB.Cleanup(s.ctx))
}

// ============================================================================
// GetStatistics Tests
// ============================================================================

func (s *StatsRepositoryTestSuite) TestGetStatistics_EmptyNetwork() {
	stats, err := s.repo.GetStatistics(s.ctx)

	s.Require().NoError(err)
	s.NotZero(stats.LastUpdated)
	s.Zero(stats.Network.Ways)
	s.Zero(stats.Network.Edges)
	s.Zero(stats.Scores.Total)
	s.Nil(stats.Scores.AverageScore)
	s.Nil(stats.Scores.LastReportAt)
	s.Nil(stats.Coverage)
}

func (s *StatsRepositoryTestSuite) TestGetStatistics_Network() {
	loadNetwork(&s.Suite, s.testDB)

	stats, err := s.repo.GetStatistics(s.ctx)

	s.Require().NoError(err)
	s.Equal(3, stats.Network.Ways)
	s.Equal(1, stats.Network.NamedWays)
	s.Equal(3, stats.Network.Edges)
	s.Equal(5, stats.Network.Nodes)
	s.Equal(map[string]int{"residential": 1, "cycleway": 1, "primary": 1}, stats.Network.ByHighway)
	s.InDelta(0.25, stats.Network.TotalLength, 0.01)

	s.Require().NotNil(stats.Coverage)
	s.InDelta(2.17, stats.Coverage.BBoxMinLon, 1e-6)
	s.InDelta(41.39, stats.Coverage.BBoxMinLat, 1e-6)
	s.InDelta(2.301, stats.Coverage.BBoxMaxLon, 1e-6)
	s.InDelta(41.5, stats.Coverage.BBoxMaxLat, 1e-6)
	s.Greater(stats.Coverage.AreaSqKm, 0.0)
}

func (s *StatsRepositoryTestSuite) TestGetStatistics_Scores() {
	last := time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)
	_, err := testhelpers.InsertScore(s.testDB.DB.DB, 0.6, []int64{101, 102}, last.Add(-time.Hour))
	s.Require().NoError(err)
	_, err = testhelpers.InsertScore(s.testDB.DB.DB, domain.Unrated, []int64{101}, last)
	s.Require().NoError(err)

	stats, err := s.repo.GetStatistics(s.ctx)

	s.Require().NoError(err)
	s.Equal(2, stats.Scores.Total)
	s.Equal(1, stats.Scores.Rated)
	s.Equal(2, stats.Scores.ScoredWays)
	s.Require().NotNil(stats.Scores.AverageScore)
	s.InDelta(0.6, *stats.Scores.AverageScore, 1e-9)
	s.Require().NotNil(stats.Scores.LastReportAt)
	s.True(stats.Scores.LastReportAt.Equal(last))
}

func TestStatsRepositorySuite(t *testing.T) {
	suite.Run(t, new(StatsRepositoryTestSuite))
}
