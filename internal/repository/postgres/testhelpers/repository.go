package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/cycleroute-microservice/internal/domain/repository"
	"github.com/cycleroute-microservice/internal/repository/postgres"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewGraphRepositoryForTest creates a graph repository with test database and logger
func NewGraphRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.GraphRepository {
	return postgres.NewGraphRepository(NewDBForTest(db, logger))
}

// NewWayRepositoryForTest creates a way repository with test database and logger
func NewWayRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.WayRepository {
	return postgres.NewWayRepository(NewDBForTest(db, logger))
}

// NewScoreRepositoryForTest creates a score repository with test database and logger
func NewScoreRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.ScoreRepository {
	return postgres.NewScoreRepository(NewDBForTest(db, logger))
}

// NewStatsRepositoryForTest creates a stats repository with test database and logger
func NewStatsRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.StatsRepository {
	return postgres.NewStatsRepository(NewDBForTest(db, logger), logger)
}
