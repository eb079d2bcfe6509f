package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/cycleroute-microservice/internal/domain"
	"github.com/cycleroute-microservice/internal/domain/repository"
)

type statsRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewStatsRepository создает новый экземпляр stats repository
func NewStatsRepository(db *DB, logger *zap.Logger) repository.StatsRepository {
	return &statsRepository{
		db:     db,
		logger: logger,
	}
}

// GetStatistics возвращает агрегированную статистику по сети и отчётам
func (r *statsRepository) GetStatistics(ctx context.Context) (*domain.NetworkStats, error) {
	stats := &domain.NetworkStats{
		LastUpdated: time.Now().UTC(),
	}

	graphStats, err := r.getGraphStats(ctx)
	if err != nil {
		r.logger.Error("failed to get graph stats", zap.Error(err))
		return nil, fmt.Errorf("get graph stats: %w", err)
	}
	stats.Network = *graphStats

	scoreStats, err := r.getScoreStats(ctx)
	if err != nil {
		r.logger.Error("failed to get score stats", zap.Error(err))
		return nil, fmt.Errorf("get score stats: %w", err)
	}
	stats.Scores = *scoreStats

	coverage, err := r.getCoverageStats(ctx)
	if err != nil {
		r.logger.Error("failed to get coverage stats", zap.Error(err))
		return nil, fmt.Errorf("get coverage stats: %w", err)
	}
	stats.Coverage = coverage

	return stats, nil
}

// getGraphStats получает статистику по участкам и рёбрам
func (r *statsRepository) getGraphStats(ctx context.Context) (*domain.GraphStats, error) {
	stats := &domain.GraphStats{
		ByHighway: make(map[string]int),
	}

	query := `
		SELECT
			COALESCE(tags->>'highway', 'unknown') AS highway,
			COUNT(*) AS count,
			COUNT(name) FILTER (WHERE name <> '') AS named,
			COALESCE(SUM(ST_Length(ST_Transform(geom, 4326)::geography)), 0) / 1000 AS length_km
		FROM all_way
		GROUP BY 1
	`

	rows, err := r.db.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query way stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var highway string
		var count, named int
		var lengthKm float64
		if err := rows.Scan(&highway, &count, &named, &lengthKm); err != nil {
			return nil, fmt.Errorf("scan way stats: %w", err)
		}

		stats.ByHighway[highway] = count
		stats.Ways += count
		stats.NamedWays += named
		stats.TotalLength += lengthKm
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("way stats rows error: %w", err)
	}

	edgeQuery := `
		SELECT
			COUNT(*) AS edges,
			(SELECT COUNT(*) FROM (
				SELECT source AS node FROM edge
				UNION
				SELECT target FROM edge WHERE target IS NOT NULL
			) AS nodes) AS nodes
		FROM edge
	`
	if err := r.db.DB.QueryRowContext(ctx, edgeQuery).Scan(&stats.Edges, &stats.Nodes); err != nil {
		return nil, fmt.Errorf("query edge stats: %w", err)
	}

	return stats, nil
}

// getScoreStats получает статистику по отчётам
func (r *statsRepository) getScoreStats(ctx context.Context) (*domain.ScoreStats, error) {
	stats := &domain.ScoreStats{}

	query := `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE score >= 0) AS rated,
			AVG(score) FILTER (WHERE score >= 0) AS average,
			MAX(created_at) AS last_report,
			(SELECT COUNT(DISTINCT w) FROM cyclability_score, unnest(way_ids) AS w) AS scored_ways
		FROM cyclability_score
	`

	var average sql.NullFloat64
	var lastReport sql.NullTime
	err := r.db.DB.QueryRowContext(ctx, query).Scan(
		&stats.Total,
		&stats.Rated,
		&average,
		&lastReport,
		&stats.ScoredWays,
	)
	if err != nil {
		return nil, fmt.Errorf("query score stats: %w", err)
	}

	if average.Valid {
		stats.AverageScore = &average.Float64
	}
	if lastReport.Valid {
		t := lastReport.Time.UTC()
		stats.LastReportAt = &t
	}

	return stats, nil
}

// getCoverageStats получает охват сети; nil, если сеть пуста
func (r *statsRepository) getCoverageStats(ctx context.Context) (*domain.CoverageStats, error) {
	query := `
		SELECT
			ST_XMin(env) AS min_lon,
			ST_YMin(env) AS min_lat,
			ST_XMax(env) AS max_lon,
			ST_YMax(env) AS max_lat,
			ST_Area(env::geography) / 1000000 AS area_sqkm,
			(ST_XMin(env) + ST_XMax(env)) / 2 AS center_lon,
			(ST_YMin(env) + ST_YMax(env)) / 2 AS center_lat
		FROM (
			SELECT ST_Transform(ST_SetSRID(ST_Extent(geom)::geometry, 3857), 4326) AS env
			FROM all_way
		) AS subquery
		WHERE env IS NOT NULL
	`

	stats := &domain.CoverageStats{}
	err := r.db.DB.QueryRowContext(ctx, query).Scan(
		&stats.BBoxMinLon,
		&stats.BBoxMinLat,
		&stats.BBoxMaxLon,
		&stats.BBoxMaxLat,
		&stats.AreaSqKm,
		&stats.CenterLon,
		&stats.CenterLat,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query coverage stats: %w", err)
	}

	return stats, nil
}
