package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/jmoiron/sqlx"
	"github.com/paulmach/orb"
	"go.uber.org/zap"

	"github.com/cycleroute-microservice/internal/domain"
	"github.com/cycleroute-microservice/internal/domain/repository"
	"github.com/cycleroute-microservice/internal/pkg/errors"
)

type wayRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewWayRepository(db *DB) repository.WayRepository {
	return &wayRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

type wayRow struct {
	WayID  int64   `db:"way_id"`
	Name   *string `db:"name"`
	Source int64   `db:"source"`
	Target int64   `db:"target"`
	Geom   *string `db:"geom"`
	Length float64 `db:"length"`
	Tags   []byte  `db:"tags"`
}

const waySelect = `
	SELECT way_id, name,
	       COALESCE(source, 0) AS source,
	       COALESCE(target, 0) AS target,
	       ST_AsText(geom) AS geom,
	       COALESCE(ST_Length(geom), 0) AS length,
	       convert_to(COALESCE(tags, '{}'::jsonb)::text, 'UTF8') AS tags
	FROM all_way
`

func (r *wayRepository) GetWay(ctx context.Context, wayID int64) (*domain.Way, error) {
	var row wayRow
	if err := r.db.GetContext(ctx, &row, waySelect+` WHERE way_id = $1`, wayID); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.ErrWayNotFound
		}
		r.logger.Error("Failed to get way", zap.Int64("way_id", wayID), zap.Error(err))
		return nil, errors.ErrDatabaseError.Wrap(err)
	}

	return r.toDomain(row), nil
}

func (r *wayRepository) GetWaysInBound(ctx context.Context, bound orb.Bound) ([]*domain.Way, error) {
	var rows []wayRow
	err := r.db.SelectContext(ctx, &rows,
		waySelect+` WHERE geom && ST_MakeEnvelope($1, $2, $3, $4, 3857)`,
		bound.Min.X(), bound.Min.Y(), bound.Max.X(), bound.Max.Y(),
	)
	if err != nil {
		r.logger.Error("Failed to get ways in bound", zap.Error(err))
		return nil, errors.ErrDatabaseError.Wrap(err)
	}

	ways := make([]*domain.Way, 0, len(rows))
	for _, row := range rows {
		ways = append(ways, r.toDomain(row))
	}
	return ways, nil
}

func (r *wayRepository) toDomain(row wayRow) *domain.Way {
	tags, err := parseTags(row.Tags)
	if err != nil {
		r.logger.Warn("Ignoring malformed tags", zap.Int64("way_id", row.WayID), zap.Error(err))
	}
	return &domain.Way{
		WayID:  row.WayID,
		Name:   row.Name,
		Geom:   decodeGeom(r.logger, row.WayID, row.Geom),
		Source: row.Source,
		Target: row.Target,
		Tags:   tags,
		Length: row.Length,
	}
}
