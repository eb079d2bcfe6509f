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
	"github.com/cycleroute-microservice/internal/pkg/geometry"
)

type graphRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewGraphRepository(db *DB) repository.GraphRepository {
	return &graphRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

type nodeRow struct {
	NodeID int64   `db:"node_id"`
	WayID  int64   `db:"way_id"`
	X      float64 `db:"x"`
	Y      float64 `db:"y"`
	Geom   *string `db:"geom"`
}

type edgeRow struct {
	ID     int64   `db:"id"`
	Source int64   `db:"source"`
	Target int64   `db:"target"`
	WayID  int64   `db:"way_id"`
	X1     float64 `db:"x1"`
	Y1     float64 `db:"y1"`
	X2     float64 `db:"x2"`
	Y2     float64 `db:"y2"`
	Length float64 `db:"length"`
	Tags   []byte  `db:"tags"`
}

// FindClosestNode ищет ближайшую вершину графа (начало дуги) в радиусе.
// Точка переводится в проекцию хранилища до запроса.
func (r *graphRepository) FindClosestNode(ctx context.Context, lng, lat, radius float64) (*domain.Node, error) {
	p := geometry.ToProjected(orb.Point{lng, lat})

	query := `
		WITH q AS (
			SELECT ST_SetSRID(ST_MakePoint($1, $2), 3857) AS geom
		)
		SELECT e.source AS node_id, e.way_id, e.x1 AS x, e.y1 AS y,
		       ST_AsText(aw.geom) AS geom
		FROM edge e
		JOIN all_way aw ON aw.way_id = e.way_id, q
		WHERE e.target IS NOT NULL
		  AND ST_DWithin(ST_SetSRID(ST_MakePoint(e.x1, e.y1), 3857), q.geom, $3)
		ORDER BY ST_SetSRID(ST_MakePoint(e.x1, e.y1), 3857) <-> q.geom
		LIMIT 1
	`

	var row nodeRow
	if err := r.db.GetContext(ctx, &row, query, p[0], p[1], radius); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.ErrNodeNotFound
		}
		r.logger.Error("Failed to find closest node", zap.Float64("lng", lng), zap.Float64("lat", lat), zap.Error(err))
		return nil, errors.ErrDatabaseError.Wrap(err)
	}

	geo := geometry.ToGeographic(orb.Point{row.X, row.Y})
	return &domain.Node{
		NodeID: row.NodeID,
		WayID:  row.WayID,
		Geom:   geometry.LineToGeographic(decodeGeom(r.logger, row.WayID, row.Geom)),
		Lng:    geo.Lon(),
		Lat:    geo.Lat(),
		X:      row.X,
		Y:      row.Y,
	}, nil
}

// GetEdgesInBound возвращает дуги, начало которых лежит в прямоугольнике
func (r *graphRepository) GetEdgesInBound(ctx context.Context, bound orb.Bound) ([]*domain.Edge, error) {
	query := `
		SELECT e.id, e.source, e.target, e.way_id, e.x1, e.y1, e.x2, e.y2,
		       COALESCE(ST_Length(e.geom), sqrt(power(e.x2 - e.x1, 2) + power(e.y2 - e.y1, 2))) AS length,
		       convert_to(COALESCE(aw.tags, '{}'::jsonb)::text, 'UTF8') AS tags
		FROM edge e
		LEFT JOIN all_way aw ON aw.way_id = e.way_id
		WHERE e.target IS NOT NULL
		  AND e.x1 BETWEEN $1 AND $3
		  AND e.y1 BETWEEN $2 AND $4
	`

	var rows []edgeRow
	if err := r.db.SelectContext(ctx, &rows, query, bound.Min.X(), bound.Min.Y(), bound.Max.X(), bound.Max.Y()); err != nil {
		r.logger.Error("Failed to get edges in bound", zap.Error(err))
		return nil, errors.ErrDatabaseError.Wrap(err)
	}

	edges := make([]*domain.Edge, 0, len(rows))
	for _, row := range rows {
		tags, err := parseTags(row.Tags)
		if err != nil {
			r.logger.Warn("Ignoring malformed tags", zap.Int64("way_id", row.WayID), zap.Error(err))
		}
		edges = append(edges, &domain.Edge{
			ID:     row.ID,
			Source: row.Source,
			Target: row.Target,
			WayID:  row.WayID,
			X1:     row.X1,
			Y1:     row.Y1,
			X2:     row.X2,
			Y2:     row.Y2,
			Length: row.Length,
			Tags:   tags,
		})
	}

	r.logger.Debug("Loaded edges", zap.Int("count", len(edges)))
	return edges, nil
}
