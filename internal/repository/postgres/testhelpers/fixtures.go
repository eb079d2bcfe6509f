package testhelpers

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"

	"github.com/cycleroute-microservice/internal/pkg/geometry"
)

// WayFixture describes a street segment in geographic coordinates
type WayFixture struct {
	WayID  int64
	Name   string
	Points []orb.Point
	Source int64
	Target int64
	Tags   map[string]string
}

// InsertWay stores the way in all_way and a single source->target edge for it
func InsertWay(db *sql.DB, w WayFixture) error {
	line := make(orb.LineString, 0, len(w.Points))
	for _, p := range w.Points {
		line = append(line, geometry.ToProjected(p))
	}
	if len(line) < 2 {
		return fmt.Errorf("way %d needs at least two points", w.WayID)
	}

	tags, err := json.Marshal(w.Tags)
	if err != nil {
		return fmt.Errorf("encode tags of way %d: %w", w.WayID, err)
	}

	var name *string
	if w.Name != "" {
		name = &w.Name
	}

	ctx := context.Background()
	_, err = db.ExecContext(ctx, `
		INSERT INTO all_way (way_id, name, geom, source, target, tags)
		VALUES ($1, $2, ST_GeomFromText($3, 3857), $4, $5, $6::jsonb)`,
		w.WayID, name, wkt.MarshalString(line), w.Source, w.Target, string(tags),
	)
	if err != nil {
		return fmt.Errorf("insert way %d: %w", w.WayID, err)
	}

	first, last := line[0], line[len(line)-1]
	_, err = db.ExecContext(ctx, `
		INSERT INTO edge (source, target, way_id, x1, y1, x2, y2, geom)
		VALUES ($1, $2, $3, $4, $5, $6, $7, ST_GeomFromText($8, 3857))`,
		w.Source, w.Target, w.WayID, first[0], first[1], last[0], last[1], wkt.MarshalString(line),
	)
	if err != nil {
		return fmt.Errorf("insert edge of way %d: %w", w.WayID, err)
	}
	return nil
}

// InsertScore stores a report with an explicit creation time
func InsertScore(db *sql.DB, score float64, wayIDs []int64, createdAt time.Time) (int32, error) {
	var id int32
	err := db.QueryRowContext(context.Background(), `
		INSERT INTO cyclability_score (score, way_ids, created_at)
		VALUES ($1, $2::bigint[], $3)
		RETURNING id`,
		score, pq.Array(wayIDs), createdAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert score: %w", err)
	}
	return id, nil
}
