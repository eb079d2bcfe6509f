package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/paulmach/orb"
	"go.uber.org/zap"

	"github.com/cycleroute-microservice/internal/domain"
	"github.com/cycleroute-microservice/internal/domain/repository"
	"github.com/cycleroute-microservice/internal/pkg/errors"
)

type scoreRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewScoreRepository(db *DB) repository.ScoreRepository {
	return &scoreRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

type scoreRow struct {
	ID                 int32         `db:"id"`
	Score              float64       `db:"score"`
	Comment            *string       `db:"comment"`
	WayIDs             pq.Int64Array `db:"way_ids"`
	CreatedAt          time.Time     `db:"created_at"`
	PhotoPath          *string       `db:"photo_path"`
	PhotoPathThumbnail *string       `db:"photo_path_thumbnail"`
}

// ListByWayIDs - отчёты, пересекающиеся с набором участков, новые первыми
func (r *scoreRepository) ListByWayIDs(ctx context.Context, wayIDs []int64, limit int) ([]*domain.CyclabilityScore, error) {
	if len(wayIDs) == 0 {
		return []*domain.CyclabilityScore{}, nil
	}

	query := `
		SELECT id, score, comment, way_ids, created_at, photo_path, photo_path_thumbnail
		FROM cyclability_score
		WHERE way_ids && $1::bigint[]
		ORDER BY created_at DESC, id DESC
	` + limitClause(limit)

	var rows []scoreRow
	if err := r.db.SelectContext(ctx, &rows, query, pq.Array(wayIDs)); err != nil {
		r.logger.Error("Failed to list scores", zap.Int("ways", len(wayIDs)), zap.Error(err))
		return nil, errors.ErrDatabaseError.Wrap(err)
	}

	return toScores(rows), nil
}

// ListRecentInBound - последние отчёты по участкам, пересекающим прямоугольник.
// Отчёт на несколько участков возвращается один раз.
func (r *scoreRepository) ListRecentInBound(ctx context.Context, bound orb.Bound, limit int) ([]*domain.CyclabilityScore, error) {
	query := `
		SELECT cs.id, cs.score, cs.comment, cs.way_ids, cs.created_at, cs.photo_path, cs.photo_path_thumbnail
		FROM cyclability_score cs
		WHERE EXISTS (
			SELECT 1 FROM all_way aw
			WHERE aw.way_id = ANY(cs.way_ids)
			  AND aw.geom && ST_MakeEnvelope($1, $2, $3, $4, 3857)
		)
		ORDER BY cs.created_at DESC, cs.id DESC
	` + limitClause(limit)

	var rows []scoreRow
	err := r.db.SelectContext(ctx, &rows, query, bound.Min.X(), bound.Min.Y(), bound.Max.X(), bound.Max.Y())
	if err != nil {
		r.logger.Error("Failed to list recent scores", zap.Error(err))
		return nil, errors.ErrDatabaseError.Wrap(err)
	}

	return toScores(rows), nil
}

// Insert сохраняет отчёт; нулевое время создания заменяется на now()
func (r *scoreRepository) Insert(ctx context.Context, score *domain.CyclabilityScore) (int32, error) {
	var createdAt *time.Time
	if !score.CreatedAt.IsZero() {
		createdAt = &score.CreatedAt
	}

	query := `
		INSERT INTO cyclability_score (score, comment, way_ids, created_at, photo_path, photo_path_thumbnail)
		VALUES ($1, $2, $3::bigint[], COALESCE($4::timestamptz, now()), $5, $6)
		RETURNING id
	`

	var id int32
	err := r.db.QueryRowxContext(ctx, query,
		score.Score, score.Comment, pq.Array(score.WayIDs), createdAt, score.PhotoPath, score.PhotoPathThumbnail,
	).Scan(&id)
	if err != nil {
		r.logger.Error("Failed to insert score", zap.Error(err))
		return 0, errors.ErrDatabaseError.Wrap(err)
	}

	r.logger.Debug("Score inserted", zap.Int32("id", id), zap.Int("ways", len(score.WayIDs)))
	return id, nil
}

func toScores(rows []scoreRow) []*domain.CyclabilityScore {
	scores := make([]*domain.CyclabilityScore, 0, len(rows))
	for _, row := range rows {
		scores = append(scores, &domain.CyclabilityScore{
			ID:                 row.ID,
			Score:              row.Score,
			Comment:            row.Comment,
			WayIDs:             []int64(row.WayIDs),
			CreatedAt:          row.CreatedAt,
			PhotoPath:          row.PhotoPath,
			PhotoPathThumbnail: row.PhotoPathThumbnail,
		})
	}
	return scores
}
