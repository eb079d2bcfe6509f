package postgres

import (
	"encoding/json"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
	"go.uber.org/zap"

	"github.com/cycleroute-microservice/internal/pkg/geometry"
)

// Константы для лимитов запросов
const (
	// MaxQueryLimit - максимальный лимит для запросов отчётов
	MaxQueryLimit = 1000
)

// parseTags конвертирует jsonb-теги участка в osm.Tags.
// Нестроковые значения приводятся к строке.
func parseTags(raw []byte) (osm.Tags, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decode tags: %w", err)
	}

	tags := make(osm.Tags, 0, len(m))
	for k, v := range m {
		if v == nil {
			continue
		}
		s, ok := v.(string)
		if !ok {
			s = fmt.Sprint(v)
		}
		tags = append(tags, osm.Tag{Key: k, Value: s})
	}
	tags.SortByKeyValue()
	return tags, nil
}

// decodeGeom разбирает WKT из хранилища. Испорченная геометрия логируется
// и превращается в пустую, чтобы не прерывать запрос.
func decodeGeom(logger *zap.Logger, wayID int64, text *string) []orb.Point {
	points, err := geometry.DecodeNullable(text)
	if err != nil {
		logger.Warn("Malformed way geometry", zap.Int64("way_id", wayID), zap.Error(err))
		return []orb.Point{}
	}
	return points
}

// limitClause возвращает LIMIT для запроса; 0 означает без ограничения
func limitClause(limit int) string {
	if limit <= 0 {
		return ""
	}
	if limit > MaxQueryLimit {
		limit = MaxQueryLimit
	}
	return fmt.Sprintf(" LIMIT %d", limit)
}
