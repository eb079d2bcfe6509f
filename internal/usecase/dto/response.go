package dto

import (
	"encoding/json"
	"time"

	"github.com/cycleroute-microservice/internal/domain"
)

// RouteResponse - панель маршрута. Error пустая при успехе.
type RouteResponse struct {
	Geometry      json.RawMessage `json:"geometry" swaggertype:"array,number"`
	TotalLengthKm float64         `json:"total_length_km"`
	WayIDs        []int64         `json:"way_ids"`
	Polyline      string          `json:"polyline,omitempty"`
	Error         string          `json:"error"`
}

// SegmentResponse - выбранный участок с текущей оценкой
type SegmentResponse struct {
	WayID    int64           `json:"way_id"`
	Name     string          `json:"name"`
	Geometry json.RawMessage `json:"geometry" swaggertype:"array,number"`
	Source   int64           `json:"source"`
	Target   int64           `json:"target"`
	Score    *ScoreView      `json:"score,omitempty"`
	Error    string          `json:"error"`
}

// MergeResponse - результат расширения участка
type MergeResponse struct {
	WayIDs   []int64         `json:"way_ids"`
	Geometry json.RawMessage `json:"geometry" swaggertype:"array,number"`
	Source   int64           `json:"source"`
	Target   int64           `json:"target"`
	Error    string          `json:"error"`
}

// ScoreView - отчёт в представлении для клиента
type ScoreView struct {
	ID                 int32     `json:"id"`
	Score              float64   `json:"score"`
	Rated              bool      `json:"rated"`
	Comment            *string   `json:"comment,omitempty"`
	WayIDs             []int64   `json:"way_ids"`
	CreatedAt          time.Time `json:"created_at"`
	PhotoPath          *string   `json:"photo_path,omitempty"`
	PhotoPathThumbnail *string   `json:"photo_path_thumbnail,omitempty"`
}

// WayScore - текущая оценка участка (nil, если отчётов нет)
type WayScore struct {
	WayID int64      `json:"way_id"`
	Score *ScoreView `json:"score"`
}

// CurrentScoresResponse - текущие оценки по участкам
type CurrentScoresResponse struct {
	Scores []WayScore `json:"scores"`
}

// ScoreHistoryResponse - история отчётов, новые первыми
type ScoreHistoryResponse struct {
	Reports []ScoreView `json:"reports"`
	Total   int         `json:"total"`
}

// AggregateScoreResponse - средняя оценка, используемая моделью стоимости
type AggregateScoreResponse struct {
	WayID       int64   `json:"way_id"`
	Score       float64 `json:"score"`
	Rated       bool    `json:"rated"`
	ReportCount int     `json:"report_count"`
}

// SubmitScoreResponse - подтверждение приёма отчёта
type SubmitScoreResponse struct {
	EventID string `json:"event_id"`
	Status  string `json:"status"`
}

// NewScoreView конвертирует отчёт в представление
func NewScoreView(s *domain.CyclabilityScore) *ScoreView {
	if s == nil {
		return nil
	}
	return &ScoreView{
		ID:                 s.ID,
		Score:              s.Score,
		Rated:              s.IsRated(),
		Comment:            s.Comment,
		WayIDs:             s.WayIDs,
		CreatedAt:          s.CreatedAt,
		PhotoPath:          s.PhotoPath,
		PhotoPathThumbnail: s.PhotoPathThumbnail,
	}
}
