package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stream names
const (
	StreamScoreSubmitted = "stream:score:submitted"
)

// ScoreSubmittedEvent - новый отчёт, который воркер сохраняет в хранилище
type ScoreSubmittedEvent struct {
	EventID            uuid.UUID `json:"event_id"`
	Score              float64   `json:"score"`
	Comment            *string   `json:"comment,omitempty"`
	WayIDs             []int64   `json:"way_ids"`
	PhotoPath          *string   `json:"photo_path,omitempty"`
	PhotoPathThumbnail *string   `json:"photo_path_thumbnail,omitempty"`
	SubmittedAt        time.Time `json:"submitted_at"`
}

// ToScore конвертирует событие в отчёт для сохранения
func (e *ScoreSubmittedEvent) ToScore() *CyclabilityScore {
	return &CyclabilityScore{
		Score:              e.Score,
		Comment:            e.Comment,
		WayIDs:             e.WayIDs,
		CreatedAt:          e.SubmittedAt,
		PhotoPath:          e.PhotoPath,
		PhotoPathThumbnail: e.PhotoPathThumbnail,
	}
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
