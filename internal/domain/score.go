package domain

import "time"

// Unrated - значение оценки "без оценки"
const Unrated = -1.0

// ValidScore - оценка из [0, 1] либо Unrated; NaN недопустим
func ValidScore(v float64) bool {
	return v == Unrated || (v >= 0 && v <= 1)
}

// CyclabilityScore - отчёт сообщества о пригодности участка для велосипеда
type CyclabilityScore struct {
	ID                 int32     `json:"id" db:"id"`
	Score              float64   `json:"score" db:"score"`
	Comment            *string   `json:"comment,omitempty" db:"comment"`
	WayIDs             []int64   `json:"way_ids" db:"-"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
	PhotoPath          *string   `json:"photo_path,omitempty" db:"photo_path"`
	PhotoPathThumbnail *string   `json:"photo_path_thumbnail,omitempty" db:"photo_path_thumbnail"`
}

// IsRated проверяет, содержит ли отчёт числовую оценку
func (s *CyclabilityScore) IsRated() bool {
	return s.Score >= 0 && s.Score <= 1
}

// Covers проверяет, относится ли отчёт к участку
func (s *CyclabilityScore) Covers(wayID int64) bool {
	for _, id := range s.WayIDs {
		if id == wayID {
			return true
		}
	}
	return false
}
