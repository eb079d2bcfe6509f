package domain

import (
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestScoreSubmittedEvent_ToScore(t *testing.T) {
	submitted := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	event := ScoreSubmittedEvent{
		EventID:     uuid.New(),
		Score:       0.8,
		Comment:     strPtr("painted lane"),
		WayIDs:      []int64{10, 11},
		SubmittedAt: submitted,
	}

	score := event.ToScore()

	assert.Equal(t, 0.8, score.Score)
	assert.Equal(t, []int64{10, 11}, score.WayIDs)
	assert.Equal(t, "painted lane", *score.Comment)
	assert.Equal(t, submitted, score.CreatedAt)
	assert.Nil(t, score.PhotoPath)
}

func TestCyclabilityScore_IsRated(t *testing.T) {
	tests := []struct {
		name     string
		score    float64
		expected bool
	}{
		{name: "unrated sentinel", score: Unrated, expected: false},
		{name: "zero is a rating", score: 0, expected: true},
		{name: "upper bound", score: 1, expected: true},
		{name: "out of range", score: 1.5, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := CyclabilityScore{Score: tt.score}
			assert.Equal(t, tt.expected, s.IsRated())
		})
	}
}

func TestValidScore(t *testing.T) {
	assert.True(t, ValidScore(Unrated))
	assert.True(t, ValidScore(0))
	assert.True(t, ValidScore(1))
	assert.True(t, ValidScore(0.42))
	assert.False(t, ValidScore(-0.5))
	assert.False(t, ValidScore(1.01))
	assert.False(t, ValidScore(math.NaN()))
	assert.False(t, ValidScore(math.Inf(1)))
}

func TestCyclabilityScore_Covers(t *testing.T) {
	s := CyclabilityScore{WayIDs: []int64{3, 5}}

	assert.True(t, s.Covers(5))
	assert.False(t, s.Covers(4))
}

func TestNode_IsEmpty(t *testing.T) {
	empty := EmptyNode()
	assert.True(t, empty.IsEmpty())
	assert.NotNil(t, empty.Geom)
	assert.Len(t, empty.Geom, 0)

	assert.False(t, Node{NodeID: 7, WayID: 2}.IsEmpty())
}

func TestWay_DisplayName(t *testing.T) {
	assert.Equal(t, "Unnamed segment", (&Way{}).DisplayName())
	assert.Equal(t, "Unnamed segment", (&Way{Name: strPtr("")}).DisplayName())
	assert.Equal(t, "Rue Rachel", (&Way{Name: strPtr("Rue Rachel")}).DisplayName())
}

func strPtr(s string) *string {
	return &s
}
