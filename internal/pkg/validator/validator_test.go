package validator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

type scoreInput struct {
	Score  float64 `validate:"cyclability"`
	WayIDs []int64 `validate:"required,min=1,dive,gt=0"`
}

func TestValidate_Cyclability(t *testing.T) {
	tests := []struct {
		name    string
		score   float64
		wantErr bool
	}{
		{name: "zero", score: 0},
		{name: "one", score: 1},
		{name: "unrated", score: -1},
		{name: "middle", score: 0.42},
		{name: "above range", score: 1.01, wantErr: true},
		{name: "negative", score: -0.5, wantErr: true},
		{name: "nan", score: math.NaN(), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(scoreInput{Score: tt.score, WayIDs: []int64{1}})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_WayIDs(t *testing.T) {
	assert.Error(t, Validate(scoreInput{Score: 1}))
	assert.Error(t, Validate(scoreInput{Score: 1, WayIDs: []int64{0}}))
	assert.NoError(t, Validate(scoreInput{Score: 1, WayIDs: []int64{3, 4}}))
}

type routeInput struct {
	StartLat float64 `json:"start_lat" validate:"min=-90,max=90"`
	Format   string  `json:"format,omitempty" validate:"omitempty,oneof=json polyline"`
	Internal int     `json:"-" validate:"gte=0"`
}

func TestFields_UsesJSONNames(t *testing.T) {
	err := Validate(routeInput{StartLat: 95, Format: "gpx", Internal: -1})

	fields, ok := Fields(err)

	assert.True(t, ok)
	assert.Equal(t, map[string]interface{}{
		"start_lat": "max",
		"format":    "oneof",
		"Internal":  "gte",
	}, fields)
}

func TestFields_NotValidationError(t *testing.T) {
	fields, ok := Fields(assert.AnError)

	assert.False(t, ok)
	assert.Nil(t, fields)
}
