package routing

import (
	"math"
	"testing"

	"github.com/cycleroute-microservice/internal/domain"
	"github.com/paulmach/osm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tags(kv ...string) osm.Tags {
	t := make(osm.Tags, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		t = append(t, osm.Tag{Key: kv[i], Value: kv[i+1]})
	}
	return t
}

func TestTagDesirability(t *testing.T) {
	tests := []struct {
		name     string
		tags     osm.Tags
		expected float64
	}{
		{name: "bicycle forbidden beats cycleway", tags: tags("highway", "cycleway", "bicycle", "no"), expected: NearImpassable},
		{name: "dedicated cycleway", tags: tags("highway", "cycleway"), expected: 1.0},
		{name: "designated", tags: tags("highway", "footway", "bicycle", "designated"), expected: 1.0},
		{name: "painted lane", tags: tags("highway", "secondary", "cycleway", "lane"), expected: 0.75},
		{name: "track on the right", tags: tags("highway", "primary", "cycleway:right", "track"), expected: 0.75},
		{name: "lane on both sides", tags: tags("highway", "tertiary", "cycleway:both", "lane"), expected: 0.75},
		{name: "shared lane", tags: tags("highway", "primary", "cycleway", "shared_lane"), expected: 0.5},
		{name: "bicycle yes", tags: tags("highway", "footway", "bicycle", "yes"), expected: 0.5},
		{name: "residential", tags: tags("highway", "residential"), expected: 0.6},
		{name: "living street", tags: tags("highway", "living_street"), expected: 0.66},
		{name: "tertiary", tags: tags("highway", "tertiary"), expected: 0.5},
		{name: "secondary link", tags: tags("highway", "secondary_link"), expected: 0.25},
		{name: "primary", tags: tags("highway", "primary"), expected: 0.1},
		{name: "footway", tags: tags("highway", "footway"), expected: 0.1},
		{name: "steps", tags: tags("highway", "steps"), expected: 1.0 / 30},
		{name: "proposed", tags: tags("highway", "proposed"), expected: 0.01},
		{name: "unknown highway", tags: tags("highway", "service"), expected: UnknownDesirability},
		{name: "no tags", tags: nil, expected: UnknownDesirability},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, TagDesirability(tt.tags), 1e-12)
		})
	}
}

func TestEdgeCosts_ScoreZeroNeverCheaperThanLowScore(t *testing.T) {
	for _, tg := range []osm.Tags{nil, tags("highway", "cycleway"), tags("highway", "primary", "oneway", "yes")} {
		for _, length := range []float64{0, 1, 37.5, 1200} {
			zero := EdgeCosts(tg, length, 0, true)
			low := EdgeCosts(tg, length, 0.01, true)

			assert.GreaterOrEqual(t, zero.Forward, low.Forward)
			assert.GreaterOrEqual(t, zero.Reverse, low.Reverse)
		}
	}
}

func TestEdgeCosts_StrictlyPositiveAndFinite(t *testing.T) {
	cases := []struct {
		tags   osm.Tags
		length float64
		score  float64
		rated  bool
	}{
		{tags: nil, length: 0},
		{tags: tags("bicycle", "no"), length: 500},
		{tags: tags("highway", "cycleway"), length: 10, score: 0, rated: true},
		{tags: tags("oneway", "yes"), length: 10, score: 1, rated: true},
	}

	for _, c := range cases {
		costs := EdgeCosts(c.tags, c.length, c.score, c.rated)
		assert.Greater(t, costs.Forward, 0.0)
		assert.Greater(t, costs.Reverse, 0.0)
		assert.False(t, math.IsInf(costs.Forward, 0) || math.IsNaN(costs.Forward))
		assert.False(t, math.IsInf(costs.Reverse, 0) || math.IsNaN(costs.Reverse))
	}
}

func TestEdgeCosts_Symmetric_WithoutOneway(t *testing.T) {
	for _, tg := range []osm.Tags{nil, tags("highway", "residential"), tags("highway", "cycleway", "cycleway", "lane")} {
		c := EdgeCosts(tg, 100, 0, false)
		assert.Equal(t, c.Forward, c.Reverse)
	}
}

func TestEdgeCosts_Oneway(t *testing.T) {
	tests := []struct {
		name           string
		tags           osm.Tags
		reverseBlocked bool
		forwardBlocked bool
	}{
		{name: "oneway yes", tags: tags("highway", "residential", "oneway", "yes"), reverseBlocked: true},
		{name: "oneway true", tags: tags("highway", "residential", "oneway", "true"), reverseBlocked: true},
		{name: "bicycle specific", tags: tags("highway", "residential", "oneway:bicycle", "yes"), reverseBlocked: true},
		{name: "contraflow allowed", tags: tags("highway", "residential", "oneway", "yes", "oneway:bicycle", "no")},
		{name: "opposite lane", tags: tags("highway", "residential", "oneway", "yes", "cycleway", "opposite_lane")},
		{name: "reversed oneway", tags: tags("highway", "residential", "oneway", "-1"), forwardBlocked: true},
		{name: "oneway no", tags: tags("highway", "residential", "oneway", "no")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := EdgeCosts(tt.tags, 100, 0, false)
			switch {
			case tt.reverseBlocked:
				assert.Greater(t, c.Reverse, 100*c.Forward)
			case tt.forwardBlocked:
				assert.Greater(t, c.Forward, 100*c.Reverse)
			default:
				assert.Equal(t, c.Forward, c.Reverse)
			}
		})
	}
}

func TestEdgeCosts_OnewayIgnoresScore(t *testing.T) {
	c := EdgeCosts(tags("oneway", "yes"), 100, 1.0, true)

	assert.InDelta(t, 100.0, c.Forward, 1e-9)
	assert.InDelta(t, 100/NearImpassable, c.Reverse, 1e-6)
}

func TestEdgeCosts_ScoreOverridesTags(t *testing.T) {
	steps := tags("highway", "steps")

	unrated := EdgeCosts(steps, 100, 0, false)
	rated := EdgeCosts(steps, 100, 0.8, true)

	assert.InDelta(t, 3000.0, unrated.Forward, 1e-9)
	assert.InDelta(t, 125.0, rated.Forward, 1e-9)
}

func TestEdgeCosts_UntaggedStaysTraversable(t *testing.T) {
	c := EdgeCosts(nil, 100, 0, false)

	assert.InDelta(t, 400.0, c.Forward, 1e-9)
	assert.InDelta(t, 400.0, c.Reverse, 1e-9)
}

func TestApplyCosts(t *testing.T) {
	edges := []*domain.Edge{
		{ID: 1, WayID: 10, Length: 100, Tags: tags("highway", "residential")},
		{ID: 2, WayID: 20, Length: 100, Tags: tags("highway", "residential", "oneway", "yes")},
	}

	ApplyCosts(edges, map[int64]float64{10: 0.5})

	require.Len(t, edges, 2)
	assert.InDelta(t, 200.0, edges[0].Cost, 1e-9)
	assert.InDelta(t, 200.0, edges[0].ReverseCost, 1e-9)
	assert.InDelta(t, 100/0.6, edges[1].Cost, 1e-9)
	assert.InDelta(t, 100/NearImpassable, edges[1].ReverseCost, 1e-6)
}
