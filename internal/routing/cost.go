// Package routing holds the bicycle-aware routing core: the cost model,
// the bidirectional pathfinder, path assembly and segment merging.
// Nothing in this package touches storage; callers hand it edges and scores.
package routing

import (
	"math"

	"github.com/cycleroute-microservice/internal/domain"
	"github.com/paulmach/osm"
)

const (
	// NearImpassable is the desirability of a way bicycles cannot use.
	// Its cost is large but finite so the search still terminates with a (bad) route.
	NearImpassable = 0.0001

	// UnknownDesirability applies to ways whose tags match no rule.
	UnknownDesirability = 0.25

	// minEdgeLength keeps zero-length edges strictly positive.
	minEdgeLength = 0.001
)

// Costs is the pair of traversal costs for an edge.
type Costs struct {
	Forward float64
	Reverse float64
}

type tagRule struct {
	match        func(tags osm.Tags) bool
	desirability float64
}

// desirabilityRules are evaluated top to bottom; the first match wins.
var desirabilityRules = []tagRule{
	{match: tagIs("bicycle", "no"), desirability: NearImpassable},
	{match: anyOf(tagIs("highway", "cycleway"), tagIs("bicycle", "designated")), desirability: 1.0},
	{match: hasCycleLane, desirability: 0.75},
	{match: anyOf(tagIs("cycleway", "shared_lane", "share_busway"), tagIs("bicycle", "yes")), desirability: 0.5},
	{match: tagIs("highway", "residential"), desirability: 0.6},
	{match: tagIs("highway", "living_street"), desirability: 0.66},
	{match: tagIs("highway", "tertiary", "tertiary_link"), desirability: 0.5},
	{match: tagIs("highway", "secondary", "secondary_link"), desirability: 0.25},
	{match: tagIs("highway", "primary", "primary_link"), desirability: 0.1},
	{match: tagIs("highway", "footway", "pedestrian"), desirability: 0.1},
	{match: tagIs("highway", "steps"), desirability: 1.0 / 30},
	{match: tagIs("highway", "proposed", "construction"), desirability: 0.01},
}

var cycleLaneKeys = []string{"cycleway", "cycleway:right", "cycleway:left", "cycleway:both"}

// TagDesirability derives desirability in (0,1] from way tags alone.
func TagDesirability(tags osm.Tags) float64 {
	for _, rule := range desirabilityRules {
		if rule.match(tags) {
			return rule.desirability
		}
	}
	return UnknownDesirability
}

// Desirability returns the effective desirability of a way. A community score
// overrides the tag-derived value; a score of zero is near-impassable.
func Desirability(tags osm.Tags, score float64, rated bool) float64 {
	if !rated {
		return TagDesirability(tags)
	}
	if score <= 0 {
		return NearImpassable
	}
	return math.Min(score, 1)
}

// EdgeCosts computes (forward, reverse) cost for an edge of the given length.
// score is the aggregate for the owning way; rated reports whether one exists.
func EdgeCosts(tags osm.Tags, length, score float64, rated bool) Costs {
	length = math.Max(length, minEdgeLength)
	d := Desirability(tags, score, rated)

	c := Costs{Forward: length / d, Reverse: length / d}

	switch onewayDirection(tags) {
	case onewayForward:
		c.Reverse = length / NearImpassable
	case onewayBackward:
		c.Forward = length / NearImpassable
	}
	return c
}

// ApplyCosts attaches costs to every edge using per-way aggregate scores.
func ApplyCosts(edges []*domain.Edge, scores map[int64]float64) {
	for _, e := range edges {
		score, rated := scores[e.WayID]
		c := EdgeCosts(e.Tags, e.Length, score, rated)
		e.Cost = c.Forward
		e.ReverseCost = c.Reverse
	}
}

type oneway int

const (
	twoWay oneway = iota
	onewayForward
	onewayBackward
)

func onewayDirection(tags osm.Tags) oneway {
	if contraflowAllowed(tags) {
		return twoWay
	}
	switch tags.Find("oneway:bicycle") {
	case "yes", "true", "1":
		return onewayForward
	case "-1":
		return onewayBackward
	}
	switch tags.Find("oneway") {
	case "yes", "true", "1":
		return onewayForward
	case "-1", "reverse":
		return onewayBackward
	}
	return twoWay
}

func contraflowAllowed(tags osm.Tags) bool {
	if tags.Find("oneway:bicycle") == "no" {
		return true
	}
	for _, key := range cycleLaneKeys {
		switch tags.Find(key) {
		case "opposite", "opposite_lane", "opposite_track", "opposite_share_busway":
			return true
		}
	}
	return false
}

func hasCycleLane(tags osm.Tags) bool {
	for _, key := range cycleLaneKeys {
		switch tags.Find(key) {
		case "lane", "track":
			return true
		}
	}
	return false
}

func tagIs(key string, values ...string) func(osm.Tags) bool {
	return func(tags osm.Tags) bool {
		v := tags.Find(key)
		if v == "" {
			return false
		}
		for _, want := range values {
			if v == want {
				return true
			}
		}
		return false
	}
}

func anyOf(matchers ...func(osm.Tags) bool) func(osm.Tags) bool {
	return func(tags osm.Tags) bool {
		for _, m := range matchers {
			if m(tags) {
				return true
			}
		}
		return false
	}
}
