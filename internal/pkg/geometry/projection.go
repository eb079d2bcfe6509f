package geometry

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/paulmach/orb/project"
)

// SRIDs used by the street network storage and by the map client.
const (
	SRIDGeographic = 4326
	SRIDProjected  = 3857
)

// ToGeographic converts an EPSG:3857 point to (lng, lat).
func ToGeographic(p orb.Point) orb.Point {
	return project.Mercator.ToWGS84(p)
}

// ToProjected converts (lng, lat) to EPSG:3857.
func ToProjected(p orb.Point) orb.Point {
	return project.WGS84.ToMercator(p)
}

// LineToGeographic converts every point of a projected sequence.
func LineToGeographic(points []orb.Point) []orb.Point {
	out := make([]orb.Point, 0, len(points))
	for _, p := range points {
		out = append(out, ToGeographic(p))
	}
	return out
}

// ProjectedBound pads a geographic bound by margin degrees and returns it in EPSG:3857.
func ProjectedBound(a, b orb.Point, margin float64) orb.Bound {
	geo := orb.Bound{Min: a, Max: a}.Extend(b)
	geo = orb.Bound{
		Min: orb.Point{geo.Min.Lon() - margin, geo.Min.Lat() - margin},
		Max: orb.Point{geo.Max.Lon() + margin, geo.Max.Lat() + margin},
	}
	geo.Min[1] = clampLat(geo.Min[1])
	geo.Max[1] = clampLat(geo.Max[1])
	return orb.Bound{Min: ToProjected(geo.Min), Max: ToProjected(geo.Max)}
}

// maxMercatorLat keeps padded bounds inside the Web Mercator domain.
const maxMercatorLat = 85.05112878

func clampLat(lat float64) float64 {
	if lat > maxMercatorLat {
		return maxMercatorLat
	}
	if lat < -maxMercatorLat {
		return -maxMercatorLat
	}
	return lat
}

// Length is the planar length of a projected sequence, in projected units.
func Length(points []orb.Point) float64 {
	if len(points) < 2 {
		return 0
	}
	return planar.Length(orb.LineString(points))
}

// Distance is the planar distance between two projected points.
func Distance(a, b orb.Point) float64 {
	return planar.Distance(a, b)
}
