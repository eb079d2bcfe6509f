// Package geometry converts between stored geometry text, map-client JSON and the
// projected/geographic coordinate systems used by the routing graph.
package geometry

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
	"github.com/twpayne/go-polyline"

	pkgerrors "github.com/cycleroute-microservice/internal/pkg/errors"
)

// EmptyJSON is what the map client receives when a geometry cannot be encoded.
const EmptyJSON = "[]"

var pairPattern = regexp.MustCompile(`(-?\d+(?:\.\d*)?)\s+(-?\d+(?:\.\d*)?)`)

// Decode extracts coordinate pairs from a JSON coordinate array, WKT, or loose "x y" text.
// Empty input yields an empty sequence and no error.
func Decode(text string) ([]orb.Point, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return []orb.Point{}, nil
	}

	if strings.HasPrefix(trimmed, "[") {
		return decodeJSON(trimmed)
	}

	if g, err := wkt.Unmarshal(trimmed); err == nil {
		return flatten(g), nil
	}

	matches := pairPattern.FindAllStringSubmatch(trimmed, -1)
	if len(matches) == 0 {
		return []orb.Point{}, malformed(trimmed)
	}

	points := make([]orb.Point, 0, len(matches))
	for _, m := range matches {
		x, errX := strconv.ParseFloat(m[1], 64)
		y, errY := strconv.ParseFloat(m[2], 64)
		if errX != nil || errY != nil {
			return []orb.Point{}, malformed(trimmed)
		}
		points = append(points, orb.Point{x, y})
	}
	return points, nil
}

// DecodeNullable treats a nil column the same as an empty one.
func DecodeNullable(text *string) ([]orb.Point, error) {
	if text == nil {
		return []orb.Point{}, nil
	}
	return Decode(*text)
}

// Encode serializes points as [[x,y],...]. On failure it still returns EmptyJSON
// alongside the error, so callers can log and carry on.
func Encode(points []orb.Point) (string, error) {
	coords := make([][2]float64, 0, len(points))
	for _, p := range points {
		coords = append(coords, [2]float64{p[0], p[1]})
	}

	data, err := json.Marshal(coords)
	if err != nil {
		return EmptyJSON, pkgerrors.ErrSerializationFailure.WithDetails(map[string]interface{}{
			"reason": err.Error(),
		})
	}
	return string(data), nil
}

// EncodePolyline returns a Google encoded polyline. Points are (lng, lat); the format is (lat, lng).
func EncodePolyline(points []orb.Point) string {
	coords := make([][]float64, 0, len(points))
	for _, p := range points {
		coords = append(coords, []float64{p.Lat(), p.Lon()})
	}
	return string(polyline.EncodeCoords(coords))
}

func decodeJSON(text string) ([]orb.Point, error) {
	var raw [][]float64
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return []orb.Point{}, malformed(text)
	}

	points := make([]orb.Point, 0, len(raw))
	for _, c := range raw {
		if len(c) < 2 {
			return []orb.Point{}, malformed(text)
		}
		points = append(points, orb.Point{c[0], c[1]})
	}
	return points, nil
}

func flatten(g orb.Geometry) []orb.Point {
	switch v := g.(type) {
	case orb.Point:
		return []orb.Point{v}
	case orb.MultiPoint:
		return append([]orb.Point{}, v...)
	case orb.LineString:
		return append([]orb.Point{}, v...)
	case orb.MultiLineString:
		var out []orb.Point
		for _, ls := range v {
			out = append(out, ls...)
		}
		if out == nil {
			return []orb.Point{}
		}
		return out
	case orb.Ring:
		return append([]orb.Point{}, v...)
	case orb.Polygon:
		var out []orb.Point
		for _, r := range v {
			out = append(out, r...)
		}
		if out == nil {
			return []orb.Point{}
		}
		return out
	default:
		return []orb.Point{}
	}
}

func malformed(text string) error {
	sample := text
	if len(sample) > 64 {
		sample = sample[:64]
	}
	return pkgerrors.ErrMalformedGeometry.WithDetails(map[string]interface{}{
		"text": sample,
	})
}

// FormatPoint renders a point for human readable messages.
func FormatPoint(p orb.Point) string {
	return fmt.Sprintf("(%.6f, %.6f)", p[0], p[1])
}
