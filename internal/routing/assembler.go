package routing

import (
	"fmt"
	"math"

	"github.com/cycleroute-microservice/internal/domain"
	"github.com/cycleroute-microservice/internal/pkg/geometry"
	"github.com/paulmach/orb"
)

// Assemble turns a pathfinder result into a displayable route. start and end
// are the literal click points (geographic); the path is in projected units.
// The total length is the sum of traversed edge lengths in kilometres,
// rounded to two decimals. An empty path yields an empty geometry and an
// explanation naming both endpoints.
func Assemble(start, end orb.Point, path []domain.PathPoint) domain.AssembledRoute {
	if len(path) == 0 {
		return domain.AssembledRoute{
			Geometry: []orb.Point{},
			WayIDs:   []int64{},
			Error:    NoRouteMessage(start, end),
		}
	}

	geom := make([]orb.Point, 0, len(path)+2)
	geom = append(geom, start)

	var total float64
	wayIDs := make([]int64, 0)
	for i, p := range path {
		geom = append(geom, geometry.ToGeographic(orb.Point{p.X, p.Y}))
		total += p.Length

		// the final point repeats the way it arrived on
		if i == len(path)-1 || p.WayID == 0 {
			continue
		}
		if n := len(wayIDs); n == 0 || wayIDs[n-1] != p.WayID {
			wayIDs = append(wayIDs, p.WayID)
		}
	}
	geom = append(geom, end)

	return domain.AssembledRoute{
		Geometry:      geom,
		WayIDs:        wayIDs,
		TotalLengthKm: RoundKm(total),
	}
}

// RoundKm converts projected units to kilometres rounded to hundredths.
func RoundKm(length float64) float64 {
	return math.Round(length/1000*100) / 100
}

// NoRouteMessage is the explanation shown when no path joins two points.
func NoRouteMessage(start, end orb.Point) string {
	return fmt.Sprintf("No route found between %s and %s",
		geometry.FormatPoint(start), geometry.FormatPoint(end))
}
