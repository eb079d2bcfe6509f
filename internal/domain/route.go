package domain

import "github.com/paulmach/orb"

// Route - производный результат: пройденные участки и склеенная геометрия
type Route struct {
	WayIDs []int64     `json:"way_ids"`
	Geom   []orb.Point `json:"geom"`
	Source int64       `json:"source"`
	Target int64       `json:"target"`
}

// EmptyRoute возвращает маршрут без геометрии между двумя вершинами
func EmptyRoute(source, target int64) Route {
	return Route{
		WayIDs: []int64{},
		Geom:   []orb.Point{},
		Source: source,
		Target: target,
	}
}

// AssembledRoute - маршрут, готовый к отображению
type AssembledRoute struct {
	Geometry      []orb.Point
	WayIDs        []int64
	TotalLengthKm float64
	Error         string
}
