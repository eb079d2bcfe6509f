package domain

import "github.com/paulmach/orb"

// Node - вершина графа, найденная для произвольной точки. Не хранится.
type Node struct {
	NodeID int64       `json:"node_id"`
	WayID  int64       `json:"way_id"`
	Geom   []orb.Point `json:"geom"`
	Lng    float64     `json:"lng"`
	Lat    float64     `json:"lat"`
	// X, Y - координаты вершины в проекции хранилища (EPSG:3857)
	X float64 `json:"-"`
	Y float64 `json:"-"`
}

// EmptyNode - подстановка, когда вершина в радиусе поиска не найдена
func EmptyNode() Node {
	return Node{Geom: []orb.Point{}}
}

// IsEmpty проверяет, является ли вершина подстановкой
func (n Node) IsEmpty() bool {
	return n.WayID == 0 && n.NodeID == 0
}

// Point возвращает географические координаты (lng, lat)
func (n Node) Point() orb.Point {
	return orb.Point{n.Lng, n.Lat}
}
