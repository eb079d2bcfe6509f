package domain

import "github.com/paulmach/osm"

// Edge - направленная дуга графа между двумя вершинами, полученная из Way.
// Стоимость вычисляется на каждый запрос и никогда не сохраняется.
type Edge struct {
	ID     int64 `db:"id"`
	Source int64 `db:"source"`
	Target int64 `db:"target"`
	WayID  int64 `db:"way_id"`
	// Координаты концов в проекции хранилища (EPSG:3857)
	X1 float64 `db:"x1"`
	Y1 float64 `db:"y1"`
	X2 float64 `db:"x2"`
	Y2 float64 `db:"y2"`
	// Length - физическая длина в проекционных единицах
	Length float64 `db:"length"`
	Tags   osm.Tags

	Cost        float64
	ReverseCost float64
}

// PathPoint - точка маршрута с идентификаторами дуги, с которой начинается движение
type PathPoint struct {
	NodeID int64
	WayID  int64
	// X, Y в проекции хранилища
	X float64
	Y float64
	// Length - длина пройденной из этой точки дуги (0 для последней точки)
	Length float64
}
