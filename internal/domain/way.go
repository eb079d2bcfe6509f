package domain

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
)

// Way - неизменяемый участок уличной сети (сегмент)
type Way struct {
	WayID  int64       `json:"way_id" db:"way_id"`
	Name   *string     `json:"name,omitempty" db:"name"`
	Geom   []orb.Point `json:"geom" db:"-"`
	Source int64       `json:"source" db:"source"`
	Target int64       `json:"target" db:"target"`
	Tags   osm.Tags    `json:"tags,omitempty" db:"-"`
	// Length в проекционных единицах (EPSG:3857)
	Length float64 `json:"-" db:"length"`
}

// DisplayName возвращает имя сегмента или запасной вариант
func (w *Way) DisplayName() string {
	if w.Name == nil || *w.Name == "" {
		return "Unnamed segment"
	}
	return *w.Name
}
