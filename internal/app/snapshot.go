// internal/app/snapshot.go
package app

import (
	"github.com/google/uuid"

	"go-polygon-defense/internal/component"
	"go-polygon-defense/pkg/geom"
	"go-polygon-defense/pkg/pathing"
)

// Snapshot is a read-only copy of a game for renderers. Mutating it has no
// effect on the simulation.
type Snapshot struct {
	GameID    uuid.UUID
	Status    component.Status
	Width     float64
	Height    float64
	Waypoints []geom.Point
	Grid      *pathing.Grid // Shared, the route never mutates it
	Creeps    []component.Creep
	Towers    []component.Tower
	Bullets   []component.Bullet
}

func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		GameID:    g.ID,
		Status:    g.World.Status,
		Width:     g.route.Width,
		Height:    g.route.Height,
		Waypoints: append([]geom.Point(nil), g.route.Waypoints...),
		Grid:      g.route.Grid,
		Creeps:    make([]component.Creep, 0, len(g.World.Creeps)),
		Towers:    make([]component.Tower, 0, len(g.World.Towers)),
		Bullets:   make([]component.Bullet, 0, len(g.World.Bullets)),
	}
	for _, c := range g.World.Creeps {
		s.Creeps = append(s.Creeps, *c)
	}
	for _, t := range g.World.Towers {
		s.Towers = append(s.Towers, *t)
	}
	for _, b := range g.World.Bullets {
		s.Bullets = append(s.Bullets, *b)
	}
	return s
}
