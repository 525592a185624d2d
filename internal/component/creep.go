// internal/component/creep.go
package component

import (
	"image/color"

	"go-polygon-defense/internal/types"
	"go-polygon-defense/pkg/geom"
)

// Creep is an enemy polygon walking the route.
type Creep struct {
	ID     types.EntityID
	Sides  int // 3..6, drives size, colour, speed and hit points
	Pos    geom.Point
	Radius float64
	Color  color.RGBA
	HP     int
	MaxHP  int
	Speed  float64 // Pixels per second

	Rotation  float64 // Cosmetic
	SpinSpeed float64 // Radians per second, cosmetic

	WaypointIndex int  // Index of the waypoint the creep last reached
	ReachedEnd    bool // Transient: no further waypoint this tick
	Dead          bool // Marked for removal by cleanup
}

// Alive reports whether the creep can still be targeted or hit.
func (c *Creep) Alive() bool {
	return !c.Dead
}
