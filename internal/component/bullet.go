// internal/component/bullet.go
package component

import (
	"image/color"

	"go-polygon-defense/internal/types"
	"go-polygon-defense/pkg/geom"
)

// Bullet is a projectile in flight. It travels in a straight line.
type Bullet struct {
	ID     types.EntityID
	Pos    geom.Point
	VX, VY float64 // Pixels per second
	Damage int
	Color  color.RGBA
	Alive  bool
}
