// internal/entity/factory.go
package entity

import (
	"image/color"

	"go-polygon-defense/internal/component"
	"go-polygon-defense/internal/config"
	"go-polygon-defense/internal/defs"
	"go-polygon-defense/internal/types"
	"go-polygon-defense/internal/utils"
	"go-polygon-defense/pkg/geom"
	"go-polygon-defense/pkg/pathing"
)

// NewCreep builds a fresh creep at pos. Only the spin speed is random.
func NewCreep(id types.EntityID, sides int, pos geom.Point, rng *utils.PRNGService) *component.Creep {
	stats := defs.CreepStatsFor(sides)
	half := config.CreepSpinSpan / 2
	return &component.Creep{
		ID:        id,
		Sides:     sides,
		Pos:       pos,
		Radius:    stats.Radius,
		Color:     stats.Color,
		HP:        stats.HP,
		MaxHP:     stats.HP,
		Speed:     stats.Speed,
		SpinSpeed: rng.Range(-half, half),
	}
}

func NewTower(id types.EntityID, def defs.TowerDefinition, site pathing.Site) *component.Tower {
	return &component.Tower{
		ID:   id,
		Def:  def,
		Site: site,
	}
}

func NewBullet(id types.EntityID, pos geom.Point, vx, vy float64, damage int, c color.RGBA) *component.Bullet {
	return &component.Bullet{
		ID:     id,
		Pos:    pos,
		VX:     vx,
		VY:     vy,
		Damage: damage,
		Color:  c,
		Alive:  true,
	}
}
