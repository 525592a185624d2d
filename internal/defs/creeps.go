// internal/defs/creeps.go
package defs

import (
	"image/color"
	"math"

	"go-polygon-defense/internal/config"
)

// CreepStats are the side-count derived attributes of a creep.
type CreepStats struct {
	Sides  int
	Radius float64
	Color  color.RGBA
	HP     int
	Speed  float64 // Pixels per second
}

// CreepStatsFor derives size, colour, hit points and speed from the side count.
// Fewer sides means a weaker but faster creep.
func CreepStatsFor(sides int) CreepStats {
	hp := max(1, int(math.Round(float64(sides)*config.CreepHPPerSide)))
	c, ok := config.CreepColors[sides]
	if !ok {
		c = config.DefaultCreepColor
	}
	return CreepStats{
		Sides:  sides,
		Radius: config.CellSize / 2,
		Color:  c,
		HP:     hp,
		Speed:  config.CreepBaseSpeed + float64(config.MaxCreepSides-sides)*config.CreepSpeedPerSide,
	}
}
