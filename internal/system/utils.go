// internal/system/utils.go
package system

import (
	"go-polygon-defense/internal/component"
	"go-polygon-defense/internal/config"
	"go-polygon-defense/internal/entity"
	"go-polygon-defense/internal/utils"
)

// ApplyDamage deducts damage from a living creep and reports whether the
// hit was lethal. Dead creeps are ignored.
func ApplyDamage(c *component.Creep, damage int) bool {
	if c.Dead {
		return false
	}
	c.HP -= damage
	return c.HP <= 0
}

// SplitCreep builds the children of a killed creep and appends them to the
// world. Triangles do not split. Children start one waypoint behind the
// parent and are offset diagonally, one to each side.
func SplitCreep(world *entity.World, rng *utils.PRNGService, parent *component.Creep) []*component.Creep {
	if parent.Sides <= config.MinCreepSides {
		return nil
	}
	children := make([]*component.Creep, 0, config.SplitChildren)
	for i := range config.SplitChildren {
		sign := 1.0
		if i == 0 {
			sign = -1.0
		}
		jitter := sign * (config.SplitJitterMin + rng.Float64()*config.SplitJitterSpan)
		child := entity.NewCreep(world.NewEntity(), parent.Sides-1, parent.Pos.Add(jitter, jitter), rng)
		child.WaypointIndex = max(0, parent.WaypointIndex-1)
		world.AddCreep(child)
		children = append(children, child)
	}
	return children
}
