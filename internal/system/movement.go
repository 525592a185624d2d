// internal/system/movement.go
package system

import (
	"math"

	"go-polygon-defense/internal/entity"
	"go-polygon-defense/internal/utils"
)

// MovementSystem walks creeps along the route, one waypoint per tick at most.
type MovementSystem struct {
	world  *entity.World
	routes RouteSource
}

func NewMovementSystem(world *entity.World, routes RouteSource) *MovementSystem {
	return &MovementSystem{world: world, routes: routes}
}

func (s *MovementSystem) Update(deltaTime float64) {
	route := s.routes.Route()
	for _, c := range s.world.Creeps {
		if c.ReachedEnd || c.Dead {
			continue
		}
		target, ok := route.Waypoint(c.WaypointIndex + 1)
		if !ok {
			c.ReachedEnd = true
			continue
		}

		dx := target.X - c.Pos.X
		dy := target.Y - c.Pos.Y
		dist := math.Hypot(dx, dy)
		if dist == 0 {
			dist = 1
		}
		moveDistance := c.Speed * deltaTime

		if moveDistance >= dist {
			c.Pos = target
			c.WaypointIndex++
		} else {
			c.Pos.X += dx / dist * moveDistance
			c.Pos.Y += dy / dist * moveDistance
		}
		c.Rotation = utils.NormalizeAngle(c.Rotation + c.SpinSpeed*deltaTime)
	}
}
