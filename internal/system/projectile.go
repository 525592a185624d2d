// internal/system/projectile.go
package system

import (
	"go-polygon-defense/internal/component"
	"go-polygon-defense/internal/config"
	"go-polygon-defense/internal/entity"
	"go-polygon-defense/internal/event"
	"go-polygon-defense/internal/utils"
	"go-polygon-defense/pkg/geom"
)

// ProjectileSystem moves bullets, drops the ones that left the field and
// resolves hits, kills and splits.
type ProjectileSystem struct {
	world           *entity.World
	routes          RouteSource
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
}

func NewProjectileSystem(world *entity.World, routes RouteSource, eventDispatcher *event.Dispatcher, rng *utils.PRNGService) *ProjectileSystem {
	return &ProjectileSystem{
		world:           world,
		routes:          routes,
		eventDispatcher: eventDispatcher,
		rng:             rng,
	}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	s.move(deltaTime)
	s.collide()
}

func (s *ProjectileSystem) move(deltaTime float64) {
	route := s.routes.Route()
	for _, b := range s.world.Bullets {
		if !b.Alive {
			continue
		}
		b.Pos = b.Pos.Add(b.VX*deltaTime, b.VY*deltaTime)
		if outOfBounds(b.Pos, route.Width, route.Height) {
			b.Alive = false
		}
	}
}

func outOfBounds(p geom.Point, width, height float64) bool {
	m := config.BulletMargin
	return p.X < -m || p.X > width+m || p.Y < -m || p.Y > height+m
}

func (s *ProjectileSystem) collide() {
	for _, b := range s.world.Bullets {
		if !b.Alive {
			continue
		}
		// Index loop: children appended by a kill are hittable by later bullets.
		for i := 0; i < len(s.world.Creeps); i++ {
			c := s.world.Creeps[i]
			if c.Dead || geom.Dist(b.Pos, c.Pos) > c.Radius {
				continue
			}
			b.Alive = false
			if ApplyDamage(c, b.Damage) {
				s.kill(c)
			}
			break
		}
	}
}

func (s *ProjectileSystem) kill(c *component.Creep) {
	c.Dead = true
	status := &s.world.Status
	status.Score += c.MaxHP
	status.Money += config.KillBounty
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.CreepKilled,
		Data: event.KillInfo{
			CreepInfo: event.CreepInfo{ID: c.ID, Sides: c.Sides, Pos: c.Pos},
			Bounty:    config.KillBounty,
			Score:     c.MaxHP,
		},
	})
	for _, child := range SplitCreep(s.world, s.rng, c) {
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.CreepSplit,
			Data: event.CreepInfo{ID: child.ID, Sides: child.Sides, Pos: child.Pos},
		})
	}
}
