// internal/system/combat.go
package system

import (
	"math"

	"go-polygon-defense/internal/component"
	"go-polygon-defense/internal/entity"
	"go-polygon-defense/internal/event"
	"go-polygon-defense/pkg/geom"
)

// CombatSystem counts tower cooldowns down and fires at the nearest creep.
type CombatSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(world *entity.World, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
	}
}

func (s *CombatSystem) Update(deltaTime float64) {
	for _, tower := range s.world.Towers {
		tower.Cooldown -= deltaTime
		if tower.Cooldown > 0 {
			continue
		}
		target := s.findNearestCreepInRange(tower.Site.Pos, tower.Def.Range)
		if target == nil {
			continue
		}
		s.fire(tower, target)
		tower.Cooldown = 1 / tower.Def.FireRate
	}
}

// findNearestCreepInRange returns the closest living creep strictly inside
// rangeRadius. The first creep in iteration order wins ties.
func (s *CombatSystem) findNearestCreepInRange(from geom.Point, rangeRadius float64) *component.Creep {
	var best *component.Creep
	bestDist := math.Inf(1)
	for _, c := range s.world.Creeps {
		if c.Dead {
			continue
		}
		d := geom.Dist(from, c.Pos)
		if d < rangeRadius && d < bestDist {
			best = c
			bestDist = d
		}
	}
	return best
}

func (s *CombatSystem) fire(tower *component.Tower, target *component.Creep) {
	angle := math.Atan2(target.Pos.Y-tower.Site.Pos.Y, target.Pos.X-tower.Site.Pos.X)
	speed := tower.Def.BulletSpeed
	bullet := entity.NewBullet(
		s.world.NewEntity(),
		tower.Site.Pos,
		math.Cos(angle)*speed,
		math.Sin(angle)*speed,
		tower.Def.Damage,
		tower.Def.Color,
	)
	s.world.AddBullet(bullet)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.BulletFired,
		Data: event.ShotInfo{TowerID: tower.ID, TargetID: target.ID, BulletID: bullet.ID},
	})
}
