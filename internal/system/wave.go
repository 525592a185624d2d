// internal/system/wave.go
package system

import (
	"math"

	"go-polygon-defense/internal/config"
	"go-polygon-defense/internal/entity"
	"go-polygon-defense/internal/event"
	"go-polygon-defense/internal/utils"
)

// WaveSystem accumulates time and spawns six-sided creeps at the route entry.
type WaveSystem struct {
	world           *entity.World
	routes          RouteSource
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
}

func NewWaveSystem(world *entity.World, routes RouteSource, eventDispatcher *event.Dispatcher, rng *utils.PRNGService) *WaveSystem {
	return &WaveSystem{
		world:           world,
		routes:          routes,
		eventDispatcher: eventDispatcher,
		rng:             rng,
	}
}

// SpawnInterval is the effective interval for a wave. It shrinks by a tenth
// of a second per wave and never drops below one second.
func SpawnInterval(spawnEvery float64, wave int) float64 {
	return math.Max(config.MinSpawnInterval, spawnEvery-float64(wave-1)*config.WaveIntervalStep)
}

// Update returns the number of creeps spawned this tick.
func (s *WaveSystem) Update(deltaTime float64) int {
	entry, ok := s.routes.Route().Spawn()
	if !ok {
		return 0
	}
	status := &s.world.Status
	status.SpawnTimer += deltaTime
	interval := SpawnInterval(status.SpawnEvery, status.Wave)

	spawned := 0
	for status.SpawnTimer >= interval-config.SpawnEpsilon {
		status.SpawnTimer -= interval
		creep := entity.NewCreep(s.world.NewEntity(), config.MaxCreepSides, entry, s.rng)
		s.world.AddCreep(creep)
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.CreepSpawned,
			Data: event.CreepInfo{ID: creep.ID, Sides: creep.Sides, Pos: creep.Pos},
		})
		spawned++
	}
	if math.Abs(status.SpawnTimer) < config.SpawnEpsilon {
		status.SpawnTimer = 0
	}
	return spawned
}
