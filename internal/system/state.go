// internal/system/state.go
package system

import (
	"go-polygon-defense/internal/entity"
	"go-polygon-defense/internal/event"
)

// StateSystem resolves creeps that ran out of route and owns the transition
// to the terminal game-over state.
type StateSystem struct {
	world           *entity.World
	routes          RouteSource
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(world *entity.World, routes RouteSource, eventDispatcher *event.Dispatcher) *StateSystem {
	return &StateSystem{
		world:           world,
		routes:          routes,
		eventDispatcher: eventDispatcher,
	}
}

// Update expires creeps standing on the base waypoint and charges a life for
// each. Flagged creeps that are not on the base (possible after a relayout)
// resume walking.
func (s *StateSystem) Update() {
	last := s.routes.Route().LastIndex()
	for _, c := range s.world.Creeps {
		if !c.ReachedEnd || c.Dead {
			continue
		}
		if c.WaypointIndex < last {
			c.ReachedEnd = false
			continue
		}
		c.Dead = true
		s.world.Status.Lives--
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.CreepLeaked,
			Data: event.CreepInfo{ID: c.ID, Sides: c.Sides, Pos: c.Pos},
		})
		if s.world.Status.Lives <= 0 {
			s.SwitchToGameOver()
		}
	}
}

// SwitchToGameOver stops the simulation. It fires GameOver only on the first
// call.
func (s *StateSystem) SwitchToGameOver() {
	if !s.world.Status.Running {
		return
	}
	s.world.Status.Running = false
	s.eventDispatcher.Dispatch(event.Event{Type: event.GameOver})
}

func (s *StateSystem) Running() bool {
	return s.world.Status.Running
}
