// internal/entity/world.go
package entity

import (
	"slices"

	"go-polygon-defense/internal/component"
	"go-polygon-defense/internal/types"
)

// World owns every live entity and the scalar game state.
// Collections are ordered: iteration order is insertion order, which is the
// tie-break rule for targeting and collisions.
type World struct {
	NextID  types.EntityID
	Creeps  []*component.Creep
	Bullets []*component.Bullet
	Towers  []*component.Tower
	Status  component.Status
}

func NewWorld(status component.Status) *World {
	return &World{
		NextID: 1,
		Status: status,
	}
}

func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

func (w *World) AddCreep(c *component.Creep) {
	w.Creeps = append(w.Creeps, c)
}

func (w *World) AddBullet(b *component.Bullet) {
	w.Bullets = append(w.Bullets, b)
}

func (w *World) AddTower(t *component.Tower) {
	w.Towers = append(w.Towers, t)
}

// Sweep drops dead creeps and spent bullets, keeping the order of survivors.
func (w *World) Sweep() {
	w.Creeps = slices.DeleteFunc(w.Creeps, func(c *component.Creep) bool { return c.Dead })
	w.Bullets = slices.DeleteFunc(w.Bullets, func(b *component.Bullet) bool { return !b.Alive })
}

// LiveCreeps counts creeps not yet marked dead.
func (w *World) LiveCreeps() int {
	n := 0
	for _, c := range w.Creeps {
		if c.Alive() {
			n++
		}
	}
	return n
}
