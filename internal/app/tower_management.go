// internal/app/tower_management.go
package app

import (
	"errors"
	"fmt"

	"go-polygon-defense/internal/defs"
	"go-polygon-defense/internal/entity"
	"go-polygon-defense/internal/event"
	"go-polygon-defense/internal/types"
	"go-polygon-defense/pkg/geom"
	"go-polygon-defense/pkg/pathing"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrOutsidePlayfield  = errors.New("target outside playfield")
	ErrNotBuildable      = errors.New("site not buildable")
	ErrOccupied          = errors.New("site occupied")
)

type placementRequest struct {
	key    string
	target geom.Point
}

// AttemptPlace tries to build the tower key at target. It returns false and
// changes nothing when the key is unknown, the player cannot afford it, or
// the site is illegal or taken.
func (g *Game) AttemptPlace(key string, target geom.Point) bool {
	_, err := g.PlaceTower(key, target)
	return err == nil
}

// PlaceTower is AttemptPlace with the reason for a refusal.
func (g *Game) PlaceTower(key string, target geom.Point) (types.EntityID, error) {
	def, site, err := g.canPlaceTower(key, target)
	if err != nil {
		return 0, err
	}

	tower := entity.NewTower(g.World.NewEntity(), def, site)
	g.World.AddTower(tower)
	g.World.Status.Money -= def.Cost

	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TowerPlaced,
		Data: event.PlacementInfo{Key: key, Target: target, TowerID: tower.ID},
	})
	return tower.ID, nil
}

func (g *Game) canPlaceTower(key string, target geom.Point) (defs.TowerDefinition, pathing.Site, error) {
	def, ok := g.Towers.Get(key)
	if !ok {
		return def, pathing.Site{}, fmt.Errorf("%w: %q", defs.ErrUnknownTower, key)
	}
	if g.World.Status.Money < def.Cost {
		return def, pathing.Site{}, ErrInsufficientFunds
	}

	site, ok := g.route.Resolve(target)
	if !ok {
		return def, site, ErrOutsidePlayfield
	}
	if !g.route.Buildable(site) {
		return def, site, ErrNotBuildable
	}
	for _, t := range g.World.Towers {
		if g.route.Overlaps(t.Site, site) {
			return def, site, ErrOccupied
		}
	}
	return def, site, nil
}

// PreviewPlacement resolves target to a site without building anything.
// The error is nil when AttemptPlace would succeed.
func (g *Game) PreviewPlacement(key string, target geom.Point) (pathing.Site, error) {
	_, site, err := g.canPlaceTower(key, target)
	return site, err
}

// RequestPlacement queues a placement for the start of the next Step. The
// outcome is published as TowerPlaced or PlacementRejected.
func (g *Game) RequestPlacement(key string, target geom.Point) {
	g.pending = append(g.pending, placementRequest{key: key, target: target})
}

// PendingPlacements is the number of queued requests.
func (g *Game) PendingPlacements() int {
	return len(g.pending)
}

func (g *Game) drainPlacements() {
	if len(g.pending) == 0 {
		return
	}
	queue := g.pending
	g.pending = nil
	for _, req := range queue {
		if _, err := g.PlaceTower(req.key, req.target); err != nil {
			g.EventDispatcher.Dispatch(event.Event{
				Type: event.PlacementRejected,
				Data: event.PlacementInfo{Key: req.key, Target: req.target},
			})
		}
	}
}
