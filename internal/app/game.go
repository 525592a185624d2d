// internal/app/game.go
package app

import (
	"log/slog"
	"math"

	"github.com/google/uuid"

	"go-polygon-defense/internal/component"
	"go-polygon-defense/internal/config"
	"go-polygon-defense/internal/defs"
	"go-polygon-defense/internal/entity"
	"go-polygon-defense/internal/event"
	"go-polygon-defense/internal/system"
	"go-polygon-defense/internal/utils"
	"go-polygon-defense/pkg/pathing"
)

// Game holds one independent simulation: its world, its route and the
// systems that advance it. Several games may coexist.
type Game struct {
	ID              uuid.UUID
	Variant         config.Variant
	World           *entity.World
	Towers          *defs.Library
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	WaveSystem       *system.WaveSystem
	MovementSystem   *system.MovementSystem
	StateSystem      *system.StateSystem
	CombatSystem     *system.CombatSystem
	ProjectileSystem *system.ProjectileSystem

	strategy pathing.Strategy
	route    *pathing.Route
	pending  []placementRequest
	logger   *slog.Logger
}

// NewGame creates a running game for the variant and lays it out on the
// default playfield. A nil library means the default palette; a nil rng is
// seeded from the clock.
func NewGame(variant config.Variant, strategy pathing.Strategy, towers *defs.Library, rng *utils.PRNGService) *Game {
	if strategy == nil {
		panic("strategy cannot be nil")
	}
	if towers == nil {
		towers = defs.DefaultLibrary()
	}
	if rng == nil {
		rng = utils.NewPRNGService(0)
	}

	id := uuid.New()
	world := entity.NewWorld(component.Status{
		Money:      variant.StartingMoney,
		Lives:      variant.StartingLives,
		Wave:       variant.StartWave,
		SpawnEvery: variant.SpawnEvery,
		Running:    true,
	})
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		ID:              id,
		Variant:         variant,
		World:           world,
		Towers:          towers,
		EventDispatcher: eventDispatcher,
		Rng:             rng,
		strategy:        strategy,
		logger:          slog.Default().With("game", id.String()),
	}
	g.WaveSystem = system.NewWaveSystem(world, g, eventDispatcher, rng)
	g.MovementSystem = system.NewMovementSystem(world, g)
	g.StateSystem = system.NewStateSystem(world, g, eventDispatcher)
	g.CombatSystem = system.NewCombatSystem(world, eventDispatcher)
	g.ProjectileSystem = system.NewProjectileSystem(world, g, eventDispatcher, rng)

	listener := &GameEventListener{game: g}
	eventDispatcher.SubscribeAll(listener, event.CreepLeaked, event.GameOver, event.PlacementRejected)

	g.Layout(PlayfieldSize(config.ScreenWidth, config.ScreenHeight))
	g.logger.Info("game created",
		"variant", variant.Name,
		"seed", rng.Seed(),
		"money", variant.StartingMoney,
		"spawn_every", variant.SpawnEvery)
	return g
}

// Route returns the current route.
func (g *Game) Route() *pathing.Route {
	return g.route
}

// Layout recomputes the route for a new playfield size and moves grid towers
// back onto their cell centres. It must not be called during Step.
func (g *Game) Layout(width, height float64) *pathing.Route {
	g.route = g.strategy.Layout(width, height)
	if grid := g.route.Grid; grid != nil {
		for _, t := range g.World.Towers {
			if t.Site.HasCell {
				t.Site.Pos = grid.Center(t.Site.Cell)
			}
		}
	}
	g.logger.Debug("layout", "width", width, "height", height, "waypoints", g.route.Len())
	return g.route
}

// Step advances the simulation by deltaTime seconds. Queued placements are
// applied first, even once the game is over. A stopped game or a delta that
// is not a positive finite number leaves the world untouched.
func (g *Game) Step(deltaTime float64) {
	g.drainPlacements()

	if !g.World.Status.Running || !(deltaTime > 0) || math.IsInf(deltaTime, 1) {
		return
	}

	g.WaveSystem.Update(deltaTime)
	g.MovementSystem.Update(deltaTime)
	g.StateSystem.Update()
	g.CombatSystem.Update(deltaTime)
	g.ProjectileSystem.Update(deltaTime)
	g.World.Sweep()
}

// Running reports whether the game still accepts simulation steps.
func (g *Game) Running() bool {
	return g.World.Status.Running
}

// PlayfieldSize converts a screen size to playfield dimensions: the full
// width and the height left above the palette bar.
func PlayfieldSize(screenWidth, screenHeight int) (float64, float64) {
	h := max(config.MinPlayHeight, screenHeight-config.UIHeight-config.SafeBottom)
	return float64(screenWidth), float64(h)
}

// GameEventListener logs the lifecycle events of a game.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.CreepLeaked:
		l.game.logger.Debug("creep leaked", "lives", l.game.World.Status.Lives)
	case event.GameOver:
		s := l.game.World.Status
		l.game.logger.Info("game over", "score", s.Score, "money", s.Money, "wave", s.Wave)
	case event.PlacementRejected:
		if info, ok := e.Data.(event.PlacementInfo); ok {
			l.game.logger.Debug("placement rejected", "tower", info.Key, "x", info.Target.X, "y", info.Target.Y)
		}
	}
}
