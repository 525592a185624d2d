package app

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"go-polygon-defense/internal/config"
	"go-polygon-defense/internal/defs"
	"go-polygon-defense/internal/event"
	"go-polygon-defense/internal/event/mocks"
	"go-polygon-defense/internal/utils"
	"go-polygon-defense/pkg/geom"
	"go-polygon-defense/pkg/pathing"
)

func newClassicGame(t *testing.T) *Game {
	t.Helper()
	g := NewGame(config.Variants["classic"], pathing.NewSerpentine(), nil, utils.NewPRNGService(42))
	g.Layout(640, 480) // Grid origin {160, 80}
	return g
}

func cellCenter(g *Game, c, r int) geom.Point {
	return g.Route().Grid.Center(pathing.Cell{C: c, R: r})
}

func TestNewGame(t *testing.T) {
	g := NewGame(config.Variants["sprint"], pathing.NewSCurve(), nil, utils.NewPRNGService(1))

	if g.ID == uuid.Nil {
		t.Error("game has no id")
	}
	s := g.World.Status
	if s.Money != 100 || s.Lives != 20 || s.Wave != 1 || s.SpawnEvery != 2.2 || !s.Running {
		t.Errorf("unexpected initial status %+v", s)
	}
	w, h := PlayfieldSize(config.ScreenWidth, config.ScreenHeight)
	if r := g.Route(); r.Width != w || r.Height != h || r.Len() == 0 {
		t.Errorf("initial route %vx%v with %d waypoints", r.Width, r.Height, r.Len())
	}

	other := NewGame(config.Variants["sprint"], pathing.NewSCurve(), nil, utils.NewPRNGService(1))
	if other.ID == g.ID {
		t.Error("two games share an id")
	}
}

func TestPlayfieldSize(t *testing.T) {
	tests := []struct {
		w, h         int
		wantW, wantH float64
	}{
		{960, 720, 960, 570},
		{400, 300, 400, 200},
		{1280, 350, 1280, 200},
	}
	for _, tt := range tests {
		gotW, gotH := PlayfieldSize(tt.w, tt.h)
		if gotW != tt.wantW || gotH != tt.wantH {
			t.Errorf("PlayfieldSize(%d, %d) = %v, %v, want %v, %v", tt.w, tt.h, gotW, gotH, tt.wantW, tt.wantH)
		}
	}
}

func TestAttemptPlaceOnGrid(t *testing.T) {
	g := newClassicGame(t)

	// Cell (1,0) sits directly above the first interior path cell.
	if !g.AttemptPlace("pixel", geom.Point{X: 210, Y: 100}) {
		t.Fatal("placement beside the path was rejected")
	}
	if g.World.Status.Money != 375 {
		t.Errorf("money = %d, want 375", g.World.Status.Money)
	}
	if got := g.World.Towers[0].Site.Pos; got != cellCenter(g, 1, 0) {
		t.Errorf("tower at %v, want cell centre %v", got, cellCenter(g, 1, 0))
	}

	tests := []struct {
		name    string
		key     string
		target  geom.Point
		wantErr error
	}{
		{"occupied cell", "pixel", cellCenter(g, 1, 0), ErrOccupied},
		{"path cell", "pixel", cellCenter(g, 1, 1), ErrNotBuildable},
		{"corner cell", "pixel", cellCenter(g, 0, 0), ErrNotBuildable},
		{"outside playfield", "pixel", geom.Point{X: -5, Y: 10}, ErrOutsidePlayfield},
		{"not a number", "pixel", geom.Point{X: math.NaN(), Y: 10}, ErrOutsidePlayfield},
		{"unknown tower", "laser", cellCenter(g, 0, 1), defs.ErrUnknownTower},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := g.PlaceTower(tt.key, tt.target); !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if g.AttemptPlace(tt.key, tt.target) {
				t.Fatal("AttemptPlace accepted an illegal placement")
			}
			if g.World.Status.Money != 375 || len(g.World.Towers) != 1 {
				t.Errorf("state changed: money %d towers %d", g.World.Status.Money, len(g.World.Towers))
			}
		})
	}
}

func TestAttemptPlaceInsufficientFunds(t *testing.T) {
	g := newClassicGame(t)
	g.World.Status.Money = 24

	if _, err := g.PlaceTower("pixel", cellCenter(g, 1, 0)); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("err = %v, want %v", err, ErrInsufficientFunds)
	}
	if g.World.Status.Money != 24 || len(g.World.Towers) != 0 {
		t.Errorf("state changed: money %d towers %d", g.World.Status.Money, len(g.World.Towers))
	}

	g.World.Status.Money = 25
	if !g.AttemptPlace("pixel", cellCenter(g, 1, 0)) {
		t.Fatal("exact funds rejected")
	}
	if g.World.Status.Money != 0 {
		t.Errorf("money = %d, want 0", g.World.Status.Money)
	}
}

func TestAttemptPlaceOnSCurve(t *testing.T) {
	g := NewGame(config.Variants["sprint"], pathing.NewSCurve(), nil, utils.NewPRNGService(1))
	g.Layout(1000, 500)

	if !g.AttemptPlace("pixel", geom.Point{X: 100, Y: 175}) {
		t.Fatal("free spot rejected")
	}
	if g.AttemptPlace("pixel", geom.Point{X: 110, Y: 175}) {
		t.Error("overlapping spot accepted")
	}
	if g.AttemptPlace("pixel", geom.Point{X: 500, Y: 100}) {
		t.Error("spot on the path accepted")
	}
	if g.World.Status.Money != 75 || len(g.World.Towers) != 1 {
		t.Errorf("money %d towers %d", g.World.Status.Money, len(g.World.Towers))
	}
}

func TestRequestPlacementIsAppliedOnStep(t *testing.T) {
	ctrl := gomock.NewController(t)
	placed := mocks.NewMockListener(ctrl)
	rejected := mocks.NewMockListener(ctrl)

	g := newClassicGame(t)
	target := cellCenter(g, 1, 0)
	placed.EXPECT().OnEvent(gomock.Any()).Times(1)
	rejected.EXPECT().OnEvent(event.Event{
		Type: event.PlacementRejected,
		Data: event.PlacementInfo{Key: "pixel", Target: target},
	}).Times(1)
	g.EventDispatcher.Subscribe(event.TowerPlaced, placed)
	g.EventDispatcher.Subscribe(event.PlacementRejected, rejected)

	g.RequestPlacement("pixel", target)
	g.RequestPlacement("pixel", target)
	if len(g.World.Towers) != 0 || g.PendingPlacements() != 2 {
		t.Fatalf("request applied before step: towers %d pending %d", len(g.World.Towers), g.PendingPlacements())
	}

	g.Step(0.016)
	if len(g.World.Towers) != 1 || g.PendingPlacements() != 0 {
		t.Fatalf("after step: towers %d pending %d", len(g.World.Towers), g.PendingPlacements())
	}
}

func TestRequestPlacementAfterGameOver(t *testing.T) {
	g := newClassicGame(t)
	g.World.Status.Running = false

	g.RequestPlacement("pixel", cellCenter(g, 1, 0))
	g.Step(1)
	if len(g.World.Towers) != 1 {
		t.Errorf("placement not applied after game over")
	}
	if len(g.World.Creeps) != 0 || g.World.Status.SpawnTimer != 0 {
		t.Errorf("stopped game advanced")
	}
}

func TestStepSpawnScenario(t *testing.T) {
	tests := []struct {
		dt         float64
		wantCreeps int
	}{
		{4.4, 1},
		{13.2, 3},
	}
	for _, tt := range tests {
		g := newClassicGame(t)
		g.Step(tt.dt)
		if got := len(g.World.Creeps); got != tt.wantCreeps {
			t.Errorf("dt=%v: %d creeps, want %d", tt.dt, got, tt.wantCreeps)
		}
		if math.Abs(g.World.Status.SpawnTimer) > 1e-9 {
			t.Errorf("dt=%v: spawnTimer = %v, want 0", tt.dt, g.World.Status.SpawnTimer)
		}
	}
}

func TestStepIgnoresInvalidDelta(t *testing.T) {
	for _, dt := range []float64{0, -1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		g := newClassicGame(t)
		before := g.Snapshot()
		g.Step(dt)
		if !reflect.DeepEqual(before, g.Snapshot()) {
			t.Errorf("dt=%v changed the game", dt)
		}
	}
}

func TestGameOverIsTerminal(t *testing.T) {
	g := newClassicGame(t)
	overs := 0
	g.EventDispatcher.Subscribe(event.GameOver, event.ListenerFunc(func(event.Event) { overs++ }))

	for i := 0; i < 20000 && g.Running(); i++ {
		g.Step(config.MaxDeltaTime)
	}
	if g.Running() {
		t.Fatal("undefended game never ended")
	}
	if g.World.Status.Lives > 0 {
		t.Errorf("lives = %d after game over", g.World.Status.Lives)
	}

	frozen := g.Snapshot()
	for range 100 {
		g.Step(config.MaxDeltaTime)
	}
	if !reflect.DeepEqual(frozen, g.Snapshot()) {
		t.Error("game changed after game over")
	}
	if overs != 1 {
		t.Errorf("GameOver fired %d times, want 1", overs)
	}
}

func TestDefendedGameKillsCreeps(t *testing.T) {
	g := newClassicGame(t)
	for _, c := range g.Route().Grid.BuildableCells()[:8] {
		if !g.AttemptPlace("pixel", g.Route().Grid.Center(c)) {
			t.Fatalf("could not place on %v", c)
		}
	}
	kills, splits := 0, 0
	g.EventDispatcher.Subscribe(event.CreepKilled, event.ListenerFunc(func(event.Event) { kills++ }))
	g.EventDispatcher.Subscribe(event.CreepSplit, event.ListenerFunc(func(event.Event) { splits++ }))

	for range 3000 {
		g.Step(config.MaxDeltaTime)
	}
	if kills == 0 || splits == 0 {
		t.Fatalf("kills %d splits %d, want both positive", kills, splits)
	}
	if g.World.Status.Score == 0 || g.World.Status.Money <= 400-8*25 {
		t.Errorf("no reward collected: %+v", g.World.Status)
	}
}

func TestLayoutReanchorsGridTowers(t *testing.T) {
	g := newClassicGame(t)
	if !g.AttemptPlace("pixel", cellCenter(g, 1, 0)) {
		t.Fatal("placement rejected")
	}

	g.Layout(800, 600) // Grid origin {240, 140}
	want := geom.Point{X: 240 + 48, Y: 140 + 16}
	if got := g.World.Towers[0].Site.Pos; got != want {
		t.Errorf("tower at %v after relayout, want %v", got, want)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	g := newClassicGame(t)
	g.AttemptPlace("pixel", cellCenter(g, 1, 0))
	g.Step(4.4)

	snap := g.Snapshot()
	if len(snap.Creeps) != 1 || len(snap.Towers) != 1 || len(snap.Waypoints) != g.Route().Len() {
		t.Fatalf("snapshot %d creeps %d towers %d waypoints", len(snap.Creeps), len(snap.Towers), len(snap.Waypoints))
	}
	snap.Creeps[0].HP = -100
	snap.Towers[0].Cooldown = 99
	snap.Waypoints[0] = geom.Point{X: 1e6}
	snap.Status.Money = -1

	if g.World.Creeps[0].HP == -100 || g.World.Towers[0].Cooldown == 99 {
		t.Error("snapshot shares entities with the world")
	}
	if g.Route().Waypoints[0].X == 1e6 || g.World.Status.Money == -1 {
		t.Error("snapshot shares route or status with the game")
	}
	if snap.GameID != g.ID {
		t.Error("snapshot lost the game id")
	}
}

func TestPreviewPlacement(t *testing.T) {
	g := newClassicGame(t)

	site, err := g.PreviewPlacement("pixel", geom.Point{X: 210, Y: 100})
	if err != nil || site.Pos != cellCenter(g, 1, 0) {
		t.Fatalf("preview = %v, %v", site, err)
	}
	if len(g.World.Towers) != 0 || g.World.Status.Money != 400 {
		t.Fatal("preview changed the game")
	}

	site, err = g.PreviewPlacement("pixel", cellCenter(g, 2, 2))
	if !errors.Is(err, ErrNotBuildable) || site.Cell != (pathing.Cell{C: 2, R: 2}) {
		t.Errorf("preview on path = %v, %v", site, err)
	}
}
