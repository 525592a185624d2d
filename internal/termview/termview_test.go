package termview

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"go-polygon-defense/internal/app"
	"go-polygon-defense/internal/config"
	"go-polygon-defense/internal/event"
	"go-polygon-defense/pkg/geom"
)

func newSession(t *testing.T) *Session {
	t.Helper()
	newGame, err := app.NewFactory(config.Settings{Variant: config.Variants["classic"], Seed: 1})
	if err != nil {
		t.Fatalf("NewFactory: %v", err)
	}
	return NewSession(newGame, 80, 24)
}

func TestViewport(t *testing.T) {
	v := NewViewport(80, 24)
	if v.Cols != 80 || v.Rows != 22 || v.Top != 1 {
		t.Fatalf("viewport = %+v", v)
	}
	if w, h := v.PlayfieldSize(); w != 2560 || h != 704 {
		t.Errorf("playfield = %vx%v, want 2560x704", w, h)
	}

	tests := []struct {
		p      geom.Point
		x, y   int
		inside bool
	}{
		{geom.Point{X: 0, Y: 0}, 0, 1, true},
		{geom.Point{X: 31.9, Y: 32}, 0, 2, true},
		{geom.Point{X: 2559, Y: 703}, 79, 22, true},
		{geom.Point{X: 2560, Y: 10}, 0, 0, false},
		{geom.Point{X: -1, Y: 10}, 0, 0, false},
	}
	for _, tt := range tests {
		x, y, ok := v.ToScreen(tt.p)
		if ok != tt.inside || (ok && (x != tt.x || y != tt.y)) {
			t.Errorf("ToScreen(%v) = %d,%d,%v; want %d,%d,%v", tt.p, x, y, ok, tt.x, tt.y, tt.inside)
		}
	}

	if p := v.ToPlayfield(2, 3); p != (geom.Point{X: 80, Y: 112}) {
		t.Errorf("ToPlayfield(2, 3) = %v", p)
	}
}

func TestViewportTinyTerminal(t *testing.T) {
	v := NewViewport(0, 1)
	if v.Cols != 1 || v.Rows != 1 {
		t.Errorf("viewport = %+v, want at least one cell", v)
	}
}

func TestSessionCursorStaysOnPlayfield(t *testing.T) {
	s := newSession(t)
	for range 100 {
		s.Apply(CmdLeft)
		s.Apply(CmdUp)
	}
	if s.CursorX != 0 || s.CursorY != 0 {
		t.Errorf("cursor = %d,%d, want 0,0", s.CursorX, s.CursorY)
	}
	for range 100 {
		s.Apply(CmdRight)
		s.Apply(CmdDown)
	}
	if s.CursorX != 79 || s.CursorY != 21 {
		t.Errorf("cursor = %d,%d, want 79,21", s.CursorX, s.CursorY)
	}

	s.Resize(40, 12)
	if s.CursorX != 39 || s.CursorY != 9 {
		t.Errorf("cursor after resize = %d,%d, want 39,9", s.CursorX, s.CursorY)
	}
}

func TestSessionPlacesTowerOnGridCell(t *testing.T) {
	s := newSession(t)
	// 80x24 centres the 10x10 grid at terminal column 35, row 6 of the playfield.
	s.CursorX, s.CursorY = 36, 6

	if s.Apply(CmdPlace) {
		t.Fatal("place should not end the session")
	}
	s.Tick(config.MinDeltaTime)

	if len(s.Game.World.Towers) != 1 {
		t.Fatalf("towers = %d, want 1", len(s.Game.World.Towers))
	}
	if got := s.Game.World.Status.Money; got != 375 {
		t.Errorf("money = %d, want 375", got)
	}
	if want := s.Target(); s.Game.World.Towers[0].Site.Pos != want {
		t.Errorf("tower at %v, want %v", s.Game.World.Towers[0].Site.Pos, want)
	}
}

func TestSessionPause(t *testing.T) {
	s := newSession(t)
	s.Apply(CmdPause)
	s.Tick(0.03)
	if s.Game.World.Status.SpawnTimer != 0 {
		t.Errorf("paused session advanced the spawn timer")
	}
	s.Apply(CmdPause)
	s.Tick(0.03)
	if s.Game.World.Status.SpawnTimer == 0 {
		t.Errorf("resumed session did not advance")
	}
}

func TestSessionRestartKeepsListeners(t *testing.T) {
	s := newSession(t)
	spawned := 0
	s.Watch(event.ListenerFunc(func(event.Event) { spawned++ }), event.CreepSpawned)

	first := s.Game
	s.Apply(CmdRestart)
	if s.Game != first {
		t.Fatal("restart replaced a running game")
	}

	s.Game.StateSystem.SwitchToGameOver()
	s.Apply(CmdRestart)
	if s.Game == first || !s.Game.Running() {
		t.Fatal("restart after game over did not start a fresh game")
	}

	s.Tick(config.Variants["classic"].SpawnEvery)
	if spawned != 1 {
		t.Errorf("spawned = %d, want 1 from the new game", spawned)
	}
}

func TestSessionQuit(t *testing.T) {
	s := newSession(t)
	if !s.Apply(CmdQuit) {
		t.Error("quit should end the session")
	}
	if s.Apply(CmdNone) {
		t.Error("no-op ended the session")
	}
}

func TestRuneCommand(t *testing.T) {
	tests := map[rune]Command{
		'q': CmdQuit,
		'h': CmdLeft,
		'l': CmdRight,
		'k': CmdUp,
		'j': CmdDown,
		' ': CmdPlace,
		't': CmdNextTower,
		'p': CmdPause,
		'r': CmdRestart,
		'x': CmdNone,
	}
	for r, want := range tests {
		if got := runeCommand(r); got != want {
			t.Errorf("runeCommand(%q) = %v, want %v", r, got, want)
		}
	}
}

func TestStatusLine(t *testing.T) {
	s := newSession(t)
	line := statusLine(s, s.Game.Snapshot())
	for _, want := range []string{"$400", "lives 20", "wave 1", "Pixel Tower $25"} {
		if !strings.Contains(line, want) {
			t.Errorf("status %q lacks %q", line, want)
		}
	}

	s.Game.StateSystem.SwitchToGameOver()
	if line := statusLine(s, s.Game.Snapshot()); !strings.Contains(line, "GAME OVER") {
		t.Errorf("status %q lacks game over notice", line)
	}
}

func TestDrawOnSimulationScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(80, 24)

	s := newSession(t)
	for range 200 {
		s.Tick(config.MaxDeltaTime)
	}
	Draw(screen, s)

	sprint, err := app.NewFactory(config.Settings{Variant: config.Variants["sprint"], Seed: 1})
	if err != nil {
		t.Fatalf("NewFactory: %v", err)
	}
	Draw(screen, NewSession(sprint, 80, 24))
}

func TestKillToneIsSilentUntilStarted(t *testing.T) {
	k := NewKillTone()
	k.OnEvent(event.Event{Type: event.CreepKilled, Data: event.KillInfo{}})
	k.Close()
}
