// internal/state/game_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font/basicfont"

	"go-polygon-defense/internal/app"
	"go-polygon-defense/internal/defs"
	"go-polygon-defense/internal/ui"
	"go-polygon-defense/pkg/geom"
	"go-polygon-defense/pkg/render"
)

// GameFactory builds a fresh game for a new round.
type GameFactory func() *app.Game

// GameState is the play screen: the simulation, the palette and the drag
// and drop placement of towers.
type GameState struct {
	sm       *StateMachine
	newGame  GameFactory
	game     *app.Game
	renderer *render.Renderer
	palette  *ui.Palette
	hud      *ui.HUD

	dragging     *defs.TowerDefinition
	cursor       geom.Point
	screenWidth  int
	screenHeight int
}

func NewGameState(sm *StateMachine, newGame GameFactory) *GameState {
	g := newGame()
	face := basicfont.Face7x13
	return &GameState{
		sm:       sm,
		newGame:  newGame,
		game:     g,
		renderer: render.NewRenderer(),
		palette:  ui.NewPalette(g.Towers, face),
		hud:      ui.NewHUD(face),
	}
}

func (s *GameState) Game() *app.Game {
	return s.game
}

func (s *GameState) Enter() {}

func (s *GameState) Exit() {}

// Layout re-lays the route only when the screen size actually changed.
func (s *GameState) Layout(screenWidth, screenHeight int) {
	if screenWidth == s.screenWidth && screenHeight == s.screenHeight {
		return
	}
	s.screenWidth, s.screenHeight = screenWidth, screenHeight
	s.palette.Layout(screenWidth, screenHeight)
	s.hud.Layout(screenWidth, screenHeight)
	s.game.Layout(app.PlayfieldSize(screenWidth, screenHeight))
}

func (s *GameState) Update(deltaTime float64) {
	s.handleInput()
	s.game.Step(deltaTime)

	if !s.game.Running() {
		s.dragging = nil
		s.sm.SetState(NewGameOverState(s.sm, s))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		s.sm.SetState(NewPauseState(s.sm, s))
	}
}

func (s *GameState) handleInput() {
	x, y := ebiten.CursorPosition()
	s.cursor = geom.Point{X: float64(x), Y: float64(y)}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.dragging = nil
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if i, ok := s.palette.SlotAt(s.cursor); ok {
			slot := s.palette.Slots[i]
			if slot.Active() && s.game.World.Status.Money >= slot.Tower.Cost {
				s.dragging = slot.Tower
			}
		}
	}

	if s.dragging != nil && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		s.game.RequestPlacement(s.dragging.Key, s.cursor)
		s.dragging = nil
	}
}

func (s *GameState) Draw(screen *ebiten.Image) {
	snap := s.game.Snapshot()
	s.renderer.Draw(screen, snap)
	s.palette.Draw(screen, snap.Status.Money)
	s.hud.Draw(screen, snap.Status)

	if s.dragging != nil {
		site, err := s.game.PreviewPlacement(s.dragging.Key, s.cursor)
		pos := s.cursor
		if site.HasCell || err == nil {
			pos = site.Pos
		}
		s.renderer.DrawGhost(screen, pos, s.dragging.Range, err == nil)
	}
}
