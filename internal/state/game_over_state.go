// internal/state/game_over_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font/basicfont"

	"go-polygon-defense/internal/ui"
)

// GameOverState shows the final board. The stopped game keeps stepping so
// queued placements still resolve; R starts a new round.
type GameOverState struct {
	sm   *StateMachine
	play *GameState
}

func NewGameOverState(sm *StateMachine, play *GameState) *GameOverState {
	return &GameOverState{sm: sm, play: play}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Exit() {}

func (s *GameOverState) Layout(screenWidth, screenHeight int) {
	s.play.Layout(screenWidth, screenHeight)
}

func (s *GameOverState) Update(deltaTime float64) {
	s.play.game.Step(deltaTime)
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.sm.SetState(NewGameState(s.sm, s.play.newGame))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.play.Draw(screen)
	ui.DrawGameOver(screen, basicfont.Face7x13, s.play.game.World.Status.Score)
}
