// internal/termview/session.go
package termview

import (
	"go-polygon-defense/internal/app"
	"go-polygon-defense/internal/defs"
	"go-polygon-defense/internal/event"
	"go-polygon-defense/pkg/geom"
)

// Command is a driver-independent player action.
type Command int

const (
	CmdNone Command = iota
	CmdQuit
	CmdLeft
	CmdRight
	CmdUp
	CmdDown
	CmdPlace
	CmdNextTower
	CmdPause
	CmdRestart
)

type watch struct {
	listener event.Listener
	types    []event.EventType
}

// Session is one terminal play session: the current game, the viewport
// and a cursor in playfield cells. Restarts replace the game and carry the
// registered listeners over.
type Session struct {
	Game     *app.Game
	View     Viewport
	CursorX  int
	CursorY  int
	Selected int
	Paused   bool

	newGame func() *app.Game
	watches []watch
}

func NewSession(newGame func() *app.Game, screenCols, screenRows int) *Session {
	s := &Session{newGame: newGame, Game: newGame()}
	s.Resize(screenCols, screenRows)
	s.CursorX, s.CursorY = s.View.Cols/2, s.View.Rows/2
	return s
}

// Watch subscribes l to the current game and to every game started later.
func (s *Session) Watch(l event.Listener, types ...event.EventType) {
	s.watches = append(s.watches, watch{listener: l, types: types})
	s.Game.EventDispatcher.SubscribeAll(l, types...)
}

// Resize refits the viewport and lays the game out on the new playfield.
func (s *Session) Resize(screenCols, screenRows int) {
	s.View = NewViewport(screenCols, screenRows)
	s.Game.Layout(s.View.PlayfieldSize())
	s.CursorX = clamp(s.CursorX, 0, s.View.Cols-1)
	s.CursorY = clamp(s.CursorY, 0, s.View.Rows-1)
}

// Target is the playfield point under the cursor.
func (s *Session) Target() geom.Point {
	return s.View.ToPlayfield(s.CursorX, s.CursorY)
}

// SelectedTower returns the tower definition placed by CmdPlace.
func (s *Session) SelectedTower() (defs.TowerDefinition, bool) {
	all := s.Game.Towers.All()
	if len(all) == 0 {
		return defs.TowerDefinition{}, false
	}
	return all[s.Selected%len(all)], true
}

// Apply executes cmd and reports whether the session should end.
func (s *Session) Apply(cmd Command) bool {
	switch cmd {
	case CmdQuit:
		return true
	case CmdLeft:
		s.CursorX = clamp(s.CursorX-1, 0, s.View.Cols-1)
	case CmdRight:
		s.CursorX = clamp(s.CursorX+1, 0, s.View.Cols-1)
	case CmdUp:
		s.CursorY = clamp(s.CursorY-1, 0, s.View.Rows-1)
	case CmdDown:
		s.CursorY = clamp(s.CursorY+1, 0, s.View.Rows-1)
	case CmdPlace:
		if def, ok := s.SelectedTower(); ok && !s.Paused {
			s.Game.RequestPlacement(def.Key, s.Target())
		}
	case CmdNextTower:
		if n := s.Game.Towers.Len(); n > 0 {
			s.Selected = (s.Selected + 1) % n
		}
	case CmdPause:
		if s.Game.Running() {
			s.Paused = !s.Paused
		}
	case CmdRestart:
		if !s.Game.Running() {
			s.restart()
		}
	}
	return false
}

// Tick advances the game unless paused.
func (s *Session) Tick(deltaTime float64) {
	if s.Paused {
		return
	}
	s.Game.Step(deltaTime)
}

func (s *Session) restart() {
	s.Game = s.newGame()
	s.Game.Layout(s.View.PlayfieldSize())
	for _, w := range s.watches {
		s.Game.EventDispatcher.SubscribeAll(w.listener, w.types...)
	}
	s.Paused = false
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
