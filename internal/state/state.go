// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State is one screen of the graphical driver.
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// Resizable states are told about the screen size before each frame.
type Resizable interface {
	Layout(screenWidth, screenHeight int)
}

// StateMachine holds the current screen and forwards the frame callbacks.
type StateMachine struct {
	current      State
	screenWidth  int
	screenHeight int
}

func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState exits the current state and enters newState, passing on the last
// known screen size.
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current == nil {
		return
	}
	if r, ok := sm.current.(Resizable); ok && sm.screenWidth > 0 {
		r.Layout(sm.screenWidth, sm.screenHeight)
	}
	sm.current.Enter()
}

func (sm *StateMachine) Layout(screenWidth, screenHeight int) {
	sm.screenWidth, sm.screenHeight = screenWidth, screenHeight
	if r, ok := sm.current.(Resizable); ok {
		r.Layout(screenWidth, screenHeight)
	}
}

func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
