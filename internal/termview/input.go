// internal/termview/input.go
package termview

import "github.com/gdamore/tcell/v2"

// KeyCommand translates a terminal key press into a Command.
func KeyCommand(ev *tcell.EventKey) Command {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return CmdQuit
	case tcell.KeyLeft:
		return CmdLeft
	case tcell.KeyRight:
		return CmdRight
	case tcell.KeyUp:
		return CmdUp
	case tcell.KeyDown:
		return CmdDown
	case tcell.KeyEnter:
		return CmdPlace
	case tcell.KeyTab:
		return CmdNextTower
	case tcell.KeyRune:
		return runeCommand(ev.Rune())
	}
	return CmdNone
}

func runeCommand(r rune) Command {
	switch r {
	case 'q':
		return CmdQuit
	case 'h':
		return CmdLeft
	case 'l':
		return CmdRight
	case 'k':
		return CmdUp
	case 'j':
		return CmdDown
	case ' ':
		return CmdPlace
	case 't':
		return CmdNextTower
	case 'p':
		return CmdPause
	case 'r':
		return CmdRestart
	}
	return CmdNone
}
