// internal/termview/renderer.go
package termview

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"go-polygon-defense/internal/app"
	"go-polygon-defense/internal/config"
	"go-polygon-defense/pkg/geom"
	"go-polygon-defense/pkg/pathing"
)

const helpLine = "arrows/hjkl move  space place  t tower  p pause  r restart  q quit"

var (
	baseStyle      = tcell.StyleDefault.Background(rgb(config.BackgroundColor))
	pathStyle      = baseStyle.Foreground(tcell.ColorSteelBlue)
	buildableStyle = baseStyle.Foreground(tcell.ColorDarkSlateGray)
	bulletStyle    = baseStyle.Foreground(tcell.ColorWhite)
	statusStyle    = baseStyle.Foreground(rgb(config.HUDTextColor))
)

// Draw paints the session's game onto screen and shows it.
func Draw(screen tcell.Screen, s *Session) {
	screen.SetStyle(baseStyle)
	screen.Clear()

	snap := s.Game.Snapshot()
	cx, cy, _ := s.View.ToScreen(s.Target())
	p := painter{screen: screen, view: s.View, cursorX: cx, cursorY: cy}

	p.set(cx, cy, ' ', baseStyle)
	if snap.Grid != nil {
		p.grid(snap.Grid)
	} else {
		p.route(snap.Waypoints)
	}
	for _, t := range snap.Towers {
		p.put(t.Site.Pos, 'T', baseStyle.Foreground(rgb(t.Def.Color)).Bold(true))
	}
	for _, c := range snap.Creeps {
		p.put(c.Pos, rune('0'+c.Sides), baseStyle.Foreground(rgb(c.Color)))
	}
	for _, b := range snap.Bullets {
		p.put(b.Pos, '*', bulletStyle)
	}

	drawText(screen, 0, 0, statusLine(s, snap), statusStyle)
	drawText(screen, 0, s.View.Top+s.View.Rows, helpLine, buildableStyle)

	screen.Show()
}

func statusLine(s *Session, snap app.Snapshot) string {
	st := snap.Status
	line := fmt.Sprintf("$%d  lives %d  score %d  wave %d", st.Money, st.Lives, st.Score, st.Wave)
	if def, ok := s.SelectedTower(); ok {
		line += fmt.Sprintf("  [%s $%d]", def.Name, def.Cost)
	}
	switch {
	case !st.Running:
		line += "  GAME OVER, r to restart"
	case s.Paused:
		line += "  PAUSED"
	}
	return line
}

// painter draws playfield glyphs and shows the cursor cell reversed.
type painter struct {
	screen           tcell.Screen
	view             Viewport
	cursorX, cursorY int
}

func (p painter) grid(g *pathing.Grid) {
	for _, c := range g.BuildableCells() {
		p.put(g.Center(c), '+', buildableStyle)
	}
	for _, c := range g.PathCells {
		p.put(g.Center(c), '#', pathStyle)
	}
}

// route rasterises the polyline by sampling each segment at half a
// terminal cell.
func (p painter) route(waypoints []geom.Point) {
	step := p.view.Scale / 2
	for i := 0; i+1 < len(waypoints); i++ {
		a, b := waypoints[i], waypoints[i+1]
		n := int(math.Ceil(geom.Dist(a, b)/step)) + 1
		for k := 0; k <= n; k++ {
			t := float64(k) / float64(n)
			p.put(geom.LerpPoint(a, b, t), '#', pathStyle)
		}
	}
}

func (p painter) put(pt geom.Point, r rune, style tcell.Style) {
	if x, y, ok := p.view.ToScreen(pt); ok {
		p.set(x, y, r, style)
	}
}

func (p painter) set(x, y int, r rune, style tcell.Style) {
	if x == p.cursorX && y == p.cursorY {
		style = style.Reverse(true)
	}
	p.screen.SetContent(x, y, r, nil, style)
}

func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
