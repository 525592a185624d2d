// internal/termview/viewport.go
package termview

import (
	"math"

	"go-polygon-defense/internal/config"
	"go-polygon-defense/pkg/geom"
)

// Viewport maps playfield pixels onto terminal cells. One terminal cell
// covers Scale x Scale pixels, so a grid cell is a single character.
// Row 0 is the status line and the last row holds the key help.
type Viewport struct {
	Scale      float64
	Cols, Rows int
	Top        int
}

// NewViewport fits a viewport into a terminal of the given size.
func NewViewport(screenCols, screenRows int) Viewport {
	return Viewport{
		Scale: config.CellSize,
		Cols:  max(1, screenCols),
		Rows:  max(1, screenRows-2),
		Top:   1,
	}
}

// PlayfieldSize is the pixel size handed to Game.Layout.
func (v Viewport) PlayfieldSize() (float64, float64) {
	return float64(v.Cols) * v.Scale, float64(v.Rows) * v.Scale
}

// ToScreen returns the terminal cell showing p. ok is false when p falls
// outside the playfield.
func (v Viewport) ToScreen(p geom.Point) (x, y int, ok bool) {
	if math.IsNaN(p.X) || math.IsNaN(p.Y) {
		return 0, 0, false
	}
	fx := math.Floor(p.X / v.Scale)
	fy := math.Floor(p.Y / v.Scale)
	if fx < 0 || fy < 0 || fx >= float64(v.Cols) || fy >= float64(v.Rows) {
		return 0, 0, false
	}
	return int(fx), int(fy) + v.Top, true
}

// ToPlayfield returns the pixel centre of the playfield cell (col, row).
func (v Viewport) ToPlayfield(col, row int) geom.Point {
	return geom.Point{
		X: (float64(col) + 0.5) * v.Scale,
		Y: (float64(row) + 0.5) * v.Scale,
	}
}
