// pkg/pathing/serpentine.go
package pathing

import (
	"math"
	"sort"

	"go-polygon-defense/internal/config"
	"go-polygon-defense/pkg/geom"
)

// Grid describes the cell layout backing a serpentine route.
type Grid struct {
	Origin     geom.Point
	Cols, Rows int
	CellSize   float64
	PathCells  []Cell
	pathSet    map[Cell]bool
	buildable  map[Cell]bool
}

// Contains reports whether c lies inside the grid.
func (g *Grid) Contains(c Cell) bool {
	return c.C >= 0 && c.C < g.Cols && c.R >= 0 && c.R < g.Rows
}

// Center returns the pixel centre of c.
func (g *Grid) Center(c Cell) geom.Point {
	return geom.Point{
		X: g.Origin.X + float64(c.C)*g.CellSize + g.CellSize/2,
		Y: g.Origin.Y + float64(c.R)*g.CellSize + g.CellSize/2,
	}
}

// Snap clamps p to the nearest grid cell.
func (g *Grid) Snap(p geom.Point) Cell {
	c := int(math.Floor((p.X - g.Origin.X) / g.CellSize))
	r := int(math.Floor((p.Y - g.Origin.Y) / g.CellSize))
	return Cell{C: clamp(c, 0, g.Cols-1), R: clamp(r, 0, g.Rows-1)}
}

// IsPath reports whether c is traversed by the route.
func (g *Grid) IsPath(c Cell) bool {
	return g.pathSet[c]
}

// IsBuildable reports whether c is orthogonally adjacent to the path and not on it.
func (g *Grid) IsBuildable(c Cell) bool {
	return g.buildable[c]
}

// BuildableCells lists buildable cells in row-major order.
func (g *Grid) BuildableCells() []Cell {
	cells := make([]Cell, 0, len(g.buildable))
	for c := range g.buildable {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].R != cells[j].R {
			return cells[i].R < cells[j].R
		}
		return cells[i].C < cells[j].C
	})
	return cells
}

// Serpentine sweeps a fixed grid row by row, alternating direction and
// keeping a one-cell margin on every side.
type Serpentine struct {
	Cols, Rows int
	CellSize   float64
}

func NewSerpentine() Serpentine {
	return Serpentine{Cols: config.GridCols, Rows: config.GridRows, CellSize: config.CellSize}
}

func (s Serpentine) Layout(width, height float64) *Route {
	mapW := float64(s.Cols) * s.CellSize
	mapH := float64(s.Rows) * s.CellSize
	g := &Grid{
		Origin:    geom.Point{X: math.Floor((width - mapW) / 2), Y: math.Floor((height - mapH) / 2)},
		Cols:      s.Cols,
		Rows:      s.Rows,
		CellSize:  s.CellSize,
		pathSet:   make(map[Cell]bool),
		buildable: make(map[Cell]bool),
	}

	dir := 1
	for r := 1; r <= s.Rows-2; r++ {
		if dir == 1 {
			for c := 1; c <= s.Cols-2; c++ {
				g.PathCells = append(g.PathCells, Cell{C: c, R: r})
			}
		} else {
			for c := s.Cols - 2; c >= 1; c-- {
				g.PathCells = append(g.PathCells, Cell{C: c, R: r})
			}
		}
		dir = -dir
	}

	var waypoints []geom.Point
	if len(g.PathCells) > 0 {
		first := g.PathCells[0]
		last := g.PathCells[len(g.PathCells)-1]
		waypoints = make([]geom.Point, 0, len(g.PathCells)+2)
		waypoints = append(waypoints, geom.Point{X: g.Origin.X - s.CellSize, Y: g.Center(first).Y})
		for _, c := range g.PathCells {
			waypoints = append(waypoints, g.Center(c))
		}
		waypoints = append(waypoints, geom.Point{X: g.Origin.X + mapW + s.CellSize, Y: g.Center(last).Y})
	}

	for _, c := range g.PathCells {
		g.pathSet[c] = true
	}
	neighbors := []Cell{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	for _, c := range g.PathCells {
		for _, d := range neighbors {
			n := Cell{C: c.C + d.C, R: c.R + d.R}
			if g.Contains(n) && !g.pathSet[n] {
				g.buildable[n] = true
			}
		}
	}

	route := &Route{Width: width, Height: height, Waypoints: waypoints, Grid: g}
	route.placement = gridPlacement{route: route}
	return route
}

type gridPlacement struct {
	route *Route
}

func (p gridPlacement) Resolve(pt geom.Point) (Site, bool) {
	if !p.route.InPlayfield(pt) {
		return Site{}, false
	}
	g := p.route.Grid
	cell := g.Snap(pt)
	return Site{Pos: g.Center(cell), Cell: cell, HasCell: true}, true
}

func (p gridPlacement) Buildable(s Site) bool {
	return s.HasCell && p.route.Grid.IsBuildable(s.Cell)
}

func (p gridPlacement) Overlaps(a, b Site) bool {
	return a.HasCell && b.HasCell && a.Cell == b.Cell
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
