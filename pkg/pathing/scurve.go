// pkg/pathing/scurve.go
package pathing

import (
	"go-polygon-defense/internal/config"
	"go-polygon-defense/pkg/geom"
)

// anchor places a waypoint at a playfield fraction, optionally pushed
// whole cells outside the left or right edge.
type anchor struct {
	fx, cells, fy float64
}

var sCurveAnchors = []anchor{
	{fx: 0, cells: -1, fy: 0.2},
	{fx: 0.75, fy: 0.2},
	{fx: 0.75, fy: 0.5},
	{fx: 0.25, fy: 0.5},
	{fx: 0.25, fy: 0.8},
	{fx: 1, cells: 1, fy: 0.8},
}

// SCurve is the fixed polyline layout. Towers may stand anywhere in the
// playfield that keeps a cell of clearance from the path.
type SCurve struct {
	CellSize float64
}

func NewSCurve() SCurve {
	return SCurve{CellSize: config.CellSize}
}

func (s SCurve) Layout(width, height float64) *Route {
	waypoints := make([]geom.Point, len(sCurveAnchors))
	for i, a := range sCurveAnchors {
		waypoints[i] = geom.Point{X: a.fx*width + a.cells*s.CellSize, Y: a.fy * height}
	}
	route := &Route{Width: width, Height: height, Waypoints: waypoints}
	route.placement = polylinePlacement{route: route, clearance: s.CellSize}
	return route
}

type polylinePlacement struct {
	route     *Route
	clearance float64
}

func (p polylinePlacement) Resolve(pt geom.Point) (Site, bool) {
	if !p.route.InPlayfield(pt) {
		return Site{}, false
	}
	return Site{Pos: pt}, true
}

func (p polylinePlacement) Buildable(s Site) bool {
	half := p.clearance / 2
	r := p.route
	if s.Pos.X < half || s.Pos.X > r.Width-half || s.Pos.Y < half || s.Pos.Y > r.Height-half {
		return false
	}
	for i := 0; i+1 < len(r.Waypoints); i++ {
		if geom.SegmentDist(s.Pos, r.Waypoints[i], r.Waypoints[i+1]) < p.clearance {
			return false
		}
	}
	return true
}

func (p polylinePlacement) Overlaps(a, b Site) bool {
	return geom.Dist(a.Pos, b.Pos) < p.clearance
}
