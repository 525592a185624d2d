// pkg/pathing/route.go
package pathing

import (
	"errors"
	"fmt"

	"go-polygon-defense/pkg/geom"
)

// ErrUnknownLayout is returned by StrategyByName for unsupported layout names.
var ErrUnknownLayout = errors.New("unknown layout")

// Strategy produces the route for a playfield of the given size.
// Implementations must be pure: equal dimensions give equal routes.
type Strategy interface {
	Layout(width, height float64) *Route
}

// Cell addresses a grid cell by column and row.
type Cell struct {
	C, R int
}

// Site is a resolved placement location. Grid layouts fill Cell.
type Site struct {
	Pos     geom.Point
	Cell    Cell
	HasCell bool
}

// Placement decides where towers may stand on a route.
type Placement interface {
	// Resolve maps a pointer position to a candidate site.
	Resolve(p geom.Point) (Site, bool)
	// Buildable reports whether the site is legal ignoring other towers.
	Buildable(s Site) bool
	// Overlaps reports whether two sites would occupy the same spot.
	Overlaps(a, b Site) bool
}

// Route is the ordered waypoint sequence creeps follow from spawn to base,
// together with the placement rules of the layout that produced it.
type Route struct {
	Width, Height float64
	Waypoints     []geom.Point
	// Grid is nil for free-form layouts.
	Grid      *Grid
	placement Placement
}

// Len returns the number of waypoints.
func (r *Route) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Waypoints)
}

// Spawn returns the first waypoint.
func (r *Route) Spawn() (geom.Point, bool) {
	return r.Waypoint(0)
}

// Waypoint returns waypoint i if it exists.
func (r *Route) Waypoint(i int) (geom.Point, bool) {
	if r == nil || i < 0 || i >= len(r.Waypoints) {
		return geom.Point{}, false
	}
	return r.Waypoints[i], true
}

// LastIndex is the index of the base waypoint, -1 for an empty route.
func (r *Route) LastIndex() int {
	return r.Len() - 1
}

// Resolve maps a pointer position to a candidate tower site.
func (r *Route) Resolve(p geom.Point) (Site, bool) {
	if r == nil || r.placement == nil || !p.Finite() {
		return Site{}, false
	}
	return r.placement.Resolve(p)
}

// Buildable reports whether the site is legal for construction.
func (r *Route) Buildable(s Site) bool {
	if r == nil || r.placement == nil {
		return false
	}
	return r.placement.Buildable(s)
}

// Overlaps reports whether two sites collide under this route's rules.
func (r *Route) Overlaps(a, b Site) bool {
	if r == nil || r.placement == nil {
		return false
	}
	return r.placement.Overlaps(a, b)
}

// InPlayfield reports whether p lies inside the playfield rectangle.
func (r *Route) InPlayfield(p geom.Point) bool {
	return p.X >= 0 && p.X <= r.Width && p.Y >= 0 && p.Y <= r.Height
}

// StrategyByName returns the layout strategy registered under name.
func StrategyByName(name string) (Strategy, error) {
	switch name {
	case "grid", "serpentine":
		return NewSerpentine(), nil
	case "scurve", "polyline":
		return NewSCurve(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLayout, name)
	}
}
