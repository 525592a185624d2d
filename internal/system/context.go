// internal/system/context.go
package system

import "go-polygon-defense/pkg/pathing"

// RouteSource gives systems the current route. The route is swapped on
// relayout, so systems must not cache it across ticks.
type RouteSource interface {
	Route() *pathing.Route
}
