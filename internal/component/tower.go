// internal/component/tower.go
package component

import (
	"go-polygon-defense/internal/defs"
	"go-polygon-defense/internal/types"
	"go-polygon-defense/pkg/pathing"
)

type Tower struct {
	ID       types.EntityID
	Def      defs.TowerDefinition
	Site     pathing.Site // Position and, on grid layouts, the occupied cell
	Cooldown float64      // Seconds until the next shot; may go negative while idle
}
