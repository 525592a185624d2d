// internal/event/types.go
package event

import (
	"go-polygon-defense/internal/types"
	"go-polygon-defense/pkg/geom"
)

const (
	CreepSpawned      EventType = "CreepSpawned"      // Data: CreepInfo
	CreepLeaked       EventType = "CreepLeaked"       // Data: CreepInfo; a life was lost
	CreepKilled       EventType = "CreepKilled"       // Data: KillInfo
	CreepSplit        EventType = "CreepSplit"        // Data: CreepInfo of each child
	BulletFired       EventType = "BulletFired"       // Data: ShotInfo
	TowerPlaced       EventType = "TowerPlaced"       // Data: PlacementInfo
	PlacementRejected EventType = "PlacementRejected" // Data: PlacementInfo
	GameOver          EventType = "GameOver"          // Data: nil
)

type CreepInfo struct {
	ID    types.EntityID
	Sides int
	Pos   geom.Point
}

type KillInfo struct {
	CreepInfo
	Bounty int
	Score  int
}

type ShotInfo struct {
	TowerID  types.EntityID
	TargetID types.EntityID
	BulletID types.EntityID
}

type PlacementInfo struct {
	Key     string
	Target  geom.Point
	TowerID types.EntityID // Zero when rejected
}
