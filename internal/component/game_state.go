// internal/component/game_state.go
package component

// Status holds the scalar game state.
type Status struct {
	Money      int
	Lives      int
	Score      int
	Wave       int
	SpawnTimer float64 // Accumulated seconds towards the next spawn
	SpawnEvery float64 // Base spawn interval for wave 1
	Running    bool    // False forever once lives reach zero
}
