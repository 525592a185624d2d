// internal/types/types.go
package types

// EntityID identifies a creep, tower or bullet for the lifetime of a game.
// Ids are never reused, so renderers can track entities across frames.
type EntityID uint64
