// internal/app/clock.go
package app

import (
	"time"

	"go-polygon-defense/internal/config"
)

// FrameClock turns wall-clock frame times into simulation deltas.
type FrameClock struct {
	last time.Time
}

// Tick returns the seconds since the previous tick, clamped to the allowed
// frame range. The first tick returns the minimum.
func (c *FrameClock) Tick(now time.Time) float64 {
	if c.last.IsZero() {
		c.last = now
		return config.MinDeltaTime
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	return ClampDelta(dt)
}

// ClampDelta bounds dt to [MinDeltaTime, MaxDeltaTime]. NaN maps to the minimum.
func ClampDelta(dt float64) float64 {
	if !(dt >= config.MinDeltaTime) {
		return config.MinDeltaTime
	}
	if dt > config.MaxDeltaTime {
		return config.MaxDeltaTime
	}
	return dt
}
