// internal/defs/towers.go
package defs

import (
	"errors"
	"fmt"
	"image/color"
)

// ErrUnknownTower is returned when a definition key is not in the library.
var ErrUnknownTower = errors.New("unknown tower definition")

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	Key         string     `json:"key"`
	Name        string     `json:"name"`
	Cost        int        `json:"cost"`
	Range       float64    `json:"range"`
	FireRate    float64    `json:"fire_rate"`    // Shots per second
	BulletSpeed float64    `json:"bullet_speed"` // Pixels per second
	Damage      int        `json:"damage"`
	Color       color.RGBA `json:"color"`
}

// Validate rejects definitions the simulation cannot run.
func (d TowerDefinition) Validate() error {
	switch {
	case d.Key == "":
		return errors.New("tower definition without key")
	case d.Cost < 0:
		return fmt.Errorf("tower %q: negative cost", d.Key)
	case d.FireRate <= 0:
		return fmt.Errorf("tower %q: fire rate must be positive", d.Key)
	case d.Range <= 0 || d.BulletSpeed <= 0:
		return fmt.Errorf("tower %q: range and bullet speed must be positive", d.Key)
	}
	return nil
}

// PixelTower is the only tower shipped in the palette.
var PixelTower = TowerDefinition{
	Key:         "pixel",
	Name:        "Pixel Tower",
	Cost:        25,
	Range:       160,
	FireRate:    2.5,
	BulletSpeed: 480,
	Damage:      1,
	Color:       color.RGBA{108, 240, 255, 255},
}

// Library maps definition keys to definitions. Order keeps palette order.
type Library struct {
	defs  map[string]TowerDefinition
	order []string
}

// NewLibrary builds a library from definitions, keeping the first of duplicate keys.
func NewLibrary(defs ...TowerDefinition) *Library {
	lib := &Library{defs: make(map[string]TowerDefinition, len(defs))}
	for _, d := range defs {
		if _, dup := lib.defs[d.Key]; dup {
			continue
		}
		lib.defs[d.Key] = d
		lib.order = append(lib.order, d.Key)
	}
	return lib
}

// DefaultLibrary contains the built-in towers.
func DefaultLibrary() *Library {
	return NewLibrary(PixelTower)
}

// Get returns the definition registered under key.
func (l *Library) Get(key string) (TowerDefinition, bool) {
	d, ok := l.defs[key]
	return d, ok
}

// MustGet is Get for keys known at compile time.
func (l *Library) MustGet(key string) TowerDefinition {
	d, ok := l.defs[key]
	if !ok {
		panic(fmt.Errorf("%w: %q", ErrUnknownTower, key))
	}
	return d
}

// All returns the definitions in registration order.
func (l *Library) All() []TowerDefinition {
	out := make([]TowerDefinition, 0, len(l.order))
	for _, k := range l.order {
		out = append(out, l.defs[k])
	}
	return out
}

// Len returns the number of definitions.
func (l *Library) Len() int {
	return len(l.order)
}
