// internal/config/variant.go
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// ErrUnknownVariant is returned when TD_VARIANT names no known economy.
var ErrUnknownVariant = errors.New("unknown variant")

// Variant bundles the starting economy and the layout it is played on.
type Variant struct {
	Name          string
	Layout        string
	StartingMoney int
	StartingLives int
	SpawnEvery    float64
	StartWave     int
}

// Variants are the two shipped economies. Neither is canonical.
var Variants = map[string]Variant{
	"classic": {
		Name:          "classic",
		Layout:        "grid",
		StartingMoney: 400,
		StartingLives: 20,
		SpawnEvery:    4.4,
		StartWave:     1,
	},
	"sprint": {
		Name:          "sprint",
		Layout:        "scurve",
		StartingMoney: 100,
		StartingLives: 20,
		SpawnEvery:    2.2,
		StartWave:     1,
	},
}

const DefaultVariant = "classic"

// Settings is the runtime configuration shared by the drivers.
type Settings struct {
	Variant    Variant
	Seed       int64
	TowersPath string
	LogLevel   slog.Level
}

// VariantByName looks up a shipped variant.
func VariantByName(name string) (Variant, error) {
	v, ok := Variants[name]
	if !ok {
		return Variant{}, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
	}
	return v, nil
}

// Load reads an optional .env file and then the TD_* environment variables.
func Load() (Settings, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Settings{}, fmt.Errorf("failed to read .env: %w", err)
	}

	variant, err := VariantByName(getEnvDefault("TD_VARIANT", DefaultVariant))
	if err != nil {
		return Settings{}, err
	}
	if layout := os.Getenv("TD_LAYOUT"); layout != "" {
		variant.Layout = layout
	}

	s := Settings{
		Variant:    variant,
		TowersPath: os.Getenv("TD_TOWERS"),
		LogLevel:   slog.LevelInfo,
	}

	if raw := os.Getenv("TD_SEED"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Settings{}, fmt.Errorf("invalid TD_SEED %q: %w", raw, err)
		}
		s.Seed = seed
	}

	if raw := os.Getenv("TD_LOG_LEVEL"); raw != "" {
		if err := s.LogLevel.UnmarshalText([]byte(raw)); err != nil {
			return Settings{}, fmt.Errorf("invalid TD_LOG_LEVEL %q: %w", raw, err)
		}
	}

	return s, nil
}

func getEnvDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
