// internal/app/bootstrap.go
package app

import (
	"fmt"
	"io"
	"log/slog"

	"go-polygon-defense/internal/config"
	"go-polygon-defense/internal/defs"
	"go-polygon-defense/internal/utils"
	"go-polygon-defense/pkg/pathing"
)

// NewFactory validates settings once and returns a constructor for fresh
// games. With a fixed seed, round n is seeded with seed+n so restarts are
// reproducible but not identical.
func NewFactory(settings config.Settings) (func() *Game, error) {
	strategy, err := pathing.StrategyByName(settings.Variant.Layout)
	if err != nil {
		return nil, fmt.Errorf("variant %s: %w", settings.Variant.Name, err)
	}

	towers := defs.DefaultLibrary()
	if settings.TowersPath != "" {
		towers, err = defs.LoadTowerDefinitions(settings.TowersPath)
		if err != nil {
			return nil, err
		}
	}

	round := int64(0)
	return func() *Game {
		seed := settings.Seed
		if seed != 0 {
			seed += round
		}
		round++
		return NewGame(settings.Variant, strategy, towers, utils.NewPRNGService(seed))
	}, nil
}

// SetupLogging installs a text slog handler writing to w as the default logger.
func SetupLogging(w io.Writer, level slog.Level) *slog.Logger {
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}
