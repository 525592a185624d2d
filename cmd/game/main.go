// cmd/game/main.go
package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-polygon-defense/internal/app"
	"go-polygon-defense/internal/config"
	"go-polygon-defense/internal/state"
)

type AppGame struct {
	stateMachine *state.StateMachine
	clock        app.FrameClock
}

func (a *AppGame) Update() error {
	a.stateMachine.Update(a.clock.Tick(time.Now()))
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

// Layout follows the window size so the playfield grows with it.
func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.stateMachine.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func main() {
	settings, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	if err := settings.ParseFlags(flag.CommandLine, os.Args[1:]); err != nil {
		slog.Error("invalid flags", "error", err)
		os.Exit(2)
	}

	logger := app.SetupLogging(os.Stderr, settings.LogLevel)

	newGame, err := app.NewFactory(settings)
	if err != nil {
		logger.Error("failed to set up game", "error", err)
		os.Exit(1)
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewGameState(sm, newGame))

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Polygon Defense")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	logger.Info("starting", "variant", settings.Variant.Name, "layout", settings.Variant.Layout)
	if err := ebiten.RunGame(&AppGame{stateMachine: sm}); err != nil {
		logger.Error("game exited", "error", err)
		os.Exit(1)
	}
}
