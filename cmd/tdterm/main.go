// cmd/tdterm/main.go
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"go-polygon-defense/internal/app"
	"go-polygon-defense/internal/config"
	"go-polygon-defense/internal/event"
	"go-polygon-defense/internal/termview"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "tdterm:", err)
		os.Exit(1)
	}
}

func run() error {
	settings, err := config.Load()
	if err != nil {
		return err
	}
	logPath := flag.String("log", "", "write logs to this file instead of discarding them")
	mute := flag.Bool("mute", false, "disable the kill tone")
	if err := settings.ParseFlags(flag.CommandLine, os.Args[1:]); err != nil {
		return err
	}

	var logOut io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := app.SetupLogging(logOut, settings.LogLevel)

	newGame, err := app.NewFactory(settings)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	cols, rows := screen.Size()
	session := termview.NewSession(newGame, cols, rows)

	if !*mute {
		tone := termview.NewKillTone()
		if err := tone.Start(); err != nil {
			logger.Warn("audio unavailable, continuing without sound", "error", err)
		} else {
			defer tone.Close()
			session.Watch(tone, event.CreepKilled)
		}
	}

	logger.Info("terminal session started", "variant", settings.Variant.Name, "cols", cols, "rows", rows)
	loop(screen, session)
	return nil
}

func loop(screen tcell.Screen, session *termview.Session) {
	ticker := time.NewTicker(config.TerminalTickMs * time.Millisecond)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	var clock app.FrameClock
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if session.Apply(termview.KeyCommand(ev)) {
					return
				}
			case *tcell.EventResize:
				screen.Sync()
				session.Resize(screen.Size())
			}
		case now := <-ticker.C:
			session.Tick(clock.Tick(now))
			termview.Draw(screen, session)
		}
	}
}
