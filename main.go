// termtac is a terminal tic-tac-toe game against a computer or a second local player.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"termtac/app"
	"termtac/config"
	"termtac/types"
	"termtac/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagPlay     = flag.String("play", "", "Start a game immediately (computer or human)")
	flagFirst    = flag.String("first", "", "Side that moves first (self or opponent)")
	flagLogLevel = flag.String("log-level", "", "Log level (debug, info, warn, error)")
	flagVersion  = flag.Bool("version", false, "Print version and exit")
)

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("termtac %s\n", Version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "termtac: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.InitConfig()
	if err != nil {
		return err
	}
	if err := applyFlags(cfg); err != nil {
		return err
	}

	start, err := quickStart(*flagPlay)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	term, err := ui.NewTerminal(screen)
	if err != nil {
		return err
	}
	defer term.Close()

	controller := app.New(app.Options{
		Settings: cfg.Settings(),
		Game: ui.GameOptions{
			Config:        cfg.EngineConfig(),
			ThinkingStep:  cfg.Timing.ThinkingStep,
			ThinkingDelay: cfg.ThinkingDelay(),
			Pacer:         ui.SleepPacer{},
			Logger:        logger,
		},
		PollInterval:  cfg.PollInterval(),
		FrameInterval: cfg.FrameInterval(),
		Logger:        logger,
	})
	if start != nil {
		controller.HandleAction(*start)
	}
	return controller.Run(ctx, term)
}

// applyFlags overrides configuration values given on the command line.
func applyFlags(cfg *config.Config) error {
	if *flagFirst != "" {
		cfg.Game.First = *flagFirst
	}
	if *flagLogLevel != "" {
		cfg.Log.Level = *flagLogLevel
	}
	return cfg.Validate()
}

// quickStart maps the -play flag to the action that opens a game.
func quickStart(play string) (*types.Action, error) {
	var a types.Action
	switch play {
	case "":
		return nil, nil
	case "computer", "ai":
		a = types.StartGame(types.OpponentComputer)
	case "human", "coop":
		a = types.StartGame(types.OpponentHuman)
	default:
		return nil, fmt.Errorf("unknown -play value %q (want computer or human)", play)
	}
	return &a, nil
}

// newLogger opens the log file. The terminal owns stdout, so nothing is
// logged there.
func newLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, nil, err
	}
	path, err := cfg.LogPath()
	if err != nil {
		return nil, nil, fmt.Errorf("log path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger, func() { f.Close() }, nil
}
