// Package app runs the termtac screens and routes their navigation actions.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"termtac/config"
	"termtac/types"
	"termtac/ui"
)

// Terminal is the render and input collaborator of the frame loop.
type Terminal interface {
	Draw(fn func(ui.Surface)) error
	// PollKey waits at most timeout and reports false when no key arrived.
	PollKey(timeout time.Duration) (types.Key, bool, error)
}

// Options configures a Controller.
type Options struct {
	Settings types.Settings
	Game     ui.GameOptions
	// PollInterval bounds the wait for input in each frame.
	PollInterval time.Duration
	// FrameInterval is slept after each frame when positive.
	FrameInterval time.Duration
	Logger        *slog.Logger
}

// Controller owns the active screen and the display settings.
type Controller struct {
	screen   ui.Screen
	settings types.Settings
	running  bool
	opts     Options
	logger   *slog.Logger
}

// New returns a running controller showing the main menu.
func New(opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = 16 * time.Millisecond
	}
	if opts.Game.Logger == nil {
		opts.Game.Logger = logger
	}
	return &Controller{
		screen:   ui.NewMainMenu(),
		settings: opts.Settings,
		running:  true,
		opts:     opts,
		logger:   logger.With("component", "controller"),
	}
}

// Screen returns the active screen.
func (c *Controller) Screen() ui.Screen { return c.screen }

// Settings returns the current display settings.
func (c *Controller) Settings() types.Settings { return c.settings }

// Running is false once a Quit action was handled.
func (c *Controller) Running() bool { return c.running }

// HandleAction applies one navigation action.
func (c *Controller) HandleAction(a types.Action) {
	switch a.Kind {
	case types.ActionMainMenu:
		c.show(ui.NewMainMenu())
	case types.ActionSettings:
		c.show(ui.NewSettingsScreen())
	case types.ActionStartGame:
		c.show(ui.NewGameScreen(a.Opponent, c.opts.Game))
	case types.ActionChangeColor:
		c.settings.SetColor(a.Side, a.Color)
		c.logger.Info("color changed", "side", a.Side, "color", config.ColorName(a.Color))
	case types.ActionQuit:
		c.running = false
		c.logger.Debug("quit")
	}
}

func (c *Controller) show(s ui.Screen) {
	c.logger.Debug("screen", "from", c.screen.Name(), "to", s.Name())
	c.screen = s
}

// Frame runs one render, background step and input cycle.
func (c *Controller) Frame(term Terminal) error {
	err := term.Draw(func(s ui.Surface) {
		c.screen.Render(s, c.settings)
	})
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	c.screen.BackgroundStep()

	key, ok, err := term.PollKey(c.opts.PollInterval)
	if err != nil {
		return fmt.Errorf("poll input: %w", err)
	}
	if ok {
		c.HandleAction(c.screen.HandleKey(key))
	}
	return nil
}

// Run loops over frames until a Quit action, ctx cancellation or a terminal
// failure. A failure ends the loop at once and is returned; Ctrl-C and ctx
// cancellation are clean exits.
func (c *Controller) Run(ctx context.Context, term Terminal) error {
	c.logger.Info("started", "screen", c.screen.Name())
	defer c.logger.Info("stopped")

	for c.running {
		if ctx.Err() != nil {
			c.running = false
			return nil
		}
		if err := c.Frame(term); err != nil {
			c.running = false
			if errors.Is(err, ui.ErrInterrupted) {
				return nil
			}
			c.logger.Error("frame failed", "err", err)
			return err
		}
		if c.running && c.opts.FrameInterval > 0 {
			select {
			case <-ctx.Done():
			case <-time.After(c.opts.FrameInterval):
			}
		}
	}
	return nil
}
