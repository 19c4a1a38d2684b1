package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/ilyakaznacheev/cleanenv"

	"termtac/engine"
	"termtac/types"
)

var (
	cfgFile = "termtac/config.json"
	logFile = "termtac/termtac.log"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

// ColorsConfig holds the palette names each side starts with.
type ColorsConfig struct {
	Self     string `json:"self" env:"TERMTAC_SELF_COLOR"`
	Opponent string `json:"opponent" env:"TERMTAC_OPPONENT_COLOR"`
}

// TimingConfig controls the frame loop and the computer's thinking gauge.
type TimingConfig struct {
	PollMs          int `json:"poll_ms" env:"TERMTAC_POLL_MS"`
	FrameMs         int `json:"frame_ms" env:"TERMTAC_FRAME_MS"`
	ThinkingStep    int `json:"thinking_step" env:"TERMTAC_THINKING_STEP"`
	ThinkingDelayMs int `json:"thinking_delay_ms" env:"TERMTAC_THINKING_DELAY_MS"`
}

// GameConfig holds the mark and turn order every new game starts with.
type GameConfig struct {
	SelfMark string `json:"self_mark" env:"TERMTAC_SELF_MARK"`
	First    string `json:"first" env:"TERMTAC_FIRST"`
}

// LogConfig selects the log level and file. An empty file logs to the XDG
// state directory.
type LogConfig struct {
	Level string `json:"level" env:"TERMTAC_LOG_LEVEL"`
	File  string `json:"file" env:"TERMTAC_LOG_FILE"`
}

type Config struct {
	Colors ColorsConfig `json:"colors"`
	Timing TimingConfig `json:"timing"`
	Game   GameConfig   `json:"game"`
	Log    LogConfig    `json:"log"`
}

// InitConfig loads the defaults, then the config file from the XDG config
// directories if one exists, then TERMTAC_* environment overrides.
func InitConfig() (*Config, error) {
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err != nil {
		absPath = ""
	}
	return loadConfig(absPath)
}

func loadConfig(path string) (*Config, error) {
	config := DefaultConfig
	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, &config)
	} else {
		err = cleanenv.ReadEnv(&config)
	}
	if err != nil {
		return nil, &InvalidConfig{err.Error()}
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	for _, name := range []string{c.Colors.Self, c.Colors.Opponent} {
		if _, ok := LookupColor(name); !ok {
			return &InvalidConfig{fmt.Sprintf("unknown color %q", name)}
		}
	}
	if c.Timing.PollMs < 1 || c.Timing.PollMs > 1000 {
		return &InvalidConfig{"poll_ms must be between 1 and 1000"}
	}
	if c.Timing.FrameMs < 0 {
		return &InvalidConfig{"frame_ms must not be negative"}
	}
	if c.Timing.ThinkingStep < 1 || c.Timing.ThinkingStep > 100 {
		return &InvalidConfig{"thinking_step must be between 1 and 100"}
	}
	if c.Timing.ThinkingDelayMs < 0 {
		return &InvalidConfig{"thinking_delay_ms must not be negative"}
	}
	if _, err := parseMark(c.Game.SelfMark); err != nil {
		return err
	}
	if _, err := parseSide(c.Game.First); err != nil {
		return err
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// Settings returns the starting display colours of both sides.
func (c *Config) Settings() types.Settings {
	self, _ := LookupColor(c.Colors.Self)
	opponent, _ := LookupColor(c.Colors.Opponent)
	return types.Settings{SelfColor: self, OpponentColor: opponent}
}

// EngineConfig returns the configuration new games are created with.
func (c *Config) EngineConfig() engine.GameConfig {
	cfg := engine.DefaultConfig()
	if m, err := parseMark(c.Game.SelfMark); err == nil {
		cfg.SelfMark = m
	}
	if s, err := parseSide(c.Game.First); err == nil {
		cfg.FirstTurn = s
	}
	return cfg
}

// PollInterval is the longest the frame loop waits for a key.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.Timing.PollMs) * time.Millisecond
}

// FrameInterval is the extra pause after every frame.
func (c *Config) FrameInterval() time.Duration {
	return time.Duration(c.Timing.FrameMs) * time.Millisecond
}

// ThinkingDelay is the pause added to each step of the thinking gauge.
func (c *Config) ThinkingDelay() time.Duration {
	return time.Duration(c.Timing.ThinkingDelayMs) * time.Millisecond
}

// LogLevel parses the configured log level.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return level, &InvalidConfig{fmt.Sprintf("unknown log level %q", c.Log.Level)}
	}
	return level, nil
}

// LogPath returns the file the log is written to, creating parent
// directories of the default location when needed.
func (c *Config) LogPath() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	return xdg.StateFile(logFile)
}

func parseMark(s string) (engine.Mark, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X":
		return engine.X, nil
	case "O":
		return engine.O, nil
	}
	return engine.Empty, &InvalidConfig{fmt.Sprintf("self_mark must be X or O, got %q", s)}
}

func parseSide(s string) (engine.Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "self":
		return engine.Self, nil
	case "opponent":
		return engine.Opponent, nil
	}
	return engine.Self, &InvalidConfig{fmt.Sprintf("first must be self or opponent, got %q", s)}
}
