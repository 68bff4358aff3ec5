package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Colour modes for terminal output.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Table styles.
const (
	StyleASCII    = "ascii"
	StyleMarkdown = "markdown"
)

const (
	dirName  = ".teamsel"
	fileName = "config.yaml"
)

// Config represents the teamsel configuration
type Config struct {
	Players PlayerLimits `yaml:"players"`
	Teams   TeamLimits   `yaml:"teams"`
	Display Display      `yaml:"display"`
	Log     Log          `yaml:"log"`
}

// PlayerLimits bounds the player count.
type PlayerLimits struct {
	Min   int `yaml:"min"`
	Max   int `yaml:"max"`
	Start int `yaml:"start"`
}

// TeamLimits bounds the team count. The upper bound follows the player count.
type TeamLimits struct {
	Min   int `yaml:"min"`
	Start int `yaml:"start"`
}

// Display controls rendering.
type Display struct {
	Color string `yaml:"color"` // auto, always, never
	Style string `yaml:"style"` // ascii, markdown
}

// Log controls the slog handler.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text, json
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Players: PlayerLimits{Min: 3, Max: 100, Start: 10},
		Teams:   TeamLimits{Min: 2, Start: 2},
		Display: Display{Color: ColorAuto, Style: StyleASCII},
		Log:     Log{Level: "info", Format: "text"},
	}
}

// Path returns the config file location inside dir.
func Path(dir string) string {
	return filepath.Join(dir, dirName, fileName)
}

// LoadConfig reads .teamsel/config.yaml from the specified directory.
// A missing file yields the defaults; fields absent from the file keep
// their default values.
func LoadConfig(dir string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(Path(dir))
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", Path(dir), err)
	}

	return cfg, nil
}

// SaveConfig writes config.yaml to directory
func SaveConfig(dir string, cfg *Config) error {
	cfgDir := filepath.Join(dir, dirName)
	if err := os.MkdirAll(cfgDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s dir: %w", dirName, err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(Path(dir), data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Validate checks that the limits describe a usable session.
func (c *Config) Validate() error {
	var errs []error
	if c.Players.Min < 2 {
		errs = append(errs, fmt.Errorf("players.min must be at least 2 (got %d)", c.Players.Min))
	}
	if c.Players.Max <= c.Players.Min {
		errs = append(errs, fmt.Errorf("players.max (%d) must exceed players.min (%d)", c.Players.Max, c.Players.Min))
	}
	if c.Players.Start < c.Players.Min || c.Players.Start > c.Players.Max {
		errs = append(errs, fmt.Errorf("players.start (%d) must be within [%d, %d]", c.Players.Start, c.Players.Min, c.Players.Max))
	}
	if c.Teams.Min < 2 {
		errs = append(errs, fmt.Errorf("teams.min must be at least 2 (got %d)", c.Teams.Min))
	}
	if c.Teams.Start < c.Teams.Min {
		errs = append(errs, fmt.Errorf("teams.start (%d) must be at least teams.min (%d)", c.Teams.Start, c.Teams.Min))
	}
	if c.Teams.Min >= c.Players.Min {
		errs = append(errs, fmt.Errorf("teams.min (%d) must be below players.min (%d)", c.Teams.Min, c.Players.Min))
	}
	if c.Teams.Start >= c.Players.Start {
		errs = append(errs, fmt.Errorf("teams.start (%d) must be below players.start (%d)", c.Teams.Start, c.Players.Start))
	}
	switch c.Display.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		errs = append(errs, fmt.Errorf("display.color must be auto, always or never (got %q)", c.Display.Color))
	}
	switch c.Display.Style {
	case StyleASCII, StyleMarkdown:
	default:
		errs = append(errs, fmt.Errorf("display.style must be ascii or markdown (got %q)", c.Display.Style))
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format must be text or json (got %q)", c.Log.Format))
	}
	return errors.Join(errs...)
}
