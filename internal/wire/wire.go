// Package wire provides dependency injection for the teamsel application.
// It loads configuration once and assembles sessions on demand.
package wire

import (
	"fmt"
	"io"
	"os"
	"sync"

	cliadapter "github.com/example/teamsel/internal/adapters/cli"
	"github.com/example/teamsel/internal/app"
	"github.com/example/teamsel/internal/config"
	"github.com/example/teamsel/internal/format"
)

var (
	cfg     *config.Config
	cfgErr  error
	cfgDir  string
	cfgOnce sync.Once
)

// SetConfigDir overrides the directory searched for .teamsel/config.yaml.
// It only has an effect before the first call to Config.
func SetConfigDir(dir string) {
	cfgDir = dir
}

// Config returns the singleton configuration, read from the config
// directory (the working directory unless overridden).
func Config() (*config.Config, error) {
	cfgOnce.Do(loadConfig)
	return cfg, cfgErr
}

// loadConfig is called once via sync.Once.
func loadConfig() {
	dir := cfgDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			cfgErr = fmt.Errorf("failed to get working directory: %w", err)
			return
		}
		dir = wd
	}
	cfg, cfgErr = config.LoadConfig(dir)
}

// SessionOptions maps configuration to session limits.
func SessionOptions(c *config.Config) app.SessionOptions {
	return app.SessionOptions{
		PlayerMin:   c.Players.Min,
		PlayerMax:   c.Players.Max,
		PlayerStart: c.Players.Start,
		TeamMin:     c.Teams.Min,
		TeamStart:   c.Teams.Start,
	}
}

// SessionAdapter returns a new SessionAdapter writing to stdout.
// Each call creates a fresh session.
func SessionAdapter(c *config.Config) *cliadapter.SessionAdapter {
	return SessionAdapterWithOutput(c, os.Stdout)
}

// SessionAdapterWithOutput returns a new SessionAdapter writing to the given output.
// This variant allows testing or alternate output destinations.
func SessionAdapterWithOutput(c *config.Config, out io.Writer) *cliadapter.SessionAdapter {
	presenter := cliadapter.NewTerminalPresenter(out,
		format.ParseMode(c.Display.Style),
		cliadapter.ShouldColor(c.Display.Color, out))
	service := app.NewSessionService(SessionOptions(c), presenter)
	return cliadapter.NewSessionAdapter(service, presenter, out)
}
