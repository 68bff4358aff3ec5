package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	def := Default()
	if *cfg != *def {
		t.Errorf("expected defaults %+v, got %+v", def, cfg)
	}
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "players:\n  start: 12\ndisplay:\n  color: never\n")

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Players.Start != 12 {
		t.Errorf("expected players.start 12, got %d", cfg.Players.Start)
	}
	if cfg.Players.Max != 100 {
		t.Errorf("expected default players.max 100, got %d", cfg.Players.Max)
	}
	if cfg.Display.Color != ColorNever {
		t.Errorf("expected color never, got %s", cfg.Display.Color)
	}
	if cfg.Display.Style != StyleASCII {
		t.Errorf("expected default style ascii, got %s", cfg.Display.Style)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "malformed yaml",
			content: "players: [1, 2\n",
			wantErr: "failed to parse config",
		},
		{
			name:    "start outside limits",
			content: "players:\n  start: 500\n",
			wantErr: "players.start (500)",
		},
		{
			name:    "unknown colour mode",
			content: "display:\n  color: sometimes\n",
			wantErr: "display.color",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, tt.content)

			_, err := LoadConfig(dir)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestSaveConfig_ThenLoad(t *testing.T) {
	dir := t.TempDir()
	cfg := Default()
	cfg.Players.Start = 16
	cfg.Teams.Start = 4
	cfg.Display.Style = StyleMarkdown

	if err := SaveConfig(dir, cfg); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}
	if _, err := os.Stat(Path(dir)); err != nil {
		t.Fatalf("expected config file at %s: %v", Path(dir), err)
	}

	loaded, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("expected %+v, got %+v", cfg, loaded)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(c *Config) {}},
		{name: "too few players", mutate: func(c *Config) { c.Players.Min = 1 }, wantErr: "players.min"},
		{name: "max not above min", mutate: func(c *Config) { c.Players.Max = 3 }, wantErr: "players.max"},
		{name: "one team", mutate: func(c *Config) { c.Teams.Min = 1 }, wantErr: "teams.min"},
		{name: "team start below min", mutate: func(c *Config) { c.Teams.Start = 1 }, wantErr: "teams.start"},
		{name: "team min not below player min", mutate: func(c *Config) { c.Teams.Min = 5; c.Teams.Start = 5 }, wantErr: "teams.min (5) must be below players.min (3)"},
		{name: "team start not below player start", mutate: func(c *Config) { c.Teams.Start = 10 }, wantErr: "teams.start (10) must be below players.start (10)"},
		{name: "bad style", mutate: func(c *Config) { c.Display.Style = "html" }, wantErr: "display.style"},
		{name: "bad log format", mutate: func(c *Config) { c.Log.Format = "xml" }, wantErr: "log.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("expected valid config, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Join(dir, ".teamsel"), 0755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	if err := os.WriteFile(Path(dir), []byte(content), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
}
