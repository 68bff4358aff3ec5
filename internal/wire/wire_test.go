package wire

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/example/teamsel/internal/config"
)

func TestSessionOptions(t *testing.T) {
	c := config.Default()
	c.Players.Start = 12
	c.Teams.Start = 3

	opts := SessionOptions(c)
	if opts.PlayerMin != 3 || opts.PlayerMax != 100 || opts.PlayerStart != 12 {
		t.Errorf("player options = %+v", opts)
	}
	if opts.TeamMin != 2 || opts.TeamStart != 3 {
		t.Errorf("team options = %+v", opts)
	}
}

func TestSessionAdapterWithOutput(t *testing.T) {
	c := config.Default()
	c.Players.Start = 3
	c.Display.Color = config.ColorAlways
	out := &bytes.Buffer{}

	adapter := SessionAdapterWithOutput(c, out)
	script := "set 0 1 0\nset 1 1 0\nset 2 1 1\ncalc\nquit\n"
	if err := adapter.Run(context.Background(), strings.NewReader(script)); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"Player number (3 - 100)",
		"Team number (2 - 2)",
		"Grid: 3 players × 1 rounds",
		"Grid: 3 players × 2 rounds",
		"Results (player with player, 1 rounds)",
		"\x1b[32m",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}
