package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/example/teamsel/internal/ports/primary"
)

// ErrUsage marks a malformed session command.
var ErrUsage = errors.New("usage")

// StateRenderer prints a session snapshot.
type StateRenderer interface {
	RenderSchedule(ctx context.Context, state *primary.SessionState) error
}

// SessionAdapter is a thin adapter that translates session commands to
// SessionService calls. One command per line.
type SessionAdapter struct {
	service  primary.SessionService
	renderer StateRenderer
	out      io.Writer

	autoOnStart bool
}

// NewSessionAdapter creates a new SessionAdapter with the given service.
func NewSessionAdapter(service primary.SessionService, renderer StateRenderer, out io.Writer) *SessionAdapter {
	return &SessionAdapter{
		service:  service,
		renderer: renderer,
		out:      out,
	}
}

const sessionHelp = `Commands:
  players N        set the player count
  teams N          set the team count
  set R C [TEXT]   enter TEXT for player R in round C (1-based); no TEXT clears
  clear R C        clear player R in round C
  calc             (re)calculate who played with whom
  auto on|off      recalculate after every change
  show             print the schedule
  help             print this help
  quit             leave the session
Lines starting with # are ignored.`

// EnableAutoRecalculate makes Run switch on auto recalculation right after
// the session starts.
func (a *SessionAdapter) EnableAutoRecalculate() {
	a.autoOnStart = true
}

// Run reads commands from in until EOF or quit. Command errors are printed
// and the session continues.
func (a *SessionAdapter) Run(ctx context.Context, in io.Reader) error {
	if err := a.service.Start(ctx); err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	if a.autoOnStart {
		if err := a.service.SetAutoRecalculate(ctx, true); err != nil {
			return fmt.Errorf("failed to enable auto recalculation: %w", err)
		}
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		quit, err := a.Exec(ctx, scanner.Text())
		if err != nil {
			fmt.Fprintf(a.out, "✗ %v\n", err)
		}
		if quit {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read commands: %w", err)
	}
	return nil
}

// Exec runs a single command line. It reports whether the session should end.
func (a *SessionAdapter) Exec(ctx context.Context, line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return false, nil
	}

	switch cmd, args := strings.ToLower(fields[0]), fields[1:]; cmd {
	case "players":
		return false, a.changeCount(ctx, primary.PlayerCount, args)
	case "teams":
		return false, a.changeCount(ctx, primary.TeamCount, args)
	case "set":
		return false, a.editCell(ctx, args, true)
	case "clear":
		return false, a.editCell(ctx, args, false)
	case "calc", "recalculate":
		return false, a.service.Recalculate(ctx)
	case "auto":
		return false, a.auto(ctx, args)
	case "show":
		return false, a.show(ctx)
	case "help", "?":
		fmt.Fprintln(a.out, sessionHelp)
		return false, nil
	case "quit", "exit":
		return true, nil
	default:
		return false, fmt.Errorf("unknown command %q (try help)", cmd)
	}
}

func (a *SessionAdapter) changeCount(ctx context.Context, which primary.CountKind, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: %s N", ErrUsage, which)
	}

	if !a.service.ValidateCount(ctx, which, args[0]) {
		state, err := a.service.State(ctx)
		if err != nil {
			return err
		}
		limits := state.PlayerLimits
		if which == primary.TeamCount {
			limits = state.TeamLimits
		}
		return fmt.Errorf("%s must be a whole number in [%d, %d] (got %q)", which, limits.Lower, limits.Upper, args[0])
	}

	n, _ := strconv.Atoi(strings.TrimSpace(args[0]))
	if _, err := a.service.ChangeCount(ctx, which, n); err != nil {
		return fmt.Errorf("failed to change %s: %w", which, err)
	}
	return nil
}

// editCell takes 1-based round numbers and 0-based player indices, matching
// the row and column headers.
func (a *SessionAdapter) editCell(ctx context.Context, args []string, withText bool) error {
	if len(args) < 2 || (!withText && len(args) != 2) {
		if withText {
			return fmt.Errorf("%w: set R C [TEXT]", ErrUsage)
		}
		return fmt.Errorf("%w: clear R C", ErrUsage)
	}

	row, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: player must be a number (got %q)", ErrUsage, args[0])
	}
	round, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("%w: round must be a number (got %q)", ErrUsage, args[1])
	}

	raw := ""
	if withText {
		raw = strings.Join(args[2:], " ")
	}
	return a.service.EditCell(ctx, row, round-1, raw)
}

func (a *SessionAdapter) auto(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: auto on|off", ErrUsage)
	}
	switch strings.ToLower(args[0]) {
	case "on":
		return a.service.SetAutoRecalculate(ctx, true)
	case "off":
		return a.service.SetAutoRecalculate(ctx, false)
	}
	return fmt.Errorf("%w: auto on|off", ErrUsage)
}

func (a *SessionAdapter) show(ctx context.Context) error {
	state, err := a.service.State(ctx)
	if err != nil {
		return fmt.Errorf("failed to read session: %w", err)
	}
	return a.renderer.RenderSchedule(ctx, state)
}
