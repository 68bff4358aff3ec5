package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/example/teamsel/internal/core/bounded"
	"github.com/example/teamsel/internal/core/cooccur"
	"github.com/example/teamsel/internal/core/label"
	"github.com/example/teamsel/internal/core/schedule"
	"github.com/example/teamsel/internal/logging"
	"github.com/example/teamsel/internal/ports/primary"
	"github.com/example/teamsel/internal/ports/secondary"
)

// SessionOptions holds the count limits a session starts with.
type SessionOptions struct {
	PlayerMin   int
	PlayerMax   int
	PlayerStart int
	TeamMin     int
	TeamStart   int
}

// SessionServiceImpl implements the SessionService interface.
//
// Count changes cascade through bounded.Value observers. The observers only
// queue events; the queue is drained after the change settles, in the order
// the observers fired: player count -> linked team bound -> grid.
type SessionServiceImpl struct {
	players   *bounded.Value
	teams     *bounded.Value
	grid      *schedule.Grid
	presenter secondary.Presenter
	auto      bool
	logger    *slog.Logger

	pending []countEvent
}

type countEvent struct {
	which    primary.CountKind
	isLimits bool
	value    int
	limits   primary.Limits
}

// NewSessionService creates a new SessionService with injected dependencies.
func NewSessionService(opts SessionOptions, presenter secondary.Presenter) *SessionServiceImpl {
	players := bounded.New(opts.PlayerStart, opts.PlayerMin, opts.PlayerMax)
	teams := bounded.New(opts.TeamStart, opts.TeamMin, opts.PlayerStart-1)
	// Teams must stay below players. Registered first so the team bound
	// moves before the grid hears about a new player count.
	teams.LinkUpper(players, -1)

	s := &SessionServiceImpl{
		players:   players,
		teams:     teams,
		grid:      schedule.New(players.Get(), teams.Get()),
		presenter: presenter,
		logger:    logging.New("session"),
	}
	s.observe(primary.PlayerCount, players)
	s.observe(primary.TeamCount, teams)
	return s
}

func (s *SessionServiceImpl) observe(which primary.CountKind, v *bounded.Value) {
	v.OnLimits(func(lower, upper int) {
		s.pending = append(s.pending, countEvent{
			which:    which,
			isLimits: true,
			limits:   primary.Limits{Lower: lower, Upper: upper},
		})
	})
	v.OnChange(func(value int) {
		s.pending = append(s.pending, countEvent{which: which, value: value})
	})
}

// Start announces the initial limits and grid shape.
func (s *SessionServiceImpl) Start(ctx context.Context) error {
	for _, which := range []primary.CountKind{primary.PlayerCount, primary.TeamCount} {
		lower, upper := s.count(which).Limits()
		if err := s.presenter.LimitsChanged(ctx, which, primary.Limits{Lower: lower, Upper: upper}); err != nil {
			return fmt.Errorf("failed to present limits: %w", err)
		}
	}
	if err := s.presentStructure(ctx); err != nil {
		return err
	}
	s.logger.Info("session started",
		"players", s.players.Get(),
		"teams", s.teams.Get())
	return nil
}

// ChangeCount commits a new player or team count.
func (s *SessionServiceImpl) ChangeCount(ctx context.Context, which primary.CountKind, value int) (bool, error) {
	v := s.count(which)
	if v == nil {
		return false, fmt.Errorf("unknown count kind %d", which)
	}

	if !v.Set(value) {
		lower, upper := v.Limits()
		s.logger.Debug("count rejected", "count", which, "value", value, "lower", lower, "upper", upper)
		return false, nil
	}

	changed, err := s.drain(ctx)
	if err != nil {
		return true, err
	}
	if changed {
		return true, s.autoRecalculate(ctx)
	}
	return true, nil
}

// ValidateCount reports whether text would be accepted for the count.
func (s *SessionServiceImpl) ValidateCount(ctx context.Context, which primary.CountKind, text string) bool {
	v := s.count(which)
	if v == nil {
		return false
	}
	n, ok := bounded.Parse(text)
	return ok && v.Accepts(n)
}

// EditCell stores raw cell text and applies the round policy.
func (s *SessionServiceImpl) EditCell(ctx context.Context, row, col int, raw string) error {
	edit, err := s.grid.SetCell(row, col, raw)
	if err != nil {
		return fmt.Errorf("failed to edit cell: %w", err)
	}
	s.logger.Debug("cell edited", "row", row, "col", col, "raw", raw, "stored", edit.Text)

	if err := s.presenter.CellNormalized(ctx, edit.Row, edit.Col, edit.Text); err != nil {
		return fmt.Errorf("failed to present cell: %w", err)
	}

	if edit.Delta != 0 {
		s.logger.Info("rounds changed", "rounds", s.grid.RoundCount(), "delta", edit.Delta)
		if err := s.presentStructure(ctx); err != nil {
			return err
		}
	}

	return s.autoRecalculate(ctx)
}

// Recalculate computes the co-occurrence matrix from a fresh snapshot.
func (s *SessionServiceImpl) Recalculate(ctx context.Context) error {
	m, err := cooccur.Compute(s.grid.Snapshot())
	if err != nil {
		return fmt.Errorf("failed to compute co-occurrence: %w", err)
	}
	s.logger.Debug("co-occurrence computed", "players", m.Size(), "rounds", m.Rounds())

	if err := s.presenter.CoOccurrenceReady(ctx, m); err != nil {
		return fmt.Errorf("failed to present co-occurrence: %w", err)
	}
	return nil
}

// SetAutoRecalculate toggles recalculation after every change. Turning it on
// recalculates immediately.
func (s *SessionServiceImpl) SetAutoRecalculate(ctx context.Context, on bool) error {
	s.auto = on
	s.logger.Info("auto recalculate", "enabled", on)
	if on {
		return s.Recalculate(ctx)
	}
	return nil
}

// State returns a read-only view of the session.
func (s *SessionServiceImpl) State(ctx context.Context) (*primary.SessionState, error) {
	structure, err := s.structure()
	if err != nil {
		return nil, err
	}

	cells := make([][]string, s.grid.PlayerCount())
	for r := range cells {
		cells[r] = make([]string, s.grid.RoundCount())
		for c := range cells[r] {
			text, err := s.grid.Display(r, c)
			if err != nil {
				return nil, fmt.Errorf("failed to read cell: %w", err)
			}
			cells[r][c] = text
		}
	}

	pl, pu := s.players.Limits()
	tl, tu := s.teams.Limits()
	return &primary.SessionState{
		PlayerCount:  s.players.Get(),
		TeamCount:    s.teams.Get(),
		RoundCount:   s.grid.RoundCount(),
		PlayerLimits: primary.Limits{Lower: pl, Upper: pu},
		TeamLimits:   primary.Limits{Lower: tl, Upper: tu},
		AutoRecalc:   s.auto,
		PlayerLabels: structure.PlayerLabels,
		RoundLabels:  structure.RoundLabels,
		Cells:        cells,
	}, nil
}

// Helper methods

// drain applies queued count events to the grid and presenter in order.
// Reports whether any value changed.
func (s *SessionServiceImpl) drain(ctx context.Context) (bool, error) {
	events := s.pending
	s.pending = nil

	changed := false
	for _, ev := range events {
		if ev.isLimits {
			if err := s.presenter.LimitsChanged(ctx, ev.which, ev.limits); err != nil {
				return changed, fmt.Errorf("failed to present limits: %w", err)
			}
			continue
		}

		changed = true
		s.logger.Info("count changed", "count", ev.which, "value", ev.value)
		switch ev.which {
		case primary.PlayerCount:
			if err := s.applyPlayerCount(ctx, ev.value); err != nil {
				return changed, err
			}
		case primary.TeamCount:
			if err := s.applyTeamCount(ctx, ev.value); err != nil {
				return changed, err
			}
		}
	}
	return changed, nil
}

func (s *SessionServiceImpl) applyPlayerCount(ctx context.Context, players int) error {
	resized, delta := s.grid.SetPlayerCount(players)
	if !resized {
		return nil
	}
	if delta != 0 {
		s.logger.Info("rounds changed", "rounds", s.grid.RoundCount(), "delta", delta)
	}
	return s.presentStructure(ctx)
}

// applyTeamCount re-clamps the grid. Player labels use the team count as
// radix, so the structure is re-announced along with every stored cell.
func (s *SessionServiceImpl) applyTeamCount(ctx context.Context, teams int) error {
	s.grid.SetTeamCount(teams)
	if err := s.presentStructure(ctx); err != nil {
		return err
	}
	for r := 0; r < s.grid.PlayerCount(); r++ {
		for c := 0; c < s.grid.RoundCount(); c++ {
			text, err := s.grid.Display(r, c)
			if err != nil {
				return fmt.Errorf("failed to read cell: %w", err)
			}
			if text == "" {
				continue
			}
			if err := s.presenter.CellNormalized(ctx, r, c, text); err != nil {
				return fmt.Errorf("failed to present cell: %w", err)
			}
		}
	}
	return nil
}

func (s *SessionServiceImpl) autoRecalculate(ctx context.Context) error {
	if !s.auto {
		return nil
	}
	return s.Recalculate(ctx)
}

func (s *SessionServiceImpl) presentStructure(ctx context.Context) error {
	structure, err := s.structure()
	if err != nil {
		return err
	}
	if err := s.presenter.GridStructureChanged(ctx, structure); err != nil {
		return fmt.Errorf("failed to present grid structure: %w", err)
	}
	return nil
}

func (s *SessionServiceImpl) structure() (secondary.GridStructure, error) {
	players, rounds, teams := s.grid.PlayerCount(), s.grid.RoundCount(), s.grid.TeamCount()

	playerLabels := make([]string, players)
	for i := range playerLabels {
		header, err := label.PlayerHeader(i, players, teams)
		if err != nil {
			return secondary.GridStructure{}, fmt.Errorf("failed to label player %d: %w", i, err)
		}
		playerLabels[i] = header
	}
	roundLabels := make([]string, rounds)
	for r := range roundLabels {
		roundLabels[r] = label.RoundHeader(r)
	}

	return secondary.GridStructure{
		PlayerCount:  players,
		RoundCount:   rounds,
		PlayerLabels: playerLabels,
		RoundLabels:  roundLabels,
	}, nil
}

func (s *SessionServiceImpl) count(which primary.CountKind) *bounded.Value {
	switch which {
	case primary.PlayerCount:
		return s.players
	case primary.TeamCount:
		return s.teams
	}
	return nil
}

// Ensure SessionServiceImpl implements the interface.
var _ primary.SessionService = (*SessionServiceImpl)(nil)
