package primary

import "context"

// CountKind selects which session count an operation targets.
type CountKind int

const (
	// PlayerCount is the number of schedule rows.
	PlayerCount CountKind = iota
	// TeamCount is the number of team slots per round.
	TeamCount
)

// String returns the lowercase name used in logs and messages.
func (k CountKind) String() string {
	switch k {
	case PlayerCount:
		return "players"
	case TeamCount:
		return "teams"
	}
	return "unknown"
}

// SessionService defines the primary port for schedule editing.
// Calls are serialized: each runs to completion, notifications included,
// before it returns. Implementations are not safe for concurrent use.
type SessionService interface {
	// Start announces the initial limits and grid shape to the presenter.
	Start(ctx context.Context) error

	// ChangeCount commits a new player or team count. Out-of-range values
	// are rejected and reported as false, not clamped.
	ChangeCount(ctx context.Context, which CountKind, value int) (bool, error)

	// ValidateCount reports whether text would be accepted for the count.
	ValidateCount(ctx context.Context, which CountKind, text string) bool

	// EditCell stores raw cell text. Invalid text is normalized, never rejected.
	EditCell(ctx context.Context, row, col int, raw string) error

	// Recalculate computes the co-occurrence matrix and hands it to the presenter.
	Recalculate(ctx context.Context) error

	// SetAutoRecalculate toggles recalculation after every change.
	SetAutoRecalculate(ctx context.Context, on bool) error

	// State returns a read-only view of the session.
	State(ctx context.Context) (*SessionState, error)
}

// Limits is an inclusive range.
type Limits struct {
	Lower int
	Upper int
}

// SessionState is the session at the port boundary.
type SessionState struct {
	PlayerCount  int
	TeamCount    int
	RoundCount   int
	PlayerLimits Limits
	TeamLimits   Limits
	AutoRecalc   bool
	PlayerLabels []string
	RoundLabels  []string
	Cells        [][]string // display text, [player][round]
}
