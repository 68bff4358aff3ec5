package secondary

import (
	"context"

	"github.com/example/teamsel/internal/core/cooccur"
	"github.com/example/teamsel/internal/ports/primary"
)

// Presenter defines the outbound port: everything the session tells the
// display layer. Calls arrive in the order the session produced them.
type Presenter interface {
	// GridStructureChanged reports a new grid shape; the display must re-render it.
	GridStructureChanged(ctx context.Context, s GridStructure) error

	// CellNormalized reports the display text stored for a cell.
	CellNormalized(ctx context.Context, row, col int, text string) error

	// CoOccurrenceReady delivers a freshly computed matrix.
	CoOccurrenceReady(ctx context.Context, m *cooccur.Matrix) error

	// LimitsChanged reports reconfigured bounds for a count.
	LimitsChanged(ctx context.Context, which primary.CountKind, limits primary.Limits) error
}

// GridStructure describes the grid shape and its headers.
type GridStructure struct {
	PlayerCount  int
	RoundCount   int
	PlayerLabels []string
	RoundLabels  []string
}
