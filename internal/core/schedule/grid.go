// Package schedule holds the player × round team-assignment grid.
// This is part of the Functional Core - no I/O.
//
// The grid always exposes one trailing growth round: writing the first value
// into the last round appends a new empty one, and emptying the round before
// it removes the trailing round again. Every set cell stays within
// [0, team count).
package schedule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/example/teamsel/internal/core/label"
)

// ErrCellOutOfRange indicates coordinates outside the grid.
var ErrCellOutOfRange = errors.New("schedule: cell out of range")

// Cell is a team index, or Unset.
type Cell int

// Unset marks a cell without a team.
const Unset Cell = -1

// IsSet reports whether the cell holds a team.
func (c Cell) IsSet() bool { return c != Unset }

// Edit describes the outcome of a single cell edit.
type Edit struct {
	Row   int
	Col   int
	Cell  Cell
	Text  string // normalized display text
	Delta int    // round count change: +1, -1 or 0
}

// Grid is the schedule matrix. It is not safe for concurrent use.
type Grid struct {
	cells  [][]Cell // [player][round]
	rounds int
	teams  int
}

// New creates a grid with one empty round.
func New(players, teams int) *Grid {
	g := &Grid{teams: normalizeTeams(teams)}
	g.Resize(players, 1)
	return g
}

// PlayerCount returns the number of rows.
func (g *Grid) PlayerCount() int { return len(g.cells) }

// RoundCount returns the number of columns, including the growth round.
func (g *Grid) RoundCount() int { return g.rounds }

// TeamCount returns the current team bound.
func (g *Grid) TeamCount() int { return g.teams }

// Cell returns the stored value at (row, col).
func (g *Grid) Cell(row, col int) (Cell, error) {
	if !g.inBounds(row, col) {
		return Unset, fmt.Errorf("%w: (%d, %d)", ErrCellOutOfRange, row, col)
	}
	return g.cells[row][col], nil
}

// Display returns the display text for (row, col): empty when unset, else the
// team zero-padded to the width of the largest team index.
func (g *Grid) Display(row, col int) (string, error) {
	c, err := g.Cell(row, col)
	if err != nil {
		return "", err
	}
	return g.format(c), nil
}

// Resize sets the grid shape. Shrinking drops trailing rows or rounds;
// growing appends unset cells. At least one round is always kept.
// Reports whether the shape changed.
func (g *Grid) Resize(players, rounds int) bool {
	if players < 0 {
		players = 0
	}
	if rounds < 1 {
		rounds = 1
	}
	if players == g.PlayerCount() && rounds == g.rounds {
		return false
	}

	resized := make([][]Cell, players)
	for r := range resized {
		row := make([]Cell, rounds)
		for c := range row {
			row[c] = Unset
		}
		if r < len(g.cells) {
			copy(row, g.cells[r])
		}
		resized[r] = row
	}
	g.cells, g.rounds = resized, rounds
	return true
}

// SetPlayerCount resizes the rows and re-evaluates the trailing rounds:
// removed rows may have emptied the round before the growth round.
// Reports whether the row count changed and the resulting round delta.
func (g *Grid) SetPlayerCount(players int) (changed bool, delta int) {
	if !g.Resize(players, g.rounds) {
		return false, 0
	}
	n := g.rounds
	switch {
	case !g.columnEmptyExcept(n-1, -1):
		g.Resize(g.PlayerCount(), n+1)
		return true, 1
	case n >= 2 && g.columnEmptyExcept(n-2, -1):
		g.Resize(g.PlayerCount(), n-1)
		return true, -1
	}
	return true, 0
}

// SetTeamCount changes the team bound and re-clamps every set cell. This is
// not an edit: the round policy is not applied.
func (g *Grid) SetTeamCount(teams int) {
	g.teams = normalizeTeams(teams)
	for _, row := range g.cells {
		for c, cell := range row {
			if cell.IsSet() {
				row[c] = g.clamp(int(cell))
			}
		}
	}
}

// SetCell stores raw user input at (row, col) and applies the round policy
// to that column.
//
// Empty input unsets the cell. Integer input, optionally with underscores
// between digits, is clamped into [0, teams); anything else is treated as 0. Input is never rejected; the only error is
// for coordinates outside the grid.
func (g *Grid) SetCell(row, col int, raw string) (Edit, error) {
	if !g.inBounds(row, col) {
		return Edit{}, fmt.Errorf("%w: (%d, %d)", ErrCellOutOfRange, row, col)
	}

	cell := g.parse(raw)
	g.cells[row][col] = cell

	edit := Edit{Row: row, Col: col, Cell: cell, Text: g.format(cell)}
	n := g.RoundCount()
	switch {
	case cell.IsSet() && col == n-1 && g.columnEmptyExcept(col, row):
		g.Resize(g.PlayerCount(), n+1)
		edit.Delta = 1
	case !cell.IsSet() && col == n-2 && g.columnEmptyExcept(col, -1):
		// Only one round is removed per edit, even if more trailing
		// rounds are empty.
		g.Resize(g.PlayerCount(), n-1)
		edit.Delta = -1
	}
	return edit, nil
}

// Snapshot returns the filled rounds with unset cells read as team 0. The
// trailing growth round is left out; if no other round exists a single
// all-zero round is reported.
func (g *Grid) Snapshot() [][]int {
	rounds := g.RoundCount() - 1
	if rounds < 1 {
		rounds = 1
	}
	out := make([][]int, g.PlayerCount())
	for r, row := range g.cells {
		out[r] = make([]int, rounds)
		for c := 0; c < rounds; c++ {
			if row[c].IsSet() {
				out[r][c] = int(row[c])
			}
		}
	}
	return out
}

func (g *Grid) parse(raw string) Cell {
	if raw == "" {
		return Unset
	}
	text := stripDigitSeparators(strings.TrimSpace(raw))
	n, err := strconv.Atoi(text)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(text, "-") {
			return Cell(g.teams - 1)
		}
		return 0
	}
	return g.clamp(n)
}

// stripDigitSeparators drops underscores that sit between two digits, so
// "1_000" reads as 1000. Any other underscore leaves text unparseable.
func stripDigitSeparators(text string) string {
	if !strings.Contains(text, "_") {
		return text
	}
	var b strings.Builder
	for i := 0; i < len(text); i++ {
		if text[i] != '_' {
			b.WriteByte(text[i])
			continue
		}
		if i == 0 || i == len(text)-1 || !isDigit(text[i-1]) || !isDigit(text[i+1]) {
			return text
		}
	}
	return b.String()
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func (g *Grid) clamp(n int) Cell {
	if n < 0 {
		return 0
	}
	if n >= g.teams {
		return Cell(g.teams - 1)
	}
	return Cell(n)
}

func (g *Grid) format(c Cell) string {
	if !c.IsSet() {
		return ""
	}
	return fmt.Sprintf("%0*d", label.DigitWidth(g.teams), int(c))
}

// columnEmptyExcept reports whether every cell in col is unset, ignoring
// row skip (pass -1 to check them all).
func (g *Grid) columnEmptyExcept(col, skip int) bool {
	for r, row := range g.cells {
		if r != skip && row[col].IsSet() {
			return false
		}
	}
	return true
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.PlayerCount() && col >= 0 && col < g.RoundCount()
}

func normalizeTeams(teams int) int {
	if teams < 1 {
		return 1
	}
	return teams
}
