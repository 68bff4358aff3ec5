package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/example/teamsel/internal/config"
	"github.com/example/teamsel/internal/core/cooccur"
	"github.com/example/teamsel/internal/format"
	"github.com/example/teamsel/internal/ports/primary"
	"github.com/example/teamsel/internal/ports/secondary"
)

const (
	markOn  = "■"
	markOff = "□"
)

// TerminalPresenter renders session notifications as text.
type TerminalPresenter struct {
	out   io.Writer
	mode  format.Mode
	met   *color.Color
	unmet *color.Color
}

// NewTerminalPresenter creates a presenter writing to out.
func NewTerminalPresenter(out io.Writer, mode format.Mode, colorize bool) *TerminalPresenter {
	met := color.New(color.FgGreen)
	unmet := color.New(color.FgRed)
	if colorize {
		met.EnableColor()
		unmet.EnableColor()
	} else {
		met.DisableColor()
		unmet.DisableColor()
	}
	return &TerminalPresenter{out: out, mode: mode, met: met, unmet: unmet}
}

// ShouldColor resolves a display.color setting for out. "auto" colours only
// terminals.
func ShouldColor(setting string, out io.Writer) bool {
	switch setting {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// GridStructureChanged prints the new grid shape.
func (p *TerminalPresenter) GridStructureChanged(ctx context.Context, s secondary.GridStructure) error {
	_, err := fmt.Fprintf(p.out, "Grid: %d players × %d rounds\n", s.PlayerCount, s.RoundCount)
	return err
}

// CellNormalized prints the stored text for an edited cell.
func (p *TerminalPresenter) CellNormalized(ctx context.Context, row, col int, text string) error {
	if text == "" {
		text = "(unset)"
	}
	_, err := fmt.Fprintf(p.out, "  player %d, round %d: %s\n", row, col+1, text)
	return err
}

// LimitsChanged prints the accepted range for a count.
func (p *TerminalPresenter) LimitsChanged(ctx context.Context, which primary.CountKind, limits primary.Limits) error {
	name := "Player number"
	if which == primary.TeamCount {
		name = "Team number"
	}
	_, err := fmt.Fprintf(p.out, "%s (%d - %d)\n", name, limits.Lower, limits.Upper)
	return err
}

// CoOccurrenceReady prints the player × player table. Each cell shows one
// mark per round, ■ where the pair shared a team; pairs that met at least
// once are green, the rest red.
func (p *TerminalPresenter) CoOccurrenceReady(ctx context.Context, m *cooccur.Matrix) error {
	tb := format.NewTable(p.mode)

	header := make([]string, m.Size()+1)
	cfgs := make([]format.ColumnConfig, m.Size()+1)
	cfgs[0] = format.ColumnConfig{Number: 1, Align: format.AlignRight}
	for j := 0; j < m.Size(); j++ {
		header[j+1] = strconv.Itoa(j)
		cfgs[j+1] = format.ColumnConfig{Number: j + 2, Align: format.AlignCenter}
	}
	tb.Header(header...)
	tb.Columns(cfgs...)

	for i := 0; i < m.Size(); i++ {
		row := make([]any, m.Size()+1)
		row[0] = strconv.Itoa(i)
		for j := 0; j < m.Size(); j++ {
			row[j+1] = p.pairCell(m, i, j)
		}
		tb.Row(row...)
	}

	_, err := fmt.Fprintf(p.out, "Results (player with player, %d rounds)\n%s\n", m.Rounds(), tb.String())
	return err
}

func (p *TerminalPresenter) pairCell(m *cooccur.Matrix, i, j int) string {
	var b strings.Builder
	for _, shared := range m.Pattern(i, j) {
		if shared {
			b.WriteString(markOn)
		} else {
			b.WriteString(markOff)
		}
	}
	if m.Met(i, j) {
		return p.met.Sprint(b.String())
	}
	return p.unmet.Sprint(b.String())
}

// RenderSchedule prints the schedule grid with player and round headers.
func (p *TerminalPresenter) RenderSchedule(ctx context.Context, state *primary.SessionState) error {
	tb := format.NewTable(p.mode)

	header := make([]string, 0, len(state.RoundLabels)+1)
	header = append(header, "")
	header = append(header, state.RoundLabels...)
	tb.Header(header...)

	cfgs := make([]format.ColumnConfig, len(state.RoundLabels))
	for c := range cfgs {
		cfgs[c] = format.ColumnConfig{Number: c + 2, Align: format.AlignCenter}
	}
	tb.Columns(cfgs...)

	for r, cells := range state.Cells {
		row := make([]any, 0, len(cells)+1)
		row = append(row, state.PlayerLabels[r])
		for _, text := range cells {
			row = append(row, text)
		}
		tb.Row(row...)
	}

	auto := "off"
	if state.AutoRecalc {
		auto = "on"
	}
	_, err := fmt.Fprintf(p.out,
		"Schedule (input teams, empty = 0): %d players, %d teams, %d rounds, auto %s\n%s\n",
		state.PlayerCount, state.TeamCount, state.RoundCount, auto, tb.String())
	return err
}

// Ensure TerminalPresenter implements the interface.
var _ secondary.Presenter = (*TerminalPresenter)(nil)
