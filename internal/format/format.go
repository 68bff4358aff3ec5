// Package format lays out the schedule and result tables, either as
// box-drawn terminal text or as Markdown for pasting into notes.
package format

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Mode selects how a table is rendered.
type Mode int

const (
	ASCII Mode = iota
	Markdown
)

// ParseMode maps the display.style setting to a Mode. Anything but
// "markdown" renders as ASCII.
func ParseMode(style string) Mode {
	if style == "markdown" {
		return Markdown
	}
	return ASCII
}

// ColumnAlign is the horizontal alignment of a column.
type ColumnAlign int

const (
	AlignDefault ColumnAlign = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// ColumnConfig aligns one column, header included. Number is 1-based.
type ColumnConfig struct {
	Number int
	Align  ColumnAlign
}

// TableBuilder collects a header and rows and renders them in one go.
type TableBuilder interface {
	Header(cols ...string)
	Row(vals ...any)
	Columns(cfgs ...ColumnConfig)
	String() string
}

// NewTable returns an empty table rendered in mode m.
func NewTable(m Mode) TableBuilder {
	w := table.NewWriter()
	w.SetStyle(table.StyleLight)
	return &prettyTable{writer: w, mode: m}
}

type prettyTable struct {
	writer table.Writer
	mode   Mode
}

func (t *prettyTable) Header(cols ...string) {
	row := make(table.Row, len(cols))
	for i, c := range cols {
		row[i] = c
	}
	t.writer.AppendHeader(row)
}

func (t *prettyTable) Row(vals ...any) {
	t.writer.AppendRow(table.Row(vals))
}

func (t *prettyTable) Columns(cfgs ...ColumnConfig) {
	configs := make([]table.ColumnConfig, 0, len(cfgs))
	for _, c := range cfgs {
		align := textAlign(c.Align)
		configs = append(configs, table.ColumnConfig{Number: c.Number, Align: align, AlignHeader: align})
	}
	t.writer.SetColumnConfigs(configs)
}

func (t *prettyTable) String() string {
	if t.mode == Markdown {
		return t.writer.RenderMarkdown()
	}
	return t.writer.Render()
}

func textAlign(a ColumnAlign) text.Align {
	switch a {
	case AlignLeft:
		return text.AlignLeft
	case AlignCenter:
		return text.AlignCenter
	case AlignRight:
		return text.AlignRight
	}
	return text.AlignDefault
}
