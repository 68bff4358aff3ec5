package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/example/teamsel/internal/ports/primary"
)

// mockSessionService implements primary.SessionService for testing
type mockSessionService struct {
	startFn       func(ctx context.Context) error
	changeCountFn func(ctx context.Context, which primary.CountKind, value int) (bool, error)
	editCellFn    func(ctx context.Context, row, col int, raw string) error
	recalcFn      func(ctx context.Context) error

	// Track calls for verification
	starts      int
	counts      []countCall
	edits       []editCall
	recalcs     int
	autoToggles []bool
	order       []string
}

type countCall struct {
	which primary.CountKind
	value int
}

type editCall struct {
	row, col int
	raw      string
}

func (m *mockSessionService) Start(ctx context.Context) error {
	m.starts++
	m.order = append(m.order, "start")
	if m.startFn != nil {
		return m.startFn(ctx)
	}
	return nil
}

func (m *mockSessionService) ChangeCount(ctx context.Context, which primary.CountKind, value int) (bool, error) {
	m.counts = append(m.counts, countCall{which, value})
	if m.changeCountFn != nil {
		return m.changeCountFn(ctx, which, value)
	}
	return true, nil
}

func (m *mockSessionService) ValidateCount(ctx context.Context, which primary.CountKind, text string) bool {
	n := 0
	for _, r := range text {
		if r < '0' || r > '9' {
			return false
		}
		n = n*10 + int(r-'0')
	}
	if which == primary.PlayerCount {
		return n >= 3 && n <= 100
	}
	return n >= 2 && n <= 9
}

func (m *mockSessionService) EditCell(ctx context.Context, row, col int, raw string) error {
	m.edits = append(m.edits, editCall{row, col, raw})
	if m.editCellFn != nil {
		return m.editCellFn(ctx, row, col, raw)
	}
	return nil
}

func (m *mockSessionService) Recalculate(ctx context.Context) error {
	m.recalcs++
	if m.recalcFn != nil {
		return m.recalcFn(ctx)
	}
	return nil
}

func (m *mockSessionService) SetAutoRecalculate(ctx context.Context, on bool) error {
	m.autoToggles = append(m.autoToggles, on)
	m.order = append(m.order, fmt.Sprintf("auto %v", on))
	return nil
}

func (m *mockSessionService) State(ctx context.Context) (*primary.SessionState, error) {
	return &primary.SessionState{
		PlayerCount:  3,
		TeamCount:    2,
		RoundCount:   2,
		PlayerLimits: primary.Limits{Lower: 3, Upper: 100},
		TeamLimits:   primary.Limits{Lower: 2, Upper: 9},
		PlayerLabels: []string{"Player 0 | 0_0", "Player 1 | 0_1", "Player 2 | 1_0"},
		RoundLabels:  []string{"Round 1", "Round 2"},
		Cells:        [][]string{{"1", ""}, {"0", ""}, {"", ""}},
	}, nil
}

// mockRenderer implements StateRenderer for testing
type mockRenderer struct {
	rendered []*primary.SessionState
}

func (r *mockRenderer) RenderSchedule(ctx context.Context, state *primary.SessionState) error {
	r.rendered = append(r.rendered, state)
	return nil
}

func newTestAdapter() (*SessionAdapter, *mockSessionService, *mockRenderer, *bytes.Buffer) {
	svc := &mockSessionService{}
	renderer := &mockRenderer{}
	out := &bytes.Buffer{}
	return NewSessionAdapter(svc, renderer, out), svc, renderer, out
}

func TestSessionAdapter_Exec_Counts(t *testing.T) {
	adapter, svc, _, _ := newTestAdapter()
	ctx := context.Background()

	if _, err := adapter.Exec(ctx, "players 12"); err != nil {
		t.Fatalf("players: unexpected error: %v", err)
	}
	if _, err := adapter.Exec(ctx, "TEAMS 3"); err != nil {
		t.Fatalf("teams: unexpected error: %v", err)
	}

	want := []countCall{{primary.PlayerCount, 12}, {primary.TeamCount, 3}}
	if len(svc.counts) != len(want) {
		t.Fatalf("expected %d count calls, got %v", len(want), svc.counts)
	}
	for i := range want {
		if svc.counts[i] != want[i] {
			t.Errorf("count call %d = %+v, want %+v", i, svc.counts[i], want[i])
		}
	}
}

func TestSessionAdapter_Exec_CountRejected(t *testing.T) {
	adapter, svc, _, _ := newTestAdapter()

	_, err := adapter.Exec(context.Background(), "teams 12")
	if err == nil {
		t.Fatal("expected error for out-of-range teams")
	}
	if !strings.Contains(err.Error(), "[2, 9]") {
		t.Errorf("expected limits in error, got %v", err)
	}
	if len(svc.counts) != 0 {
		t.Errorf("rejected count should not reach the service, got %v", svc.counts)
	}
}

func TestSessionAdapter_Exec_Cells(t *testing.T) {
	tests := []struct {
		name string
		line string
		want editCall
	}{
		{name: "set with value", line: "set 0 1 1", want: editCall{0, 0, "1"}},
		{name: "set keeps free text", line: "set 2 3 not a number", want: editCall{2, 2, "not a number"}},
		{name: "set without text clears", line: "set 1 2", want: editCall{1, 1, ""}},
		{name: "clear", line: "clear 4 1", want: editCall{4, 0, ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter, svc, _, _ := newTestAdapter()
			if _, err := adapter.Exec(context.Background(), tt.line); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(svc.edits) != 1 || svc.edits[0] != tt.want {
				t.Errorf("edits = %+v, want [%+v]", svc.edits, tt.want)
			}
		})
	}
}

func TestSessionAdapter_Exec_UsageErrors(t *testing.T) {
	lines := []string{
		"players",
		"players 3 4",
		"set 1",
		"set a 1 0",
		"set 1 b 0",
		"clear 1 1 1",
		"auto",
		"auto maybe",
	}

	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			adapter, _, _, _ := newTestAdapter()
			_, err := adapter.Exec(context.Background(), line)
			if !errors.Is(err, ErrUsage) {
				t.Errorf("Exec(%q) error = %v, want ErrUsage", line, err)
			}
		})
	}
}

func TestSessionAdapter_Exec_Misc(t *testing.T) {
	adapter, svc, renderer, out := newTestAdapter()
	ctx := context.Background()

	for _, line := range []string{"", "   ", "# comment", "calc", "auto on", "auto OFF", "show", "help"} {
		if quit, err := adapter.Exec(ctx, line); err != nil || quit {
			t.Fatalf("Exec(%q) = (%v, %v), want (false, nil)", line, quit, err)
		}
	}

	if svc.recalcs != 1 {
		t.Errorf("expected 1 recalculation, got %d", svc.recalcs)
	}
	if len(svc.autoToggles) != 2 || !svc.autoToggles[0] || svc.autoToggles[1] {
		t.Errorf("auto toggles = %v, want [true false]", svc.autoToggles)
	}
	if len(renderer.rendered) != 1 {
		t.Errorf("expected 1 render, got %d", len(renderer.rendered))
	}
	if !strings.Contains(out.String(), "Commands:") {
		t.Errorf("expected help text, got %q", out.String())
	}

	if _, err := adapter.Exec(ctx, "dance"); err == nil || !strings.Contains(err.Error(), "unknown command") {
		t.Errorf("expected unknown command error, got %v", err)
	}
	if quit, _ := adapter.Exec(ctx, "quit"); !quit {
		t.Error("quit should end the session")
	}
}

func TestSessionAdapter_Run(t *testing.T) {
	adapter, svc, _, out := newTestAdapter()
	svc.editCellFn = func(ctx context.Context, row, col int, raw string) error {
		if row > 2 {
			return errors.New("cell out of range")
		}
		return nil
	}

	script := strings.Join([]string{
		"players 3",
		"set 0 1 0",
		"set 9 1 0",
		"calc",
		"quit",
		"calc",
	}, "\n")

	if err := adapter.Run(context.Background(), strings.NewReader(script)); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if svc.starts != 1 {
		t.Errorf("expected session to start once, got %d", svc.starts)
	}
	if len(svc.edits) != 2 {
		t.Errorf("expected 2 edits, got %d", len(svc.edits))
	}
	if svc.recalcs != 1 {
		t.Errorf("commands after quit should not run; recalcs = %d", svc.recalcs)
	}
	if !strings.Contains(out.String(), "✗ cell out of range") {
		t.Errorf("expected error line in output, got %q", out.String())
	}
}

func TestSessionAdapter_Run_StartError(t *testing.T) {
	adapter, svc, _, _ := newTestAdapter()
	svc.startFn = func(ctx context.Context) error { return errors.New("boom") }

	err := adapter.Run(context.Background(), strings.NewReader("calc\n"))
	if err == nil || !strings.Contains(err.Error(), "failed to start session") {
		t.Errorf("expected start error, got %v", err)
	}
	if svc.recalcs != 0 {
		t.Errorf("no command should run after a failed start")
	}
}

func TestSessionAdapter_Run_EnableAutoRecalculate(t *testing.T) {
	adapter, svc, _, _ := newTestAdapter()
	adapter.EnableAutoRecalculate()

	if err := adapter.Run(context.Background(), strings.NewReader("")); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	want := []string{"start", "auto true"}
	if len(svc.order) != len(want) || svc.order[0] != want[0] || svc.order[1] != want[1] {
		t.Errorf("calls = %v, want %v", svc.order, want)
	}
}

func TestSessionAdapter_Run_AutoOffByDefault(t *testing.T) {
	adapter, svc, _, _ := newTestAdapter()

	if err := adapter.Run(context.Background(), strings.NewReader("")); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(svc.autoToggles) != 0 {
		t.Errorf("auto toggles = %v, want none", svc.autoToggles)
	}
}
