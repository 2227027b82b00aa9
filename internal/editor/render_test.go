package editor

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func rowString(s tcell.SimulationScreen, y int) string {
	cells, w, _ := s.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		cell := cells[y*w+x]
		if len(cell.Runes) == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(cell.Runes[0])
	}
	return b.String()
}

func TestRenderShowsText(t *testing.T) {
	s := newSimScreen(t, 40, 10)
	e := newTestEditor("hello\nworld")
	e.Render(s)
	if got := strings.TrimRight(rowString(s, 0), " "); got != "hello" {
		t.Fatalf("row 0 = %q, want %q", got, "hello")
	}
	if got := strings.TrimRight(rowString(s, 1), " "); got != "world" {
		t.Fatalf("row 1 = %q, want %q", got, "world")
	}
}

func TestRenderStatuslineUnnamed(t *testing.T) {
	s := newSimScreen(t, 60, 10)
	e := newTestEditor("abc")
	e.Render(s)
	status := rowString(s, 8)
	if !strings.Contains(status, "[No Name]") {
		t.Fatalf("status = %q, want it to contain %q", status, "[No Name]")
	}
	if !strings.Contains(status, "Ln 1, Col 1") {
		t.Fatalf("status = %q, want it to contain %q", status, "Ln 1, Col 1")
	}
}

func TestRenderStatuslineDirtyMarker(t *testing.T) {
	s := newSimScreen(t, 60, 10)
	e := newTestEditor("")
	typeString(e, "x")
	e.Render(s)
	if status := rowString(s, 8); !strings.Contains(status, "[No Name]*") {
		t.Fatalf("status = %q, want dirty marker", status)
	}
}

func TestRenderCommandlinePrompt(t *testing.T) {
	s := newSimScreen(t, 40, 10)
	e := newTestEditor("")
	e.HandleKey(keyNamed(tcell.KeyCtrlE))
	e.HandleKey(keyRune('w'))
	e.Render(s)
	if got := strings.TrimRight(rowString(s, 9), " "); got != ":w" {
		t.Fatalf("command line = %q, want %q", got, ":w")
	}
	cx, cy, visible := s.GetCursor()
	if !visible {
		t.Fatalf("cursor hidden in command mode")
	}
	if cx != 2 || cy != 9 {
		t.Fatalf("cursor = (%d, %d), want (2, 9)", cx, cy)
	}
}

func TestRenderTabExpansion(t *testing.T) {
	s := newSimScreen(t, 40, 10)
	e := newTestEditor("\tx")
	e.Render(s)
	if got := rowString(s, 0)[:5]; got != "    x" {
		t.Fatalf("row 0 = %q, want %q", got, "    x")
	}
}

func TestRenderScrollFollowsCursor(t *testing.T) {
	s := newSimScreen(t, 40, 6)
	lines := make([]string, 20)
	for i := range lines {
		lines[i] = "line"
	}
	e := newTestEditor(strings.Join(lines, "\n"))
	e.buf.MoveCursorToEnd()
	e.Render(s)
	if e.scroll == 0 {
		t.Fatalf("scroll = 0, want cursor line brought into view")
	}
	_, cy, visible := s.GetCursor()
	if !visible {
		t.Fatalf("cursor hidden after scroll")
	}
	if cy < 0 || cy >= 4 {
		t.Fatalf("cursor row = %d, want within view", cy)
	}
}

func TestComposeStatusLine(t *testing.T) {
	line := string(composeStatusLine("left", "right", 12))
	if line != "left   right" {
		t.Fatalf("composeStatusLine = %q, want %q", line, "left   right")
	}
	if got := len(composeStatusLine("left", "right", 8)); got != 8 {
		t.Fatalf("len = %d, want 8", got)
	}
}

func TestVisualCol(t *testing.T) {
	line := []rune("\tab")
	if got := visualCol(line, 0, 4); got != 0 {
		t.Fatalf("visualCol(0) = %d, want 0", got)
	}
	if got := visualCol(line, 1, 4); got != 4 {
		t.Fatalf("visualCol(1) = %d, want 4", got)
	}
	if got := visualCol(line, 3, 4); got != 6 {
		t.Fatalf("visualCol(3) = %d, want 6", got)
	}
}

func TestParseColor(t *testing.T) {
	if got := parseColor("", tcell.ColorRed); got != tcell.ColorRed {
		t.Fatalf("empty name: got %v, want fallback", got)
	}
	if got := parseColor("#102030", tcell.ColorRed); got != tcell.NewRGBColor(0x10, 0x20, 0x30) {
		t.Fatalf("hex: got %v", got)
	}
	if got := parseColor("not-a-color", tcell.ColorRed); got != tcell.ColorRed {
		t.Fatalf("bad name: got %v, want fallback", got)
	}
}
