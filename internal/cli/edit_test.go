package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/seatplan/pkg/chart"
	"github.com/matzehuels/seatplan/pkg/geometry"
	"github.com/matzehuels/seatplan/pkg/render/sink"
)

// testEditor opens a 120x42 editor on a chart holding one round table at
// (300, 200). At that size a cell spans 25x50 canvas units, so the table
// center lies in cell (14, 5).
type testEditor struct {
	m     *editModel
	id    string
	saved []chart.Chart
}

func newTestEditor(t *testing.T) *testEditor {
	t.Helper()
	c, req, err := placeItem(chart.Chart{}, item(t, "Round table (8)"), geometry.Pt(300, 200), nil)
	if err != nil {
		t.Fatal(err)
	}
	te := &testEditor{id: req.ElementID}
	te.m = newEditModel(c, editOptions{
		name: "hall.json",
		save: func(c chart.Chart) error {
			te.saved = append(te.saved, c)
			return nil
		},
	})
	te.m.Update(tea.WindowSizeMsg{Width: 120, Height: 42})
	return te
}

func (te *testEditor) mouse(action tea.MouseAction, x, y int) {
	te.m.Update(tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft})
}

func (te *testEditor) drag(x1, y1, x2, y2 int) {
	te.mouse(tea.MouseActionPress, x1, y1)
	te.mouse(tea.MouseActionMotion, x2, y2)
	te.mouse(tea.MouseActionRelease, x2, y2)
}

func (te *testEditor) key(k string) tea.Cmd {
	var msg tea.KeyMsg
	switch k {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "ctrl+s":
		msg = tea.KeyMsg{Type: tea.KeyCtrlS}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	_, cmd := te.m.Update(msg)
	return cmd
}

func (te *testEditor) table(t *testing.T) chart.Table {
	t.Helper()
	tb, _, ok := te.m.doc.chart.Table(te.id)
	if !ok {
		t.Fatalf("table %s is gone", te.id)
	}
	return tb
}

func TestEditDragMovesTable(t *testing.T) {
	te := newTestEditor(t)
	te.drag(14, 5, 24, 5)

	tb := te.table(t)
	if tb.X != 550 || tb.Y != 200 {
		t.Errorf("table at (%v, %v), want (550, 200)", tb.X, tb.Y)
	}
	if !te.m.doc.dirty {
		t.Error("drag did not mark the document dirty")
	}
	if got := te.m.doc.ed.State().Name(); got != "idle" {
		t.Errorf("state after release = %s, want idle", got)
	}
}

func TestEditClickAndCapacity(t *testing.T) {
	te := newTestEditor(t)
	te.drag(14, 5, 14, 5)

	if !te.m.doc.ed.Selected(te.id) {
		t.Fatal("click did not select the table")
	}
	if te.m.doc.dirty {
		t.Error("a click without movement changed the chart")
	}

	te.key("]")
	if got := te.table(t).Capacity; got != 9 {
		t.Errorf("capacity after ] = %d, want 9", got)
	}
	te.key("[")
	te.key("[")
	if got := te.table(t).Capacity; got != 7 {
		t.Errorf("capacity after [[ = %d, want 7", got)
	}
}

func TestEditCapacityNeedsSelection(t *testing.T) {
	te := newTestEditor(t)
	te.key("]")
	if te.m.status != "select a table first" {
		t.Errorf("status = %q", te.m.status)
	}
}

func TestEditSave(t *testing.T) {
	te := newTestEditor(t)
	te.drag(14, 5, 24, 5)
	te.key("ctrl+s")

	if len(te.saved) != 1 {
		t.Fatalf("save called %d times, want 1", len(te.saved))
	}
	if tb, _, _ := te.saved[0].Table(te.id); tb.X != 550 {
		t.Errorf("saved table X = %v, want 550", tb.X)
	}
	if te.m.doc.dirty {
		t.Error("document still dirty after save")
	}
}

func TestEditQuit(t *testing.T) {
	t.Run("clean", func(t *testing.T) {
		te := newTestEditor(t)
		if cmd := te.key("q"); cmd == nil {
			t.Fatal("q on a clean document did not quit")
		}
	})

	t.Run("dirty", func(t *testing.T) {
		te := newTestEditor(t)
		te.drag(14, 5, 24, 5)
		if cmd := te.key("q"); cmd != nil {
			t.Fatal("first q on a dirty document quit")
		}
		cmd := te.key("q")
		if cmd == nil {
			t.Fatal("second q did not quit")
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Error("second q returned a command other than tea.Quit")
		}
	})

	t.Run("disarmed", func(t *testing.T) {
		te := newTestEditor(t)
		te.drag(14, 5, 24, 5)
		te.key("q")
		te.key("+")
		if cmd := te.key("q"); cmd != nil {
			t.Error("q after another key quit without asking again")
		}
	})
}

func TestEditBandSelect(t *testing.T) {
	te := newTestEditor(t)
	te.key("b")
	if !te.m.band {
		t.Fatal("b did not arm band mode")
	}
	te.drag(1, 1, 30, 15)

	if te.m.band {
		t.Error("band mode still armed after the gesture")
	}
	sel := te.m.doc.ed.Selection()
	if len(sel) != 1 || sel[0] != te.id {
		t.Errorf("Selection() = %v, want [%s]", sel, te.id)
	}
}

func TestEditEmptyDragWithoutBandClearsSelection(t *testing.T) {
	te := newTestEditor(t)
	te.drag(14, 5, 14, 5)
	te.drag(1, 1, 30, 15)
	if sel := te.m.doc.ed.Selection(); len(sel) != 0 {
		t.Errorf("Selection() = %v, want empty", sel)
	}
}

func TestEditDropPaletteItem(t *testing.T) {
	te := newTestEditor(t)
	te.key("p")
	te.mouse(tea.MouseActionMotion, 80, 30)
	te.key("enter")

	c := te.m.doc.chart
	if got := len(c.Elements()); got != 2 {
		t.Fatalf("got %d elements, want 2", got)
	}
	if got := c.SeatCount(); got != 18 {
		t.Errorf("SeatCount() = %d, want 18", got)
	}
	if !strings.HasPrefix(te.m.status, "placed table") {
		t.Errorf("status = %q", te.m.status)
	}
}

func TestEditDeleteSection(t *testing.T) {
	te := newTestEditor(t)
	te.drag(14, 5, 14, 5)

	te.key("X")
	if te.m.confirm == "" {
		t.Fatal("X on a non-empty section did not ask for confirmation")
	}
	te.key("n")
	if len(te.m.doc.chart.Sections) != 1 {
		t.Fatal("n deleted the section")
	}

	te.key("X")
	te.key("y")
	if len(te.m.doc.chart.Sections) != 0 {
		t.Errorf("y kept %d sections", len(te.m.doc.chart.Sections))
	}
}

func TestEditZoom(t *testing.T) {
	te := newTestEditor(t)
	te.key("+")
	if te.m.zoom != zoomStep {
		t.Errorf("zoom = %v, want %v", te.m.zoom, zoomStep)
	}
	te.key("0")
	if te.m.zoom != 1 || te.m.pan != (geometry.Point{}) {
		t.Errorf("after reset zoom = %v pan = %v", te.m.zoom, te.m.pan)
	}
	for i := 0; i < 20; i++ {
		te.key("-")
	}
	if te.m.zoom != minZoom {
		t.Errorf("zoom = %v, want clamped to %v", te.m.zoom, minZoom)
	}
}

func TestEditView(t *testing.T) {
	m := newEditModel(chart.Chart{}, editOptions{name: "hall.json"})
	if got := m.View(); got != "loading..." {
		t.Errorf("View() before sizing = %q", got)
	}

	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	view := m.View()
	if !strings.Contains(view, "hall.json") {
		t.Errorf("view misses the file name:\n%s", view)
	}
	if got := strings.Count(view, "\n"); got != 23 {
		t.Errorf("view has %d line breaks, want 23", got)
	}
}

func TestDocumentAppliesEdits(t *testing.T) {
	c, req, err := placeItem(chart.Chart{}, item(t, "Banquet table (6)"), geometry.Pt(500, 500), nil)
	if err != nil {
		t.Fatal(err)
	}
	d := newDocument(c)
	if err := d.ed.Rotate(req.ElementID, 90); err != nil {
		t.Fatal(err)
	}
	tb, _, _ := d.chart.Table(req.ElementID)
	if tb.Rotation != 90 {
		t.Errorf("Rotation = %v, want 90", tb.Rotation)
	}
	if !d.dirty {
		t.Error("rotate did not mark the document dirty")
	}
	if got := d.ed.Snapshot(); got.SeatCount() != d.chart.SeatCount() {
		t.Error("editor snapshot not updated")
	}
}

func TestColorize(t *testing.T) {
	r := sink.Raster{Cols: 3, Rows: 2, Cells: [][]sink.Cell{
		{{Rune: 'a'}, {Rune: 'b'}, {Rune: 'c', Color: "#ff0000"}},
		{{Rune: ' '}, {Rune: 'd'}, {Rune: ' '}},
	}}
	got := colorize(r)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("colorize() gave %d lines, want 2", len(lines))
	}
	if !strings.HasPrefix(lines[0], "ab") || !strings.Contains(lines[0], "c") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != " d " {
		t.Errorf("line 1 = %q, want %q", lines[1], " d ")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"héllo", 3, "hél"},
		{"short", 10, "short"},
		{"any", 0, "any"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}
