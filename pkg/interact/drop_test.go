package interact

import (
	"reflect"
	"testing"

	"github.com/matzehuels/seatplan/pkg/chart"
	"github.com/matzehuels/seatplan/pkg/geometry"
	"github.com/matzehuels/seatplan/pkg/palette"
	"github.com/matzehuels/seatplan/pkg/seating"
)

func rowItem(n int) palette.Item {
	return palette.Item{Name: "Row", Capacity: n, IsRow: true}
}

func TestDropRowOnEmptyChart(t *testing.T) {
	rec := newRecorder()
	e := New(rec.callbacks())

	req, err := e.Drop(rowItem(20), geometry.Pt(333, 777))
	if err != nil {
		t.Fatalf("Drop() error: %v", err)
	}
	if len(rec.inserts) != 1 || rec.inserts[0].ElementID != req.ElementID {
		t.Fatalf("OnInsert = %+v", rec.inserts)
	}
	if !req.Created || req.Kind != chart.KindRow {
		t.Errorf("Created = %v, Kind = %v", req.Created, req.Kind)
	}
	sec := req.Section
	if sec.Type() != chart.ContainerRows || sec.Name != DefaultRowSection || sec.ID == "" {
		t.Errorf("section = %s %q %q", sec.Type(), sec.Name, sec.ID)
	}
	rows := sec.Rows()
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	r := rows[0]
	if r.Label != "A" {
		t.Errorf("Label = %q, want A", r.Label)
	}
	if len(r.Seats) != 20 {
		t.Errorf("seats = %d, want 20", len(r.Seats))
	}
	if !reflect.DeepEqual(r.AisleAfter, []int{9}) {
		t.Errorf("AisleAfter = %v, want [9]", r.AisleAfter)
	}
	if r.X == nil || *r.X != 350 || *r.Y != 800 {
		t.Errorf("position = %v,%v, want 350,800", r.X, r.Y)
	}
	for i, s := range r.Seats {
		if s.Number != i+1 || s.Status != chart.StatusAvailable || s.ID == "" {
			t.Errorf("seat %d = %+v", i, s)
		}
	}
}

func TestDropSmallRowHasNoAisle(t *testing.T) {
	req := Insert(chart.Chart{}, rowItem(14), geometry.Pt(0, 0))
	if a := req.Section.Rows()[0].AisleAfter; a != nil {
		t.Errorf("AisleAfter = %v, want none", a)
	}
}

func TestDropRowContinuesLabels(t *testing.T) {
	c := testChart()
	req := Insert(c, rowItem(10), geometry.Pt(500, 1800))
	if req.Created || req.Section.ID != "rows" {
		t.Errorf("section = %q created=%v, want existing rows", req.Section.ID, req.Created)
	}
	rows := req.Section.Rows()
	if len(rows) != 2 || rows[1].Label != "B" {
		t.Errorf("labels = %v", rows)
	}
}

func TestDropTable(t *testing.T) {
	c := testChart()
	item := palette.Item{Name: "Round table (8)", Shape: chart.ShapeRound, Capacity: 8}
	req := Insert(c, item, geometry.Pt(620, 880))

	if req.Created || req.Section.ID != "tables" || req.Kind != chart.KindTable {
		t.Errorf("req = %+v", req)
	}
	tables := req.Section.Tables()
	if len(tables) != 4 {
		t.Fatalf("tables = %d, want 4", len(tables))
	}
	tbl := tables[3]
	if tbl.ID != req.ElementID || tbl.Number != 3 {
		t.Errorf("new table id=%q number=%d", tbl.ID, tbl.Number)
	}
	if tbl.Bounds() != (geometry.Rect{X: 600, Y: 900, Width: 120, Height: 120}) {
		t.Errorf("bounds = %+v", tbl.Bounds())
	}
	if tbl.Capacity != 8 || len(tbl.Seats) != 8 {
		t.Errorf("capacity %d with %d seats", tbl.Capacity, len(tbl.Seats))
	}
	for _, s := range tbl.Seats {
		if s.Position != nil {
			t.Errorf("seat %d has an explicit position", s.Number)
		}
	}
	if got, want := seating.TableSeats(tbl), seating.Fallback(chart.ShapeRound, 120, 120, 8); !reflect.DeepEqual(got, want) {
		t.Errorf("seats do not follow the fallback layout")
	}

	// The input chart is untouched.
	if n := len(c.Sections[0].Tables()); n != 3 {
		t.Errorf("input chart now has %d tables", n)
	}
}

func TestDropSpecialAreaNearEdge(t *testing.T) {
	item := palette.Item{Name: "Stage", Shape: chart.ShapeCustom}
	req := Insert(chart.Chart{}, item, geometry.Pt(2990, 1990))

	if !req.Created || req.Section.Name != DefaultTableSection {
		t.Errorf("section = %q created=%v", req.Section.Name, req.Created)
	}
	tbl := req.Section.Tables()[0]
	if tbl.Bounds() != (geometry.Rect{X: 2700, Y: 1800, Width: 300, Height: 200}) {
		t.Errorf("bounds = %+v", tbl.Bounds())
	}
	if !tbl.IsSpecialArea() || tbl.Seats != nil || tbl.Name != "Stage" || tbl.Number != 1 {
		t.Errorf("table = %+v", tbl)
	}
}

func TestDropUsesModelSpace(t *testing.T) {
	rec := newRecorder()
	e := New(rec.callbacks())
	e.SetView(geometry.NewViewTransform(0.5, 100, 0))

	// Screen (350,200) is model (500,400).
	req, err := e.Drop(palette.Item{Name: "Square", Shape: chart.ShapeSquare, Capacity: 4}, geometry.Pt(350, 200))
	if err != nil {
		t.Fatal(err)
	}
	tbl := req.Section.Tables()[0]
	if tbl.X != 500 || tbl.Y != 400 {
		t.Errorf("table at (%v,%v), want (500,400)", tbl.X, tbl.Y)
	}
}
