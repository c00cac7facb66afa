package chart

import (
	"encoding/json"
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/seatplan/pkg/errors"
	"github.com/matzehuels/seatplan/pkg/geometry"
)

func sampleChart() Chart {
	x, y := 500.0, 900.0
	return Chart{Sections: []Section{
		NewTableSection("s-tables", "Tables", "#1e88e5",
			Table{ID: "t1", Number: 1, Shape: ShapeRound, X: 100, Y: 100, Width: 120, Height: 120, Capacity: 2,
				Seats: []Seat{{ID: "t1-1", Number: 1}, {ID: "t1-2", Number: 2}}},
			Table{ID: "stage", Number: 2, Shape: ShapeCustom, X: 1200, Y: 50, Width: 300, Height: 200},
		),
		NewRowSection("s-rows", "Stalls", "",
			Row{ID: "r1", Label: "A", Seats: []Seat{{ID: "r1-1", Number: 1}, {ID: "r1-2", Number: 2}}},
			Row{ID: "r2", Label: "B", Seats: []Seat{{ID: "r2-1", Number: 1}}, X: &x, Y: &y},
		),
	}}
}

func TestSectionJSONRoundTrip(t *testing.T) {
	c := sampleChart()
	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(data), `"containerType":"ROWS"`) {
		t.Errorf("encoded chart missing ROWS containerType: %s", data)
	}

	var back Chart
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got := back.Sections[0].Type(); got != ContainerTables {
		t.Errorf("section 0 type = %v, want TABLES", got)
	}
	if got := len(back.Sections[1].Rows()); got != 2 {
		t.Errorf("section 1 rows = %d, want 2", got)
	}
	if back.Sections[1].Tables() != nil {
		t.Error("ROWS section should not expose tables")
	}
}

func TestSectionUnmarshalRejectsAmbiguous(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		want    ContainerType
	}{
		{"rows", `{"id":"a","containerType":"ROWS","rows":[{"id":"r","label":"A","seats":[]}]}`, false, ContainerRows},
		{"tables", `{"id":"a","containerType":"TABLES","tables":[{"id":"t","shape":"ROUND"}]}`, false, ContainerTables},
		{"empty rows", `{"id":"a","containerType":"ROWS"}`, false, ContainerRows},
		{"inferred rows", `{"id":"a","rows":[{"id":"r","label":"A","seats":[]}]}`, false, ContainerRows},
		{"both", `{"id":"a","rows":[{"id":"r"}],"tables":[{"id":"t"}]}`, true, ""},
		{"mismatch", `{"id":"a","containerType":"ROWS","tables":[{"id":"t"}]}`, true, ""},
		{"unknown type", `{"id":"a","containerType":"BOXES"}`, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Section
			err := json.Unmarshal([]byte(tt.input), &s)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, errors.ErrCodeInvalidChart) {
					t.Errorf("error code = %v, want INVALID_CHART", errors.GetCode(err))
				}
				return
			}
			if s.Type() != tt.want {
				t.Errorf("Type() = %v, want %v", s.Type(), tt.want)
			}
		})
	}
}

func TestElementsDrawOrderAndBounds(t *testing.T) {
	els := sampleChart().Elements()
	var ids []string
	for _, e := range els {
		ids = append(ids, e.ID)
	}
	if want := []string{"t1", "stage", "r1", "r2"}; !slices.Equal(ids, want) {
		t.Fatalf("Elements order = %v, want %v", ids, want)
	}

	if !els[1].Special {
		t.Error("stage should be a special area")
	}
	if els[0].Bounds != (geometry.Rect{X: 100, Y: 100, Width: 120, Height: 120}) {
		t.Errorf("table bounds = %+v", els[0].Bounds)
	}

	// r1 has no explicit position: default origin for row index 0.
	if els[2].Bounds.X != 100 || els[2].Bounds.Y != 100 {
		t.Errorf("r1 origin = (%v, %v), want (100, 100)", els[2].Bounds.X, els[2].Bounds.Y)
	}
	if els[2].Bounds.Width != geometry.MinWidth || els[2].Bounds.Height != RowHeight {
		t.Errorf("r1 size = %vx%v, want %vx%v", els[2].Bounds.Width, els[2].Bounds.Height, geometry.MinWidth, RowHeight)
	}
	if els[3].Bounds.X != 500 || els[3].Bounds.Y != 900 {
		t.Errorf("r2 origin = (%v, %v), want explicit (500, 900)", els[3].Bounds.X, els[3].Bounds.Y)
	}
	if els[3].RowIndex != 1 {
		t.Errorf("r2 RowIndex = %d, want 1", els[3].RowIndex)
	}
}

func TestLookups(t *testing.T) {
	c := sampleChart()
	if tbl, sid, ok := c.Table("stage"); !ok || sid != "s-tables" || tbl.Number != 2 {
		t.Errorf("Table(stage) = %+v, %q, %v", tbl, sid, ok)
	}
	if r, sid, ok := c.Row("r2"); !ok || sid != "s-rows" || r.Label != "B" {
		t.Errorf("Row(r2) = %+v, %q, %v", r, sid, ok)
	}
	if _, _, ok := c.Table("r1"); ok {
		t.Error("Table(r1) should not find a row")
	}
	if s, ok := c.SectionOf("r1"); !ok || s.ID != "s-rows" {
		t.Errorf("SectionOf(r1) = %q, %v", s.ID, ok)
	}
	if s, ok := c.FirstSection(ContainerRows); !ok || s.ID != "s-rows" {
		t.Errorf("FirstSection(ROWS) = %q, %v", s.ID, ok)
	}
	if n := c.SeatCount(); n != 5 {
		t.Errorf("SeatCount = %d, want 5", n)
	}
}

func TestSectionWithAndWithout(t *testing.T) {
	s := sampleChart().Sections[0]
	moved := s.WithTable(Table{ID: "t1", Number: 1, X: 400})
	if moved.Tables()[0].X != 400 {
		t.Errorf("WithTable did not replace: %+v", moved.Tables()[0])
	}
	if s.Tables()[0].X != 100 {
		t.Error("WithTable mutated the original section")
	}

	added := s.WithTable(Table{ID: "t9"})
	if added.Len() != 3 {
		t.Errorf("WithTable append len = %d, want 3", added.Len())
	}
	if same := s.WithRow(Row{ID: "x"}); same.Len() != s.Len() {
		t.Error("WithRow on a TABLES section should be a no-op")
	}

	pruned, n := s.Without(map[string]bool{"stage": true, "nope": true})
	if n != 1 || pruned.Len() != 1 || pruned.Tables()[0].ID != "t1" {
		t.Errorf("Without = %d removed, %+v", n, pruned.Tables())
	}
}

func TestRowLabels(t *testing.T) {
	tests := []struct {
		i    int
		want string
	}{
		{0, "A"}, {1, "B"}, {25, "Z"}, {26, "AA"}, {51, "AZ"}, {52, "BA"}, {701, "ZZ"}, {702, "AAA"},
	}
	for _, tt := range tests {
		if got := RowLabel(tt.i); got != tt.want {
			t.Errorf("RowLabel(%d) = %q, want %q", tt.i, got, tt.want)
		}
	}

	rows := []Row{{Label: "A"}, {Label: "C"}}
	if got := NextRowLabel(rows); got != "B" {
		t.Errorf("NextRowLabel = %q, want B", got)
	}
	if got := NextRowLabel(nil); got != "A" {
		t.Errorf("NextRowLabel(nil) = %q, want A", got)
	}
}

func TestDefaultAisles(t *testing.T) {
	if got := DefaultAisles(20); !slices.Equal(got, []int{9}) {
		t.Errorf("DefaultAisles(20) = %v, want [9]", got)
	}
	if got := DefaultAisles(15); !slices.Equal(got, []int{6}) {
		t.Errorf("DefaultAisles(15) = %v, want [6]", got)
	}
	if got := DefaultAisles(14); got != nil {
		t.Errorf("DefaultAisles(14) = %v, want nil", got)
	}
}

func TestRowAislesFiltersInvalid(t *testing.T) {
	r := Row{Seats: make([]Seat, 5), AisleAfter: []int{3, -1, 1, 4, 1, 9}}
	if got := r.Aisles(); !slices.Equal(got, []int{1, 3}) {
		t.Errorf("Aisles = %v, want [1 3]", got)
	}
}

func TestWithCapacity(t *testing.T) {
	tbl := Table{ID: "t", Capacity: 2, Seats: []Seat{{ID: "a", Number: 1}, {ID: "b", Number: 2}}}

	grown := tbl.WithCapacity(4)
	if grown.Capacity != 4 || len(grown.Seats) != 4 {
		t.Fatalf("grown = cap %d, %d seats", grown.Capacity, len(grown.Seats))
	}
	if grown.Seats[0].ID != "a" || grown.Seats[3].Number != 4 {
		t.Errorf("grown seats = %+v", grown.Seats)
	}
	if len(tbl.Seats) != 2 {
		t.Error("WithCapacity mutated the original")
	}

	shrunk := grown.WithCapacity(1)
	if len(shrunk.Seats) != 1 || shrunk.Seats[0].ID != "a" {
		t.Errorf("shrunk seats = %+v", shrunk.Seats)
	}

	area := grown.WithCapacity(0)
	if !area.IsSpecialArea() || area.Seats != nil {
		t.Errorf("capacity 0 should be a seatless special area: %+v", area)
	}
}

func TestDefaultSize(t *testing.T) {
	tests := []struct {
		shape    Shape
		capacity int
		w, h     float64
	}{
		{ShapeRound, 8, 120, 120},
		{ShapeSquare, 4, 120, 120},
		{ShapeRectangular, 6, 200, 100},
		{ShapeCustom, 6, 150, 100},
		{ShapeRound, 0, 300, 200},
	}
	for _, tt := range tests {
		w, h := DefaultSize(tt.shape, tt.capacity)
		if w != tt.w || h != tt.h {
			t.Errorf("DefaultSize(%s, %d) = %vx%v, want %vx%v", tt.shape, tt.capacity, w, h, tt.w, tt.h)
		}
		if w < geometry.MinWidth || h < geometry.MinHeight {
			t.Errorf("DefaultSize(%s, %d) below minimum", tt.shape, tt.capacity)
		}
	}
}

func TestValidate(t *testing.T) {
	if err := sampleChart().Validate(); err != nil {
		t.Fatalf("Validate(sample) = %v", err)
	}

	dup := sampleChart()
	dup.Sections[1] = NewRowSection("s-rows", "Stalls", "", Row{ID: "t1", Label: "A"})
	if err := dup.Validate(); !errors.Is(err, errors.ErrCodeInvalidChart) {
		t.Errorf("duplicate id error = %v, want INVALID_CHART", err)
	}

	labels := sampleChart()
	labels.Sections[1] = NewRowSection("s-rows", "Stalls", "", Row{ID: "x", Label: "A"}, Row{ID: "y", Label: "A"})
	if err := labels.Validate(); err == nil {
		t.Error("duplicate row label should fail validation")
	}

	// Inconsistent seat count is geometry, not structure: accepted.
	odd := sampleChart()
	tables := odd.Sections[0].Tables()
	tables[0].Capacity = 10
	odd.Sections[0].Container = TableList(tables)
	if err := odd.Validate(); err != nil {
		t.Errorf("capacity/seat mismatch should be accepted, got %v", err)
	}

	tests := []struct {
		name     string
		capacity int
		wantErr  bool
	}{
		{"at limit", errors.MaxCapacity, false},
		{"negative reads as area", -3, false},
		{"over limit", errors.MaxCapacity + 1, true},
		{"huge", 2_000_000_000, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := sampleChart()
			tables := c.Sections[0].Tables()
			tables[0].Capacity = tt.capacity
			c.Sections[0].Container = TableList(tables)
			err := c.Validate()
			if tt.wantErr && !errors.Is(err, errors.ErrCodeInvalidChart) {
				t.Errorf("Validate() = %v, want INVALID_CHART", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestParseShape(t *testing.T) {
	if s, err := ParseShape(" round "); err != nil || s != ShapeRound {
		t.Errorf("ParseShape(round) = %v, %v", s, err)
	}
	if _, err := ParseShape("hexagon"); !errors.Is(err, errors.ErrCodeInvalidShape) {
		t.Errorf("ParseShape(hexagon) error = %v", err)
	}
}

func TestNewIDUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewID(PrefixTable)
		if !strings.HasPrefix(id, "table-") || seen[id] {
			t.Fatalf("NewID produced %q", id)
		}
		seen[id] = true
	}
}

func TestChartUpdates(t *testing.T) {
	c := sampleChart()

	moved := c.WithTable("s-tables", Table{ID: "t1", Number: 1, Shape: ShapeRound, X: 700, Y: 100, Width: 120, Height: 120})
	if tb, _, _ := moved.Table("t1"); tb.X != 700 {
		t.Errorf("WithTable: t1.X = %v", tb.X)
	}
	if tb, _, _ := c.Table("t1"); tb.X != 100 {
		t.Error("WithTable mutated the original chart")
	}
	if same := c.WithTable("nope", Table{ID: "t1"}); !slices.EqualFunc(same.Sections, c.Sections, func(a, b Section) bool { return a.ID == b.ID && a.Len() == b.Len() }) {
		t.Error("unknown section should leave the chart unchanged")
	}

	x, y := 0.0, 0.0
	rowMoved := c.WithRow("s-rows", Row{ID: "r1", Label: "A", X: &x, Y: &y})
	if r, _, _ := rowMoved.Row("r1"); r.X == nil || *r.X != 0 {
		t.Errorf("WithRow: r1 = %+v", r)
	}

	added := c.WithSection(NewTableSection("s-new", "Patio", ""))
	if len(added.Sections) != 3 || added.Sections[2].ID != "s-new" {
		t.Errorf("WithSection append: %d sections", len(added.Sections))
	}
	renamed := c.WithSection(NewRowSection("s-rows", "Balcony", ""))
	if len(renamed.Sections) != 2 || renamed.Sections[1].Name != "Balcony" {
		t.Errorf("WithSection replace: %+v", renamed.Sections[1])
	}

	removed := c.WithoutSection("s-tables")
	if len(removed.Sections) != 1 || removed.Sections[0].ID != "s-rows" {
		t.Errorf("WithoutSection: %d sections", len(removed.Sections))
	}
}
