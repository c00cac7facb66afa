package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/matzehuels/seatplan/pkg/geometry"
)

func TestSelectCommandJSON(t *testing.T) {
	isolate(t)
	path := writeVenue(t, geometry.Pt(100, 100), geometry.Pt(1000, 1000))

	out, err := execute(t, "select", path, "--rect", "0,0,500,500", "--json")
	if err != nil {
		t.Fatal(err)
	}
	var found []selectedElement
	if err := json.Unmarshal([]byte(out), &found); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if len(found) != 1 {
		t.Fatalf("got %d elements, want 1", len(found))
	}
	e := found[0]
	if e.Label != "Table 1" || e.Kind != "table" || e.Section != "Tables" {
		t.Errorf("element = %+v", e)
	}
	if e.Bounds.X != 100 || e.Bounds.Y != 100 {
		t.Errorf("bounds = %+v, want origin (100, 100)", e.Bounds)
	}
}

func TestSelectCommandTable(t *testing.T) {
	isolate(t)
	path := writeVenue(t, geometry.Pt(100, 100), geometry.Pt(1000, 1000))

	out, err := execute(t, "select", path, "--rect", "0,0,3000,2000")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Table 1", "Table 2"} {
		if !strings.Contains(out, want) {
			t.Errorf("output misses %q:\n%s", want, out)
		}
	}
}

func TestSelectCommandErrors(t *testing.T) {
	isolate(t)
	path := writeVenue(t, geometry.Pt(100, 100))

	if _, err := execute(t, "select", path, "--rect", "0,0,10"); err == nil {
		t.Error("bad rect: expected error")
	}
	if _, err := execute(t, "select", path); err == nil {
		t.Error("missing --rect: expected error")
	}
}

func TestWriteSelectionEmpty(t *testing.T) {
	var buf bytes.Buffer
	writeSelection(&buf, nil)
	if !strings.Contains(buf.String(), "No elements") {
		t.Errorf("writeSelection(nil) = %q", buf.String())
	}
}
