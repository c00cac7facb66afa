package interact

import (
	"github.com/matzehuels/seatplan/pkg/chart"
	"github.com/matzehuels/seatplan/pkg/geometry"
	"github.com/matzehuels/seatplan/pkg/observability"
	"github.com/matzehuels/seatplan/pkg/palette"
)

// Default names of sections created by a drop.
const (
	DefaultTableSection = "Tables"
	DefaultRowSection   = "Rows"
)

// Drop places a palette item at screen point p and emits OnInsert. It
// returns ErrBusy during a gesture.
func (e *Editor) Drop(item palette.Item, p geometry.Point) (InsertRequest, error) {
	if _, idle := e.state.(Idle); !idle {
		return InsertRequest{}, ErrBusy
	}
	req := Insert(e.chart, item, e.view.ScreenToModel(p))
	observability.Interaction().OnInsert(item.Kind(), item.Capacity)
	e.logger.Debug("palette drop", "item", item.Name, "element", req.ElementID, "section", req.Section.ID, "created", req.Created)
	if e.cb.OnInsert != nil {
		e.cb.OnInsert(req)
	}
	return req, nil
}

// Insert builds the section that results from dropping item at model point
// at on c. The drop point is the new element's top-left corner, snapped to
// the grid and kept on the canvas. Tables go into the first TABLES section
// and rows into the first ROWS section; a section is created when none
// exists. c is not modified.
func Insert(c chart.Chart, item palette.Item, at geometry.Point) InsertRequest {
	w, h := item.Size()
	p := geometry.SnapPoint(at)
	x, y := geometry.ConstrainToBounds(p.X, p.Y, w, h)

	if item.IsRow {
		return insertRow(c, item, x, y)
	}
	return insertTable(c, item, geometry.Rect{X: x, Y: y, Width: w, Height: h})
}

func insertTable(c chart.Chart, item palette.Item, r geometry.Rect) InsertRequest {
	sec, ok := c.FirstSection(chart.ContainerTables)
	if !ok {
		sec = chart.NewTableSection(chart.NewID(chart.PrefixSection), DefaultTableSection, "")
	}
	shape := item.Shape
	if shape == "" {
		shape = chart.ShapeRound
		if item.Capacity <= 0 {
			shape = chart.ShapeCustom
		}
	}
	t := chart.Table{
		ID:     chart.NewID(chart.PrefixTable),
		Number: chart.NextTableNumber(sec.Tables()),
		Name:   areaName(item),
		Shape:  shape,
	}.WithRect(r).WithCapacity(item.Capacity)

	return InsertRequest{Section: sec.WithTable(t), Created: !ok, ElementID: t.ID, Kind: chart.KindTable}
}

func insertRow(c chart.Chart, item palette.Item, x, y float64) InsertRequest {
	sec, ok := c.FirstSection(chart.ContainerRows)
	if !ok {
		sec = chart.NewRowSection(chart.NewID(chart.PrefixSection), DefaultRowSection, "")
	}
	r := chart.Row{
		ID:         chart.NewID(chart.PrefixRow),
		Label:      chart.NextRowLabel(sec.Rows()),
		Seats:      chart.NewSeats(item.Capacity),
		AisleAfter: chart.DefaultAisles(item.Capacity),
	}.WithPosition(x, y)

	return InsertRequest{Section: sec.WithRow(r), Created: !ok, ElementID: r.ID, Kind: chart.KindRow}
}

// areaName names special areas after their palette entry; seated tables
// are labelled by number instead.
func areaName(item palette.Item) string {
	if item.Capacity <= 0 {
		return item.Name
	}
	return ""
}
