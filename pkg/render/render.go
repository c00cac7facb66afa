package render

import (
	"strconv"

	"github.com/matzehuels/seatplan/pkg/chart"
	"github.com/matzehuels/seatplan/pkg/geometry"
	"github.com/matzehuels/seatplan/pkg/seating"
)

// Marker and plaque sizes in model units.
const (
	TableSeatRadius = 8.0
	RowSeatRadius   = 10.0

	plaqueHeight   = 20.0
	plaqueMinWidth = 40.0
	plaqueCharW    = 7.0
	plaquePad      = 16.0
	badgeHeight    = 16.0
	badgeCharW     = 6.0
	rowLabelGap    = 6.0
)

// ElementStyle carries the per-element context RenderTable and RenderRow
// need from the surrounding chart and view.
type ElementStyle struct {
	SectionID string
	Color     string // section color, used for outlines
	Selected  bool
}

func (s ElementStyle) stroke() string {
	switch {
	case s.Selected:
		return ColorSelected
	case s.Color != "":
		return s.Color
	default:
		return ColorOutline
	}
}

// Render draws c as seen with view v.
func Render(c chart.Chart, v View, f Flags) Scene {
	canvas := geometry.Rect{Width: geometry.CanvasWidth, Height: geometry.CanvasHeight}
	scene := Scene{Width: canvas.Width, Height: canvas.Height}

	if f.Grid {
		scene.Items = append(scene.Items, Primitive{Kind: KindGrid, Rect: canvas, Stroke: ColorGridLines})
	}

	var overlay []Primitive
	rowIndex := 0
	for _, s := range c.Sections {
		for _, t := range s.Tables() {
			st := ElementStyle{SectionID: s.ID, Color: s.Color, Selected: v.isSelected(t.ID)}
			scene.Items = append(scene.Items, RenderTable(t, st, f)...)
			if st.Selected && t.IsSpecialArea() && f.Handles {
				overlay = append(overlay, Handles(t.ID, t.Bounds())...)
			}
		}
		for _, r := range s.Rows() {
			st := ElementStyle{SectionID: s.ID, Color: s.Color, Selected: v.isSelected(r.ID)}
			scene.Items = append(scene.Items, RenderRow(r, rowIndex, st, f)...)
			rowIndex++
		}
	}
	scene.Items = append(scene.Items, overlay...)

	if v.Band != nil {
		scene.Items = append(scene.Items, Primitive{
			Kind:   KindBand,
			Rect:   *v.Band,
			Fill:   ColorBandFill,
			Stroke: ColorSelected,
			Dashed: true,
		})
	}
	return scene
}

// RenderTable draws one table: outline, seats, plaque and badge.
func RenderTable(t chart.Table, st ElementStyle, f Flags) []Primitive {
	b := t.Bounds()
	out := []Primitive{{
		Kind:      KindOutline,
		ElementID: t.ID,
		SectionID: st.SectionID,
		Rect:      b,
		Outline:   outlineFor(t),
		Rotation:  t.Rotation,
		Dashed:    t.IsSpecialArea(),
		Selected:  st.Selected,
		Fill:      fillFor(t),
		Stroke:    st.stroke(),
	}}

	for i, p := range seating.Place(seating.TableSeats(t), b, t.Rotation) {
		var seat chart.Seat
		if i < len(t.Seats) {
			seat = t.Seats[i]
		}
		out = append(out, seatMarker(t.ID, st.SectionID, seat, i, p, TableSeatRadius, f))
	}

	if f.Labels {
		out = append(out, plaque(t.ID, st.SectionID, t.Label(), b.Center(), t.Rotation))
	}
	if t.Reserved() {
		out = append(out, badge(t, st.SectionID))
	}
	return out
}

// RenderRow draws one row. index is the row's position among all rows of
// the chart and places rows that have no explicit position.
func RenderRow(r chart.Row, index int, st ElementStyle, f Flags) []Primitive {
	b := r.Bounds(index)
	out := []Primitive{{
		Kind:      KindOutline,
		ElementID: r.ID,
		SectionID: st.SectionID,
		Rect:      b,
		Outline:   OutlineRoundRect,
		Selected:  st.Selected,
		Fill:      "none",
		Stroke:    st.stroke(),
	}}

	for i, p := range seating.Place(seating.RowSeats(r), b, 0) {
		out = append(out, seatMarker(r.ID, st.SectionID, r.Seats[i], i, p, RowSeatRadius, f))
	}

	if f.Labels && r.Label != "" {
		w := plaqueWidth(r.Label)
		out = append(out, Primitive{
			Kind:      KindLabel,
			ElementID: r.ID,
			SectionID: st.SectionID,
			Rect: geometry.Rect{
				X:      b.X - w - rowLabelGap,
				Y:      b.Center().Y - plaqueHeight/2,
				Width:  w,
				Height: plaqueHeight,
			},
			Fill: ColorPlaque,
			Text: r.Label,
		})
	}
	return out
}

// Handles returns the four resize handle primitives of bounds.
func Handles(elementID string, bounds geometry.Rect) []Primitive {
	out := make([]Primitive, 0, len(geometry.Corners))
	for _, c := range geometry.Corners {
		out = append(out, Primitive{
			Kind:      KindHandle,
			ElementID: elementID,
			Rect:      geometry.HandleRect(bounds, c),
			Corner:    c,
			Fill:      ColorFill,
			Stroke:    ColorHandle,
		})
	}
	return out
}

func outlineFor(t chart.Table) Outline {
	switch t.Shape {
	case chart.ShapeRound:
		return OutlineEllipse
	case chart.ShapeRectangular, chart.ShapeSquare:
		return OutlineRect
	default:
		return OutlineRoundRect
	}
}

func fillFor(t chart.Table) string {
	if t.IsSpecialArea() {
		return ColorSpecial
	}
	return ColorFill
}

func seatMarker(elementID, sectionID string, s chart.Seat, i int, p geometry.Point, r float64, f Flags) Primitive {
	number := s.Number
	if number == 0 {
		number = i + 1
	}
	typ := s.Type
	if typ == "" {
		typ = chart.SeatStandard
	}
	status := s.Status
	if status == "" {
		status = chart.StatusAvailable
	}
	m := Primitive{
		Kind:      KindSeat,
		ElementID: elementID,
		SectionID: sectionID,
		Center:    p,
		Radius:    r,
		Fill:      StatusColor(status),
		Stroke:    ColorOutline,
		Seat:      &SeatTag{ID: s.ID, Number: number, Type: string(typ), Status: string(status)},
	}
	if f.SeatNumbers {
		m.Text = strconv.Itoa(number)
	}
	return m
}

func plaqueWidth(text string) float64 {
	return max(plaqueMinWidth, float64(len(text))*plaqueCharW+plaquePad)
}

func plaque(elementID, sectionID, text string, center geometry.Point, rotation float64) Primitive {
	w := plaqueWidth(text)
	return Primitive{
		Kind:      KindLabel,
		ElementID: elementID,
		SectionID: sectionID,
		Rect:      geometry.Rect{X: center.X - w/2, Y: center.Y - plaqueHeight/2, Width: w, Height: plaqueHeight},
		Rotation:  rotation,
		Fill:      ColorPlaque,
		Text:      text,
	}
}

func badge(t chart.Table, sectionID string) Primitive {
	text := "RESERVED"
	if t.Reservation.Type != "" {
		text = t.Reservation.Type
	}
	w := float64(len(text))*badgeCharW + 12
	b := t.Bounds()

	// Pinned to the top-right corner, following the table's rotation.
	anchor := b.Corner(geometry.CornerNE).Rotate(b.Center(), t.Rotation)
	return Primitive{
		Kind:      KindBadge,
		ElementID: t.ID,
		SectionID: sectionID,
		Rect:      geometry.Rect{X: anchor.X - w/2, Y: anchor.Y - badgeHeight/2, Width: w, Height: badgeHeight},
		Rotation:  t.Rotation,
		Fill:      ColorBadge,
		Text:      text,
	}
}
