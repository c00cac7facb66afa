package interact

import (
	"github.com/matzehuels/seatplan/pkg/chart"
	"github.com/matzehuels/seatplan/pkg/geometry"
)

func (e *Editor) beginDrag(ev PointerEvent, grabbed chart.Element) {
	s := Dragging{Anchor: ev.Screen, Grabbed: grabbed.ID, Started: e.now()}

	if len(e.selection) >= 2 && e.Selected(grabbed.ID) {
		s.Group = true
		for _, el := range e.chart.Elements() {
			if e.Selected(el.ID) {
				s.Members = append(s.Members, member(el))
			}
		}
	} else {
		s.Members = []DragMember{member(grabbed)}
		e.setSelection([]string{grabbed.ID})
		e.emitSelect(grabbed.ID)
	}
	e.begin(s, len(s.Members))
}

func member(el chart.Element) DragMember {
	return DragMember{
		ID:        el.ID,
		SectionID: el.SectionID,
		Kind:      el.Kind,
		Start:     el.Bounds,
		Last:      el.Bounds.Min(),
	}
}

// moveDrag applies the pointer displacement since the anchor to every
// member and requests the positions that changed.
func (e *Editor) moveDrag(s Dragging, ev PointerEvent) Dragging {
	delta := e.view.ScreenDeltaToModel(ev.Screen.Sub(s.Anchor))
	members := make([]DragMember, len(s.Members))
	copy(members, s.Members)
	for i, m := range members {
		p := dragTarget(m.Start, delta)
		if p == m.Last {
			continue
		}
		e.emitPosition(m, p)
		members[i].Last = p
		s.Updates++
	}
	s.Members = members
	return s
}

// dragTarget returns where an element starting at r lands after moving by
// delta: snapped to the grid and kept on the canvas.
func dragTarget(r geometry.Rect, delta geometry.Point) geometry.Point {
	p := geometry.SnapPoint(r.Min().Add(delta))
	x, y := geometry.ConstrainToBounds(p.X, p.Y, r.Width, r.Height)
	return geometry.Pt(x, y)
}

// Nudge moves every selected element by (dx, dy) grid steps through the
// same snap and clamp path as a drag. It returns ErrBusy during a gesture.
func (e *Editor) Nudge(dx, dy int) error {
	if _, idle := e.state.(Idle); !idle {
		return ErrBusy
	}
	delta := geometry.Pt(float64(dx)*geometry.GridSize, float64(dy)*geometry.GridSize)
	for _, el := range e.chart.Elements() {
		if !e.Selected(el.ID) {
			continue
		}
		m := member(el)
		if p := dragTarget(m.Start, delta); p != m.Last {
			e.emitPosition(m, p)
		}
	}
	return nil
}
