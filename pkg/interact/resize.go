package interact

import (
	"github.com/matzehuels/seatplan/pkg/geometry"
)

func (e *Editor) beginResize(ev PointerEvent, target Target) {
	el := target.Element
	e.begin(Resizing{
		Anchor:    ev.Screen,
		TableID:   el.ID,
		SectionID: el.SectionID,
		Corner:    target.Corner,
		Start:     el.Bounds,
		Last:      el.Bounds,
		Started:   e.now(),
	}, 1)
}

func (e *Editor) moveResize(s Resizing, ev PointerEvent) Resizing {
	d := e.view.ScreenDeltaToModel(ev.Screen.Sub(s.Anchor))
	r := ResizeRect(s.Start, s.Corner, d)
	if r == s.Last {
		return s
	}
	e.emitRect(s.SectionID, s.TableID, r)
	s.Last = r
	s.Updates++
	return s
}

// ResizeRect applies a model-space pointer displacement d to corner c of
// start. Width and height are clamped to the minimum size and the canvas
// independently of the position, then the position is kept on the canvas.
// Dragging any corner other than se can therefore move the opposite corner
// once a clamp engages.
func ResizeRect(start geometry.Rect, c geometry.Corner, d geometry.Point) geometry.Rect {
	r := start
	switch c {
	case geometry.CornerSE:
		r.Width += d.X
		r.Height += d.Y
	case geometry.CornerNE:
		r.Width += d.X
		r.Height -= d.Y
		r.Y += d.Y
	case geometry.CornerSW:
		r.Width -= d.X
		r.X += d.X
		r.Height += d.Y
	case geometry.CornerNW:
		r.Width -= d.X
		r.Height -= d.Y
		r.X += d.X
		r.Y += d.Y
	}
	r.Width = min(max(r.Width, geometry.MinWidth), geometry.CanvasWidth)
	r.Height = min(max(r.Height, geometry.MinHeight), geometry.CanvasHeight)
	return geometry.ConstrainRect(r)
}
