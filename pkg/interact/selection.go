package interact

import (
	"github.com/matzehuels/seatplan/pkg/geometry"
)

func (e *Editor) beginSelect(m geometry.Point) {
	e.begin(Selecting{Start: m, Current: m, Started: e.now()}, 0)
}

// overlapping returns the ids of every element whose bounding box overlaps
// band, in draw order. A rotated table is boxed as drawn.
func (e *Editor) overlapping(band geometry.Rect) []string {
	var ids []string
	for _, el := range e.chart.Elements() {
		box := el.Bounds
		if t, _, ok := e.chart.Table(el.ID); ok && t.Rotation != 0 {
			box = box.Rotated(t.Rotation)
		}
		if box.Overlaps(band) {
			ids = append(ids, el.ID)
		}
	}
	return ids
}

// Select makes id the only selected element. Unknown ids are ignored.
func (e *Editor) Select(id string) bool {
	if _, ok := e.chart.Element(id); !ok {
		return false
	}
	e.setSelection([]string{id})
	e.emitSelect(id)
	return true
}

// SelectRect selects every element overlapping the model-space rectangle
// r, as if a rubber band had been released there.
func (e *Editor) SelectRect(r geometry.Rect) []string {
	ids := e.overlapping(r)
	e.setSelection(ids)
	e.emitMultiSelect()
	return e.Selection()
}

// SelectAll selects every element.
func (e *Editor) SelectAll() {
	var ids []string
	for _, el := range e.chart.Elements() {
		ids = append(ids, el.ID)
	}
	e.setSelection(ids)
	e.emitMultiSelect()
}

// ClearSelection empties the selection.
func (e *Editor) ClearSelection() {
	if len(e.selection) == 0 {
		return
	}
	e.setSelection(nil)
	e.emitMultiSelect()
}
