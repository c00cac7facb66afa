package interact

import (
	"github.com/matzehuels/seatplan/pkg/chart"
	"github.com/matzehuels/seatplan/pkg/errors"
)

// DeleteSelection requests removal of every selected element, one
// OnSectionUpdate per affected section, and clears the selection. It
// returns the number of elements removed.
func (e *Editor) DeleteSelection() int {
	if len(e.selection) == 0 {
		return 0
	}
	ids := make(map[string]bool, len(e.selection))
	for _, id := range e.selection {
		ids[id] = true
	}
	total := 0
	for _, s := range e.chart.Sections {
		updated, n := s.Without(ids)
		if n == 0 {
			continue
		}
		total += n
		if e.cb.OnSectionUpdate != nil {
			e.cb.OnSectionUpdate(updated)
		}
	}
	e.logger.Debug("deleted selection", "elements", total)
	e.ClearSelection()
	return total
}

// DeleteSection requests removal of a whole section. Hosts confirm with the
// user before deleting a section that still holds elements.
func (e *Editor) DeleteSection(sectionID string) error {
	s, ok := e.chart.Section(sectionID)
	if !ok {
		return errors.New(errors.ErrCodeNotFound, "section %q not found", sectionID)
	}
	if e.cb.OnSectionDelete != nil {
		e.cb.OnSectionDelete(sectionID)
	}
	drop := make(map[string]bool)
	for _, t := range s.Tables() {
		drop[t.ID] = true
	}
	for _, r := range s.Rows() {
		drop[r.ID] = true
	}
	kept := e.selection[:0:0]
	for _, id := range e.selection {
		if !drop[id] {
			kept = append(kept, id)
		}
	}
	if len(kept) != len(e.selection) {
		e.setSelection(kept)
		e.emitMultiSelect()
	}
	return nil
}

// SetCapacity requests a table with exactly n seats. Existing seats are kept
// in order; capacity 0 turns the table into a special area.
func (e *Editor) SetCapacity(tableID string, n int) error {
	if err := errors.ValidateCapacity(n); err != nil {
		return err
	}
	t, sectionID, ok := e.chart.Table(tableID)
	if !ok {
		return errors.New(errors.ErrCodeNotFound, "table %q not found", tableID)
	}
	if e.cb.OnTableUpdate != nil {
		e.cb.OnTableUpdate(sectionID, t.WithCapacity(n))
	}
	return nil
}

// Rotate requests that a table be turned by deg degrees clockwise. The
// resulting rotation is normalized into [0, 360).
func (e *Editor) Rotate(tableID string, deg float64) error {
	t, sectionID, ok := e.chart.Table(tableID)
	if !ok {
		return errors.New(errors.ErrCodeNotFound, "table %q not found", tableID)
	}
	t.Rotation = normalizeAngle(t.Rotation + deg)
	if e.cb.OnTableUpdate != nil {
		e.cb.OnTableUpdate(sectionID, t)
	}
	return nil
}

// rotateSelection turns every selected table. Rows do not rotate.
func (e *Editor) rotateSelection(deg float64) {
	for _, id := range e.selection {
		if el, ok := e.chart.Element(id); ok && el.Kind == chart.KindTable {
			_ = e.Rotate(id, deg)
		}
	}
}
