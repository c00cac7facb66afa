package chart

import (
	"github.com/matzehuels/seatplan/pkg/errors"
)

// Validate checks the structural invariants a host must uphold: every id is
// present and globally unique, shapes are known, colors are well formed, and
// no table asks for more than errors.MaxCapacity seats.
//
// Other geometry is never rejected. Negative capacity reads as 0. A seat count that disagrees with capacity,
// an undersized footprint or an element outside the canvas is accepted:
// seat layout derives from capacity and positions are clamped on the next
// interaction.
func (c Chart) Validate() error {
	seen := make(map[string]string)
	check := func(id, what string) error {
		if err := errors.ValidateID(id); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidChart, err, "%s id", what)
		}
		if prev, dup := seen[id]; dup {
			return errors.New(errors.ErrCodeInvalidChart, "duplicate id %q (%s and %s)", id, prev, what)
		}
		seen[id] = what
		return nil
	}

	for _, s := range c.Sections {
		if err := check(s.ID, "section"); err != nil {
			return err
		}
		if err := errors.ValidateColor(s.Color); err != nil {
			return err
		}
		for _, t := range s.Tables() {
			if err := check(t.ID, "table"); err != nil {
				return err
			}
			if _, err := ParseShape(string(t.Shape)); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidChart, err, "table %q", t.ID)
			}
			if t.Capacity > 0 {
				if err := errors.ValidateCapacity(t.Capacity); err != nil {
					return errors.Wrap(errors.ErrCodeInvalidChart, err, "table %q", t.ID)
				}
			}
			for _, seat := range t.Seats {
				if err := check(seat.ID, "seat"); err != nil {
					return err
				}
			}
		}
		labels := make(map[string]bool)
		for _, r := range s.Rows() {
			if err := check(r.ID, "row"); err != nil {
				return err
			}
			if labels[r.Label] {
				return errors.New(errors.ErrCodeInvalidChart, "section %q has duplicate row label %q", s.ID, r.Label)
			}
			labels[r.Label] = true
			for _, seat := range r.Seats {
				if err := check(seat.ID, "seat"); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
