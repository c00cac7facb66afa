package interact

import (
	"io"
	"math"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/seatplan/pkg/chart"
	"github.com/matzehuels/seatplan/pkg/geometry"
	"github.com/matzehuels/seatplan/pkg/observability"
)

// Editor is the interaction orchestrator. It is not safe for concurrent
// use; hosts deliver events from a single goroutine.
type Editor struct {
	chart     chart.Chart
	view      geometry.ViewTransform
	state     State
	selection []string
	cb        Callbacks
	bindings  Bindings
	logger    *log.Logger
	now       func() time.Time
}

// Option configures an Editor.
type Option func(*Editor)

// WithLogger enables debug logging of gestures.
func WithLogger(l *log.Logger) Option {
	return func(e *Editor) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithBindings replaces the default key bindings.
func WithBindings(b Bindings) Option {
	return func(e *Editor) {
		if b != nil {
			e.bindings = b
		}
	}
}

// New returns an idle editor with an empty snapshot and the identity view.
func New(cb Callbacks, opts ...Option) *Editor {
	e := &Editor{
		view:     geometry.Identity(),
		state:    Idle{},
		cb:       cb,
		bindings: DefaultBindings(),
		logger:   log.New(io.Discard),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SetSnapshot replaces the chart the editor works on. Selected ids that no
// longer exist are dropped silently.
func (e *Editor) SetSnapshot(c chart.Chart) {
	e.chart = c
	e.selection = slices.DeleteFunc(e.selection, func(id string) bool {
		_, ok := c.Element(id)
		return !ok
	})
}

// Snapshot returns the chart last supplied by the host.
func (e *Editor) Snapshot() chart.Chart { return e.chart }

// SetView sets the transform from model to screen coordinates.
func (e *Editor) SetView(v geometry.ViewTransform) { e.view = v }

// View returns the active view transform.
func (e *Editor) View() geometry.ViewTransform { return e.view }

// State returns the current interaction state.
func (e *Editor) State() State { return e.state }

// Selection returns a copy of the selected ids in selection order.
func (e *Editor) Selection() []string { return slices.Clone(e.selection) }

// Selected reports whether id is selected.
func (e *Editor) Selected(id string) bool { return slices.Contains(e.selection, id) }

// Bindings returns the active key bindings.
func (e *Editor) Bindings() Bindings { return e.bindings }

// Band returns the active rubber band in model space, or nil outside a
// rubber-band gesture.
func (e *Editor) Band() *geometry.Rect {
	s, ok := e.state.(Selecting)
	if !ok {
		return nil
	}
	b := s.Band()
	return &b
}

// HitTest reports what lies under screen point p. Resize handles of a
// selected special area win over elements; among elements the one drawn
// last wins.
func (e *Editor) HitTest(p geometry.Point) Target {
	return e.hitTest(e.view.ScreenToModel(p))
}

func (e *Editor) hitTest(m geometry.Point) Target {
	elems := e.chart.Elements()
	for i := len(elems) - 1; i >= 0; i-- {
		el := elems[i]
		if !el.Special || !e.Selected(el.ID) {
			continue
		}
		for _, c := range geometry.Corners {
			if geometry.HandleRect(el.Bounds, c).Contains(m) {
				return Target{Kind: TargetHandle, Element: el, Corner: c}
			}
		}
	}
	for i := len(elems) - 1; i >= 0; i-- {
		if e.contains(elems[i], m) {
			return Target{Kind: TargetElement, Element: elems[i]}
		}
	}
	return Target{}
}

// contains tests m against el's footprint, undoing table rotation.
func (e *Editor) contains(el chart.Element, m geometry.Point) bool {
	if el.Kind == chart.KindTable {
		if t, _, ok := e.chart.Table(el.ID); ok && t.Rotation != 0 {
			m = m.Rotate(el.Bounds.Center(), -t.Rotation)
		}
	}
	return el.Bounds.Contains(m)
}

// PointerDown starts a gesture. It returns ErrBusy when a gesture is
// already active.
func (e *Editor) PointerDown(ev PointerEvent) error {
	if _, idle := e.state.(Idle); !idle {
		e.logger.Debug("pointer-down ignored", "state", e.state.Name())
		return ErrBusy
	}
	m := e.view.ScreenToModel(ev.Screen)
	target := e.hitTest(m)

	switch target.Kind {
	case TargetHandle:
		e.beginResize(ev, target)
	case TargetElement:
		e.beginDrag(ev, target.Element)
	default:
		if ev.Mods.selects() {
			e.beginSelect(m)
			return nil
		}
		if len(e.selection) > 0 {
			e.setSelection(nil)
			e.emitMultiSelect()
		}
	}
	return nil
}

// PointerMove advances the active gesture. It does nothing while idle.
func (e *Editor) PointerMove(ev PointerEvent) {
	switch s := e.state.(type) {
	case Dragging:
		e.state = e.moveDrag(s, ev)
	case Resizing:
		e.state = e.moveResize(s, ev)
	case Selecting:
		s.Current = e.view.ScreenToModel(ev.Screen)
		e.state = s
	}
}

// PointerUp ends the active gesture. Drags and resizes push nothing on
// release; the last move already requested the final geometry.
func (e *Editor) PointerUp(ev PointerEvent) {
	switch s := e.state.(type) {
	case Dragging:
		if s.Group && s.Updates == 0 {
			// A click without movement on a group member selects just
			// that member.
			e.setSelection([]string{s.Grabbed})
			e.emitSelect(s.Grabbed)
		}
		e.end(s.Name(), s.Updates, s.Started)
	case Resizing:
		e.end(s.Name(), s.Updates, s.Started)
	case Selecting:
		s.Current = e.view.ScreenToModel(ev.Screen)
		ids := e.overlapping(s.Band())
		e.setSelection(ids)
		e.emitMultiSelect()
		e.end(s.Name(), 0, s.Started)
	}
}

// Cancel aborts the active gesture. Drags and resizes request the starting
// geometry again so the host can roll back. It reports whether a gesture
// was active.
func (e *Editor) Cancel() bool {
	switch s := e.state.(type) {
	case Dragging:
		for _, m := range s.Members {
			if m.Last != m.Start.Min() {
				e.emitPosition(m, m.Start.Min())
			}
		}
		e.end(s.Name(), s.Updates, s.Started)
	case Resizing:
		if s.Last != s.Start {
			e.emitRect(s.SectionID, s.TableID, s.Start)
		}
		e.end(s.Name(), s.Updates, s.Started)
	case Selecting:
		e.end(s.Name(), 0, s.Started)
	default:
		return false
	}
	return true
}

func (e *Editor) begin(s State, elements int) {
	e.state = s
	observability.Interaction().OnGestureStart(s.Name(), elements)
	e.logger.Debug("gesture started", "kind", s.Name(), "elements", elements)
}

func (e *Editor) end(kind string, updates int, started time.Time) {
	e.state = Idle{}
	elapsed := e.now().Sub(started)
	observability.Interaction().OnGestureEnd(kind, updates, elapsed)
	e.logger.Debug("gesture ended", "kind", kind, "updates", updates, "elapsed", elapsed)
}

func (e *Editor) setSelection(ids []string) {
	e.selection = slices.Clone(ids)
}

func (e *Editor) emitSelect(id string) {
	if e.cb.OnSelect != nil {
		e.cb.OnSelect(id)
	}
}

func (e *Editor) emitMultiSelect() {
	if e.cb.OnMultiSelect != nil {
		e.cb.OnMultiSelect(e.Selection())
	}
}

// emitPosition requests that member m move to p.
func (e *Editor) emitPosition(m DragMember, p geometry.Point) {
	switch m.Kind {
	case chart.KindTable:
		t, sectionID, ok := e.chart.Table(m.ID)
		if ok && e.cb.OnTableUpdate != nil {
			e.cb.OnTableUpdate(sectionID, t.WithPosition(p.X, p.Y))
		}
	case chart.KindRow:
		r, sectionID, ok := e.chart.Row(m.ID)
		if ok && e.cb.OnRowUpdate != nil {
			e.cb.OnRowUpdate(sectionID, r.WithPosition(p.X, p.Y))
		}
	}
}

func (e *Editor) emitRect(sectionID, tableID string, r geometry.Rect) {
	t, _, ok := e.chart.Table(tableID)
	if ok && e.cb.OnTableUpdate != nil {
		e.cb.OnTableUpdate(sectionID, t.WithRect(r))
	}
}

// normalizeAngle maps deg into [0, 360).
func normalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg == 360 {
		return 0
	}
	return deg
}
