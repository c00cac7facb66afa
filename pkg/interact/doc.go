// Package interact implements the pointer-driven seating editor.
//
// # Overview
//
// An [Editor] owns the current interaction state and nothing else. The host
// owns the chart: it hands the editor a read-only snapshot with
// [Editor.SetSnapshot], forwards pointer and key events, and receives change
// requests through [Callbacks]. The editor never mutates the snapshot and
// never keeps a private modified copy; after a request it keeps reporting
// the host's snapshot until the host supplies the next one.
//
//	ed := interact.New(interact.Callbacks{
//	    OnTableUpdate: func(sectionID string, t chart.Table) { store.PutTable(sectionID, t) },
//	    OnSelect:      func(id string) { fmt.Println("selected", id) },
//	})
//	ed.SetSnapshot(store.Chart())
//	ed.SetView(geometry.NewViewTransform(zoom, panX, panY))
//	ed.PointerDown(interact.PointerEvent{Screen: geometry.Pt(x, y)})
//
// # State Machine
//
// At most one gesture is active. The state is one of [Idle], [Dragging],
// [Resizing] or [Selecting]:
//
//	Idle → Dragging  → Idle   pointer-down on an element
//	Idle → Resizing  → Idle   pointer-down on a resize handle
//	Idle → Selecting → Idle   modifier + pointer-down on empty background
//
// A pointer-down or drop while a gesture is active returns [ErrBusy] and
// changes nothing.
//
// # Coordinates
//
// Pointer events carry screen coordinates. Every hit test, drag delta,
// resize delta, rubber band and drop point is converted to model space
// through the editor's [geometry.ViewTransform] first.
//
// # Key Bindings
//
// [Editor.HandleKey] looks keys up in a binding table ([DefaultBindings]
// unless replaced with [WithBindings]) and runs the bound [Action].
package interact
