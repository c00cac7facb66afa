// Package geometry provides the coordinate primitives shared by the seating
// engine: points and rectangles in model space, grid snapping, canvas bounds
// clamping, and the view transform that maps pointer coordinates onto the
// fixed virtual canvas.
//
// # Model Space
//
// Every element of a seating chart lives on a virtual canvas of
// [CanvasWidth] × [CanvasHeight] units with the origin at the top-left corner
// and Y increasing downward. Hit-testing, drop placement and rubber-band
// selection all operate in model space; raw screen pixels are converted once,
// through [ViewTransform.ScreenToModel], as soon as they enter the engine.
//
// # Grid and Bounds
//
// Positions proposed by a drag or a palette drop are first snapped with
// [SnapToGrid] and then clamped with [ConstrainToBounds]:
//
//	x, y := geometry.SnapToGrid(p.X), geometry.SnapToGrid(p.Y)
//	x, y = geometry.ConstrainToBounds(x, y, w, h)
//
// Both functions are total: they accept any input and always return a valid
// position, so a live drag is never interrupted by an error.
package geometry
