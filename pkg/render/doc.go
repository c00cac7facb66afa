// Package render turns a chart snapshot into drawing primitives.
//
// # Overview
//
// Rendering is split in two steps. [Render] walks a [chart.Chart] and
// produces a [Scene]: a flat, ordered list of [Primitive] values in model
// coordinates. Sinks in the [sink] subpackage then turn a scene into an
// output format (SVG, JSON, or a terminal raster).
//
//	scene := render.Render(c, render.View{Selected: ids}, render.DefaultFlags())
//	svg := sink.RenderSVG(scene, sink.WithInteraction())
//
// Render is pure. The same chart, view and flags always produce the same
// scene, and the chart is never modified.
//
// # Primitives
//
// A scene draws, in order:
//
//   - an optional grid
//   - each element's outline (rect, rounded rect or ellipse, rotated)
//   - seat markers colored by status via [StatusColor]
//   - label plaques and reservation badges
//   - resize handles on selected special areas
//   - the rubber-band selection rectangle
//
// Seat positions come from the [seating] package, so what is drawn always
// matches what the editor hit-tests.
//
// [sink]: github.com/matzehuels/seatplan/pkg/render/sink
// [seating]: github.com/matzehuels/seatplan/pkg/seating
package render
