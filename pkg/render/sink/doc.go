// Package sink writes a [render.Scene] in a concrete output format.
//
// # Formats
//
//   - [RenderSVG]: standalone SVG with optional grid, background and hover
//     interaction
//   - [RenderJSON]: the scene as pretty-printed JSON for external tools
//   - [RenderText]: a rune raster for terminals
//
// Sinks never look at the chart. Everything they draw is already in the
// scene, so every format shows exactly the same picture.
//
//	scene := render.Render(c, render.View{}, render.DefaultFlags())
//	svg := sink.RenderSVG(scene, sink.WithGrid(), sink.WithInteraction())
//	txt := sink.RenderText(scene, 120, 40)
//
// [Rasterize] exposes the raster behind [RenderText] together with the
// colors of each cell, so a terminal UI can style it.
//
// [render.Scene]: github.com/matzehuels/seatplan/pkg/render.Scene
package sink
