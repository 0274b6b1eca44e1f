// Package sink turns a histogram scene into bytes.
//
// A "sink" consumes the [scene.Node] tree produced by [histogram.Render] and
// writes one output format:
//
//   - SVG: the scene as a standalone markup document
//   - JSON: the scene tree itself, for debugging and API consumers
//   - PNG: an in-process rasterization of the scene
//
// # SVG Output
//
// [RenderSVG] serializes the tree. The output is byte-stable for a given
// scene, so it can be cached and diffed.
//
//	svg := sink.RenderSVG(root, sink.WithXMLDeclaration())
//
// # PNG Output
//
// [RenderPNG] rasterizes the subset of SVG the histogram uses: rectangles
// with solid or radial-gradient fills, strokes, and text. Shapes go through
// rasterx; text is drawn with the Go Regular face from x/image. Media query
// rules are not evaluated.
//
//	png, err := sink.RenderPNG(root, sink.WithScale(2))
//
// [scene.Node]: github.com/matzehuels/histoscene/pkg/render/histogram/scene.Node
// [histogram.Render]: github.com/matzehuels/histoscene/pkg/render/histogram.Render
package sink
