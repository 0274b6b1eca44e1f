// Package render groups the chart renderers.
//
// # Overview
//
// Rendering happens in two steps. A renderer turns a chart spec into a scene
// tree, an ordered in-memory SVG element tree with no I/O attached. A sink
// then serializes the tree. Keeping the steps apart lets the pipeline cache
// scenes and artifacts separately, and lets tests query the tree instead of
// comparing markup strings.
//
// # Histogram
//
// The [histogram] subpackage renders multi-series histograms:
//   - [histogram/geometry]: plot area, category positions, y ticks, bar rects
//   - [histogram/styles]: the embedded stylesheet and its class names
//   - [histogram/scene]: the element tree and its markup writer
//   - [histogram/sink]: SVG, JSON and PNG output
//
//	root, err := histogram.Render(spec, histogram.WithTicks(geometry.TicksLinear))
//	svg := sink.RenderSVG(root)
//	png, err := sink.RenderPNG(root, sink.WithScale(2))
//
// [histogram]: github.com/matzehuels/histoscene/pkg/render/histogram
// [histogram/geometry]: github.com/matzehuels/histoscene/pkg/render/histogram/geometry
// [histogram/styles]: github.com/matzehuels/histoscene/pkg/render/histogram/styles
// [histogram/scene]: github.com/matzehuels/histoscene/pkg/render/histogram/scene
// [histogram/sink]: github.com/matzehuels/histoscene/pkg/render/histogram/sink
package render
