// Package histogram assembles a multi-series histogram into a scene tree.
//
// [Render] is a pure function from a [chart.ChartSpec] to a root
// [scene.Node]: it validates the spec, derives the plot area, and emits, in
// this fixed order, the description, the defs block (background gradient and
// embedded stylesheet), the background layer, the plot border, the x-axis
// label group, the y-axis label group and the optional caption.
//
//	root, err := histogram.Render(spec)
//	if err != nil {
//	    // INVALID_SPEC or INVALID_LAYOUT, no scene was built
//	}
//	svg := root.Marshal()
//
// # Options
//
//   - [WithInsets]: override the default padding insets
//   - [WithTicks]: choose fixed (reference) or linear (data-driven) y ticks
//   - [WithMarks]: draw one bar per present value
//   - [WithLegend]: list the series names in the plot corner
//
// Marks and legend are appended after the y-axis group and before the
// caption. Missing values never produce a mark.
//
// Render holds no state between calls and may be called concurrently.
//
// [chart.ChartSpec]: github.com/matzehuels/histoscene/pkg/chart.ChartSpec
// [scene.Node]: github.com/matzehuels/histoscene/pkg/render/histogram/scene.Node
package histogram
