// Package geometry turns chart parameters into pixel geometry.
//
// It derives the plot-area rectangle from the canvas size and four padding
// insets, places category slots along the x-axis, and maps data values to
// pixel rows. Everything here is a pure function of its arguments.
//
// # Plot Area
//
// [ComputePlotArea] subtracts the insets from the canvas. An inset set that
// leaves a zero or negative width or height is a configuration error; the
// area is never clamped.
//
//	area, err := geometry.ComputePlotArea(800, 400, geometry.DefaultInsets)
//	// area = {Left: 60, Top: 45, Width: 725, Height: 330}
//
// # Category Positions
//
// [CategoryX] splits the plot width into equal slots and returns the label
// anchor of slot i, shifted [LabelOffset] pixels inward from the slot edge.
//
// # Value Axis
//
// Two tick modes exist. [TicksFixed] reproduces the illustrative percentage
// ladder of the reference chart at fixed rows, independent of the data.
// [TicksLinear] builds a [Scale] from the largest present value, rounded up to
// a nice number, and places evenly spaced ticks on it. Bars ([Bar]) always use
// a linear scale so their heights are proportional to the data.
package geometry
