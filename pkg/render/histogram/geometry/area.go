package geometry

import (
	"github.com/matzehuels/histoscene/pkg/errors"
)

// LabelOffset shifts each x-axis label inward from its slot's left edge.
const LabelOffset = 20

// XLabelGap is the distance between the plot bottom and the x-axis labels.
const XLabelGap = 15

// Insets are the paddings between the canvas edge and the plot area.
type Insets struct {
	Left   int `json:"left" toml:"left"`
	Right  int `json:"right" toml:"right"`
	Top    int `json:"top" toml:"top"`
	Bottom int `json:"bottom" toml:"bottom"`
}

// DefaultInsets leave room for y-axis labels on the left and the caption on
// top.
var DefaultInsets = Insets{Left: 60, Right: 15, Top: 45, Bottom: 25}

// PlotArea is the inner pixel rectangle available to axes and marks.
type PlotArea struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Right is the x coordinate of the plot's right edge.
func (a PlotArea) Right() int { return a.Left + a.Width }

// Bottom is the y coordinate of the plot's bottom edge, where zero values sit.
func (a PlotArea) Bottom() int { return a.Top + a.Height }

// ComputePlotArea derives the plot area of a canvas. It fails with
// INVALID_LAYOUT when any inset is negative or the remaining width or height
// would not be strictly positive.
func ComputePlotArea(canvasWidth, canvasHeight int, in Insets) (PlotArea, error) {
	if in.Left < 0 || in.Right < 0 || in.Top < 0 || in.Bottom < 0 {
		return PlotArea{}, errors.New(errors.ErrCodeInvalidLayout, "insets must be non-negative, got %+v", in)
	}
	a := PlotArea{
		Left:   in.Left,
		Top:    in.Top,
		Width:  canvasWidth - in.Left - in.Right,
		Height: canvasHeight - in.Top - in.Bottom,
	}
	if a.Width <= 0 || a.Height <= 0 {
		return PlotArea{}, errors.New(errors.ErrCodeInvalidLayout,
			"canvas %dx%d is too small for insets %+v (plot area %dx%d)",
			canvasWidth, canvasHeight, in, a.Width, a.Height)
	}
	return a, nil
}

// SlotWidth is the width of one of n equal category slots, truncated to
// whole pixels. Leftover pixels stay at the right end of the plot.
func SlotWidth(n int, area PlotArea) (int, error) {
	if n <= 0 {
		return 0, errors.New(errors.ErrCodeInvalidSpec, "category count must be positive, got %d", n)
	}
	dx := area.Width / n
	if dx == 0 {
		return 0, errors.New(errors.ErrCodeInvalidLayout,
			"plot width %d cannot hold %d categories", area.Width, n)
	}
	return dx, nil
}

// CategoryX returns the x coordinate of the label for category i of n.
// It is strictly increasing in i.
func CategoryX(i, n int, area PlotArea) (int, error) {
	dx, err := SlotWidth(n, area)
	if err != nil {
		return 0, err
	}
	if i < 0 || i >= n {
		return 0, errors.New(errors.ErrCodeInvalidInput, "category index %d out of range [0, %d)", i, n)
	}
	return area.Left + LabelOffset + i*dx, nil
}

// XLabelY is the baseline row of the x-axis labels.
func XLabelY(area PlotArea) int { return area.Bottom() + XLabelGap }
