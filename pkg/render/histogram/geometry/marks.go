package geometry

import (
	"github.com/matzehuels/histoscene/pkg/errors"
)

// barGroupFill is the share of a category slot covered by its bar group.
const barGroupFill = 0.7

// Rect is a pixel rectangle with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// BarSlot identifies one bar: a series within a category.
type BarSlot struct {
	Series, SeriesCount     int
	Category, CategoryCount int
}

// Bar returns the rectangle of the bar for value v in slot b. The bars of a
// category sit side by side, centered in the category slot, and rise from
// the plot bottom by s.Height(v).
func Bar(b BarSlot, v uint64, area PlotArea, s Scale) (Rect, error) {
	if b.SeriesCount <= 0 || b.Series < 0 || b.Series >= b.SeriesCount {
		return Rect{}, errors.New(errors.ErrCodeInvalidInput, "series index %d out of range [0, %d)", b.Series, b.SeriesCount)
	}
	dx, err := SlotWidth(b.CategoryCount, area)
	if err != nil {
		return Rect{}, err
	}
	if b.Category < 0 || b.Category >= b.CategoryCount {
		return Rect{}, errors.New(errors.ErrCodeInvalidInput, "category index %d out of range [0, %d)", b.Category, b.CategoryCount)
	}

	slot := float64(dx)
	group := slot * barGroupFill
	w := group / float64(b.SeriesCount)
	x := float64(area.Left) + float64(b.Category)*slot + (slot-group)/2 + float64(b.Series)*w
	h := s.Height(v)
	return Rect{X: x, Y: float64(area.Bottom()) - h, W: w, H: h}, nil
}
