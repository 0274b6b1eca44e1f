package geometry

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/matzehuels/histoscene/pkg/errors"
)

// TickMode selects how y-axis ticks are produced.
type TickMode string

const (
	// TicksFixed renders the illustrative percentage ladder at fixed rows.
	TicksFixed TickMode = "fixed"
	// TicksLinear derives ticks from the largest present data value.
	TicksLinear TickMode = "linear"
)

// DefaultTickCount is the number of intervals a linear axis aims for.
const DefaultTickCount = 5

// YTickX is the horizontal anchor of the y-axis labels.
const YTickX = 40

// ParseTickMode parses a tick mode name; the empty string selects TicksFixed.
func ParseTickMode(s string) (TickMode, error) {
	switch TickMode(s) {
	case "", TicksFixed:
		return TicksFixed, nil
	case TicksLinear:
		return TicksLinear, nil
	}
	return "", errors.ValidateChoice("tick mode", s, string(TicksFixed), string(TicksLinear))
}

// Tick is one labeled y-axis reference.
type Tick struct {
	Value uint64  `json:"value"`
	Y     float64 `json:"y"`
	Label string  `json:"label"`
}

var fixedLadder = []string{
	"0.00%", "0.02%", "0.04%", "0.06%", "0.08%",
	"0.010%", "0.012%", "0.014%", "0.016%",
}

const (
	fixedFirstRow = 420
	fixedRowStep  = 45
)

// FixedTicks returns the reference ladder: nine percentage labels from
// row 420 upward in steps of 45 pixels. Rows do not depend on the canvas.
func FixedTicks() []Tick {
	ticks := make([]Tick, len(fixedLadder))
	for i, label := range fixedLadder {
		ticks[i] = Tick{
			Value: uint64(i),
			Y:     float64(fixedFirstRow - i*fixedRowStep),
			Label: label,
		}
	}
	return ticks
}

// YTicks dispatches on mode. For TicksLinear, maxValue is the largest present
// value of the chart (0 when there is none).
func YTicks(mode TickMode, maxValue uint64, area PlotArea) ([]Tick, error) {
	switch mode {
	case TicksFixed, "":
		return FixedTicks(), nil
	case TicksLinear:
		return NewScale(maxValue, area, DefaultTickCount).Ticks(), nil
	}
	return nil, errors.New(errors.ErrCodeInvalidInput, "unknown tick mode %q", mode)
}

var numberPrinter = message.NewPrinter(language.English)

// FormatCount renders n with thousands separators ("35,129,025").
func FormatCount(n uint64) string {
	return numberPrinter.Sprintf("%d", n)
}
