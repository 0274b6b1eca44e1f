package geometry

import (
	"math"
)

// Scale maps values in [0, Max] linearly onto the plot height.
// Zero sits on the plot bottom, Max on the plot top.
type Scale struct {
	Max  uint64 // nice upper bound of the domain
	Step uint64 // tick interval
	area PlotArea
}

// NewScale builds a scale whose domain is [0, maxValue] rounded up to a
// multiple of a 1-2-5 step, aiming for tickCount intervals. A zero maxValue
// yields the unit domain [0, 1].
func NewScale(maxValue uint64, area PlotArea, tickCount int) Scale {
	if tickCount <= 0 {
		tickCount = DefaultTickCount
	}
	if maxValue == 0 {
		return Scale{Max: 1, Step: 1, area: area}
	}
	step := niceStep(ceilDiv(maxValue, uint64(tickCount)))
	if q := ceilDiv(maxValue, step); q <= math.MaxUint64/step {
		return Scale{Max: q * step, Step: step, area: area}
	}
	// No multiple of step above maxValue fits in a uint64.
	return Scale{Max: maxValue, Step: ceilDiv(maxValue, uint64(tickCount)), area: area}
}

// Y returns the pixel row of v. Values above Max land above the plot top.
func (s Scale) Y(v uint64) float64 {
	return float64(s.area.Bottom()) - s.Height(v)
}

// Height returns the pixel extent of v measured from the plot bottom.
func (s Scale) Height(v uint64) float64 {
	return float64(v) / float64(s.Max) * float64(s.area.Height)
}

// Ticks returns labeled ticks from 0 to Max inclusive, bottom to top.
func (s Scale) Ticks() []Tick {
	n := s.Max / s.Step
	ticks := make([]Tick, 0, n+1)
	for i := uint64(0); i <= n; i++ {
		v := i * s.Step
		ticks = append(ticks, Tick{Value: v, Y: s.Y(v), Label: FormatCount(v)})
	}
	return ticks
}

// niceStep rounds raw up to the nearest 1, 2 or 5 times a power of ten.
// When that step would not fit in a uint64, raw itself is returned.
func niceStep(raw uint64) uint64 {
	if raw <= 1 {
		return 1
	}
	pow := uint64(1)
	for pow <= raw/10 {
		pow *= 10
	}
	for _, m := range []uint64{1, 2, 5, 10} {
		if pow > math.MaxUint64/m {
			break
		}
		if m*pow >= raw {
			return m * pow
		}
	}
	return raw
}

func ceilDiv(a, b uint64) uint64 {
	q := a / b
	if a%b != 0 {
		q++
	}
	return q
}
