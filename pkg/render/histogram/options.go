package histogram

import (
	"github.com/matzehuels/histoscene/pkg/render/histogram/geometry"
)

// Option configures a render call.
type Option func(*renderer)

type renderer struct {
	insets geometry.Insets
	ticks  geometry.TickMode
	marks  bool
	legend bool
}

// WithInsets sets the paddings around the plot area. The default is
// [geometry.DefaultInsets].
func WithInsets(in geometry.Insets) Option { return func(r *renderer) { r.insets = in } }

// WithTicks selects how the y-axis is labeled. The default is
// [geometry.TicksFixed].
func WithTicks(mode geometry.TickMode) Option { return func(r *renderer) { r.ticks = mode } }

// WithMarks draws one bar per present value, grouped by series.
func WithMarks() Option { return func(r *renderer) { r.marks = true } }

// WithLegend lists the series names in the top-right corner.
func WithLegend() Option { return func(r *renderer) { r.legend = true } }

func newRenderer(opts ...Option) renderer {
	r := renderer{insets: geometry.DefaultInsets, ticks: geometry.TicksFixed}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// Config is the serializable form of the render options.
type Config struct {
	Insets geometry.Insets   `json:"insets" toml:"insets"`
	Ticks  geometry.TickMode `json:"ticks" toml:"ticks"`
	Marks  bool              `json:"marks" toml:"marks"`
	Legend bool              `json:"legend" toml:"legend"`
}

// DefaultConfig mirrors the defaults of [Render] without options.
func DefaultConfig() Config {
	return Config{Insets: geometry.DefaultInsets, Ticks: geometry.TicksFixed}
}

// Options converts c into render options.
func (c Config) Options() []Option {
	opts := []Option{WithInsets(c.Insets), WithTicks(c.Ticks)}
	if c.Marks {
		opts = append(opts, WithMarks())
	}
	if c.Legend {
		opts = append(opts, WithLegend())
	}
	return opts
}
