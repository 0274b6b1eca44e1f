package histogram

import (
	"fmt"

	"github.com/matzehuels/histoscene/pkg/chart"
	"github.com/matzehuels/histoscene/pkg/render/histogram/geometry"
	"github.com/matzehuels/histoscene/pkg/render/histogram/scene"
	"github.com/matzehuels/histoscene/pkg/render/histogram/styles"
)

// layout is everything Render derives from the spec before emitting nodes.
type layout struct {
	spec  chart.ChartSpec
	area  geometry.PlotArea
	xs    []int
	ticks []geometry.Tick
	scale geometry.Scale
}

// Render builds the scene of spec. Validation and geometry errors are
// returned before any node is built; a partial scene is never returned.
func Render(spec chart.ChartSpec, opts ...Option) (*scene.Node, error) {
	r := newRenderer(opts...)

	l, err := r.plan(spec)
	if err != nil {
		return nil, err
	}

	root := scene.El("svg",
		scene.A("viewBox", fmt.Sprintf("0 0 %d %d", spec.Width, spec.Height)),
		scene.A("xmlns", scene.Namespace),
	)
	root.Append(
		scene.El("desc").WithText(spec.Description),
		defs(spec),
		background(spec),
		border(l.area),
		xAxis(l),
		yAxis(l),
	)
	if r.marks {
		root.Append(marks(l))
	}
	if r.legend {
		root.Append(legend(l))
	}
	root.Append(caption(spec))
	return root, nil
}

func (r renderer) plan(spec chart.ChartSpec) (layout, error) {
	if err := chart.Validate(spec); err != nil {
		return layout{}, err
	}
	area, err := geometry.ComputePlotArea(spec.Width, spec.Height, r.insets)
	if err != nil {
		return layout{}, err
	}

	n := len(spec.Labels)
	xs := make([]int, n)
	for i := range spec.Labels {
		if xs[i], err = geometry.CategoryX(i, n, area); err != nil {
			return layout{}, err
		}
	}

	_, hi, _ := spec.Range()
	ticks, err := geometry.YTicks(r.ticks, hi, area)
	if err != nil {
		return layout{}, err
	}

	return layout{
		spec:  spec,
		area:  area,
		xs:    xs,
		ticks: ticks,
		scale: geometry.NewScale(hi, area, geometry.DefaultTickCount),
	}, nil
}

// Fixed decoration of the reference chart.
const (
	gradientID        = "gradient-1"
	patternID         = "pattern-2"
	gradientTransform = "matrix(0.8, 0, 0, 0.4642, 0, 130)"
	gradientInner     = "rgb(99, 84, 84)"
	gradientOuter     = "rgb(19, 19, 19)"
	borderStroke      = "rgb(105, 105, 104)"
	captionFill       = "rgb(251, 251, 251)"
	captionY          = 30
)

func defs(spec chart.ChartSpec) *scene.Node {
	gradient := scene.El("radialGradient",
		scene.A("id", gradientID),
		scene.A("gradientUnits", "userSpaceOnUse"),
		scene.A("cx", scene.Int(spec.Width*2/3)),
		scene.A("cy", scene.Int(spec.Height/2)),
		scene.A("r", scene.Int(spec.Height)),
		scene.A("gradientTransform", gradientTransform),
	).Append(
		scene.El("stop", scene.A("style", "stop-color: "+gradientInner), scene.A("offset", "0")),
		scene.El("stop", scene.A("style", "stop-color: "+gradientOuter), scene.A("offset", "1")),
	)
	return scene.El("defs").Append(
		gradient,
		scene.El("style").WithText(styles.Build().String()),
	)
}

func background(spec chart.ChartSpec) *scene.Node {
	return scene.El("g").Append(
		scene.El("rect",
			scene.A("width", scene.Int(spec.Width)),
			scene.A("height", scene.Int(spec.Height)),
			scene.A("style", "fill: url(#"+gradientID+")"),
		),
	)
}

func border(area geometry.PlotArea) *scene.Node {
	return scene.El("rect",
		scene.A("x", scene.Int(area.Left)),
		scene.A("y", scene.Int(area.Top)),
		scene.A("width", scene.Int(area.Width)),
		scene.A("height", scene.Int(area.Height)),
		scene.A("style", "fill: url(#"+patternID+"); fill-opacity: 0.2; stroke: "+borderStroke),
	)
}

func caption(spec chart.ChartSpec) *scene.Node {
	if spec.Caption == "" {
		return nil
	}
	return scene.El("text",
		scene.A("x", "50%"),
		scene.A("y", scene.Int(captionY)),
		scene.A("style", "dominant-baseline: middle; text-anchor: middle; font-size: 16px; "+
			"font-family: inherited; fill: "+captionFill+"; word-spacing: 0px"),
	).WithText(spec.Caption)
}
