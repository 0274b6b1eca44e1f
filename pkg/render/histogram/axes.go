package histogram

import (
	"github.com/matzehuels/histoscene/pkg/render/histogram/geometry"
	"github.com/matzehuels/histoscene/pkg/render/histogram/scene"
	"github.com/matzehuels/histoscene/pkg/render/histogram/styles"
)

func xAxis(l layout) *scene.Node {
	g := scene.El("g", scene.A("class", styles.ClassXAxis))
	y := scene.Int(geometry.XLabelY(l.area))
	for i, label := range l.spec.Labels {
		g.Append(scene.El("text",
			scene.A("x", scene.Int(l.xs[i])),
			scene.A("y", y),
		).WithText(label))
	}
	return g
}

func yAxis(l layout) *scene.Node {
	g := scene.El("g", scene.A("class", styles.ClassYAxis))
	x := scene.Int(geometry.YTickX)
	for _, t := range l.ticks {
		g.Append(scene.El("text",
			scene.A("x", x),
			scene.A("y", scene.Num(t.Y)),
		).WithText(t.Label))
	}
	return g
}
