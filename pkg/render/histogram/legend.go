package histogram

import (
	"github.com/matzehuels/histoscene/pkg/render/histogram/scene"
	"github.com/matzehuels/histoscene/pkg/render/histogram/styles"
)

const (
	legendInset  = 10
	legendRow    = 20
	legendSwatch = 10
	legendGap    = 6
)

// legend lists series names top-right inside the plot, alternating the two
// label variants, each followed by a color swatch.
func legend(l layout) *scene.Node {
	g := scene.El("g", scene.A("class", styles.ClassLegend))
	right := l.area.Right() - legendInset
	textX := right - legendSwatch - legendGap

	for i, ser := range l.spec.Series {
		class := styles.ClassLabelA
		if i%2 == 1 {
			class = styles.ClassLabelB
		}
		y := l.area.Top + legendRow*(i+1)
		g.Append(
			scene.El("text",
				scene.A("class", class),
				scene.A("x", scene.Int(textX)),
				scene.A("y", scene.Int(y)),
			).WithText(ser.Name),
			scene.El("rect",
				scene.A("x", scene.Int(right-legendSwatch)),
				scene.A("y", scene.Int(y-legendSwatch)),
				scene.A("width", scene.Int(legendSwatch)),
				scene.A("height", scene.Int(legendSwatch)),
				scene.A("fill", ser.Color),
			),
		)
	}
	return g
}
