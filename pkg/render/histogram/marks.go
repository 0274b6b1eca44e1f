package histogram

import (
	"strconv"
	"strings"

	"github.com/matzehuels/histoscene/pkg/chart"
	"github.com/matzehuels/histoscene/pkg/render/histogram/geometry"
	"github.com/matzehuels/histoscene/pkg/render/histogram/scene"
	"github.com/matzehuels/histoscene/pkg/render/histogram/styles"
)

// barStrokeBlend darkens the series color for the bar outline.
const barStrokeBlend = 0.35

var black, _ = chart.ParseColor("#000000")

// marks emits one group per series and one rect per present value.
// Missing values are skipped entirely.
func marks(l layout) *scene.Node {
	g := scene.El("g", scene.A("class", "marks"))
	nSeries := len(l.spec.Series)
	nCats := len(l.spec.Labels)

	for si, ser := range l.spec.Series {
		sg := scene.El("g",
			scene.A("class", styles.ClassBar),
			scene.A("data-series", ser.Name),
			barStyle(ser.Color),
		)
		for ci, v := range ser.Values {
			n, ok := v.Get()
			if !ok {
				continue
			}
			slot := geometry.BarSlot{Series: si, SeriesCount: nSeries, Category: ci, CategoryCount: nCats}
			// Indices come from the validated spec, so Bar cannot fail here.
			r, _ := geometry.Bar(slot, n, l.area, l.scale)
			sg.Append(scene.El("rect",
				scene.A("x", scene.Num(r.X)),
				scene.A("y", scene.Num(r.Y)),
				scene.A("width", scene.Num(r.W)),
				scene.A("height", scene.Num(r.H)),
				scene.A("data-category", strconv.Itoa(ci)),
			).Append(scene.El("title").WithText(l.spec.Labels[ci]+": "+geometry.FormatCount(n))))
		}
		g.Append(sg)
	}
	return g
}

// barStyle shades the outline of parseable colors. Any other color is
// handed to the renderer as written, without an outline shade.
func barStyle(color string) scene.Attr {
	fill, err := chart.ParseColor(color)
	if err != nil {
		return scene.A("fill", strings.TrimSpace(color))
	}
	stroke := fill.BlendRgb(black, barStrokeBlend).Clamped()
	return scene.A("style", "fill: "+fill.Hex()+"; stroke: "+stroke.Hex()+"; stroke-width: 1")
}
