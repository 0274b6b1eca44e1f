package histogram

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/matzehuels/histoscene/pkg/chart"
	"github.com/matzehuels/histoscene/pkg/errors"
	"github.com/matzehuels/histoscene/pkg/render/histogram/geometry"
	"github.com/matzehuels/histoscene/pkg/render/histogram/scene"
	"github.com/matzehuels/histoscene/pkg/render/histogram/styles"
)

func testSpec() chart.ChartSpec {
	return chart.ChartSpec{
		Width:       800,
		Height:      400,
		Description: "Histogram Example",
		Caption:     "Rewards Distribution",
		Labels:      []string{"Jul 14", "Jul 21", "Jul 29"},
		Series: []chart.Series{
			{Name: "Staked", Color: "#ffaa88", Values: chart.Values(10, 20, 30)},
			{Name: "Minted", Color: "#ff8800", Values: []chart.Value{chart.Some(5), chart.None(), chart.Some(15)}},
		},
	}
}

func tags(n *scene.Node) []string {
	out := make([]string, len(n.Children))
	for i, c := range n.Children {
		out[i] = c.Tag
	}
	return out
}

func TestRenderStructure(t *testing.T) {
	root, err := Render(testSpec())
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	if root.Tag != "svg" {
		t.Fatalf("root tag = %q, want svg", root.Tag)
	}
	if v, _ := root.Attr("viewBox"); v != "0 0 800 400" {
		t.Errorf("viewBox = %q", v)
	}
	if v, _ := root.Attr("xmlns"); v != scene.Namespace {
		t.Errorf("xmlns = %q", v)
	}

	want := []string{"desc", "defs", "g", "rect", "g", "g", "text"}
	got := tags(root)
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("children = %v, want %v", got, want)
	}
	if root.Children[0].Text != "Histogram Example" {
		t.Errorf("desc = %q", root.Children[0].Text)
	}
	if !root.Children[4].HasClass(styles.ClassXAxis) || !root.Children[5].HasClass(styles.ClassYAxis) {
		t.Errorf("axis groups out of order")
	}
	if root.Children[6].Text != "Rewards Distribution" {
		t.Errorf("caption = %q", root.Children[6].Text)
	}
}

func TestRenderDefs(t *testing.T) {
	root, err := Render(testSpec())
	if err != nil {
		t.Fatal(err)
	}
	grad := root.Find(scene.ByTag("radialGradient"))
	if grad == nil {
		t.Fatal("no radialGradient")
	}
	for name, want := range map[string]string{
		"id":                "gradient-1",
		"gradientUnits":     "userSpaceOnUse",
		"cx":                "533",
		"cy":                "200",
		"r":                 "400",
		"gradientTransform": "matrix(0.8, 0, 0, 0.4642, 0, 130)",
	} {
		if got, _ := grad.Attr(name); got != want {
			t.Errorf("gradient %s = %q, want %q", name, got, want)
		}
	}
	stops := grad.FindAll(scene.ByTag("stop"))
	if len(stops) != 2 {
		t.Fatalf("stops = %d, want 2", len(stops))
	}
	if c, _ := stops[0].Style("stop-color"); c != "rgb(99, 84, 84)" {
		t.Errorf("inner stop = %q", c)
	}
	if c, _ := stops[1].Style("stop-color"); c != "rgb(19, 19, 19)" {
		t.Errorf("outer stop = %q", c)
	}

	style := root.Find(scene.ByTag("style"))
	if style == nil || style.Text != styles.Build().String() {
		t.Error("style element does not carry the stylesheet")
	}
}

func TestRenderBackgroundAndBorder(t *testing.T) {
	root, err := Render(testSpec())
	if err != nil {
		t.Fatal(err)
	}
	bg := root.Children[2].Children[0]
	if w, _ := bg.Attr("width"); w != "800" {
		t.Errorf("background width = %q", w)
	}
	if f, _ := bg.Style("fill"); f != "url(#gradient-1)" {
		t.Errorf("background fill = %q", f)
	}

	border := root.Children[3]
	for name, want := range map[string]string{"x": "60", "y": "45", "width": "725", "height": "330"} {
		if got, _ := border.Attr(name); got != want {
			t.Errorf("border %s = %q, want %q", name, got, want)
		}
	}
	if s, _ := border.Style("stroke"); s != "rgb(105, 105, 104)" {
		t.Errorf("border stroke = %q", s)
	}
	if s, _ := border.Style("fill-opacity"); s != "0.2" {
		t.Errorf("border fill-opacity = %q", s)
	}
}

func TestRenderXAxis(t *testing.T) {
	root, err := Render(testSpec())
	if err != nil {
		t.Fatal(err)
	}
	texts := root.Find(scene.ByClass(styles.ClassXAxis)).FindAll(scene.ByTag("text"))
	if len(texts) != 3 {
		t.Fatalf("x labels = %d, want 3", len(texts))
	}
	wantX := []string{"80", "321", "562"}
	for i, txt := range texts {
		if x, _ := txt.Attr("x"); x != wantX[i] {
			t.Errorf("label %d x = %q, want %q", i, x, wantX[i])
		}
		if y, _ := txt.Attr("y"); y != "390" {
			t.Errorf("label %d y = %q, want 390", i, y)
		}
	}
	if texts[2].Text != "Jul 29" {
		t.Errorf("label 2 = %q", texts[2].Text)
	}
}

func TestRenderXAxisWholePixels(t *testing.T) {
	spec := chart.ChartSpec{
		Width:       800,
		Height:      400,
		Description: "Histogram Example",
		Caption:     "Rewards Distribution",
		Labels:      []string{"Jul 14", "Jul 21"},
		Series:      []chart.Series{{Name: "Staked", Color: "#ffaa88", Values: chart.Values(35129025, 42437593)}},
	}
	root, err := Render(spec)
	if err != nil {
		t.Fatal(err)
	}
	texts := root.Find(scene.ByClass(styles.ClassXAxis)).FindAll(scene.ByTag("text"))
	var got []string
	for _, txt := range texts {
		x, _ := txt.Attr("x")
		got = append(got, x)
	}
	if strings.Join(got, ",") != "80,442" {
		t.Errorf("label x = %v, want [80 442]", got)
	}
}

func TestRenderYAxis(t *testing.T) {
	t.Run("fixed", func(t *testing.T) {
		root, err := Render(testSpec())
		if err != nil {
			t.Fatal(err)
		}
		texts := root.Find(scene.ByClass(styles.ClassYAxis)).FindAll(scene.ByTag("text"))
		if len(texts) != 9 {
			t.Fatalf("ticks = %d, want 9", len(texts))
		}
		if y, _ := texts[0].Attr("y"); y != "420" || texts[0].Text != "0.00%" {
			t.Errorf("first tick = %q at %q", texts[0].Text, y)
		}
		if y, _ := texts[8].Attr("y"); y != "60" || texts[8].Text != "0.016%" {
			t.Errorf("last tick = %q at %q", texts[8].Text, y)
		}
		if x, _ := texts[3].Attr("x"); x != "40" {
			t.Errorf("tick x = %q", x)
		}
	})

	t.Run("linear", func(t *testing.T) {
		root, err := Render(testSpec(), WithTicks(geometry.TicksLinear))
		if err != nil {
			t.Fatal(err)
		}
		texts := root.Find(scene.ByClass(styles.ClassYAxis)).FindAll(scene.ByTag("text"))
		if len(texts) < 2 {
			t.Fatalf("ticks = %d", len(texts))
		}
		if texts[0].Text != "0" {
			t.Errorf("first tick = %q, want 0", texts[0].Text)
		}
		if y, _ := texts[0].Attr("y"); y != "375" {
			t.Errorf("zero tick y = %q, want plot bottom 375", y)
		}
		if y, _ := texts[len(texts)-1].Attr("y"); y != "45" {
			t.Errorf("top tick y = %q, want plot top 45", y)
		}
	})
}

func TestRenderNoCaption(t *testing.T) {
	spec := testSpec()
	spec.Caption = ""
	root, err := Render(spec)
	if err != nil {
		t.Fatal(err)
	}
	if last := root.Children[len(root.Children)-1]; last.Tag == "text" {
		t.Errorf("unexpected caption %q", last.Text)
	}
}

func TestRenderMarks(t *testing.T) {
	root, err := Render(testSpec(), WithMarks())
	if err != nil {
		t.Fatal(err)
	}
	got := tags(root)
	if got[6] != "g" || got[7] != "text" {
		t.Fatalf("marks group not before caption: %v", got)
	}

	bars := root.FindAll(scene.ByClass(styles.ClassBar))
	if len(bars) != 2 {
		t.Fatalf("bar groups = %d, want 2", len(bars))
	}
	if n := len(bars[0].FindAll(scene.ByTag("rect"))); n != 3 {
		t.Errorf("staked bars = %d, want 3", n)
	}
	minted := bars[1].FindAll(scene.ByTag("rect"))
	if len(minted) != 2 {
		t.Fatalf("minted bars = %d, want 2 (missing value skipped)", len(minted))
	}
	for _, r := range minted {
		if c, _ := r.Attr("data-category"); c == "1" {
			t.Error("missing value produced a mark")
		}
	}
	if f, _ := bars[1].Style("fill"); f != "#ff8800" {
		t.Errorf("minted fill = %q", f)
	}

	// The tallest value reaches no higher than the plot top.
	for _, r := range root.FindAll(scene.ByTag("rect")) {
		if c, ok := r.Attr("data-category"); !ok || c == "" {
			continue
		}
		y, _ := r.Float("y")
		h, _ := r.Float("height")
		if y < 45 || y+h > 375.01 {
			t.Errorf("bar outside plot: y=%v h=%v", y, h)
		}
	}
}

func TestRenderMarksHugeValues(t *testing.T) {
	spec := testSpec()
	spec.Series[0].Values = chart.Values(math.MaxUint64-5, math.MaxUint64/2, 1)

	root, err := Render(spec, WithMarks(), WithTicks(geometry.TicksLinear))
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range root.Find(scene.ByClass(styles.ClassBar)).FindAll(scene.ByTag("rect")) {
		y, _ := r.Float("y")
		h, _ := r.Float("height")
		if y < 45 || h < 0 || y+h > 375.01 {
			t.Errorf("bar outside plot: y=%v h=%v", y, h)
		}
	}
	ticks := root.Find(scene.ByClass(styles.ClassYAxis)).FindAll(scene.ByTag("text"))
	if len(ticks) < 2 {
		t.Errorf("y ticks = %d, want several", len(ticks))
	}
}

func TestRenderLegend(t *testing.T) {
	root, err := Render(testSpec(), WithLegend())
	if err != nil {
		t.Fatal(err)
	}
	leg := root.Find(scene.ByClass(styles.ClassLegend))
	if leg == nil {
		t.Fatal("no legend")
	}
	texts := leg.FindAll(scene.ByTag("text"))
	if len(texts) != 2 {
		t.Fatalf("legend entries = %d, want 2", len(texts))
	}
	if !texts[0].HasClass(styles.ClassLabelA) || !texts[1].HasClass(styles.ClassLabelB) {
		t.Error("legend entries do not alternate label variants")
	}
	if texts[1].Text != "Minted" {
		t.Errorf("second entry = %q", texts[1].Text)
	}
}

func TestRenderAllMissing(t *testing.T) {
	spec := testSpec()
	spec.Series = []chart.Series{{Name: "Empty", Color: "#fff", Values: []chart.Value{chart.None(), chart.None(), chart.None()}}}
	root, err := Render(spec, WithMarks(), WithTicks(geometry.TicksLinear))
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if n := len(root.Find(scene.ByClass(styles.ClassBar)).Children); n != 0 {
		t.Errorf("marks = %d, want 0", n)
	}
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*chart.ChartSpec)
		opts   []Option
		code   errors.Code
	}{
		{
			name:   "length mismatch",
			mutate: func(s *chart.ChartSpec) { s.Series[0].Values = chart.Values(1, 2) },
			code:   errors.ErrCodeInvalidSpec,
		},
		{
			name:   "no labels",
			mutate: func(s *chart.ChartSpec) { s.Labels = nil },
			code:   errors.ErrCodeInvalidSpec,
		},
		{
			name:   "control character in label",
			mutate: func(s *chart.ChartSpec) { s.Labels[1] = "Jul\x0021" },
			code:   errors.ErrCodeInvalidSpec,
		},
		{
			name:   "canvas too small",
			mutate: func(s *chart.ChartSpec) { s.Width, s.Height = 70, 60 },
			code:   errors.ErrCodeInvalidLayout,
		},
		{
			name:   "insets too large",
			mutate: func(*chart.ChartSpec) {},
			opts:   []Option{WithInsets(geometry.Insets{Left: 400, Right: 400})},
			code:   errors.ErrCodeInvalidLayout,
		},
		{
			name:   "unknown tick mode",
			mutate: func(*chart.ChartSpec) {},
			opts:   []Option{WithTicks("log")},
			code:   errors.ErrCodeInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := testSpec()
			tt.mutate(&spec)
			root, err := Render(spec, tt.opts...)
			if err == nil {
				t.Fatal("expected error")
			}
			if root != nil {
				t.Error("partial scene returned alongside error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("code = %v, want %v", errors.GetCode(err), tt.code)
			}
		})
	}
}

func TestRenderDeterministic(t *testing.T) {
	spec, err := chart.Demo(chart.DefaultDemo)
	if err != nil {
		t.Fatal(err)
	}
	opts := []Option{WithMarks(), WithLegend(), WithTicks(geometry.TicksLinear)}
	a, err := Render(spec, opts...)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Render(spec, opts...)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Marshal(), b.Marshal()) {
		t.Error("two renders of the same spec differ")
	}
}

func TestRenderEscapesText(t *testing.T) {
	spec := testSpec()
	spec.Caption = `Fees <net> & "gross"`
	root, err := Render(spec)
	if err != nil {
		t.Fatal(err)
	}
	out := string(root.Marshal())
	if !strings.Contains(out, "Fees &lt;net&gt; &amp; &quot;gross&quot;") {
		t.Error("caption not escaped")
	}
}

func TestRenderSeriesColors(t *testing.T) {
	spec := testSpec()
	spec.Series[0].Color = "orange"
	spec.Series[1].Color = "hsl(30, 100%, 50%)"

	root, err := Render(spec, WithMarks())
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	bars := root.FindAll(scene.ByClass(styles.ClassBar))
	if len(bars) != 2 {
		t.Fatalf("bar groups = %d, want 2", len(bars))
	}
	if f, _ := bars[0].Style("fill"); f != "#ffa500" {
		t.Errorf("named color fill = %q, want #ffa500", f)
	}
	if _, ok := bars[0].Style("stroke"); !ok {
		t.Error("named color should get an outline shade")
	}
	if f, _ := bars[1].Attr("fill"); f != "hsl(30, 100%, 50%)" {
		t.Errorf("unparsed color fill = %q, want it passed through", f)
	}
	if _, ok := bars[1].Style("stroke"); ok {
		t.Error("unparsed color should not get an outline shade")
	}

	// Without marks the colors are never used.
	if _, err := Render(spec); err != nil {
		t.Errorf("Render() without marks error: %v", err)
	}
}

func TestRenderKeepsWhitespaceInText(t *testing.T) {
	spec := testSpec()
	spec.Labels[0] = "Jul\t14"
	spec.Caption = "Rewards\nDistribution"

	root, err := Render(spec)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	out := string(root.Marshal())
	for _, want := range []string{">Jul\t14<", ">Rewards\nDistribution<"} {
		if !strings.Contains(out, want) {
			t.Errorf("markup missing %q", want)
		}
	}
}

func TestConfigOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Ticks = geometry.TicksLinear
	cfg.Marks = true
	root, err := Render(testSpec(), cfg.Options()...)
	if err != nil {
		t.Fatal(err)
	}
	if root.Find(scene.ByClass(styles.ClassBar)) == nil {
		t.Error("Config.Marks not applied")
	}
	if root.Find(scene.ByClass(styles.ClassLegend)) != nil {
		t.Error("legend rendered without Config.Legend")
	}
}
