package sink

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/matzehuels/histoscene/pkg/chart"
	"github.com/matzehuels/histoscene/pkg/errors"
	"github.com/matzehuels/histoscene/pkg/render/histogram/scene"
	"github.com/matzehuels/histoscene/pkg/render/histogram/styles"
)

// DefaultScale renders PNGs at twice the canvas size.
const DefaultScale = 2.0

// MaxScale bounds the raster size of a single render.
const MaxScale = 8.0

const (
	defaultFontSize = 12.0
	strokeWidth     = 1.0
	miterLimit      = 4.0
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale float64
}

// WithScale sets the PNG scale factor (default [DefaultScale]).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// RenderPNG rasterizes the scene rooted at root. The canvas size comes from
// the root viewBox.
func RenderPNG(root *scene.Node, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: DefaultScale}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale <= 0 || r.scale > MaxScale || math.IsNaN(r.scale) {
		return nil, errors.New(errors.ErrCodeInvalidInput, "png scale %v out of range (0, %v]", r.scale, MaxScale)
	}

	w, h, ok := viewBoxSize(root)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidInput, "scene root has no usable viewBox")
	}
	img := image.NewRGBA(image.Rect(0, 0, int(math.Ceil(w*r.scale)), int(math.Ceil(h*r.scale))))

	p, err := newPainter(img, w, r.scale)
	if err != nil {
		return nil, err
	}
	p.collectGradients(root)
	p.paint(root, inherited{})

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

func viewBoxSize(root *scene.Node) (w, h float64, ok bool) {
	if root == nil {
		return 0, 0, false
	}
	vb, found := root.Attr("viewBox")
	if !found {
		return 0, 0, false
	}
	f := strings.Fields(strings.ReplaceAll(vb, ",", " "))
	if len(f) != 4 {
		return 0, 0, false
	}
	w, errW := strconv.ParseFloat(f[2], 64)
	h, errH := strconv.ParseFloat(f[3], 64)
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return 0, 0, false
	}
	return w, h, true
}

// inherited carries the presentation state a group passes to its children.
type inherited struct {
	fill, stroke string
	classes      []string
}

type painter struct {
	img       *image.RGBA
	width     float64
	scale     float64
	filler    *rasterx.Filler
	dasher    *rasterx.Dasher
	gradients map[string]rasterx.Gradient
	sheet     styles.Stylesheet
	font      *opentype.Font
	faces     map[float64]font.Face
}

var goRegular = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(goregular.TTF)
})

func newPainter(img *image.RGBA, width, scale float64) (*painter, error) {
	fnt, err := goRegular()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "load font")
	}
	b := img.Bounds()
	scanner := rasterx.NewScannerGV(b.Dx(), b.Dy(), img, b)
	dasher := rasterx.NewDasher(b.Dx(), b.Dy(), scanner)
	dasher.SetStroke(
		fixed.Int26_6(strokeWidth*scale*64), fixed.Int26_6(miterLimit*64),
		rasterx.ButtCap, rasterx.ButtCap, rasterx.FlatGap, rasterx.Miter, nil, 0,
	)
	return &painter{
		img:       img,
		width:     width,
		scale:     scale,
		filler:    rasterx.NewFiller(b.Dx(), b.Dy(), scanner),
		dasher:    dasher,
		gradients: make(map[string]rasterx.Gradient),
		sheet:     styles.Build(),
		font:      fnt,
		faces:     make(map[float64]font.Face),
	}, nil
}

// collectGradients registers every radialGradient in the tree by id.
func (p *painter) collectGradients(root *scene.Node) {
	b := p.img.Bounds()
	for _, g := range root.FindAll(scene.ByTag("radialGradient")) {
		id, _ := g.Attr("id")
		cx, _ := g.Float("cx")
		cy, _ := g.Float("cy")
		r, _ := g.Float("r")
		m := rasterx.Identity.Scale(p.scale, p.scale)
		if t, ok := g.Attr("gradientTransform"); ok {
			if gt, ok := parseMatrix(t); ok {
				m = m.Mult(gt)
			}
		}

		var stops []rasterx.GradStop
		for _, s := range g.FindAll(scene.ByTag("stop")) {
			sc, _ := s.Style("stop-color")
			c, err := chart.ParseColor(sc)
			if err != nil {
				continue
			}
			offset, _ := s.Float("offset")
			opacity := 1.0
			if o, ok := s.Style("stop-opacity"); ok {
				if v, err := strconv.ParseFloat(o, 64); err == nil {
					opacity = v
				}
			}
			stops = append(stops, rasterx.GradStop{StopColor: c, Offset: offset, Opacity: opacity})
		}

		grad := rasterx.Gradient{
			Points:   [5]float64{cx, cy, cx, cy, r},
			Stops:    stops,
			Matrix:   m,
			Units:    rasterx.UserSpaceOnUse,
			IsRadial: true,
		}
		grad.Bounds.W, grad.Bounds.H = float64(b.Dx()), float64(b.Dy())
		p.gradients[id] = grad
	}
}

// parseMatrix parses "matrix(a, b, c, d, e, f)".
func parseMatrix(s string) (rasterx.Matrix2D, bool) {
	inner, ok := strings.CutPrefix(strings.TrimSpace(s), "matrix(")
	if !ok {
		return rasterx.Matrix2D{}, false
	}
	inner, ok = strings.CutSuffix(inner, ")")
	if !ok {
		return rasterx.Matrix2D{}, false
	}
	f := strings.Fields(strings.ReplaceAll(inner, ",", " "))
	if len(f) != 6 {
		return rasterx.Matrix2D{}, false
	}
	var v [6]float64
	for i := range f {
		n, err := strconv.ParseFloat(f[i], 64)
		if err != nil {
			return rasterx.Matrix2D{}, false
		}
		v[i] = n
	}
	return rasterx.Matrix2D{A: v[0], B: v[1], C: v[2], D: v[3], E: v[4], F: v[5]}, true
}

func (p *painter) paint(n *scene.Node, in inherited) {
	switch n.Tag {
	case "defs", "desc", "title", "style":
		return
	case "rect":
		p.rect(n, in)
		return
	case "text":
		p.text(n, in)
		return
	case "g", "svg":
		if f, ok := n.Style("fill"); ok {
			in.fill = f
		}
		if s, ok := n.Style("stroke"); ok {
			in.stroke = s
		}
		if c, ok := n.Attr("class"); ok {
			in.classes = append(append([]string(nil), in.classes...), strings.Fields(c)...)
		}
	}
	for _, c := range n.Children {
		p.paint(c, in)
	}
}

func (p *painter) rect(n *scene.Node, in inherited) {
	x, _ := n.Float("x")
	y, _ := n.Float("y")
	w, okW := n.Float("width")
	h, okH := n.Float("height")
	if !okW || !okH || w <= 0 || h <= 0 {
		return
	}
	s := p.scale
	minX, minY, maxX, maxY := x*s, y*s, (x+w)*s, (y+h)*s

	fill := in.fill
	if f, ok := n.Style("fill"); ok {
		fill = f
	}
	opacity := 1.0
	if o, ok := n.Style("fill-opacity"); ok {
		if v, err := strconv.ParseFloat(o, 64); err == nil {
			opacity = v
		}
	}
	if paint, ok := p.resolvePaint(fill, opacity); ok {
		p.filler.Clear()
		p.filler.SetColor(paint)
		rasterx.AddRect(minX, minY, maxX, maxY, 0, p.filler)
		p.filler.Draw()
	}

	stroke := in.stroke
	if st, ok := n.Style("stroke"); ok {
		stroke = st
	}
	if paint, ok := p.resolvePaint(stroke, 1); ok {
		p.dasher.Clear()
		p.dasher.SetColor(paint)
		rasterx.AddRect(minX, minY, maxX, maxY, 0, p.dasher)
		p.dasher.Draw()
	}
}

// resolvePaint maps a fill or stroke value to a rasterx color. References to
// undefined paint servers and "none" paint nothing.
func (p *painter) resolvePaint(v string, opacity float64) (any, bool) {
	v = strings.TrimSpace(v)
	if v == "" || v == "none" {
		return nil, false
	}
	if ref, ok := strings.CutPrefix(v, "url(#"); ok {
		grad, found := p.gradients[strings.TrimSuffix(ref, ")")]
		if !found {
			return nil, false
		}
		return grad.GetColorFunction(opacity), true
	}
	c, err := chart.ParseColor(v)
	if err != nil {
		return nil, false
	}
	return rasterx.ApplyOpacity(c.Clamped(), opacity), true
}

// textStyle resolves the text properties of n from its inline style, its own
// classes, and the classes of its enclosing groups.
func (p *painter) textStyle(n *scene.Node, in inherited) map[string]string {
	props := make(map[string]string)
	merge := func(m map[string]string, ok bool) {
		if !ok {
			return
		}
		for k, v := range m {
			props[k] = v
		}
	}
	merge(p.sheet.Lookup("text"))
	for _, c := range in.classes {
		merge(p.sheet.Lookup(groupTextSelector(c)))
	}
	if c, ok := n.Attr("class"); ok {
		for _, f := range strings.Fields(c) {
			merge(p.sheet.Lookup("." + f))
		}
	}
	if style, ok := n.Attr("style"); ok {
		for _, decl := range strings.Split(style, ";") {
			if k, v, found := strings.Cut(decl, ":"); found {
				props[strings.TrimSpace(k)] = strings.TrimSpace(v)
			}
		}
	}
	return props
}

// groupTextSelector maps an axis group class to the rule styling its text.
func groupTextSelector(class string) string {
	switch class {
	case styles.ClassXAxis, styles.ClassYAxis:
		return "." + styles.ClassYAxis + " text, ." + styles.ClassXAxis + " text"
	}
	return "." + class + " text"
}

func (p *painter) text(n *scene.Node, in inherited) {
	if n.Text == "" {
		return
	}
	props := p.textStyle(n, in)

	size := defaultFontSize
	if fs, ok := props["font-size"]; ok {
		if v, err := strconv.ParseFloat(strings.TrimSuffix(fs, "px"), 64); err == nil && v > 0 {
			size = v
		}
	}
	face, err := p.face(size * p.scale)
	if err != nil {
		return
	}

	fill := in.fill
	if f, ok := props["fill"]; ok {
		fill = f
	}
	c, err := chart.ParseColor(fill)
	if err != nil {
		c, _ = chart.ParseColor("#000")
	}

	x := p.coord(n, "x", p.width)
	y, _ := n.Float("y")
	x, y = x*p.scale, y*p.scale

	advance := float64(font.MeasureString(face, n.Text)) / 64
	switch props["text-anchor"] {
	case "middle":
		x -= advance / 2
	case "end":
		x -= advance
	}
	if props["dominant-baseline"] == "middle" {
		m := face.Metrics()
		y += float64(m.Ascent-m.Descent) / 64 / 2
	}

	d := &font.Drawer{
		Dst:  p.img,
		Src:  image.NewUniform(color.Color(c.Clamped())),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)},
	}
	d.DrawString(n.Text)
}

// coord reads a coordinate attribute that may be a percentage of extent.
func (p *painter) coord(n *scene.Node, name string, extent float64) float64 {
	v, ok := n.Attr(name)
	if !ok {
		return 0
	}
	if pct, isPct := strings.CutSuffix(v, "%"); isPct {
		f, err := strconv.ParseFloat(pct, 64)
		if err != nil {
			return 0
		}
		return f / 100 * extent
	}
	f, _ := n.Float(name)
	return f
}

func (p *painter) face(size float64) (font.Face, error) {
	if f, ok := p.faces[size]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(p.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	p.faces[size] = f
	return f, nil
}
