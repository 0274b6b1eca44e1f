package sink

import (
	"bytes"

	"github.com/matzehuels/histoscene/pkg/render/histogram/scene"
)

const xmlDeclaration = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	declaration bool
	pixelSize   bool
}

// WithXMLDeclaration prefixes the document with an XML declaration.
func WithXMLDeclaration() SVGOption { return func(r *svgRenderer) { r.declaration = true } }

// WithPixelSize adds width and height attributes matching the viewBox, so
// viewers that ignore viewBox show the chart at its canvas size.
func WithPixelSize() SVGOption { return func(r *svgRenderer) { r.pixelSize = true } }

// RenderSVG returns the markup document for root. root is not modified.
func RenderSVG(root *scene.Node, opts ...SVGOption) []byte {
	var r svgRenderer
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	if r.declaration {
		buf.WriteString(xmlDeclaration)
	}
	if r.pixelSize {
		if w, h, ok := viewBoxSize(root); ok {
			sized := *root
			sized.Attrs = append(append([]scene.Attr(nil), root.Attrs...),
				scene.A("width", scene.Num(w)),
				scene.A("height", scene.Num(h)),
			)
			root = &sized
		}
	}
	_, _ = root.WriteTo(&buf)
	return buf.Bytes()
}
