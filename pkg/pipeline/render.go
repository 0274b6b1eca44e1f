package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/histoscene/pkg/errors"
	"github.com/matzehuels/histoscene/pkg/render/histogram/scene"
	"github.com/matzehuels/histoscene/pkg/render/histogram/sink"
)

// Render serializes root into each requested format.
func Render(ctx context.Context, root *scene.Node, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := renderFormat(root, format, opts)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func renderFormat(root *scene.Node, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatSVG:
		return sink.RenderSVG(root), nil
	case FormatJSON:
		return sink.RenderJSON(root)
	case FormatPNG:
		return sink.RenderPNG(root, sink.WithScale(opts.Scale))
	}
	return nil, errors.New(errors.ErrCodeUnsupported, "unsupported format %q", format)
}
