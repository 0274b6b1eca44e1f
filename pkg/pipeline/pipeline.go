// Package pipeline runs the spec → scene → artifact pipeline of histoscene.
//
// The CLI and the HTTP server both go through a [Runner], so validation,
// defaults, caching and logging behave the same for every entry point.
//
// # Stages
//
//  1. Scene: validate the chart spec and assemble the scene tree
//  2. Render: serialize the scene into the requested formats (SVG, JSON, PNG)
//
// Both stages are cached: scenes by the hash of the spec and the render
// options, artifacts by the hash of the scene and the sink options.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	result, err := runner.Execute(ctx, spec, pipeline.Options{
//	    Formats: []string{pipeline.FormatSVG, pipeline.FormatPNG},
//	})
//	if err != nil {
//	    return err
//	}
//	svg := result.Artifacts[pipeline.FormatSVG]
package pipeline

import (
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/histoscene/pkg/cache"
	"github.com/matzehuels/histoscene/pkg/errors"
	"github.com/matzehuels/histoscene/pkg/render/histogram"
	"github.com/matzehuels/histoscene/pkg/render/histogram/geometry"
	"github.com/matzehuels/histoscene/pkg/render/histogram/scene"
	"github.com/matzehuels/histoscene/pkg/render/histogram/sink"
)

// Output formats.
const (
	FormatSVG  = "svg"
	FormatJSON = "json"
	FormatPNG  = "png"
)

// Formats lists every supported output format.
var Formats = []string{FormatSVG, FormatJSON, FormatPNG}

// ContentType returns the media type of format.
func ContentType(format string) string {
	switch format {
	case FormatSVG:
		return "image/svg+xml"
	case FormatJSON:
		return "application/json"
	case FormatPNG:
		return "image/png"
	}
	return "application/octet-stream"
}

// Options configures a pipeline run. It is JSON and TOML serializable so that
// config files and API requests can carry it.
type Options struct {
	histogram.Config

	Formats []string `json:"formats,omitempty" toml:"formats"`
	Scale   float64  `json:"scale,omitempty" toml:"scale"`
	Refresh bool     `json:"refresh,omitempty" toml:"-"`

	Logger *log.Logger `json:"-" toml:"-"`
}

// Result holds the outputs of a run.
type Result struct {
	Scene     *scene.Node
	SpecHash  string
	Artifacts map[string][]byte
	Stats     Stats
	CacheInfo CacheInfo
}

// Stats describes a run.
type Stats struct {
	Categories int
	Series     int
	SceneTime  time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks which stages were served from cache.
type CacheInfo struct {
	SceneHit  bool
	RenderHit bool
}

// ValidateFormat checks that format is supported.
func ValidateFormat(format string) error {
	return errors.ValidateChoice("format", format, Formats...)
}

// ValidateFormats checks every format and rejects duplicates.
func ValidateFormats(formats []string) error {
	for i, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
		if slices.Contains(formats[:i], f) {
			return errors.New(errors.ErrCodeInvalidInput, "format %q requested twice", f)
		}
	}
	return nil
}

// SetDefaults fills unset fields. Zero insets select the default insets.
func (o *Options) SetDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Ticks == "" {
		o.Ticks = geometry.TicksFixed
	}
	if o.Insets == (geometry.Insets{}) {
		o.Insets = geometry.DefaultInsets
	}
	if o.Scale == 0 {
		o.Scale = sink.DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate checks the options after defaults are applied.
func (o *Options) Validate() error {
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if _, err := geometry.ParseTickMode(string(o.Ticks)); err != nil {
		return err
	}
	if o.Scale <= 0 || o.Scale > sink.MaxScale {
		return errors.New(errors.ErrCodeInvalidInput, "scale %v out of range (0, %v]", o.Scale, sink.MaxScale)
	}
	return nil
}

// ValidateAndSetDefaults applies defaults, then validates. It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	o.SetDefaults()
	return o.Validate()
}

// SceneKeyOpts returns the cache key options of the scene stage.
func (o *Options) SceneKeyOpts() cache.SceneKeyOpts {
	in := o.Insets
	return cache.SceneKeyOpts{
		Ticks:  string(o.Ticks),
		Marks:  o.Marks,
		Legend: o.Legend,
		Insets: [4]int{in.Left, in.Right, in.Top, in.Bottom},
	}
}

// ArtifactKeyOpts returns the cache key options for one format. Only PNG
// output depends on the scale.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: format}
	if format == FormatPNG {
		k.Scale = o.Scale
	}
	return k
}
