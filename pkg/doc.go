// Package pkg holds the libraries behind histoscene, a renderer that turns
// multi-series histogram specs into SVG scenes.
//
// # Layout
//
//  1. [chart] - the chart spec: data model, decoding, validation, demo data
//  2. [histogram] - the scene assembler and its geometry, styles and scene tree
//  3. [sink] - SVG, JSON and PNG serialization of a scene
//  4. [pipeline] - spec → scene → artifacts, with caching
//  5. [cache] - file, Redis and MongoDB artifact caches
//  6. [server] - the HTTP API
//
// # Data Flow
//
//	chart spec (JSON or TOML)
//	         ↓
//	    [chart] decode + validate
//	         ↓
//	    [histogram] Render → scene tree
//	         ↓
//	    [sink] SVG / JSON / PNG
//
// # Quick Start
//
//	spec, err := chart.ImportFile("rewards.json")
//	if err != nil {
//	    return err
//	}
//	root, err := histogram.Render(spec, histogram.WithMarks())
//	if err != nil {
//	    return err
//	}
//	os.Stdout.Write(sink.RenderSVG(root))
//
// [chart]: github.com/matzehuels/histoscene/pkg/chart
// [histogram]: github.com/matzehuels/histoscene/pkg/render/histogram
// [sink]: github.com/matzehuels/histoscene/pkg/render/histogram/sink
// [pipeline]: github.com/matzehuels/histoscene/pkg/pipeline
// [cache]: github.com/matzehuels/histoscene/pkg/cache
// [server]: github.com/matzehuels/histoscene/pkg/server
package pkg
