package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/histoscene/pkg/cache"
	"github.com/matzehuels/histoscene/pkg/chart"
	"github.com/matzehuels/histoscene/pkg/observability"
	"github.com/matzehuels/histoscene/pkg/render/histogram"
	"github.com/matzehuels/histoscene/pkg/render/histogram/scene"
)

// Runner executes the pipeline with caching. It holds no per-run state, so
// one Runner can serve concurrent requests.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner returns a runner. A nil cache disables caching; a nil keyer
// selects the DefaultKeyer; a nil logger selects the default logger.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Execute validates spec, builds its scene and renders every requested
// format. Spec and layout errors are returned unchanged in code, so callers
// can tell a bad payload from a failed render.
func (r *Runner) Execute(ctx context.Context, spec chart.ChartSpec, opts Options) (res *Result, err error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	start := time.Now()
	observability.Render().OnRenderStart(ctx, opts.Formats)
	defer func() {
		observability.Render().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	}()

	result := &Result{
		Stats: Stats{Categories: len(spec.Labels), Series: len(spec.Series)},
	}

	sceneStart := time.Now()
	root, specHash, hit, err := r.SceneWithCacheInfo(ctx, spec, opts)
	result.Stats.SceneTime = time.Since(sceneStart)
	observability.Render().OnSceneComplete(ctx, result.Stats.Categories, result.Stats.Series, result.Stats.SceneTime, err)
	if err != nil {
		return nil, err
	}
	result.Scene = root
	result.SpecHash = specHash
	result.CacheInfo.SceneHit = hit

	opts.Logger.Debug("built scene",
		"categories", result.Stats.Categories,
		"series", result.Stats.Series,
		"cached", hit,
		"duration", result.Stats.SceneTime)

	renderStart := time.Now()
	artifacts, hit, err := r.RenderWithCacheInfo(ctx, root, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = hit

	opts.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", hit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// SceneWithCacheInfo returns the scene of spec, the spec hash, and whether
// the scene came from cache.
func (r *Runner) SceneWithCacheInfo(ctx context.Context, spec chart.ChartSpec, opts Options) (*scene.Node, string, bool, error) {
	// Validate before hashing so invalid specs never touch the cache.
	if err := chart.Validate(spec); err != nil {
		return nil, "", false, err
	}
	specData, err := json.Marshal(spec)
	if err != nil {
		return nil, "", false, fmt.Errorf("serialize spec for cache key: %w", err)
	}
	specHash := cache.Hash(specData)
	key := r.Keyer.SceneKey(specHash, opts.SceneKeyOpts())

	if !opts.Refresh {
		if data, ok := r.lookup(ctx, key, cache.KeyTypeScene); ok {
			var cached scene.Node
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, specHash, true, nil
			}
			opts.Logger.Warn("discarding unreadable cached scene", "key", key)
		}
	}

	root, err := histogram.Render(spec, opts.Config.Options()...)
	if err != nil {
		return nil, "", false, err
	}
	if data, err := json.Marshal(root); err == nil {
		r.store(ctx, key, cache.KeyTypeScene, data, cache.TTLScene)
	}
	return root, specHash, false, nil
}

// RenderWithCacheInfo serializes root into opts.Formats and reports whether
// every artifact came from cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, root *scene.Node, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}
	sceneHash := cache.Hash(root.Marshal())

	if !opts.Refresh {
		artifacts := make(map[string][]byte, len(opts.Formats))
		for _, format := range opts.Formats {
			data, ok := r.lookup(ctx, r.Keyer.ArtifactKey(sceneHash, opts.ArtifactKeyOpts(format)), cache.KeyTypeArtifact)
			if !ok {
				break
			}
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			return artifacts, true, nil
		}
	}

	rendered, err := Render(ctx, root, opts)
	if err != nil {
		return nil, false, err
	}
	for format, data := range rendered {
		r.store(ctx, r.Keyer.ArtifactKey(sceneHash, opts.ArtifactKeyOpts(format)), cache.KeyTypeArtifact, data, cache.TTLArtifact)
	}
	return rendered, false, nil
}

// lookup treats cache errors as misses.
func (r *Runner) lookup(ctx context.Context, key, keyType string) ([]byte, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "type", keyType, "err", err)
		hit = false
	}
	if hit {
		observability.Cache().OnCacheHit(ctx, keyType)
		return data, true
	}
	observability.Cache().OnCacheMiss(ctx, keyType)
	return nil, false
}

// store ignores cache errors beyond logging them.
func (r *Runner) store(ctx context.Context, key, keyType string, data []byte, ttl time.Duration) {
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Warn("cache write failed", "type", keyType, "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
