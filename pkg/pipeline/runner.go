package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/seatplan/pkg/cache"
	"github.com/matzehuels/seatplan/pkg/chart"
	"github.com/matzehuels/seatplan/pkg/chartio"
	"github.com/matzehuels/seatplan/pkg/errors"
	"github.com/matzehuels/seatplan/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL is the artifact lifetime. Zero means cache.TTLArtifact.
	TTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, caching is disabled.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute loads the chart at path and renders it.
func (r *Runner) Execute(ctx context.Context, path string, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	loadStart := time.Now()
	c, loadHit, err := r.LoadWithCacheInfo(ctx, path, opts.Refresh)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result := &Result{Chart: c}
	result.Stats.LoadTime = time.Since(loadStart)
	result.CacheInfo.LoadHit = loadHit
	result.Stats.Sections = len(c.Sections)
	result.Stats.Elements = len(c.Elements())
	result.Stats.Seats = c.SeatCount()

	r.Logger.Info("loaded chart",
		"sections", result.Stats.Sections,
		"elements", result.Stats.Elements,
		"seats", result.Stats.Seats,
		"duration", result.Stats.LoadTime)

	renderStart := time.Now()
	artifacts, hash, renderHit, err := r.render(ctx, c, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.ChartHash = hash
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// LoadWithCacheInfo reads and validates the chart at path. The validated
// chart is cached under the hash of the file contents, so unchanged files
// skip validation. refresh bypasses the cache lookup.
func (r *Runner) LoadWithCacheInfo(ctx context.Context, path string, refresh bool) (c chart.Chart, hit bool, err error) {
	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, path)
	start := time.Now()
	defer func() {
		hooks.OnLoadComplete(ctx, path, len(c.Sections), time.Since(start), err)
	}()

	if err := errors.ValidatePath(path); err != nil {
		return chart.Chart{}, false, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return chart.Chart{}, false, errors.Wrap(errors.ErrCodeFileNotFound, err, "chart %s", path)
	}
	if err != nil {
		return chart.Chart{}, false, errors.Wrap(errors.ErrCodeInvalidPath, err, "read %s", path)
	}
	return r.DecodeWithCacheInfo(ctx, data, refresh)
}

// Load is a convenience wrapper that discards the cache hit info.
func (r *Runner) Load(ctx context.Context, path string) (chart.Chart, error) {
	c, _, err := r.LoadWithCacheInfo(ctx, path, false)
	return c, err
}

// DecodeWithCacheInfo decodes chart bytes, consulting the cache first.
func (r *Runner) DecodeWithCacheInfo(ctx context.Context, data []byte, refresh bool) (chart.Chart, bool, error) {
	key := r.Keyer.ChartKey(cache.Hash(data))

	if !refresh {
		if cached, ok := r.cacheGet(ctx, "chart", key); ok {
			var c chart.Chart
			if err := json.Unmarshal(cached, &c); err == nil {
				return c, true, nil
			}
		}
	}

	c, err := chartio.Decode(data)
	if err != nil {
		return chart.Chart{}, false, err
	}
	if canonical, err := json.Marshal(c); err == nil {
		r.cacheSet(ctx, "chart", key, canonical, cache.TTLChart)
	}
	return c, false, nil
}

// RenderWithCacheInfo renders c with caching and reports whether every
// artifact came from the cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, c chart.Chart, opts Options) (map[string][]byte, bool, error) {
	r.applyLogger(&opts)
	if err := opts.Validate(); err != nil {
		return nil, false, err
	}
	artifacts, _, hit, err := r.render(ctx, c, opts)
	return artifacts, hit, err
}

// Render is a convenience wrapper that discards the cache hit info.
func (r *Runner) Render(ctx context.Context, c chart.Chart, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, c, opts)
	return artifacts, err
}

// render expects validated options. It returns the chart hash used for
// artifact keys.
func (r *Runner) render(ctx context.Context, c chart.Chart, opts Options) (artifacts map[string][]byte, hash string, hit bool, err error) {
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	defer func() {
		hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	}()

	data, err := json.Marshal(c)
	if err != nil {
		return nil, "", false, errors.Wrap(errors.ErrCodeInternal, err, "serialize chart for cache key")
	}
	hash = cache.Hash(data)

	if !opts.Refresh {
		artifacts = make(map[string][]byte, len(opts.Formats))
		for _, format := range opts.Formats {
			cached, ok := r.cacheGet(ctx, "artifact", r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts(format)))
			if !ok {
				break
			}
			artifacts[format] = cached
		}
		if len(artifacts) == len(opts.Formats) {
			opts.Logger.Debug("artifacts from cache", "hash", hash[:12])
			return artifacts, hash, true, nil
		}
	}

	artifacts, err = Render(c, opts)
	if err != nil {
		return nil, hash, false, err
	}
	for format, out := range artifacts {
		r.cacheSet(ctx, "artifact", r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts(format)), out, r.artifactTTL())
	}
	return artifacts, hash, false, nil
}

// cacheGet treats cache errors as misses; the cache is an optimization.
func (r *Runner) cacheGet(ctx context.Context, kind, key string) ([]byte, bool) {
	if cache.Disabled(r.Cache) {
		return nil, false
	}
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "kind", kind, "err", err)
		return nil, false
	}
	if !hit {
		observability.Cache().OnCacheMiss(ctx, kind)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, kind)
	return data, true
}

func (r *Runner) cacheSet(ctx context.Context, kind, key string, data []byte, ttl time.Duration) {
	if cache.Disabled(r.Cache) {
		return
	}
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Warn("cache write failed", "kind", kind, "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, kind, len(data))
}

func (r *Runner) artifactTTL() time.Duration {
	if r.TTL > 0 {
		return r.TTL
	}
	return cache.TTLArtifact
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
