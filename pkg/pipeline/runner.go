package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/blockgraph/pkg/block"
	"github.com/matzehuels/blockgraph/pkg/cache"
	"github.com/matzehuels/blockgraph/pkg/graph"
	"github.com/matzehuels/blockgraph/pkg/graph/transform"
	blockio "github.com/matzehuels/blockgraph/pkg/io"
	"github.com/matzehuels/blockgraph/pkg/layout"
	"github.com/matzehuels/blockgraph/pkg/navigation"
	"github.com/matzehuels/blockgraph/pkg/observability"
)

// Runner executes the pipeline with caching.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
// If logger is nil, warnings and errors go to stderr.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{Level: log.WarnLevel})
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// cachedLayout is the memoised part of a Result.
type cachedLayout struct {
	Levels      map[string]int             `json:"levels"`
	Edges       []graph.Edge               `json:"edges"`
	Positions   map[string]layout.Position `json:"positions"`
	Diagnostics blockio.Diagnostics        `json:"diagnostics"`
}

// Layout builds, positions and categorizes blocks.
func (r *Runner) Layout(ctx context.Context, blocks []block.Block, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)
	logger := opts.Logger
	hooks := observability.Layout()

	result := &Result{Options: opts}

	// Stage 1: Build
	buildStart := time.Now()
	hooks.OnBuildStart(ctx, len(blocks))
	g, err := graph.Build(blocks)
	result.Stats.BuildTime = time.Since(buildStart)
	if err != nil {
		hooks.OnBuildComplete(ctx, len(blocks), 0, result.Stats.BuildTime, err)
		return nil, fmt.Errorf("build: %w", err)
	}
	hooks.OnBuildComplete(ctx, g.Len(), len(g.Edges()), result.Stats.BuildTime, nil)
	result.Graph = g
	result.Stats.BlockCount = g.Len()

	logger.Debug("built graph",
		"blocks", g.Len(),
		"edges", len(g.Edges()),
		"duration", result.Stats.BuildTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hash, err := cache.HashJSON(blocks)
	if err != nil {
		return nil, fmt.Errorf("hash blocks: %w", err)
	}
	result.BlocksHash = hash

	// Stage 2: Layout
	layoutStart := time.Now()
	cached, hit, err := r.layoutWithCacheInfo(ctx, g, hash, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.CacheHit = hit
	result.Levels = cached.Levels
	result.Edges = cached.Edges
	result.Positions = cached.Positions
	result.Diagnostics = cached.Diagnostics
	result.Stats.EdgeCount = len(cached.Edges)
	result.Stats.LevelCount = transform.MaxLevel(cached.Levels) + 1

	logger.Info("computed layout",
		"blocks", g.Len(),
		"levels", result.Stats.LevelCount,
		"cached", hit,
		"duration", result.Stats.LayoutTime)

	if n := len(cached.Diagnostics.Cycles); n > 0 {
		hooks.OnCyclesDetected(ctx, n)
		logger.Warn("prerequisite cycles detected", "count", n, "first", cached.Diagnostics.Cycles[0])
	}
	if n := cached.Diagnostics.DanglingEdges; n > 0 {
		logger.Debug("ignored edges to unknown blocks", "count", n)
	}

	// Stage 3: Categorize
	if opts.Selected != "" && !g.Has(opts.Selected) {
		logger.Warn("selected block not found, showing root view", "selected", opts.Selected)
	}
	result.Categories = navigation.Categorize(g, navigation.State{SelectedID: opts.Selected})
	hooks.OnCategorize(ctx, opts.Selected, result.Categories.Visible.Len(), result.Categories.Dimmed.Len())

	return result, nil
}

// layoutWithCacheInfo returns the memoised layout of g, computing and storing
// it on a miss.
func (r *Runner) layoutWithCacheInfo(ctx context.Context, g *graph.BlockGraph, blocksHash string, opts Options) (cachedLayout, bool, error) {
	cacheHooks := observability.Cache()
	key := r.Keyer.LayoutKey(blocksHash, opts.LayoutKeyOpts())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		var cached cachedLayout
		err := cache.GetJSON(ctx, r.Cache, key, &cached)
		if err == nil {
			cacheHooks.OnCacheHit(ctx, key)
			return cached, true, nil
		}
		// A corrupt entry is recomputed like a miss.
		cacheHooks.OnCacheMiss(ctx, key)
	}

	computed, err := r.computeLayout(ctx, g, opts)
	if err != nil {
		return cachedLayout{}, false, err
	}

	if size, err := cache.SetJSON(ctx, r.Cache, key, computed, cache.DefaultTTL); err == nil {
		cacheHooks.OnCacheSet(ctx, key, size)
	} else {
		opts.Logger.Debug("cache store failed", "key", key, "error", err)
	}
	return computed, false, nil
}

func (r *Runner) computeLayout(ctx context.Context, g *graph.BlockGraph, opts Options) (out cachedLayout, err error) {
	hooks := observability.Layout()
	orientation := opts.Layout.Orientation.String()
	start := time.Now()
	hooks.OnLayoutStart(ctx, orientation, g.Len())
	defer func() {
		hooks.OnLayoutComplete(ctx, orientation, transform.MaxLevel(out.Levels)+1, time.Since(start), err)
	}()

	out.Levels = transform.AssignLevels(g)
	if err := ctx.Err(); err != nil {
		return cachedLayout{}, err
	}

	out.Edges = g.Edges()
	if opts.Reduce {
		red := transform.Reduce(out.Edges)
		out.Edges = red.Kept
		out.Diagnostics.RemovedEdges = red.Removed
		hooks.OnReduce(ctx, red.Removed)
		opts.Logger.Debug("removed transitive edges", "count", red.Removed)
	}

	out.Positions = layout.Compute(g, out.Levels, opts.Layout)
	if err := ctx.Err(); err != nil {
		return cachedLayout{}, err
	}

	idx := g.Index()
	out.Diagnostics.Cycles = idx.DetectCycles()
	out.Diagnostics.TopologicalOrder = idx.TopologicalOrder()
	for _, e := range out.Edges {
		if !g.Has(e.From) || !g.Has(e.To) {
			out.Diagnostics.DanglingEdges++
		}
	}
	return out, nil
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
