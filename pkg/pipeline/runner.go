package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/spanlayout/pkg/algebra"
	"github.com/matzehuels/spanlayout/pkg/cache"
	"github.com/matzehuels/spanlayout/pkg/observability"
	"github.com/matzehuels/spanlayout/pkg/solver"
)

// Runner executes pipeline stages with caching. It keeps no per-run state,
// so one Runner may serve concurrent requests.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner. A nil keyer means [cache.DefaultKeyer], a nil
// cache disables caching and a nil logger means log.Default().
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

// Execute resolves opts.Document and renders every requested format.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}

	layoutStart := time.Now()
	lr, err := r.Layout(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = lr
	result.Stats.Items = len(lr.Scene.Items)
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.CacheInfo.LayoutHit = lr.CacheHit

	r.Logger.Info("resolved layout",
		"size", fmt.Sprintf("%dx%d", lr.Scene.Width, lr.Scene.Height),
		"items", result.Stats.Items,
		"cached", lr.CacheHit,
		"duration", result.Stats.LayoutTime)

	renderStart := time.Now()
	artifacts, hit, err := r.Render(ctx, lr, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = hit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", hit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Solve parses and solves opts.Constraints.
func (r *Runner) Solve(ctx context.Context, opts Options) (*SolveResult, error) {
	if err := opts.ValidateForSolve(); err != nil {
		return nil, err
	}
	system, err := ParseSystem(opts.Constraints)
	if err != nil {
		return nil, err
	}

	hooks := observability.Solve()
	hooks.OnSolveStart(ctx, system.Len())
	start := time.Now()

	res := &SolveResult{
		SystemHash: SystemHash(system),
		Kind:       algebra.ClassifySystem(system).Kind.String(),
	}
	key := r.Keyer.SolutionKey(res.SystemHash)
	if !opts.Refresh && r.load(ctx, "solution", key, &res.Solution) {
		res.CacheHit = true
	} else {
		res.Solution = solver.Solve(system)
		r.store(ctx, "solution", key, res.Solution, cache.TTLSolution)
	}

	hooks.OnSolveComplete(ctx, summary(res.Solution), time.Since(start), nil)
	r.Logger.Debug("solved system",
		"constraints", system.Len(),
		"kind", res.Kind,
		"status", summary(res.Solution),
		"cached", res.CacheHit,
		"duration", time.Since(start))
	return res, nil
}

// Layout resolves opts.Document at the requested container size.
func (r *Runner) Layout(ctx context.Context, opts Options) (*LayoutResult, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForLayout(); err != nil {
		return nil, err
	}
	docHash, err := DocumentHash(opts.Document)
	if err != nil {
		return nil, fmt.Errorf("hash document: %w", err)
	}

	hooks := observability.Layout()
	hooks.OnResizeStart(ctx, len(opts.Document.Layout), opts.Width, opts.Height)
	start := time.Now()

	key := r.Keyer.LayoutKey(docHash, opts.LayoutKeyOpts())
	var res LayoutResult
	if !opts.Refresh && r.load(ctx, "layout", key, &res) {
		res.CacheHit = true
	} else {
		resolved, err := ResolveLayout(opts.Document, opts.Width, opts.Height, opts.Logger)
		if err != nil {
			hooks.OnResizeComplete(ctx, 0, time.Since(start), err)
			return nil, err
		}
		res = *resolved
		res.DocHash = docHash
		r.store(ctx, "layout", key, res, cache.TTLLayout)
	}

	hooks.OnResizeComplete(ctx, len(res.Solution.Inconsistencies), time.Since(start), nil)
	return &res, nil
}

// Render draws a resolved layout in opts.Formats. The boolean reports
// whether every artifact came from the cache.
func (r *Runner) Render(ctx context.Context, res *LayoutResult, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	hash, err := sceneHash(res)
	if err != nil {
		return nil, false, fmt.Errorf("hash scene: %w", err)
	}

	// Formats are independent, so PNG and PDF conversions run side by side.
	results := make([][]byte, len(opts.Formats))
	hits := make([]bool, len(opts.Formats))
	g, gctx := errgroup.WithContext(ctx)
	for i, format := range opts.Formats {
		g.Go(func() error {
			key := r.Keyer.RenderKey(hash, opts.RenderKeyOpts(format))
			if !opts.Refresh {
				if data, ok := r.get(gctx, "render", key); ok {
					results[i], hits[i] = data, true
					return nil
				}
			}
			data, err := renderFormat(res, format, opts)
			if err != nil {
				return fmt.Errorf("render %s: %w", format, err)
			}
			results[i] = data
			r.set(gctx, "render", key, data, cache.TTLRender)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, false, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	allCached := true
	for i, format := range opts.Formats {
		artifacts[format] = results[i]
		allCached = allCached && hits[i]
	}
	return artifacts, allCached, nil
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// get reads a cache entry. Backend errors are logged and count as a miss.
func (r *Runner) get(ctx context.Context, keyType, key string) ([]byte, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "type", keyType, "err", err)
		hit = false
	}
	if hit {
		observability.Cache().OnCacheHit(ctx, keyType)
	} else {
		observability.Cache().OnCacheMiss(ctx, keyType)
	}
	return data, hit
}

func (r *Runner) set(ctx context.Context, keyType, key string, data []byte, ttl time.Duration) {
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Warn("cache write failed", "type", keyType, "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}

// load decodes a JSON cache entry into v. Undecodable entries are misses.
func (r *Runner) load(ctx context.Context, keyType, key string, v any) bool {
	data, ok := r.get(ctx, keyType, key)
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		r.Logger.Debug("discarding cache entry", "type", keyType, "err", err)
		return false
	}
	return true
}

func (r *Runner) store(ctx context.Context, keyType, key string, v any, ttl time.Duration) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	r.set(ctx, keyType, key, data, ttl)
}

// summary names the overall status of a solution.
func summary(sol solver.Solution) string {
	switch {
	case sol.IsInconsistent():
		return solver.Inconsistent.String()
	case !sol.IsSolved():
		return solver.Underdetermined.String()
	}
	return solver.Solved.String()
}
