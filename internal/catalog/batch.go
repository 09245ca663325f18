package catalog

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Result is the outcome of registering one definition.
type Result struct {
	Definition Definition
	Entry      *Entry
	Err        error
}

// OK reports whether the definition was registered.
func (r Result) OK() bool { return r.Err == nil }

// RegisterAll registers defs concurrently, at most Options.Concurrency at a
// time. Results are in input order; a failure does not stop the others.
func (c *Catalog) RegisterAll(ctx context.Context, defs []Definition) []Result {
	results := make([]Result, len(defs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.opts.Concurrency)
	for i, def := range defs {
		g.Go(func() error {
			entry, err := c.Register(gctx, def)
			results[i] = Result{Definition: def, Entry: entry, Err: err}
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// Failed returns the failed results.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if !r.OK() {
			failed = append(failed, r)
		}
	}
	return failed
}
