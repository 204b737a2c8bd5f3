package isopath

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// FitAll smooths many independent geometries in parallel, using at most
// workers goroutines (GOMAXPROCS if workers ≤ 0). Results are in input
// order.
//
// The first failure cancels the remaining work; its error is returned
// wrapped with the geometry's index, so [errors.As] still finds an
// [*UnsupportedGeometryError]. Options are validated once, before any
// goroutine starts.
func FitAll(ctx context.Context, e Extractor, geoms []Geometry, opts FitOptions, workers int) ([]SegmentedPath, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	out := make([]SegmentedPath, len(geoms))
	parent := ctx
	g, ctx := errgroup.WithContext(parent)
	g.SetLimit(workers)
	for i, geom := range geoms {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p, err := SmoothWith(e, geom, opts)
			if err != nil {
				return fmt.Errorf("geometry %d: %w", i, err)
			}
			Logger().Debug("isopath: smoothed geometry",
				"index", i, "subpaths", len(p.Subpaths), "segments", p.NumSegments())
			out[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// Work may have been skipped because parent was canceled.
	if err := parent.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
