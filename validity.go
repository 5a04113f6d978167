package pointrep

import (
	"context"
	"runtime"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/pointrep/internal/math32"
)

// ValidMask returns a bitmap of the indices in pts whose projected
// vector is fully finite. The mask is advisory, like IsValid: pts is not
// modified and invalid records can still be vectorized.
//
// Typical use is building the keep-set before feeding a point cloud into
// a spatial index.
func ValidMask[P any](r *Representation[P], pts []P) *roaring.Bitmap {
	rb := roaring.New()
	tmp := make([]float32, r.dims)
	for i, p := range pts {
		r.strategy.CopyToFloatSlice(p, tmp)
		if math32.AllFinite(tmp) {
			rb.Add(uint32(i)) //nolint:gosec // cloud sizes fit in uint32
		}
	}
	return rb
}

type scanOptions struct {
	parallelism int
	logger      *Logger
}

// ScanOption configures ValidMaskParallel.
type ScanOption func(*scanOptions)

// WithParallelism sets the number of concurrent scan shards.
// Defaults to GOMAXPROCS.
func WithParallelism(n int) ScanOption {
	return func(o *scanOptions) {
		if n > 0 {
			o.parallelism = n
		}
	}
}

// WithLogger sets the logger used to report scan results at debug level.
// Defaults to a no-op logger.
func WithLogger(l *Logger) ScanOption {
	return func(o *scanOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// ctxCheckInterval is how many records each shard scans between context
// cancellation checks.
const ctxCheckInterval = 1024

// ValidMaskParallel is ValidMask fanned out across shards. The result is
// identical to ValidMask; the only error condition is ctx cancellation.
//
// The representation must be fully configured before the call
// (configure-then-publish); the scan only performs reads.
func ValidMaskParallel[P any](ctx context.Context, r *Representation[P], pts []P, optFns ...ScanOption) (*roaring.Bitmap, error) {
	opts := scanOptions{
		parallelism: runtime.GOMAXPROCS(0),
		logger:      NoopLogger(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	n := opts.parallelism
	if n > len(pts) {
		n = len(pts)
	}
	if n <= 1 {
		rb := ValidMask(r, pts)
		opts.logger.DebugContext(ctx, "validity scan completed",
			"records", len(pts),
			"valid", rb.GetCardinality(),
		)
		return rb, nil
	}

	shards := make([]*roaring.Bitmap, n)
	chunk := (len(pts) + n - 1) / n

	g, ctx := errgroup.WithContext(ctx)
	for s := range n {
		g.Go(func() error {
			lo := s * chunk
			hi := min(lo+chunk, len(pts))

			rb := roaring.New()
			tmp := make([]float32, r.dims)
			for i := lo; i < hi; i++ {
				if (i-lo)%ctxCheckInterval == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				r.strategy.CopyToFloatSlice(pts[i], tmp)
				if math32.AllFinite(tmp) {
					rb.Add(uint32(i)) //nolint:gosec // cloud sizes fit in uint32
				}
			}
			shards[s] = rb
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := roaring.New()
	for _, rb := range shards {
		out.Or(rb)
	}
	opts.logger.DebugContext(ctx, "validity scan completed",
		"records", len(pts),
		"valid", out.GetCardinality(),
		"shards", n,
	)
	return out, nil
}
