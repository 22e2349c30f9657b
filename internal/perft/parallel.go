package perft

import (
	"context"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"gomokugen/internal/gomoku"
)

type Options struct {
	// Workers bounds the number of root branches searched at once.
	// Zero means GOMAXPROCS.
	Workers int
	// Cache, if set, is shared by all workers and must be safe for
	// concurrent use (see ShardedCache).
	Cache Cache
}

// Parallel computes Perft(b, depth) by searching each root move in its own
// goroutine. Every branch works on its own copy of the board; only the sum
// and the optional cache are shared. Cancelling ctx stops branches that
// have not started yet and returns ctx.Err().
func Parallel(ctx context.Context, b gomoku.Board, depth int, opts Options) (uint64, error) {
	if depth <= 1 {
		return Perft(b, depth), nil
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var total atomic.Uint64
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for mv := range b.Moves() {
		child := b
		child.Apply(mv)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var n uint64
			if opts.Cache != nil {
				n = PerftCached(child, depth-1, opts.Cache)
			} else {
				n = Perft(child, depth-1)
			}
			total.Add(n)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return total.Load(), nil
}
