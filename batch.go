package speakit

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// SplitAll splits every symbol independently. The result has the same length and order as
// symbols.
func (s *Splitter) SplitAll(symbols []string) []string {
	out := make([]string, len(symbols))
	for i, symbol := range symbols {
		out[i] = s.Split(symbol)
	}
	return out
}

// SplitAllConcurrent is SplitAll spread over up to workers goroutines. A non-positive workers
// count uses GOMAXPROCS. Results keep their input positions. The only possible error is the
// context's.
func (s *Splitter) SplitAllConcurrent(ctx context.Context, symbols []string, workers int) ([]string, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]string, len(symbols))
	if len(symbols) == 0 {
		return out, nil
	}

	chunk := (len(symbols) + workers - 1) / workers
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for lo := 0; lo < len(symbols); lo += chunk {
		hi := min(lo+chunk, len(symbols))
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				out[i] = s.Split(symbols[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
