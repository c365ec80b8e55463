package fetch

import (
	"context"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"jobdigest/internal/domain"
	"jobdigest/internal/fetch/types"
)

// UserAgent goes on every outbound request; some boards 403 the default
// Go-http-client string.
const UserAgent = "Mozilla/5.0 (compatible; JobDigest/1.0; +https://github.com/)"

const defaultTimeout = 15 * time.Second

// RunOnce runs every fetcher in parallel with its own timeout and flattens
// the results in fetcher order, so dedupe's first-seen-wins tie-break follows
// the declared source order regardless of which source answered first.
// A failing source logs and contributes zero leads.
func RunOnce(ctx context.Context, timeout time.Duration, fetchers []types.Fetcher) []domain.Lead {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	results := make([]types.Result, len(fetchers))

	var g errgroup.Group
	for i, f := range fetchers {
		i, f := i, f
		g.Go(func() error {
			fctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			log.Printf("[%s] fetching...", f.Name())
			res, err := f.Fetch(fctx)
			if err != nil {
				log.Printf("[%s] error: %v", f.Name(), err)
				return nil // best-effort: don't cancel siblings
			}
			log.Printf("[%s] got %d lead(s)", f.Name(), len(res.Leads))
			results[i] = res
			return nil
		})
	}
	_ = g.Wait()

	var out []domain.Lead
	for _, res := range results {
		out = append(out, res.Leads...)
	}
	return out
}
