package types

import (
	"context"

	"jobdigest/internal/domain"
)

// Result is what one source contributes to a run.
type Result struct {
	Source string
	Leads  []domain.Lead
}

// Fetcher is one job source. Fetch is best-effort: an error means the source
// contributes nothing this run, never that the run fails.
type Fetcher interface {
	Name() string
	Fetch(ctx context.Context) (Result, error)
}
