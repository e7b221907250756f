package analyze

import (
	"context"
	"math/rand"
	"time"

	"github.com/mwalkiewicz/corpscan"
)

// defaultDelay sleeps for a uniform random 1-3s, a politeness pause
// between domains in a batch.
func defaultDelay(ctx context.Context) error {
	d := time.Second + time.Duration(rand.Int63n(int64(2*time.Second)))
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// AnalyzeDomains analyzes domains strictly sequentially, pausing
// between them (but not after the last). One domain's failure never
// aborts the rest; only context cancellation stops the batch early,
// returning the results collected so far.
func (a *Analyzer) AnalyzeDomains(ctx context.Context, domains []string) ([]*corpscan.Analysis, error) {
	delay := a.Delay
	if delay == nil {
		delay = defaultDelay
	}

	results := make([]*corpscan.Analysis, 0, len(domains))
	for i, domain := range domains {
		analysis, err := a.AnalyzeDomain(ctx, domain)
		if err != nil {
			if ctx.Err() != nil {
				return results, ctx.Err()
			}
			analysis = &corpscan.Analysis{Domain: domain, Status: corpscan.StatusError}
		}
		results = append(results, analysis)

		if i < len(domains)-1 {
			if err := delay(ctx); err != nil {
				return results, err
			}
		}
	}
	return results, nil
}
