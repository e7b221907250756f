package mock

import (
	"context"

	"github.com/mwalkiewicz/corpscan"
)

var _ corpscan.Resolver = (*Resolver)(nil)

// Resolver is a mock implementation of corpscan.Resolver.
type Resolver struct {
	ResolveFn func(ctx context.Context, domain string) (*corpscan.ResolvedPage, error)
}

func (r *Resolver) Resolve(ctx context.Context, domain string) (*corpscan.ResolvedPage, error) {
	return r.ResolveFn(ctx, domain)
}
