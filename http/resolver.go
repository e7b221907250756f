package http

import (
	"context"

	"github.com/mwalkiewicz/corpscan"
)

// Ensure Resolver implements corpscan.Resolver at compile time.
var _ corpscan.Resolver = (*Resolver)(nil)

// Resolver turns a bare domain into a reachable homepage by trying its
// URL variants in order: https before http, the domain as given before
// its www-toggled form.
type Resolver struct {
	fetcher corpscan.Fetcher
}

// NewResolver creates a Resolver backed by the given fetcher.
func NewResolver(fetcher corpscan.Fetcher) *Resolver {
	return &Resolver{fetcher: fetcher}
}

// Resolve returns the first URL variant that serves content, with the
// content it served. A variant's failure never aborts the list; only
// exhausting all variants yields EUNREACHABLE.
func (r *Resolver) Resolve(ctx context.Context, domain string) (*corpscan.ResolvedPage, error) {
	if domain == "" {
		return nil, corpscan.Errorf(corpscan.EINVALID, "domain required")
	}

	for _, url := range corpscan.URLVariants(domain) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		html, err := r.fetcher.Fetch(ctx, url)
		if err != nil {
			continue
		}
		return &corpscan.ResolvedPage{URL: url, HTML: html}, nil
	}

	return nil, corpscan.Errorf(corpscan.EUNREACHABLE, "no URL variant of %q is reachable", domain)
}
