package corpscan

import (
	"context"
	"strings"
)

// Fetcher retrieves raw page content from URLs.
type Fetcher interface {
	// Fetch issues a GET for the URL and returns the response body.
	// A 403 or 404 is terminal for the URL (ENOTFOUND, no retry);
	// other transient failures may be retried internally before
	// surfacing. The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases client resources.
	Close() error
}

// ResolvedPage is a homepage reachable under one of a domain's URL
// variants. URL is the confirmed-reachable base used to resolve all
// relative links thereafter.
type ResolvedPage struct {
	URL  string
	HTML string
}

// Resolver turns a bare domain into a reachable homepage.
type Resolver interface {
	// Resolve tries the domain's URL variants in order and returns the
	// first that serves content. Returns EUNREACHABLE when every
	// variant is exhausted.
	Resolve(ctx context.Context, domain string) (*ResolvedPage, error)
}

// URLVariants builds the ordered candidate URL list for a bare domain:
// https before http, the domain as given before its www-toggled form
// (strip "www." if present, otherwise prepend it).
func URLVariants(domain string) []string {
	toggled := "www." + domain
	if strings.HasPrefix(domain, "www.") {
		toggled = strings.TrimPrefix(domain, "www.")
	}
	return []string{
		"https://" + domain,
		"http://" + domain,
		"https://" + toggled,
		"http://" + toggled,
	}
}

// HostLimiter throttles outbound requests per host.
type HostLimiter interface {
	// Wait blocks until the host's rate limit allows another request,
	// or the context is canceled.
	Wait(ctx context.Context, host string) error
}
