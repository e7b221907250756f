// Package http provides the HTTP implementations of corpscan.Fetcher,
// corpscan.Resolver, and corpscan.SitemapService, plus the JSON API
// server.
package http

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"

	"github.com/mwalkiewicz/corpscan"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultAttempts is the default number of tries per URL before the
// fetcher gives up on it.
const DefaultAttempts = 3

// DefaultUserAgent mimics a desktop browser. Many sites serve an empty
// or blocked page to obvious bot user-agents.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Ensure Fetcher implements corpscan.Fetcher at compile time.
var _ corpscan.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves page content over plain HTTP. It does not execute
// JavaScript; pages rendered entirely client-side yield whatever the
// server sends.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	attempts  int
	userAgent string
	backoff   func() time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithAttempts sets how many times a URL is tried before the fetcher
// gives up on it. Defaults to DefaultAttempts.
func WithAttempts(n int) Option {
	return func(f *Fetcher) {
		if n > 0 {
			f.attempts = n
		}
	}
}

// WithUserAgent overrides the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithBackoff sets the function producing the delay between retries.
// Defaults to a uniform random delay between 1s and 3s.
func WithBackoff(fn func() time.Duration) Option {
	return func(f *Fetcher) {
		f.backoff = fn
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		attempts:  DefaultAttempts,
		userAgent: DefaultUserAgent,
		backoff:   defaultBackoff,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// defaultBackoff returns a uniform random delay between 1s and 3s.
func defaultBackoff() time.Duration {
	return time.Second + time.Duration(rand.Int63n(int64(2*time.Second)))
}

// Fetch retrieves the content served at url, retrying transient
// failures with randomized backoff. A 403 or 404 is terminal for the
// URL and returns ENOTFOUND without retrying.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	var lastErr error

	for attempt := 0; attempt < f.attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(f.backoff()):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}

		body, err := f.fetchOnce(ctx, url)
		if err == nil {
			return body, nil
		}
		if corpscan.ErrorCode(err) == corpscan.ENOTFOUND {
			return "", err
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		lastErr = err
	}

	return "", lastErr
}

func (f *Fetcher) fetchOnce(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", corpscan.Errorf(corpscan.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusNotFound:
		return "", corpscan.Errorf(corpscan.ENOTFOUND, "HTTP %d for %s", resp.StatusCode, url)
	default:
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
