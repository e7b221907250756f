package corpscan

import "context"

// SitemapService discovers policy-page URLs from website sitemaps.
type SitemapService interface {
	// PolicyURLs finds sitemap entries whose paths look like privacy,
	// terms, imprint, or contact pages. It checks robots.txt for
	// sitemap directives first, then falls back to /sitemap.xml.
	// A missing or unparsable sitemap is not an error; it simply
	// yields no URLs.
	PolicyURLs(ctx context.Context, baseURL string) ([]string, error)
}
