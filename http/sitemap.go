package http

import (
	"bufio"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/mwalkiewicz/corpscan"
)

// maxSitemapDepth bounds sitemapindex recursion; real indexes rarely
// nest more than twice.
const maxSitemapDepth = 3

// policyPathKeywords select sitemap entries that look like legal or
// contact pages. Matching is on the URL path only, so a domain like
// "legaltech.example" does not match everything.
var policyPathKeywords = []string{
	"privacy",
	"terms",
	"legal",
	"imprint",
	"impressum",
	"datenschutz",
	"contact",
	"kontakt",
	"about",
}

// Ensure SitemapService implements corpscan.SitemapService.
var _ corpscan.SitemapService = (*SitemapService)(nil)

// SitemapService discovers policy-page URLs from website sitemaps.
type SitemapService struct {
	client *http.Client
}

// NewSitemapService creates a new SitemapService with the given HTTP
// client. If client is nil, a client with DefaultFetchTimeout is used.
func NewSitemapService(client *http.Client) *SitemapService {
	if client == nil {
		client = &http.Client{Timeout: DefaultFetchTimeout}
	}
	return &SitemapService{client: client}
}

// PolicyURLs finds sitemap entries whose paths look like privacy,
// terms, imprint, or contact pages. Sitemap URLs come from robots.txt
// Sitemap: directives, falling back to /sitemap.xml. A missing or
// unparsable sitemap yields an empty slice, never an error; only
// context cancellation is surfaced.
func (s *SitemapService) PolicyURLs(ctx context.Context, baseURL string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	base, err := url.Parse(baseURL)
	if err != nil || base.Host == "" {
		return nil, corpscan.Errorf(corpscan.EINVALID, "invalid base URL %q", baseURL)
	}

	sitemapURLs := s.findSitemapURLs(ctx, base)
	if len(sitemapURLs) == 0 {
		return []string{}, nil
	}

	seenSitemaps := make(map[string]bool)
	seenURLs := make(map[string]bool)
	var urls []string

	for _, sitemapURL := range sitemapURLs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for _, u := range s.collectURLs(ctx, sitemapURL, seenSitemaps, 0) {
			if !seenURLs[u] && isPolicyPath(u) {
				seenURLs[u] = true
				urls = append(urls, u)
			}
		}
	}

	if urls == nil {
		urls = []string{}
	}
	return urls, nil
}

// isPolicyPath reports whether the URL's path contains a policy
// keyword.
func isPolicyPath(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	path := strings.ToLower(parsed.Path)
	for _, kw := range policyPathKeywords {
		if strings.Contains(path, kw) {
			return true
		}
	}
	return false
}

// findSitemapURLs extracts Sitemap: directives from robots.txt, falling
// back to the conventional /sitemap.xml location.
func (s *SitemapService) findSitemapURLs(ctx context.Context, base *url.URL) []string {
	root := &url.URL{Scheme: base.Scheme, Host: base.Host}

	robotsURL := root.ResolveReference(&url.URL{Path: "/robots.txt"})
	if sitemaps := s.parseSitemapsFromRobots(ctx, robotsURL.String()); len(sitemaps) > 0 {
		return sitemaps
	}

	return []string{root.ResolveReference(&url.URL{Path: "/sitemap.xml"}).String()}
}

// parseSitemapsFromRobots returns the Sitemap: directive values from a
// robots.txt, or nil when the file is missing or has none.
func (s *SitemapService) parseSitemapsFromRobots(ctx context.Context, robotsURL string) []string {
	body, err := s.fetchURL(ctx, robotsURL)
	if err != nil {
		return nil
	}
	defer body.Close()

	var sitemaps []string
	scanner := bufio.NewScanner(body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(strings.ToLower(line), "sitemap:") {
			if u := strings.TrimSpace(line[len("sitemap:"):]); u != "" {
				sitemaps = append(sitemaps, u)
			}
		}
	}
	return sitemaps
}

// collectURLs fetches and parses one sitemap, recursing into
// sitemapindex children. Fetch and parse failures yield no URLs.
func (s *SitemapService) collectURLs(ctx context.Context, sitemapURL string, seen map[string]bool, depth int) []string {
	if depth > maxSitemapDepth || seen[sitemapURL] || ctx.Err() != nil {
		return nil
	}
	seen[sitemapURL] = true

	body, err := s.fetchURL(ctx, sitemapURL)
	if err != nil {
		return nil
	}
	defer body.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(body); err != nil {
		return nil
	}

	root := doc.Root()
	if root == nil {
		return nil
	}

	if root.Tag == "sitemapindex" {
		var urls []string
		for _, child := range root.SelectElements("sitemap") {
			loc := child.SelectElement("loc")
			if loc == nil {
				continue
			}
			childURL := strings.TrimSpace(loc.Text())
			if childURL == "" {
				continue
			}
			urls = append(urls, s.collectURLs(ctx, childURL, seen, depth+1)...)
		}
		return urls
	}

	var urls []string
	for _, entry := range root.SelectElements("url") {
		loc := entry.SelectElement("loc")
		if loc == nil {
			continue
		}
		if u := strings.TrimSpace(loc.Text()); u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}

func (s *SitemapService) fetchURL(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", DefaultUserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, corpscan.Errorf(corpscan.ENOTFOUND, "HTTP %d for %s", resp.StatusCode, rawURL)
	}
	return resp.Body, nil
}
