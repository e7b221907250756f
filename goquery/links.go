package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mwalkiewicz/corpscan"
)

// policyKeywords classify an anchor as pointing at privacy/terms/legal
// content, including the German variants common on EU sites.
var policyKeywords = []string{
	"privacy",
	"terms",
	"legal",
	"imprint",
	"contact",
	"about",
	"kontakt",
	"datenschutz",
	"impressum",
	"policy",
}

// contactKeywords is the narrower set used for contact URL discovery.
var contactKeywords = []string{
	"contact",
	"kontakt",
	"about",
	"imprint",
	"impressum",
}

// Ensure LinkFinder implements corpscan.LinkFinder at compile time.
var _ corpscan.LinkFinder = (*LinkFinder)(nil)

// LinkFinder discovers candidate secondary-page URLs from homepage
// markup by anchor keyword matching, with a static fallback list of
// conventional paths.
type LinkFinder struct{}

// NewLinkFinder creates a new LinkFinder.
func NewLinkFinder() *LinkFinder {
	return &LinkFinder{}
}

// FindPolicyURLs returns absolute candidate URLs: keyword-matched
// anchors in document order first, then the conventional fallback paths
// not already discovered. The result is deduplicated string-equal.
func (f *LinkFinder) FindPolicyURLs(content, baseURL string) ([]string, error) {
	if baseURL == "" {
		return nil, corpscan.Errorf(corpscan.EINVALID, "base URL required")
	}

	seen := make(map[string]bool)
	var urls []string
	add := func(u string) {
		if u != "" && !seen[u] {
			seen[u] = true
			urls = append(urls, u)
		}
	}

	for _, link := range matchAnchors(content, baseURL, policyKeywords) {
		add(link)
	}
	for _, path := range corpscan.PolicyPaths() {
		add(ResolveHref(baseURL, path))
	}

	return urls, nil
}

// FindContactURL returns the first anchor classified as a contact/about/
// imprint link, or the empty string when the homepage has none. It does
// not consult fallback paths: an unverified guess is worse than no
// contact URL.
func (f *LinkFinder) FindContactURL(content, baseURL string) (string, error) {
	if baseURL == "" {
		return "", corpscan.Errorf(corpscan.EINVALID, "base URL required")
	}

	links := matchAnchors(content, baseURL, contactKeywords)
	if len(links) == 0 {
		return "", nil
	}
	return links[0], nil
}

// matchAnchors scans anchor elements in document order and returns the
// absolute URLs of those whose href or visible text contains one of the
// keywords. Parse failures yield no links; malformed markup is absorbed,
// never raised.
func matchAnchors(content, baseURL string, keywords []string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil
	}

	var links []string
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok || href == "" || isNonHTTPLink(href) {
			return
		}
		haystack := strings.ToLower(href + " " + sel.Text())
		for _, kw := range keywords {
			if strings.Contains(haystack, kw) {
				links = append(links, ResolveHref(baseURL, href))
				return
			}
		}
	})
	return links
}

// isNonHTTPLink reports whether an href cannot lead to a fetchable page
// (fragments, javascript:, mailto:, tel:).
func isNonHTTPLink(href string) bool {
	lower := strings.ToLower(href)
	return strings.HasPrefix(lower, "#") ||
		strings.HasPrefix(lower, "javascript:") ||
		strings.HasPrefix(lower, "mailto:") ||
		strings.HasPrefix(lower, "tel:")
}

// ResolveHref converts an href to an absolute URL against the confirmed
// base. Scheme-qualified hrefs pass through; root-relative hrefs replace
// the base path; other relative hrefs append to it with exactly one
// separating slash. Query strings and fragments on the base are dropped
// first.
func ResolveHref(baseURL, href string) string {
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}

	base := baseURL
	if i := strings.IndexAny(base, "#?"); i >= 0 {
		base = base[:i]
	}

	if strings.HasPrefix(href, "/") {
		return hostRoot(base) + href
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + href
}

// hostRoot strips any path from a scheme-qualified URL, leaving
// scheme+host with no trailing slash.
func hostRoot(u string) string {
	rest := u
	prefix := ""
	if i := strings.Index(u, "://"); i >= 0 {
		prefix = u[:i+3]
		rest = u[i+3:]
	}
	if j := strings.Index(rest, "/"); j >= 0 {
		rest = rest[:j]
	}
	return prefix + rest
}
