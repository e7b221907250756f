// Package analyze implements the extraction pipeline: resolve a domain
// to a reachable homepage, extract a company name from it, and fall
// back to policy pages when the homepage yields nothing.
package analyze

import (
	"context"
	"net/url"

	"github.com/cespare/xxhash/v2"
	"github.com/mwalkiewicz/corpscan"
	"github.com/mwalkiewicz/corpscan/bloom"
)

// DefaultMaxPages caps how many secondary pages one analysis examines.
const DefaultMaxPages = 15

// Bloom filter sizing for the per-analysis visited set.
const (
	visitedExpectedURLs      = 1000
	visitedFalsePositiveRate = 0.01
)

// Ensure Analyzer implements corpscan.AnalysisService at compile time.
var _ corpscan.AnalysisService = (*Analyzer)(nil)

// Analyzer runs the name-extraction pipeline for single domains and
// batches. Resolver, Fetcher, Extractor, Normalizer, and Links are
// required; the remaining collaborators are optional refinements.
type Analyzer struct {
	Resolver   corpscan.Resolver
	Fetcher    corpscan.Fetcher
	Extractor  corpscan.NameExtractor
	Normalizer corpscan.Normalizer
	Links      corpscan.LinkFinder

	// Sitemap, when set, contributes policy URLs beyond those found in
	// homepage markup.
	Sitemap corpscan.SitemapService

	// Limiter, when set, throttles secondary-page fetches per host.
	Limiter corpscan.HostLimiter

	// Domains, when set, receives the result of every analysis:
	// unknown domains are registered, known ones updated.
	Domains corpscan.DomainService

	// Converter and Snapshots together enable markdown snapshots of
	// every fetched page. Snapshot failures never fail an analysis.
	Converter corpscan.Converter
	Snapshots corpscan.SnapshotWriter

	// MaxPages caps secondary-page fetches per analysis.
	// Defaults to DefaultMaxPages.
	MaxPages int

	// Delay pauses between domains in a batch; see AnalyzeDomains.
	// Defaults to a uniform random 1-3s sleep.
	Delay func(ctx context.Context) error
}

// AnalyzeDomain runs the full pipeline for one domain. Network faults
// below the orchestrator are absorbed: an unreachable domain yields a
// StatusError record, an extraction miss a StatusAnalyzed record with
// no name. Only context cancellation and store failures propagate.
func (a *Analyzer) AnalyzeDomain(ctx context.Context, domain string) (*corpscan.Analysis, error) {
	if domain == "" {
		return nil, corpscan.Errorf(corpscan.EINVALID, "domain required")
	}

	analysis := &corpscan.Analysis{
		Domain: domain,
		Status: corpscan.StatusAnalyzed,
	}

	page, err := a.Resolver.Resolve(ctx, domain)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		analysis.Status = corpscan.StatusError
		if err := a.persist(ctx, analysis); err != nil {
			return nil, err
		}
		return analysis, nil
	}

	walk := newWalk()
	walk.examine(page.URL, page.HTML)
	a.snapshot(ctx, page.URL, page.HTML)

	// Contact URL discovery is independent of the name outcome.
	if contactURL, err := a.Links.FindContactURL(page.HTML, page.URL); err == nil {
		analysis.ContactURL = contactURL
	}

	name := a.Extractor.ExtractName(page.HTML)
	if name == "" {
		name = a.Extractor.ExtractName(a.Normalizer.Text(page.HTML))
	}

	if name == "" {
		name, err = a.searchSecondaryPages(ctx, walk, page)
		if err != nil {
			return nil, err
		}
	}

	analysis.CompanyName = name
	if err := a.persist(ctx, analysis); err != nil {
		return nil, err
	}
	return analysis, nil
}

// searchSecondaryPages fetches policy-page candidates in order until
// one yields a name. Per-page fetch failures are absorbed.
func (a *Analyzer) searchSecondaryPages(ctx context.Context, walk *walkState, page *corpscan.ResolvedPage) (string, error) {
	candidates, err := a.Links.FindPolicyURLs(page.HTML, page.URL)
	if err != nil {
		candidates = nil
	}
	if a.Sitemap != nil {
		if extra, err := a.Sitemap.PolicyURLs(ctx, page.URL); err == nil {
			candidates = append(candidates, extra...)
		}
	}

	maxPages := a.MaxPages
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}

	fetched := 0
	for _, candidate := range candidates {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if fetched >= maxPages || walk.visited.Visit(candidate) {
			continue
		}

		if a.Limiter != nil {
			if err := a.Limiter.Wait(ctx, hostOf(candidate)); err != nil {
				return "", err
			}
		}

		html, err := a.Fetcher.Fetch(ctx, candidate)
		if err != nil {
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			continue
		}
		fetched++

		// Sites often serve the same page under several policy paths.
		if !walk.examine(candidate, html) {
			continue
		}
		a.snapshot(ctx, candidate, html)

		name := a.Extractor.ExtractName(html)
		if name == "" {
			name = a.Extractor.ExtractName(a.Normalizer.Text(html))
		}
		if name != "" {
			return name, nil
		}
	}

	return "", nil
}

// persist upserts the analysis result when a store is configured.
func (a *Analyzer) persist(ctx context.Context, analysis *corpscan.Analysis) error {
	if a.Domains == nil {
		return nil
	}

	upd := corpscan.AnalysisUpdate{
		Status:      &analysis.Status,
		CompanyName: &analysis.CompanyName,
		ContactURL:  &analysis.ContactURL,
	}
	stored, err := a.Domains.UpdateDomain(ctx, analysis.Domain, upd)
	if corpscan.ErrorCode(err) == corpscan.ENOTFOUND {
		if err := a.Domains.CreateDomain(ctx, analysis); err != nil {
			return err
		}
		stored, err = a.Domains.UpdateDomain(ctx, analysis.Domain, upd)
	}
	if err != nil {
		return err
	}
	*analysis = *stored
	return nil
}

// snapshot saves a markdown rendition of a fetched page, best-effort.
func (a *Analyzer) snapshot(ctx context.Context, url, html string) {
	if a.Converter == nil || a.Snapshots == nil {
		return
	}
	md, err := a.Converter.Convert(html)
	if err != nil {
		return
	}
	_ = a.Snapshots.SaveSnapshot(ctx, url, md)
}

// walkState tracks which URLs and which page contents one analysis has
// already examined. Content hashing catches distinct URLs serving the
// same page.
type walkState struct {
	visited *bloom.VisitedSet
	hashes  map[uint64]bool
}

func newWalk() *walkState {
	return &walkState{
		visited: bloom.NewVisitedSet(visitedExpectedURLs, visitedFalsePositiveRate),
		hashes:  make(map[uint64]bool),
	}
}

// examine marks a URL and its content as seen. It reports false when
// the content duplicates an already-examined page.
func (w *walkState) examine(url, html string) bool {
	w.visited.Visit(url)
	h := xxhash.Sum64String(html)
	if w.hashes[h] {
		return false
	}
	w.hashes[h] = true
	return true
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	return u.Host
}
