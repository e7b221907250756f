package extract

import (
	"strings"
	"unicode"

	"github.com/mwalkiewicz/corpscan"
)

// Ensure Extractor implements corpscan.NameExtractor at compile time.
var _ corpscan.NameExtractor = (*Extractor)(nil)

// Extractor applies an ordered rule set to page content. The rule set is
// injectable so variants of the heuristic (fewer rules, experimental
// rules) are configurations of one pipeline, not separate
// implementations.
type Extractor struct {
	rules []Rule
}

// NewExtractor creates an Extractor. With no arguments it uses
// DefaultRules.
func NewExtractor(rules ...Rule) *Extractor {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Extractor{rules: rules}
}

// Extract runs every rule over the content and returns the validated
// candidates in rule order, then match order. A rule may contribute
// multiple candidates when it matches more than once.
func (e *Extractor) Extract(content string) []corpscan.Candidate {
	if content == "" {
		return nil
	}

	var candidates []corpscan.Candidate
	for _, rule := range e.rules {
		for _, m := range rule.re.FindAllStringSubmatchIndex(content, -1) {
			if len(m) < 4 || m[2] < 0 {
				continue
			}
			value := strings.TrimSpace(content[m[2]:m[3]])
			if !plausibleName(value) {
				continue
			}
			candidates = append(candidates, corpscan.Candidate{
				Value: value,
				Rule:  rule.Name,
				Pos:   m[2],
			})
		}
	}
	return candidates
}

// ExtractName runs the full pipeline: extract, aggregate, clean.
// Returns the empty string when no plausible name survives.
func (e *Extractor) ExtractName(content string) string {
	return Clean(Select(e.Extract(content)))
}

// suspiciousPhrases flag captures that are navigation or legal
// boilerplate rather than entity names.
var suspiciousPhrases = []string{
	"all rights reserved",
	"privacy policy",
	"terms of service",
	"cookie policy",
	"sitemap",
	"contact us",
	"about us",
}

// plausibleName applies the basic validation rules: at least 3
// characters, at least one letter, and not a short match dominated by a
// boilerplate phrase. Long captures containing a boilerplate phrase are
// kept; the cleaner strips the phrase later.
func plausibleName(name string) bool {
	if len(name) < 3 {
		return false
	}
	if !strings.ContainsFunc(name, unicode.IsLetter) {
		return false
	}
	lower := strings.ToLower(name)
	for _, phrase := range suspiciousPhrases {
		if strings.Contains(lower, phrase) && len(name) < 30 {
			return false
		}
	}
	return true
}
