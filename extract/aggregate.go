package extract

import (
	"regexp"
	"strings"

	"github.com/mwalkiewicz/corpscan"
)

// trailingSuffixes are stripped from candidates before counting so
// "Acme Ltd" and "Acme Limited" tally together. Longer tokens first so
// "Pty Ltd" is not half-stripped.
var trailingSuffixes = []string{
	"pty ltd",
	"corporation",
	"limited",
	"b.v.",
	"s.a.",
	"gmbh",
	"corp",
	"ltd",
	"llc",
	"inc",
	"co.",
}

var (
	nonWordRE    = regexp.MustCompile(`[^\w\s]`)
	whitespaceRE = regexp.MustCompile(`\s+`)
)

// NormalizeName reduces a raw candidate to its comparison form:
// lowercase, one trailing legal suffix stripped, punctuation removed,
// whitespace collapsed.
func NormalizeName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, suffix := range trailingSuffixes {
		if strings.HasSuffix(n, suffix) {
			n = strings.TrimSpace(n[:len(n)-len(suffix)])
			break
		}
	}
	n = nonWordRE.ReplaceAllString(n, "")
	n = whitespaceRE.ReplaceAllString(n, " ")
	return strings.TrimSpace(n)
}

// Select tallies candidates by normalized form and returns the raw form
// of the most frequently mentioned one — specifically its first-observed
// raw spelling, so a legal suffix present in the page is preserved. Ties
// go to the form observed earliest in scan order. An empty candidate
// list yields the empty string: "not found" is a terminal state, not an
// error.
func Select(candidates []corpscan.Candidate) string {
	counts := make(map[string]int)
	firstRaw := make(map[string]string)
	var order []string

	for _, c := range candidates {
		norm := NormalizeName(c.Value)
		if norm == "" {
			continue
		}
		if _, seen := counts[norm]; !seen {
			order = append(order, norm)
			firstRaw[norm] = c.Value
		}
		counts[norm]++
	}

	best, bestCount := "", 0
	for _, norm := range order {
		if counts[norm] > bestCount {
			best, bestCount = norm, counts[norm]
		}
	}
	if best == "" {
		return ""
	}
	return firstRaw[best]
}
