// Package extract locates legal-entity names in fetched page content.
// An ordered list of pattern rules proposes candidate substrings, the
// aggregator tallies repeated mentions by normalized form, and the
// cleaner strips boilerplate from the winner. Regex-driven extraction is
// inherently fragile, so every rule is a pure text→matches function that
// can be unit tested without network access.
package extract

import "regexp"

// legalSuffix recognizes registered-business tokens. Longer alternatives
// come first so "Beta Corporation" is not truncated to "Beta Corp".
const legalSuffix = `(?:Limited|Ltd|LLC|Inc|Corporation|Corp|GmbH|B\.V\.|Pty\s+Ltd|S\.A\.)`

// nameClass is the character set allowed inside an entity name after its
// leading capital.
const nameClass = `[a-zA-Z0-9\s&\-'.,]`

// copyrightMark matches the copyright sign and a year or year range.
const copyrightMark = `(?:©|copyright|\(c\))\s*20\d{2}(?:-20\d{2})?\s+`

// entity is an entity name that must end in a legal suffix. Name bodies
// are capped at 80 characters everywhere: longer captures have swallowed
// unrelated trailing prose from malformed markup.
var entity = `[A-Z]` + nameClass + `{1,80}` + legalSuffix

// looseName is an entity name without a required suffix, length-bounded
// because nothing else terminates the capture.
var looseName = `[A-Z]` + nameClass + `{2,79}`

// Rule is one named pattern in the curated list. All rules match
// case-insensitively and across line breaks; capture group 1 is the
// entity substring.
type Rule struct {
	Name string

	re *regexp.Regexp
}

func mustRule(name, pattern string) Rule {
	return Rule{Name: name, re: regexp.MustCompile(`(?is)` + pattern)}
}

// DefaultRules returns the curated rule list in application order. Rule
// order does not rank candidates for selection — all matches feed one
// frequency pool — but it decides first-observation order, which breaks
// frequency ties.
func DefaultRules() []Rule {
	return []Rule{
		// Copyright notice ending in a legal suffix.
		mustRule("copyright-suffix", copyrightMark+`(`+entity+`)`),

		// Copyright notice without a required suffix; looser, so
		// length-bounded and validated more aggressively downstream.
		mustRule("copyright-bare", copyrightMark+`([A-Z]`+nameClass+`{3,79})`),

		// Legal declarations from privacy policies.
		mustRule("data-controller", `(?:data\s+controller|data\s+processor|data\s+owner)\s+is\s+(`+entity+`)`),
		mustRule("operated-by", `(?:is\s+owned\s+and\s+operated\s+by|trading\s+as|t/a|operated\s+by)\s+(`+entity+`)`),
		mustRule("developed-by", `(?:developed|powered)\s+by\s+(`+entity+`)`),

		// Structural cues.
		mustRule("rights-reserved", `(`+entity+`)\s+all\s+rights\s+reserved`),
		mustRule("contact-about", `(?:contact|about)\s+(`+entity+`)`),
		mustRule("registered-at", `(`+entity+`)\s+is\s+registered\s+at`),

		// Registration and VAT numbers; the entity may sit on either
		// side of the number.
		mustRule("registration-number", `company\s+registration\s+(?:number|no)\.?:?\s+\d+\s*[-–]\s*(`+looseName+`)`),
		mustRule("registration-number-prefix", `(`+looseName+`)\s+company\s+registration\s+(?:number|no)\.?:?\s+\d+`),
		mustRule("vat-number", `vat\s+(?:number|no)\.?:?\s+\d+\s*[-–]\s*(`+looseName+`)`),
		mustRule("vat-number-prefix", `(`+looseName+`)\s+vat\s+(?:number|no)\.?:?\s+\d+`),

		// HTML-structure-aware rules; these only fire on raw markup.
		mustRule("footer", `<footer[^>]*>.*?([A-Z]`+nameClass+`{2,79}`+legalSuffix+`).*?</footer>`),
		mustRule("meta-author", `<meta\s+name=["']author["'][^>]*content=["'](`+entity+`)["']`),
		mustRule("og-site-name", `<meta\s+property=["']og:site_name["'][^>]*content=["'](`+entity+`)["']`),

		// Narrative cues from about pages.
		mustRule("founded", `was\s+founded\s+(?:in|by)\s+(`+entity+`)`),
		mustRule("welcome-to", `welcome\s+to\s+(`+entity+`)`),
	}
}
