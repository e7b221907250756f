package corpscan

// Candidate is a substring matched by a pattern rule, proposed as a
// possible company name. Candidates are ephemeral: they live only within
// one extraction call and feed the frequency-based selection.
type Candidate struct {
	// Value is the matched entity substring, whitespace-trimmed.
	Value string

	// Rule names the pattern rule that produced the match.
	Rule string

	// Pos is the match offset within the scanned text, used to keep
	// candidate ordering stable across rules.
	Pos int
}

// NameExtractor reduces page content to a single cleaned company name.
// The empty string means no plausible name was found, which is a valid
// terminal outcome rather than an error.
type NameExtractor interface {
	// ExtractName applies the pattern rules, aggregates repeated
	// matches by normalized form, and returns the cleaned winner.
	// Deterministic: identical input yields the identical name.
	ExtractName(content string) string
}

// Normalizer reduces HTML markup to plain readable text.
type Normalizer interface {
	// Text strips scripts, styles, head, and navigation, collapses
	// whitespace runs, and trims the ends. Footer content is kept
	// because several pattern rules target it. Idempotent, and
	// best-effort on malformed markup: it never fails.
	Text(html string) string
}

// LinkFinder discovers candidate secondary-page URLs from homepage
// markup.
type LinkFinder interface {
	// FindPolicyURLs returns absolute, deduplicated URLs likely to
	// host privacy/terms/imprint content: keyword-matched anchors in
	// document order first, then conventional fallback paths not
	// already present.
	FindPolicyURLs(html, baseURL string) ([]string, error)

	// FindContactURL returns the first anchor matching contact/about/
	// imprint keywords, or the empty string.
	FindContactURL(html, baseURL string) (string, error)
}

// PolicyPaths returns the static ordered list of relative paths that
// conventionally host privacy/terms content, consulted when (or in
// addition to) markup-driven discovery.
func PolicyPaths() []string {
	return []string{
		"/privacy",
		"/privacy-policy",
		"/terms",
		"/terms-of-service",
		"/legal",
		"/imprint",
		"/impressum",
		"/datenschutz",
		"/contact",
		"/about",
	}
}
