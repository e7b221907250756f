package extract

import (
	"regexp"
	"strings"
	"unicode"
)

// boilerplateTerms are removed whole-word from a winning candidate:
// navigation labels and legal boilerplate that pattern captures drag
// along.
var boilerplateTerms = []string{
	"All Rights Reserved",
	"Privacy Policy",
	"Terms of Service",
	"Terms and Conditions",
	"Home",
	"About",
	"Contact",
	"Copyright",
	"Website",
	"us",
	"policy",
	"terms",
	"conditions",
	"cookies",
	"sitemap",
	"menu",
}

var (
	tagRE          = regexp.MustCompile(`<[^>]+>`)
	boilerplateREs = compileTermRES(boilerplateTerms)
)

func compileTermRES(terms []string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, 0, len(terms))
	for _, term := range terms {
		// Multi-word terms tolerate any whitespace between words.
		pattern := strings.ReplaceAll(regexp.QuoteMeta(term), ` `, `\s+`)
		res = append(res, regexp.MustCompile(`(?i)\b`+pattern+`\b`))
	}
	return res
}

// Clean strips embedded markup, boilerplate terms, and stray punctuation
// from a winning candidate. Returns the empty string when the remainder
// is shorter than 3 characters or letterless. Idempotent:
// Clean(Clean(x)) == Clean(x).
func Clean(name string) string {
	if name == "" {
		return ""
	}

	n := tagRE.ReplaceAllString(name, " ")
	for _, re := range boilerplateREs {
		n = re.ReplaceAllString(n, " ")
	}
	n = strings.TrimSpace(whitespaceRE.ReplaceAllString(n, " "))
	n = strings.TrimRight(n, ".,;:")
	n = strings.TrimSpace(n)

	if len(n) < 3 || !strings.ContainsFunc(n, unicode.IsLetter) {
		return ""
	}
	return n
}
