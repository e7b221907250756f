package mock

import "github.com/mwalkiewicz/corpscan"

var _ corpscan.NameExtractor = (*NameExtractor)(nil)

// NameExtractor is a mock implementation of corpscan.NameExtractor.
type NameExtractor struct {
	ExtractNameFn func(content string) string
}

func (e *NameExtractor) ExtractName(content string) string {
	return e.ExtractNameFn(content)
}

var _ corpscan.Normalizer = (*Normalizer)(nil)

// Normalizer is a mock implementation of corpscan.Normalizer.
type Normalizer struct {
	TextFn func(html string) string
}

func (n *Normalizer) Text(html string) string {
	return n.TextFn(html)
}

var _ corpscan.LinkFinder = (*LinkFinder)(nil)

// LinkFinder is a mock implementation of corpscan.LinkFinder.
type LinkFinder struct {
	FindPolicyURLsFn func(content, baseURL string) ([]string, error)
	FindContactURLFn func(content, baseURL string) (string, error)
}

func (f *LinkFinder) FindPolicyURLs(content, baseURL string) ([]string, error) {
	return f.FindPolicyURLsFn(content, baseURL)
}

func (f *LinkFinder) FindContactURL(content, baseURL string) (string, error) {
	return f.FindContactURLFn(content, baseURL)
}
