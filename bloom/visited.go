// Package bloom tracks visited URLs during an analysis walk using a
// Bloom filter. A false positive skips a page that was never examined,
// which the heuristic tolerates; a false negative never happens, so no
// page is fetched twice.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// VisitedSet records which URLs an analysis has already examined.
// Not safe for concurrent use; each analysis owns its own set.
type VisitedSet struct {
	f *bloom.BloomFilter
}

// NewVisitedSet creates a set sized for n expected URLs with the given
// false positive rate.
func NewVisitedSet(n uint, fpRate float64) *VisitedSet {
	return &VisitedSet{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Visit marks a URL as examined and reports whether it had (probably)
// been examined before.
func (s *VisitedSet) Visit(url string) bool {
	return s.f.TestAndAddString(url)
}

// Seen reports whether the URL might have been examined. False
// positives are possible; false negatives are not.
func (s *VisitedSet) Seen(url string) bool {
	return s.f.TestString(url)
}
