// Package mem provides an in-memory implementation of
// corpscan.DomainService, used by the API server when no persistence
// path is configured and by tests.
package mem

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mwalkiewicz/corpscan"
)

// Ensure DomainService implements corpscan.DomainService at compile time.
var _ corpscan.DomainService = (*DomainService)(nil)

// DomainService stores analysis records in memory, keyed by domain
// name. Insertion order is preserved for listings. Safe for concurrent
// use.
type DomainService struct {
	mu      sync.RWMutex
	records map[string]*corpscan.Analysis
	order   []string

	// Now is the time source, overridable in tests.
	Now func() time.Time
}

// NewDomainService creates an empty in-memory store.
func NewDomainService() *DomainService {
	return &DomainService{
		records: make(map[string]*corpscan.Analysis),
		Now:     time.Now,
	}
}

// FindDomains returns copies of all records in insertion order.
func (s *DomainService) FindDomains(ctx context.Context) ([]*corpscan.Analysis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*corpscan.Analysis, 0, len(s.order))
	for _, domain := range s.order {
		out = append(out, copyAnalysis(s.records[domain]))
	}
	return out, nil
}

// FindDomainByName returns a copy of the record for a domain.
func (s *DomainService) FindDomainByName(ctx context.Context, domain string) (*corpscan.Analysis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.records[domain]
	if !ok {
		return nil, corpscan.Errorf(corpscan.ENOTFOUND, "domain %q not tracked", domain)
	}
	return copyAnalysis(a), nil
}

// CreateDomain registers a new domain. The stored record gets a fresh
// ID and timestamp; a zero status defaults to pending.
func (s *DomainService) CreateDomain(ctx context.Context, analysis *corpscan.Analysis) error {
	if analysis.Status == "" {
		analysis.Status = corpscan.StatusPending
	}
	if err := analysis.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[analysis.Domain]; ok {
		return corpscan.Errorf(corpscan.ECONFLICT, "domain %q already tracked", analysis.Domain)
	}

	analysis.ID = uuid.New().String()
	analysis.LastUpdated = s.Now()
	s.records[analysis.Domain] = copyAnalysis(analysis)
	s.order = append(s.order, analysis.Domain)
	return nil
}

// UpdateDomain applies a partial update and returns a copy of the
// updated record.
func (s *DomainService) UpdateDomain(ctx context.Context, domain string, upd corpscan.AnalysisUpdate) (*corpscan.Analysis, error) {
	if upd.Status != nil && !upd.Status.Valid() {
		return nil, corpscan.Errorf(corpscan.EINVALID, "invalid status %q", *upd.Status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.records[domain]
	if !ok {
		return nil, corpscan.Errorf(corpscan.ENOTFOUND, "domain %q not tracked", domain)
	}

	if upd.Status != nil {
		a.Status = *upd.Status
	}
	if upd.CompanyName != nil {
		a.CompanyName = *upd.CompanyName
	}
	if upd.ContactURL != nil {
		a.ContactURL = *upd.ContactURL
	}
	a.LastUpdated = s.Now()

	return copyAnalysis(a), nil
}

// DeleteDomain removes a domain record.
func (s *DomainService) DeleteDomain(ctx context.Context, domain string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[domain]; !ok {
		return corpscan.Errorf(corpscan.ENOTFOUND, "domain %q not tracked", domain)
	}

	delete(s.records, domain)
	for i, d := range s.order {
		if d == domain {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func copyAnalysis(a *corpscan.Analysis) *corpscan.Analysis {
	dup := *a
	return &dup
}
