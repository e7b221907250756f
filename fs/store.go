// Package fs provides file-based persistence: a JSON-backed
// corpscan.DomainService and a markdown snapshot writer for fetched
// pages.
package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mwalkiewicz/corpscan"
)

// Ensure DomainService implements corpscan.DomainService at compile time.
var _ corpscan.DomainService = (*DomainService)(nil)

// DomainService persists analysis records to a single JSON file.
// Every mutation rewrites the file atomically: write to a temp file in
// the same directory, then rename over the original. Safe for
// concurrent use within one process; not safe across processes.
type DomainService struct {
	mu      sync.RWMutex
	path    string
	records []*corpscan.Analysis

	// Now is the time source, overridable in tests.
	Now func() time.Time
}

// NewDomainService creates a store backed by the JSON file at path.
func NewDomainService(path string) *DomainService {
	return &DomainService{
		path: path,
		Now:  time.Now,
	}
}

// Open loads existing records from disk. A missing file is not an
// error; the store starts empty and the file appears on first write.
func (s *DomainService) Open() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}

	var records []*corpscan.Analysis
	if err := json.Unmarshal(data, &records); err != nil {
		return corpscan.Errorf(corpscan.EINTERNAL, "corrupt store file %s: %v", s.path, err)
	}
	s.records = records
	return nil
}

// flush writes all records to disk. Callers must hold the write lock.
func (s *DomainService) flush() error {
	data, err := json.MarshalIndent(s.records, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func (s *DomainService) find(domain string) (int, *corpscan.Analysis) {
	for i, a := range s.records {
		if a.Domain == domain {
			return i, a
		}
	}
	return -1, nil
}

// FindDomains returns copies of all records in insertion order.
func (s *DomainService) FindDomains(ctx context.Context) ([]*corpscan.Analysis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*corpscan.Analysis, 0, len(s.records))
	for _, a := range s.records {
		dup := *a
		out = append(out, &dup)
	}
	return out, nil
}

// FindDomainByName returns a copy of the record for a domain.
func (s *DomainService) FindDomainByName(ctx context.Context, domain string) (*corpscan.Analysis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, a := s.find(domain); a != nil {
		dup := *a
		return &dup, nil
	}
	return nil, corpscan.Errorf(corpscan.ENOTFOUND, "domain %q not tracked", domain)
}

// CreateDomain registers a new domain and persists the store.
func (s *DomainService) CreateDomain(ctx context.Context, analysis *corpscan.Analysis) error {
	if analysis.Status == "" {
		analysis.Status = corpscan.StatusPending
	}
	if err := analysis.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, existing := s.find(analysis.Domain); existing != nil {
		return corpscan.Errorf(corpscan.ECONFLICT, "domain %q already tracked", analysis.Domain)
	}

	analysis.ID = uuid.New().String()
	analysis.LastUpdated = s.Now()
	dup := *analysis
	s.records = append(s.records, &dup)
	return s.flush()
}

// UpdateDomain applies a partial update, persists the store, and
// returns a copy of the updated record.
func (s *DomainService) UpdateDomain(ctx context.Context, domain string, upd corpscan.AnalysisUpdate) (*corpscan.Analysis, error) {
	if upd.Status != nil && !upd.Status.Valid() {
		return nil, corpscan.Errorf(corpscan.EINVALID, "invalid status %q", *upd.Status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, a := s.find(domain)
	if a == nil {
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

	if err := s.flush(); err != nil {
		return nil, err
	}
	dup := *a
	return &dup, nil
}

// DeleteDomain removes a domain record and persists the store.
func (s *DomainService) DeleteDomain(ctx context.Context, domain string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, a := s.find(domain)
	if a == nil {
		return corpscan.Errorf(corpscan.ENOTFOUND, "domain %q not tracked", domain)
	}

	s.records = append(s.records[:i], s.records[i+1:]...)
	return s.flush()
}
