package corpscan

import (
	"context"
	"time"
)

// Status describes how far a domain has progressed through analysis.
type Status string

// Analysis lifecycle states. StatusError is reserved for domains where
// no page could be fetched at all; a reachable domain with no extracted
// name still ends up StatusAnalyzed.
const (
	StatusPending  Status = "pending"
	StatusAnalyzed Status = "analyzed"
	StatusError    Status = "error"
)

// Valid reports whether s is one of the known lifecycle states.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusAnalyzed, StatusError:
		return true
	}
	return false
}

// Analysis is the result record for one domain. CompanyName and
// ContactURL are empty when nothing was found, which is a valid terminal
// outcome, not an error. Once returned by the pipeline the record is
// owned by the caller.
type Analysis struct {
	ID          string    `json:"id,omitempty"`
	Domain      string    `json:"domain"`
	Status      Status    `json:"status"`
	CompanyName string    `json:"company_name,omitempty"`
	ContactURL  string    `json:"contact_url,omitempty"`
	LastUpdated time.Time `json:"last_updated"`
}

// Validate returns an error if the record contains invalid fields.
func (a *Analysis) Validate() error {
	if a.Domain == "" {
		return Errorf(EINVALID, "domain required")
	}
	if !a.Status.Valid() {
		return Errorf(EINVALID, "invalid status %q", a.Status)
	}
	return nil
}

// AnalysisUpdate carries a partial update for a stored record. Nil
// fields are left untouched; pointing at an empty string clears a field.
type AnalysisUpdate struct {
	Status      *Status `json:"status"`
	CompanyName *string `json:"company_name"`
	ContactURL  *string `json:"contact_url"`
}

// DomainService manages stored analysis records keyed by domain name.
type DomainService interface {
	// FindDomains returns all stored records in insertion order.
	FindDomains(ctx context.Context) ([]*Analysis, error)

	// FindDomainByName returns the record for a domain.
	// Returns ENOTFOUND if the domain is not tracked.
	FindDomainByName(ctx context.Context, domain string) (*Analysis, error)

	// CreateDomain registers a new domain for analysis.
	// Returns ECONFLICT if the domain is already tracked.
	CreateDomain(ctx context.Context, analysis *Analysis) error

	// UpdateDomain applies a partial update and returns the new record.
	// Returns ENOTFOUND if the domain is not tracked.
	UpdateDomain(ctx context.Context, domain string, upd AnalysisUpdate) (*Analysis, error)

	// DeleteDomain removes a domain record.
	// Returns ENOTFOUND if the domain is not tracked.
	DeleteDomain(ctx context.Context, domain string) error
}

// AnalysisService runs the extraction pipeline for domains.
type AnalysisService interface {
	// AnalyzeDomain fetches and analyzes a single domain. The returned
	// record has StatusError only when no URL variant was reachable;
	// network faults are absorbed, not propagated.
	AnalyzeDomain(ctx context.Context, domain string) (*Analysis, error)

	// AnalyzeDomains analyzes domains strictly sequentially, pausing
	// briefly between them out of politeness to the target servers.
	// One domain's failure never aborts the rest.
	AnalyzeDomains(ctx context.Context, domains []string) ([]*Analysis, error)
}
