package mock

import (
	"context"

	"github.com/mwalkiewicz/corpscan"
)

var _ corpscan.DomainService = (*DomainService)(nil)

// DomainService is a mock implementation of corpscan.DomainService.
type DomainService struct {
	FindDomainsFn      func(ctx context.Context) ([]*corpscan.Analysis, error)
	FindDomainByNameFn func(ctx context.Context, domain string) (*corpscan.Analysis, error)
	CreateDomainFn     func(ctx context.Context, analysis *corpscan.Analysis) error
	UpdateDomainFn     func(ctx context.Context, domain string, upd corpscan.AnalysisUpdate) (*corpscan.Analysis, error)
	DeleteDomainFn     func(ctx context.Context, domain string) error
}

func (s *DomainService) FindDomains(ctx context.Context) ([]*corpscan.Analysis, error) {
	return s.FindDomainsFn(ctx)
}

func (s *DomainService) FindDomainByName(ctx context.Context, domain string) (*corpscan.Analysis, error) {
	return s.FindDomainByNameFn(ctx, domain)
}

func (s *DomainService) CreateDomain(ctx context.Context, analysis *corpscan.Analysis) error {
	return s.CreateDomainFn(ctx, analysis)
}

func (s *DomainService) UpdateDomain(ctx context.Context, domain string, upd corpscan.AnalysisUpdate) (*corpscan.Analysis, error) {
	return s.UpdateDomainFn(ctx, domain, upd)
}

func (s *DomainService) DeleteDomain(ctx context.Context, domain string) error {
	return s.DeleteDomainFn(ctx, domain)
}
