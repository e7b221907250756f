package mock

import (
	"context"

	"github.com/mwalkiewicz/corpscan"
)

var _ corpscan.AnalysisService = (*AnalysisService)(nil)

// AnalysisService is a mock implementation of corpscan.AnalysisService.
type AnalysisService struct {
	AnalyzeDomainFn  func(ctx context.Context, domain string) (*corpscan.Analysis, error)
	AnalyzeDomainsFn func(ctx context.Context, domains []string) ([]*corpscan.Analysis, error)
}

func (s *AnalysisService) AnalyzeDomain(ctx context.Context, domain string) (*corpscan.Analysis, error) {
	return s.AnalyzeDomainFn(ctx, domain)
}

func (s *AnalysisService) AnalyzeDomains(ctx context.Context, domains []string) ([]*corpscan.Analysis, error) {
	return s.AnalyzeDomainsFn(ctx, domains)
}
