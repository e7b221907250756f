package mock

import (
	"context"

	"github.com/mwalkiewicz/corpscan"
)

var _ corpscan.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of corpscan.SitemapService.
type SitemapService struct {
	PolicyURLsFn func(ctx context.Context, baseURL string) ([]string, error)
}

func (s *SitemapService) PolicyURLs(ctx context.Context, baseURL string) ([]string, error) {
	return s.PolicyURLsFn(ctx, baseURL)
}

var _ corpscan.HostLimiter = (*HostLimiter)(nil)

// HostLimiter is a mock implementation of corpscan.HostLimiter.
type HostLimiter struct {
	WaitFn func(ctx context.Context, host string) error
}

func (l *HostLimiter) Wait(ctx context.Context, host string) error {
	return l.WaitFn(ctx, host)
}
