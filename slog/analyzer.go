package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/mwalkiewicz/corpscan"
)

// Ensure LoggingAnalysisService implements corpscan.AnalysisService.
var _ corpscan.AnalysisService = (*LoggingAnalysisService)(nil)

// LoggingAnalysisService wraps an AnalysisService with per-domain
// logging.
type LoggingAnalysisService struct {
	next   corpscan.AnalysisService
	logger *slog.Logger
}

// NewLoggingAnalysisService creates a new LoggingAnalysisService.
func NewLoggingAnalysisService(next corpscan.AnalysisService, logger *slog.Logger) *LoggingAnalysisService {
	return &LoggingAnalysisService{next: next, logger: logger}
}

// AnalyzeDomain delegates to the wrapped service and logs the outcome.
func (s *LoggingAnalysisService) AnalyzeDomain(ctx context.Context, domain string) (analysis *corpscan.Analysis, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"domain", domain,
			"duration", time.Since(begin),
			"err", err,
		}
		if analysis != nil {
			attrs = append(attrs,
				"status", string(analysis.Status),
				"company_name", analysis.CompanyName,
			)
		}
		s.logger.Info("analyze domain", attrs...)
	}(time.Now())
	return s.next.AnalyzeDomain(ctx, domain)
}

// AnalyzeDomains delegates to the wrapped service and logs the batch.
func (s *LoggingAnalysisService) AnalyzeDomains(ctx context.Context, domains []string) (results []*corpscan.Analysis, err error) {
	defer func(begin time.Time) {
		s.logger.Info("analyze batch",
			"requested", len(domains),
			"completed", len(results),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.AnalyzeDomains(ctx, domains)
}
