package analyze

import (
	"context"
	"log/slog"
	"time"

	"github.com/mwalkiewicz/corpscan"
)

// DefaultWorkerInterval is the default pause between worker sweeps.
const DefaultWorkerInterval = time.Minute

// Worker periodically analyzes every stored domain still in the
// pending state.
type Worker struct {
	Domains  corpscan.DomainService
	Analysis corpscan.AnalysisService

	// Interval between sweeps. Defaults to DefaultWorkerInterval.
	Interval time.Duration

	Logger *slog.Logger
}

// Run sweeps immediately, then on every interval tick, until the
// context is canceled. Sweep failures are logged, never fatal.
func (w *Worker) Run(ctx context.Context) error {
	interval := w.Interval
	if interval <= 0 {
		interval = DefaultWorkerInterval
	}
	logger := w.Logger
	if logger == nil {
		logger = slog.Default()
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := w.sweep(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			logger.Error("worker sweep failed", "error", err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// sweep analyzes all pending domains in one batch.
func (w *Worker) sweep(ctx context.Context) error {
	stored, err := w.Domains.FindDomains(ctx)
	if err != nil {
		return err
	}

	var pending []string
	for _, a := range stored {
		if a.Status == corpscan.StatusPending {
			pending = append(pending, a.Domain)
		}
	}
	if len(pending) == 0 {
		return nil
	}

	_, err = w.Analysis.AnalyzeDomains(ctx, pending)
	return err
}
