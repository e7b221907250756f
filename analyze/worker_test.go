package analyze_test

import (
	"context"
	"testing"
	"time"

	"github.com/mwalkiewicz/corpscan"
	"github.com/mwalkiewicz/corpscan/analyze"
	"github.com/mwalkiewicz/corpscan/mem"
	"github.com/mwalkiewicz/corpscan/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorker_Run(t *testing.T) {
	t.Parallel()

	t.Run("analyzes only pending domains", func(t *testing.T) {
		t.Parallel()

		store := mem.NewDomainService()
		ctx := context.Background()
		require.NoError(t, store.CreateDomain(ctx, &corpscan.Analysis{Domain: "pending.example"}))
		require.NoError(t, store.CreateDomain(ctx, &corpscan.Analysis{
			Domain: "done.example",
			Status: corpscan.StatusAnalyzed,
		}))

		analyzed := make(chan []string, 1)
		w := &analyze.Worker{
			Domains: store,
			Analysis: &mock.AnalysisService{
				AnalyzeDomainsFn: func(ctx context.Context, domains []string) ([]*corpscan.Analysis, error) {
					analyzed <- domains
					return nil, nil
				},
			},
			Interval: time.Hour,
		}

		runCtx, cancel := context.WithCancel(ctx)
		done := make(chan error, 1)
		go func() { done <- w.Run(runCtx) }()

		select {
		case domains := <-analyzed:
			assert.Equal(t, []string{"pending.example"}, domains)
		case <-time.After(time.Second):
			t.Fatal("worker never swept")
		}

		cancel()
		assert.ErrorIs(t, <-done, context.Canceled)
	})

	t.Run("stops on context cancellation with nothing pending", func(t *testing.T) {
		t.Parallel()

		w := &analyze.Worker{
			Domains:  mem.NewDomainService(),
			Analysis: &mock.AnalysisService{},
			Interval: 10 * time.Millisecond,
		}

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()
		assert.ErrorIs(t, w.Run(ctx), context.DeadlineExceeded)
	})
}
