package main_test

import (
	"context"
	"testing"

	"github.com/mwalkiewicz/corpscan"
	main "github.com/mwalkiewicz/corpscan/cmd/corpscan"
	"github.com/mwalkiewicz/corpscan/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints one line per domain", func(t *testing.T) {
		t.Parallel()

		analysis := &mock.AnalysisService{
			AnalyzeDomainsFn: func(_ context.Context, domains []string) ([]*corpscan.Analysis, error) {
				return []*corpscan.Analysis{
					{
						Domain:      "example.com",
						Status:      corpscan.StatusAnalyzed,
						CompanyName: "Acme Widgets Ltd",
						ContactURL:  "https://example.com/contact",
					},
					{Domain: "dead.example", Status: corpscan.StatusError},
				}, nil
			},
		}

		deps, stdout, _ := newDeps(nil, analysis)
		cmd := &main.AnalyzeCmd{Domains: []string{"example.com", "dead.example"}}

		require.NoError(t, cmd.Run(deps))

		output := stdout.String()
		assert.Contains(t, output, "example.com  analyzed  Acme Widgets Ltd  https://example.com/contact")
		assert.Contains(t, output, "dead.example  error  (not found)")
	})

	t.Run("surfaces batch errors", func(t *testing.T) {
		t.Parallel()

		analysis := &mock.AnalysisService{
			AnalyzeDomainsFn: func(_ context.Context, domains []string) ([]*corpscan.Analysis, error) {
				return nil, corpscan.Errorf(corpscan.EINTERNAL, "store unavailable")
			},
		}

		deps, _, stderr := newDeps(nil, analysis)
		cmd := &main.AnalyzeCmd{Domains: []string{"example.com"}}

		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Contains(t, stderr.String(), "store unavailable")
	})
}
