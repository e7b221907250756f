package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/mwalkiewicz/corpscan"
	main "github.com/mwalkiewicz/corpscan/cmd/corpscan"
	"github.com/mwalkiewicz/corpscan/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDeps(domains *mock.DomainService, analysis *mock.AnalysisService) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:      context.Background(),
		Stdout:   stdout,
		Stderr:   stderr,
		Domains:  domains,
		Analysis: analysis,
	}, stdout, stderr
}

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists tracked domains", func(t *testing.T) {
		t.Parallel()

		domains := &mock.DomainService{
			FindDomainsFn: func(_ context.Context) ([]*corpscan.Analysis, error) {
				return []*corpscan.Analysis{
					{Domain: "example.com", Status: corpscan.StatusAnalyzed, CompanyName: "Acme Widgets Ltd"},
					{Domain: "example.org", Status: corpscan.StatusPending},
				}, nil
			},
		}

		deps, stdout, _ := newDeps(domains, nil)
		cmd := &main.ListCmd{}

		require.NoError(t, cmd.Run(deps))

		output := stdout.String()
		assert.Contains(t, output, "example.com")
		assert.Contains(t, output, "Acme Widgets Ltd")
		assert.Contains(t, output, "example.org")
		assert.Contains(t, output, "(not found)")
	})

	t.Run("empty store prints a hint", func(t *testing.T) {
		t.Parallel()

		domains := &mock.DomainService{
			FindDomainsFn: func(_ context.Context) ([]*corpscan.Analysis, error) {
				return nil, nil
			},
		}

		deps, stdout, _ := newDeps(domains, nil)
		cmd := &main.ListCmd{}

		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "No domains tracked")
	})
}
