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

func TestAddCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("registers a pending domain", func(t *testing.T) {
		t.Parallel()

		var created *corpscan.Analysis
		domains := &mock.DomainService{
			CreateDomainFn: func(_ context.Context, analysis *corpscan.Analysis) error {
				analysis.ID = "rec-1"
				created = analysis
				return nil
			},
		}

		deps, stdout, _ := newDeps(domains, nil)
		cmd := &main.AddCmd{Domain: "example.com"}

		require.NoError(t, cmd.Run(deps))
		require.NotNil(t, created)
		assert.Equal(t, "example.com", created.Domain)
		assert.Equal(t, corpscan.StatusPending, created.Status)
		assert.Contains(t, stdout.String(), `Added domain "example.com" (rec-1)`)
	})

	t.Run("surfaces conflicts", func(t *testing.T) {
		t.Parallel()

		domains := &mock.DomainService{
			CreateDomainFn: func(_ context.Context, analysis *corpscan.Analysis) error {
				return corpscan.Errorf(corpscan.ECONFLICT, "domain %q already tracked", analysis.Domain)
			},
		}

		deps, _, stderr := newDeps(domains, nil)
		cmd := &main.AddCmd{Domain: "example.com"}

		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Contains(t, stderr.String(), "already tracked")
	})
}
