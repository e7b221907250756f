package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/mwalkiewicz/corpscan/mock"
	corpslog "github.com/mwalkiewicz/corpscan/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs url, size, and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html>hello</html>", nil
			},
		}

		f := corpslog.NewLoggingFetcher(inner, logger)
		html, err := f.Fetch(context.Background(), "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, "<html>hello</html>", html)
		output := buf.String()
		assert.Contains(t, output, "fetch")
		assert.Contains(t, output, "url=https://example.com")
		assert.Contains(t, output, "bytes=18")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", errors.New("connection refused")
			},
		}

		f := corpslog.NewLoggingFetcher(inner, logger)
		_, err := f.Fetch(context.Background(), "https://example.com")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"connection refused\"")
	})

	t.Run("close delegates", func(t *testing.T) {
		t.Parallel()

		closed := false
		inner := &mock.Fetcher{
			CloseFn: func() error {
				closed = true
				return nil
			},
		}

		f := corpslog.NewLoggingFetcher(inner, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
		require.NoError(t, f.Close())
		assert.True(t, closed)
	})
}
