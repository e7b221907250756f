package mock

import (
	"context"

	"github.com/mwalkiewicz/corpscan"
)

var _ corpscan.Converter = (*Converter)(nil)

// Converter is a mock implementation of corpscan.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

var _ corpscan.SnapshotWriter = (*SnapshotWriter)(nil)

// SnapshotWriter is a mock implementation of corpscan.SnapshotWriter.
type SnapshotWriter struct {
	SaveSnapshotFn func(ctx context.Context, url, markdown string) error
}

func (w *SnapshotWriter) SaveSnapshot(ctx context.Context, url, markdown string) error {
	return w.SaveSnapshotFn(ctx, url, markdown)
}
