package corpscan

import "context"

// Converter converts HTML to Markdown. Used to produce reviewable page
// snapshots when tuning the extraction heuristics.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	Convert(html string) (string, error)
}

// SnapshotWriter persists fetched pages for offline review.
type SnapshotWriter interface {
	// SaveSnapshot stores the markdown rendition of a fetched page,
	// keyed by its URL path.
	SaveSnapshot(ctx context.Context, url, markdown string) error
}
