package fs

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/mwalkiewicz/corpscan"
)

// URLToPath converts a page URL to a relative snapshot file path,
// namespaced by host.
// Example: https://example.com/privacy-policy → example.com/privacy-policy.md
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	if u.Host == "" {
		return "", corpscan.Errorf(corpscan.EINVALID, "URL %q has no host", rawURL)
	}

	path := u.Path
	if path == "" || path == "/" {
		return filepath.Join(u.Host, "index.md"), nil
	}

	path = strings.TrimPrefix(path, "/")
	if strings.HasSuffix(path, "/") {
		return filepath.Join(u.Host, path, "index.md"), nil
	}
	return filepath.Join(u.Host, path+".md"), nil
}

// Ensure SnapshotWriter implements corpscan.SnapshotWriter at compile time.
var _ corpscan.SnapshotWriter = (*SnapshotWriter)(nil)

// SnapshotWriter saves markdown renditions of fetched pages under a
// base directory, one file per URL. Snapshots exist so extraction
// misses can be reviewed offline against what the site actually served.
type SnapshotWriter struct {
	baseDir string
}

// NewSnapshotWriter creates a SnapshotWriter rooted at baseDir.
func NewSnapshotWriter(baseDir string) *SnapshotWriter {
	return &SnapshotWriter{baseDir: baseDir}
}

// SaveSnapshot writes the markdown for a page, creating parent
// directories as needed.
func (w *SnapshotWriter) SaveSnapshot(ctx context.Context, rawURL, markdown string) error {
	relPath, err := URLToPath(rawURL)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(w.baseDir, relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(rawURL)
	b.WriteString("\n---\n\n")
	b.WriteString(markdown)

	return os.WriteFile(fullPath, []byte(b.String()), 0644)
}
