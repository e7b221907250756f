package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/mwalkiewicz/corpscan"
	"github.com/mwalkiewicz/corpscan/analyze"
	"github.com/mwalkiewicz/corpscan/extract"
	"github.com/mwalkiewicz/corpscan/fs"
	"github.com/mwalkiewicz/corpscan/goquery"
	"github.com/mwalkiewicz/corpscan/htmltomarkdown"
	corpscanhttp "github.com/mwalkiewicz/corpscan/http"
	corpslog "github.com/mwalkiewicz/corpscan/slog"
)

// hostRequestsPerSecond throttles secondary-page fetches per host.
const hostRequestsPerSecond = 1.0

func main() {
	// A missing .env file is fine; environment variables still apply.
	_ = godotenv.Load()

	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Store path. Set before calling Run().
	StorePath string

	// JSON-backed store used by all commands.
	Store *fs.DomainService

	// Services for end-to-end testing.
	DomainService   corpscan.DomainService
	AnalysisService corpscan.AnalysisService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		StorePath: defaultStorePath(),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	logger := slog.New(slog.NewTextHandler(stderr, nil))

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("corpscan"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'corpscan --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	m.Store = fs.NewDomainService(m.StorePath)
	if err := m.Store.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set CORPSCAN_DB to use a different store path\n")
		return fmt.Errorf("failed to open store at %q: %w", m.StorePath, err)
	}

	m.DomainService = m.Store
	deps.Domains = m.DomainService

	// The analyze and serve commands need the full pipeline; the
	// record-keeping commands only need the store.
	if cmd == "analyze" || cmd == "serve" {
		fetcher := corpslog.NewLoggingFetcher(corpscanhttp.NewFetcher(), logger)
		defer fetcher.Close()

		analyzer := &analyze.Analyzer{
			Resolver:   corpscanhttp.NewResolver(fetcher),
			Fetcher:    fetcher,
			Extractor:  extract.NewExtractor(),
			Normalizer: goquery.NewNormalizer(),
			Links:      goquery.NewLinkFinder(),
			Sitemap:    corpscanhttp.NewSitemapService(nil),
			Limiter:    analyze.NewHostLimiter(hostRequestsPerSecond),
			Domains:    m.DomainService,
		}

		if dir := snapshotDir(cli, cmd); dir != "" {
			analyzer.Converter = htmltomarkdown.NewConverter()
			analyzer.Snapshots = fs.NewSnapshotWriter(dir)
		}

		m.AnalysisService = corpslog.NewLoggingAnalysisService(analyzer, logger)
		deps.Analysis = m.AnalysisService
	}

	return kongCtx.Run(deps)
}

// snapshotDir resolves the snapshot directory: the analyze command's
// flag first, then the environment.
func snapshotDir(cli *CLI, cmd string) string {
	if cmd == "analyze" && cli.Analyze.Snapshots != "" {
		return cli.Analyze.Snapshots
	}
	return os.Getenv("CORPSCAN_SNAPSHOTS")
}

func defaultStorePath() string {
	if path := os.Getenv("CORPSCAN_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "corpscan.json"
	}
	dir := filepath.Join(home, ".corpscan")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "domains.json")
}
