package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pbinfo"
	"github.com/fwojciec/pbinfo/goquery"
	"github.com/fwojciec/pbinfo/htmltomarkdown"
	pbhttp "github.com/fwojciec/pbinfo/http"
	"github.com/fwojciec/pbinfo/regexp"
	"github.com/fwojciec/pbinfo/scrape"
	pbslog "github.com/fwojciec/pbinfo/slog"
	"github.com/fwojciec/pbinfo/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetcher replaces the HTTP fetcher when set. Set before calling Run().
	Fetcher pbinfo.Fetcher

	// SQLite database backing the archive. Opened only by commands that use it.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pbinfo"),
		kong.Description("Fetch pbinfo.ro problems and extract their metadata"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pbinfo --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	logger := newLogger(stderr, cli.Verbose)

	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher = pbhttp.NewFetcher(
			pbhttp.WithTimeout(cli.Timeout),
			pbhttp.WithRateLimit(cli.Rate),
		)
	}
	fetcher = pbslog.NewLoggingFetcher(fetcher, logger)

	searcher := pbslog.NewLoggingSearcher(pbhttp.NewSearcher(fetcher, cli.BaseURL), logger)
	extractor := regexp.NewExtractor()

	scraper := &scrape.Scraper{
		Fetcher:   fetcher,
		Searcher:  searcher,
		Locator:   regexp.NewLocator(),
		Extractor: extractor,
		BaseURL:   cli.BaseURL,
	}

	deps.BaseURL = cli.BaseURL
	deps.Problems = pbslog.NewLoggingProblemService(scraper, logger)
	deps.Extractor = extractor
	deps.Cleaner = goquery.NewCleaner()
	deps.Converter = htmltomarkdown.NewConverter()

	if needsArchive(cmd, cli) {
		path := cli.DB
		if path == "" {
			path = defaultDBPath()
		}
		m.DB = sqlite.NewDB(path)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set PBINFO_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", path, err)
		}
		defer m.Close()

		deps.Store = sqlite.NewProblemStore(m.DB)
	}

	return kongCtx.Run(deps)
}

// needsArchive reports whether cmd reads or writes the local archive.
func needsArchive(cmd string, cli *CLI) bool {
	switch cmd {
	case "list", "verify", "delete":
		return true
	case "get":
		return cli.Get.Save
	}
	return false
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "pbinfo.db"
	}
	dir := filepath.Join(home, ".pbinfo")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "pbinfo.db")
}
