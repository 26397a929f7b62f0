package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/translatable"
	transhttp "github.com/fwojciec/translatable/http"
	"github.com/fwojciec/translatable/readability"
	"github.com/fwojciec/translatable/rod"
	transslog "github.com/fwojciec/translatable/slog"
	"github.com/fwojciec/translatable/sqlite"
	"github.com/fwojciec/translatable/trafilatura"
	"github.com/fwojciec/translatable/walk"
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
	// SQLite database, opened when --db is set.
	DB *sqlite.DB

	closers []io.Closer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	var firstErr error
	for i := len(m.closers) - 1; i >= 0; i-- {
		if err := m.closers[i].Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	m.closers = nil
	return firstErr
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
		kong.Name("translatable"),
		kong.Description("Find translatable content in HTML and XML documents"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'translatable --help' to see available commands")
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
	defer m.Close()

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	deps.Extractor = transslog.NewLoggingExtractor(walk.NewEngine(), deps.Logger)

	var (
		flags   SourceFlags
		sources []string
	)
	switch strings.Fields(kongCtx.Command())[0] {
	case "extract":
		flags, sources = cli.Extract.SourceFlags, cli.Extract.Sources

		deps.Locators = map[string]translatable.ContentLocator{
			"trafilatura": trafilatura.NewLocator(),
			"readability": readability.NewLocator(),
		}

		if cli.Extract.DB != "" {
			m.DB = sqlite.NewDB(cli.Extract.DB)
			if err := m.DB.Open(); err != nil {
				fmt.Fprintln(stderr, "Hint: Set TRANSLATABLE_DB or --db to a writable path")
				return fmt.Errorf("failed to open database at %q: %w", cli.Extract.DB, err)
			}
			m.closers = append(m.closers, m.DB)
			deps.Store = transslog.NewLoggingExtractionService(sqlite.NewExtractionService(m.DB), deps.Logger)
		}
	case "apply":
		flags, sources = cli.Apply.SourceFlags, []string{cli.Apply.Source}
	}

	if hasURL(sources) {
		fetcher, err := newFetcher(flags, deps.Logger)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --render")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		m.closers = append(m.closers, fetcher)
		deps.Fetcher = rod.NewLoggingFetcher(fetcher, deps.Logger)
	}

	return kongCtx.Run(deps)
}

func newFetcher(flags SourceFlags, logger *slog.Logger) (translatable.Fetcher, error) {
	var fetcher translatable.Fetcher
	if flags.Render {
		f, err := rod.NewFetcher(rod.WithFetchTimeout(flags.Timeout))
		if err != nil {
			return nil, err
		}
		fetcher = f
	} else {
		fetcher = transhttp.NewFetcher(
			transhttp.WithTimeout(flags.Timeout),
			transhttp.WithRateLimit(flags.RateLimit),
		)
	}

	if flags.Retries <= 0 {
		return fetcher, nil
	}
	delays := make([]time.Duration, flags.Retries)
	for i := range delays {
		delays[i] = time.Second << i
	}
	return transhttp.NewRetryFetcher(fetcher, delays, logger), nil
}

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

func hasURL(sources []string) bool {
	for _, s := range sources {
		if isURL(s) {
			return true
		}
	}
	return false
}
