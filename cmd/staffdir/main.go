// Command staffdir scrapes staff directory pages into a CSV file.
//
// It reads a plain-text list of URLs, fetches each page (plain HTTP first,
// headless-browser fallback for JavaScript-rendered sites), runs the
// extraction strategies, and appends the results to the output CSV. Pages
// that fail or yield nothing are recorded in a separate error log, and the
// batch always runs to completion.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/staffdir"
	"github.com/fwojciec/staffdir/fs"
	"github.com/fwojciec/staffdir/goquery"
	staffhttp "github.com/fwojciec/staffdir/http"
	"github.com/fwojciec/staffdir/rod"
	"github.com/fwojciec/staffdir/scrape"
	staffslog "github.com/fwojciec/staffdir/slog"
	"github.com/fwojciec/staffdir/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Input     string        `arg:"" help:"Text file with one staff directory URL per line"`
	Output    string        `short:"o" default:"staff_directory.csv" help:"Output CSV path"`
	ErrorLog  string        `default:"scrape_errors.txt" help:"Error log path"`
	DB        string        `help:"Optional SQLite database to mirror records into"`
	Timeout   time.Duration `default:"15s" help:"Per-page fetch timeout"`
	Settle    time.Duration `default:"2s" help:"Post-render settle delay for browser fetches"`
	RPS       float64       `default:"0" help:"Per-domain request rate limit (0 disables)"`
	NoBrowser bool          `help:"Disable the headless-browser fallback"`
	Verbose   bool          `short:"v" help:"Enable debug logging"`
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("staffdir"),
		kong.Description("Scrape staff directory pages into a CSV file."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no input file specified. Run 'staffdir --help' for usage")
	}
	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	return m.run(ctx, cli, stdout, stderr)
}

// run wires the pipeline and executes the batch.
func (m *Main) run(ctx context.Context, cli *CLI, stdout, stderr io.Writer) error {
	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	urls, err := fs.NewURLSource(cli.Input).ReadURLs(ctx)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	if len(urls) == 0 {
		return staffdir.Errorf(staffdir.EINVALID, "no URLs found in %s", cli.Input)
	}

	// The browser is optional: when launch fails (no Chrome installed, say)
	// the batch still runs with plain HTTP fetches only.
	var browser staffdir.Fetcher
	if !cli.NoBrowser {
		rodFetcher, err := rod.NewFetcher(
			rod.WithFetchTimeout(cli.Timeout),
			rod.WithSettleDelay(cli.Settle),
		)
		if err != nil {
			logger.Warn("browser unavailable, JavaScript-rendered pages will fail", "err", err)
		} else {
			defer rodFetcher.Close()
			browser = staffslog.NewLoggingFetcher(rodFetcher, logger)
		}
	}

	csvWriter, err := fs.NewCSVRecordWriter(cli.Output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer csvWriter.Close()

	var records staffdir.RecordWriter = csvWriter
	if cli.DB != "" {
		db := sqlite.NewDB(cli.DB)
		if err := db.Open(); err != nil {
			return fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
		}
		defer db.Close()
		records = staffdir.NewMultiRecordWriter(csvWriter, sqlite.NewRecordService(db))
	}
	records = staffslog.NewLoggingRecordWriter(records, logger)

	incidents, err := fs.NewIncidentLog(cli.ErrorLog)
	if err != nil {
		return fmt.Errorf("failed to create error log: %w", err)
	}
	defer incidents.Close()

	scraper := &scrape.DirectoryScraper{
		HTTP:      staffslog.NewLoggingFetcher(staffhttp.NewFetcher(staffhttp.WithTimeout(cli.Timeout)), logger),
		Browser:   browser,
		Extractor: staffslog.NewLoggingExtractor(goquery.NewChain(), logger),
		Records:   records,
		Incidents: incidents,
		Logger:    logger,
	}
	if cli.RPS > 0 {
		scraper.Limiter = scrape.NewDomainLimiter(cli.RPS)
	}

	runner := &scrape.BatchRunner{
		Scraper:   scraper,
		Incidents: incidents,
		Logger:    logger,
	}

	summary, err := runner.Run(ctx, urls)
	if summary != nil {
		fmt.Fprintf(stdout, "Processed %d URLs: %d records extracted, %d failed or empty.\n",
			summary.URLsProcessed, summary.RecordsExtracted, summary.FailedOrEmpty)
		fmt.Fprintf(stdout, "Records written to %s", cli.Output)
		if cli.DB != "" {
			fmt.Fprintf(stdout, " (mirrored to %s)", cli.DB)
		}
		fmt.Fprintln(stdout)
		if summary.FailedOrEmpty > 0 {
			fmt.Fprintf(stdout, "See %s for details on failed URLs.\n", cli.ErrorLog)
		}
	}
	return err
}
