package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/drawguide"
	"github.com/fwojciec/drawguide/goquery"
	"github.com/fwojciec/drawguide/htmltomarkdown"
	dghttp "github.com/fwojciec/drawguide/http"
	"github.com/fwojciec/drawguide/rod"
	dgslog "github.com/fwojciec/drawguide/slog"
	"github.com/fwojciec/drawguide/tool"
	"github.com/joho/godotenv"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A missing .env file is not an error.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Service overrides the wired service for end-to-end testing.
	Service drawguide.GuideService

	// Fetcher is closed by Close when set.
	Fetcher drawguide.Fetcher
}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Fetcher != nil {
		return m.Fetcher.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:     ctx,
		Stdout:  stdout,
		Stderr:  stderr,
		Version: version,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("drawguide"),
		kong.Description("Search and read drawing tutorials from easydrawingguides.com."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'drawguide --help' to see available commands")
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

	logger, err := newLogger(stderr, cli.LogLevel)
	if err != nil {
		return err
	}
	deps.Logger = logger

	service := m.Service
	if service == nil {
		service, err = m.wire(&cli.Globals, logger)
		if err != nil {
			return err
		}
		defer m.Close()
	}
	deps.Service = dgslog.NewLoggingService(service, logger)

	return kongCtx.Run(deps)
}

// wire builds the guide service from configuration.
func (m *Main) wire(g *Globals, logger *slog.Logger) (drawguide.GuideService, error) {
	site := drawguide.DefaultSite()
	if g.BaseURL != "" {
		site = site.WithBaseURL(g.BaseURL)
	}

	limiter := dghttp.NewDomainLimiter(g.RPS, g.Concurrency)

	var fetcher drawguide.Fetcher
	if g.Browser {
		f, err := rod.NewFetcher(
			rod.WithFetchTimeout(g.Timeout),
			rod.WithUserAgent(g.UserAgent),
			rod.WithLimiter(limiter),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to start browser (Chrome or Chromium must be installed): %w", err)
		}
		fetcher = f
	} else {
		fetcher = dghttp.NewFetcher(
			dghttp.WithTimeout(g.Timeout),
			dghttp.WithUserAgent(g.UserAgent),
			dghttp.WithLimiter(limiter),
		)
	}
	fetcher = dgslog.NewLoggingFetcher(fetcher, logger)
	m.Fetcher = fetcher

	validator := dgslog.NewLoggingValidator(dghttp.NewValidator(
		dghttp.WithCheckTimeout(g.CheckTimeout),
		dghttp.WithCheckUserAgent(g.UserAgent),
		dghttp.WithCheckLimiter(limiter),
	), logger)

	return &tool.Dispatcher{
		Site:        site,
		Fetcher:     fetcher,
		Extractor:   goquery.NewExtractor(site),
		Converter:   htmltomarkdown.NewConverter(),
		Ranker:      goquery.NewRanker(site),
		Validator:   validator,
		Categories:  dgslog.NewLoggingCategorySource(categorySource(g.CategorySource, site, fetcher), logger),
		Concurrency: g.Concurrency,
	}, nil
}

// categorySource selects where list_categories reads categories from.
func categorySource(kind string, site drawguide.Site, fetcher drawguide.Fetcher) drawguide.CategorySource {
	switch kind {
	case "sitemap":
		return dghttp.NewCategorySitemap(fetcher, site.SitemapURL())
	case "static":
		return drawguide.StaticCategories{}
	default:
		return &tool.PageCategories{
			Fetcher: fetcher,
			Parser:  goquery.NewCategoryParser(site),
			URL:     site.CategoriesURL(),
		}
	}
}

// newLogger returns a text logger on w. Stdout is reserved for the stdio
// transport, so logs always go to stderr.
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
