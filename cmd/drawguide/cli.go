package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/drawguide"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Service drawguide.GuideService
	Version string
}

// Globals are flags shared by every command.
type Globals struct {
	BaseURL        string        `name:"base-url" env:"DRAWGUIDE_BASE_URL" default:"https://easydrawingguides.com" help:"Tutorial site root"`
	Timeout        time.Duration `env:"DRAWGUIDE_TIMEOUT" default:"10s" help:"Page fetch timeout"`
	CheckTimeout   time.Duration `name:"check-timeout" env:"DRAWGUIDE_CHECK_TIMEOUT" default:"5s" help:"Search result reachability check timeout"`
	UserAgent      string        `name:"user-agent" env:"DRAWGUIDE_USER_AGENT" default:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36" help:"User-Agent sent with every request"`
	RPS            float64       `name:"rps" env:"DRAWGUIDE_RPS" default:"5" help:"Requests per second to the site (0 disables limiting)"`
	Concurrency    int           `short:"c" env:"DRAWGUIDE_CONCURRENCY" default:"4" help:"Concurrent reachability checks"`
	CategorySource string        `name:"categories" env:"DRAWGUIDE_CATEGORIES" enum:"page,sitemap,static" default:"page" help:"Category source (page, sitemap, static)"`
	Browser        bool          `env:"DRAWGUIDE_BROWSER" help:"Render pages with headless Chrome"`
	LogLevel       string        `name:"log-level" env:"DRAWGUIDE_LOG_LEVEL" enum:"debug,info,warn,error" default:"info" help:"Log level (debug, info, warn, error)"`
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Globals

	Serve      ServeCmd      `cmd:"" help:"Serve the tools over MCP (stdio by default)"`
	Search     SearchCmd     `cmd:"" help:"Search for drawing guides"`
	Guide      GuideCmd      `cmd:"" help:"Print a drawing guide as Markdown"`
	Categories CategoriesCmd `cmd:"" help:"List drawing categories"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	HTTP string `name:"http" env:"DRAWGUIDE_HTTP" help:"Serve streamable HTTP on this address instead of stdio (e.g. :8080)"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query []string `arg:"" help:"Search terms"`
	Limit int      `short:"n" default:"10" help:"Maximum number of results (1-20)"`
	JSON  bool     `help:"Print the response as JSON"`
}

// GuideCmd is the "guide" subcommand.
type GuideCmd struct {
	URL  string `arg:"" help:"Guide URL"`
	JSON bool   `help:"Print the guide as JSON"`
}

// CategoriesCmd is the "categories" subcommand.
type CategoriesCmd struct {
	JSON bool `help:"Print the categories as JSON"`
}
