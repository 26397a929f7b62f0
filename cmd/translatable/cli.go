package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/translatable"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Fetcher   translatable.Fetcher
	Extractor translatable.Extractor
	Locators  map[string]translatable.ContentLocator
	Store     translatable.ExtractionService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log debug output to stderr"`

	Extract ExtractCmd `cmd:"" help:"List translatable content in HTML or XML sources"`
	Apply   ApplyCmd   `cmd:"" help:"Write translations back into an HTML source"`
}

// SourceFlags are shared by commands that read a document.
type SourceFlags struct {
	Selector    string        `short:"s" help:"CSS selector of the extraction root (default: <html>)"`
	Render      bool          `short:"r" help:"Render URL sources in headless Chrome"`
	Timeout     time.Duration `default:"10s" help:"Per-source fetch timeout"`
	RateLimit   float64       `name:"rate-limit" default:"2" help:"Maximum requests per second per host (0 disables)"`
	Concurrency int           `short:"c" default:"4" help:"Concurrent fetch limit"`
	Retries     int           `default:"2" help:"Retries per failed fetch, with exponential backoff"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Sources []string `arg:"" name:"source" help:"File paths or http(s) URLs"`

	SourceFlags `embed:""`

	Strategy      string `default:"hybrid" enum:"bfs,hybrid" help:"Traversal strategy (bfs, hybrid)"`
	MaxDepth      int    `name:"max-depth" default:"1000" help:"Maximum depth below the root"`
	Threshold     int    `default:"3" help:"Depth at which hybrid switches to depth-first"`
	Lookback      int    `default:"3" help:"Ancestor levels checked for skip markers"`
	Main          string `default:"none" enum:"none,trafilatura,readability" help:"Locate the main content before extracting (none, trafilatura, readability)"`
	XML           bool   `name:"xml" help:"Parse sources as XML"`
	LangDetect    bool   `name:"lang-detect" help:"Keep symbol-only text for downstream language detection"`
	SourceEnglish string `name:"source-english" default:"auto" enum:"auto,yes,no" help:"Whether the source is English (auto reads <html lang>)"`
	Format        string `short:"f" default:"text" enum:"text,json" help:"Output format (text, json)"`
	DB            string `name:"db" env:"TRANSLATABLE_DB" help:"SQLite store for extraction results (empty disables)"`
}

// ApplyCmd is the "apply" subcommand.
type ApplyCmd struct {
	Source       string `arg:"" help:"HTML file path or http(s) URL"`
	Translations string `arg:"" type:"existingfile" help:"JSON file mapping source text to translated text"`

	SourceFlags `embed:""`
}

// describe returns the user-facing text of err: the message of an
// application error, or the full error chain otherwise.
func describe(err error) string {
	if translatable.ErrorCode(err) != translatable.EINTERNAL {
		return translatable.ErrorMessage(err)
	}
	return err.Error()
}
