// Package main is the entry point for the polyglot translator TUI.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/polyglot/internal/app"
	"github.com/dshills/polyglot/internal/config"
	"github.com/dshills/polyglot/internal/renderer/backend"
	"github.com/dshills/polyglot/internal/translate"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}

	logger := app.NullLogger
	if cfg.LogFile != "" {
		logger, err = app.NewFileLogger(cfg.LogFile, app.ParseLogLevel(cfg.LogLevel))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	translator := translate.NewClient(translate.Options{
		URL:        cfg.EndpointURL,
		APIKey:     cfg.APIKey,
		AuthHeader: cfg.AuthHeader,
	})

	term, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application := app.New(cfg, term, translator, logger)
	if err := application.Run(ctx); err != nil {
		if errors.Is(err, app.ErrQuit) || errors.Is(err, context.Canceled) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

type options struct {
	configPath string
	logLevel   string
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "polyglot - side-by-side translation editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: polyglot [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment:\n")
		fmt.Fprintf(os.Stderr, "  TRANSLATION_API_URL          translation endpoint (required)\n")
		fmt.Fprintf(os.Stderr, "  TRANSLATION_API_KEY          API key\n")
		fmt.Fprintf(os.Stderr, "  TRANSLATION_API_AUTH_HEADER  header name for the key\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("polyglot %s (%s)\n", version, commit)
		os.Exit(0)
	}

	return opts
}
