package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"slices"
	"strconv"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/pflag"

	"github.com/hakosalo/browserscan/internal/browserscan"
	"github.com/hakosalo/browserscan/internal/env"
	"github.com/hakosalo/browserscan/internal/logging"
	"github.com/hakosalo/browserscan/internal/server"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// options gathers all flag values.
type options struct {
	Output    string
	Profile   string
	CacheDir  string
	Delay     time.Duration
	NoEmoji   bool
	Serve     bool
	IP        string
	Port      int
	StaticDir string
	Debug     bool
	Version   bool
}

func help() {
	//nolint:forbidigo // Help output to console
	fmt.Println(heredoc.Doc(`
		browserscan measures the disk footprint of browser data directories
		(cookies, cache, history, local storage, databases) and reports
		per-category and total usage.

		Usage:

			browserscan [flags]

		Modes:
		  Default mode scans once and prints a summary to the console.
		  Use --serve to expose scans over HTTP instead, including a live
		  Server-Sent-Events progress stream at /api/scan/events.

		The profile and cache directories default to the Chrome default
		profile under the user's config and cache directories. They can be
		overridden with flags or with the BROWSERSCAN_PROFILE_DIR and
		BROWSERSCAN_CACHE_DIR environment variables (a .env file in the
		working directory is honored).

		Flags:
	`))
	pflag.PrintDefaults()
}

// Execute runs the CLI with the provided arguments.
func (c CLI) Execute() error {
	var opts options

	allowedOutputs := []string{"table", "json"}

	pflag.StringVarP(&opts.Output, "output", "o", "table", "Output format: json or table")
	pflag.StringVar(&opts.Profile, "profile", "", "Browser profile directory to scan")
	pflag.StringVar(&opts.CacheDir, "cache-dir", "", "Browser cache directory to scan")
	pflag.DurationVar(&opts.Delay, "delay", browserscan.DefaultDelay,
		"Pause before each category, paces live progress (0 to disable)")
	pflag.BoolVar(&opts.NoEmoji, "no-emoji", false, "Disable emoji in table output")
	pflag.BoolVarP(&opts.Serve, "serve", "s", false, "Serve scans over HTTP instead of scanning once")
	pflag.StringVar(&opts.IP, "ip", "0.0.0.0", "IP address to bind the HTTP server to")
	pflag.IntVarP(&opts.Port, "port", "p", 8420, "Port for the HTTP server")
	pflag.StringVar(&opts.StaticDir, "static", "./static", "Static assets directory for the HTTP server")
	pflag.BoolVar(&opts.Debug, "debug", false, "Enable debug logging")
	pflag.BoolVarP(&opts.Version, "version", "v", false, "Show version and exit")

	pflag.CommandLine.SortFlags = false
	pflag.Usage = help
	pflag.Parse()

	if opts.Version {
		//nolint:forbidigo // Version output to console
		fmt.Println(c.version)

		return nil
	}

	if !slices.Contains(allowedOutputs, opts.Output) {
		return fmt.Errorf("invalid output format %q: must be one of %v", opts.Output, allowedOutputs)
	}

	if opts.Delay < 0 {
		return errors.New("delay cannot be negative")
	}

	if err := env.Load(); err != nil {
		return fmt.Errorf("loading .env: %w", err)
	}

	logger, closer := newLogger(opts)
	if closer != nil {
		defer closer.Close()
	}

	slog.SetDefault(logger)

	if opts.Profile == "" {
		opts.Profile = env.ProfileDir()
	}

	if opts.CacheDir == "" {
		opts.CacheDir = env.CacheDir()
	}

	targets := browserscan.DefaultTargets(opts.Profile, opts.CacheDir)

	if opts.Serve {
		srv := server.New(server.Config{
			Addr:      net.JoinHostPort(opts.IP, strconv.Itoa(opts.Port)),
			Targets:   targets,
			Delay:     opts.Delay,
			StaticDir: opts.StaticDir,
			Log:       logger,
		})

		return srv.ListenAndServe()
	}

	return logic(opts, targets, logger)
}

// newLogger builds the logger from flags and BROWSERSCAN_LOG_* variables.
func newLogger(opts options) (*slog.Logger, io.Closer) {
	cfg := logging.DefaultConfig()
	cfg.Level = env.GetString("BROWSERSCAN_LOG_LEVEL", cfg.Level)
	cfg.Format = env.GetString("BROWSERSCAN_LOG_FORMAT", cfg.Format)
	cfg.FilePath = env.GetString("BROWSERSCAN_LOG_FILE", "")

	if opts.Debug {
		cfg.Level = "debug"
	}

	return logging.New(cfg)
}
