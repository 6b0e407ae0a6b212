package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/hakosalo/browserscan/internal/browserscan"
)

func logic(opts options, targets []browserscan.Target, logger *slog.Logger) error {
	enableProgress := strings.ToLower(opts.Output) != "json" &&
		!opts.Debug &&
		isatty.IsTerminal(os.Stderr.Fd())

	delay := opts.Delay
	if !enableProgress {
		// The pause only exists to pace live rendering.
		delay = 0
	}

	ctx := context.Background()

	// Simple progress sink that prints directly to stderr
	var sink browserscan.EventFunc

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(os.Stderr, "\033[?25l")
		defer fmt.Fprint(os.Stderr, "\033[?25h")

		sink = func(ev browserscan.Event) {
			msg := fmt.Sprintf("%s %s… %d files, %s (total %s)",
				categoryEmoji(ev.Category, opts.NoEmoji),
				ev.Category,
				ev.CategoryItems,
				humanize.IBytes(uint64(ev.CategoryBytes)), //nolint:gosec // Bytes is always positive
				humanize.IBytes(uint64(ev.TotalBytes)))    //nolint:gosec // Bytes is always positive
			fmt.Fprintf(os.Stderr, "\r\033[2K%s\r", msg)
		}
	}

	scanner := browserscan.NewScanner(browserscan.Config{
		Targets: targets,
		Delay:   delay,
		Log:     logger,
	})

	summary, err := scanner.Scan(ctx, sink)

	// Clear the status line
	if enableProgress {
		fmt.Fprint(os.Stderr, "\r\033[2K\r")
	}

	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	switch strings.ToLower(opts.Output) {
	case "json":
		return PrintJSON(summary, os.Stdout)
	case "table":
		return PrintTable(summary, os.Stdout, opts.NoEmoji)
	default:
		return fmt.Errorf("unknown output format: %s", opts.Output)
	}
}
