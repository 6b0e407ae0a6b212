package browserscan

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// DefaultDelay is the default pause before each category's traversal.
// It exists purely to pace progress events for live consumers and may be
// set to zero for non-interactive reporters.
const DefaultDelay = 250 * time.Millisecond

// Config configures a Scanner.
type Config struct {
	// Targets is the ordered list of categories to measure.
	Targets []Target
	// Delay is the cosmetic pause before each category (0 = none).
	Delay time.Duration
	// Log receives diagnostics for skipped nodes.
	Log *slog.Logger
}

// Scanner measures a fixed ordered set of targets and aggregates the
// results. Each Scan call is independent; a Scanner holds no state across
// scans and concurrent callers must use separate instances.
type Scanner struct {
	targets []Target
	delay   time.Duration
	log     *slog.Logger
	acc     Accumulator
}

// NewScanner creates a Scanner for the given configuration.
func NewScanner(cfg Config) *Scanner {
	log := cfg.Log
	if log == nil {
		log = slog.Default()
	}

	return &Scanner{
		targets: cfg.Targets,
		delay:   cfg.Delay,
		log:     log,
		acc:     Accumulator{Log: log},
	}
}

// Targets returns the configured targets in scan order.
func (s *Scanner) Targets() []Target {
	return s.targets
}

// Scan measures every target in order and returns the aggregated summary.
//
// sink, if non-nil, receives a category_started event before each
// category and a file_found event after each measured file; it is never
// invoked after Scan returns. Grand totals on every event are recomputed
// as completed-categories plus the current category's running subtotal.
// The summary always satisfies total == sum of categories, even when
// whole categories are missing or unreadable (they report zero). The only
// failure mode is cancellation via ctx.
func (s *Scanner) Scan(ctx context.Context, sink EventFunc) (*Summary, error) {
	start := time.Now()

	summary := &Summary{
		Categories: make([]CategoryResult, 0, len(s.targets)),
	}

	var completed Stats

	for _, target := range s.targets {
		if sink != nil {
			sink(Event{
				Kind:       EventCategoryStarted,
				Category:   target.Key,
				Message:    fmt.Sprintf("Scanning %s…", target.Label),
				TotalBytes: completed.TotalBytes,
				TotalItems: completed.ItemCount,
			})
		}

		if err := s.pause(ctx); err != nil {
			return nil, err
		}

		var visit VisitFunc

		if sink != nil {
			visit = func(file FileRecord, running Stats) {
				sink(Event{
					Kind:          EventFileFound,
					Category:      target.Key,
					Message:       fmt.Sprintf("Found %s", file.Name),
					CategoryBytes: running.TotalBytes,
					CategoryItems: running.ItemCount,
					TotalBytes:    completed.TotalBytes + running.TotalBytes,
					TotalItems:    completed.ItemCount + running.ItemCount,
				})
			}
		}

		stats, err := s.acc.Measure(ctx, target.Path, visit)
		if err != nil {
			return nil, fmt.Errorf("measuring %s: %w", target.Key, err)
		}

		s.log.Debug("category measured",
			"category", target.Key, "bytes", stats.TotalBytes, "items", stats.ItemCount)

		summary.Categories = append(summary.Categories, CategoryResult{
			Key:   target.Key,
			Label: target.Label,
			Stats: stats,
		})
		completed.Add(stats)
	}

	summary.Total = completed
	summary.Elapsed = time.Since(start)

	return summary, nil
}

// pause sleeps for the configured inter-category delay, honoring ctx.
func (s *Scanner) pause(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
