package browserscan

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

// syntheticTargets builds a full category table over temp directories.
// The cookies category holds files of 100, 200 and 300 bytes; history
// holds a single 50 byte file; databases points at a missing path.
func syntheticTargets(t *testing.T) []Target {
	t.Helper()

	tmp := t.TempDir()

	cookies := filepath.Join(tmp, "cookies")
	if err := os.Mkdir(cookies, 0o755); err != nil {
		t.Fatal(err)
	}

	writeFile(t, cookies, "a.db", 100)
	writeFile(t, cookies, "b.db", 200)
	writeFile(t, cookies, "c.db", 300)

	history := filepath.Join(tmp, "history")
	if err := os.Mkdir(history, 0o755); err != nil {
		t.Fatal(err)
	}

	writeFile(t, history, "visits.db", 50)

	return []Target{
		{Key: CategoryCookies, Path: cookies, Label: "Cookies"},
		{Key: CategoryCache, Path: filepath.Join(tmp, "cache"), Label: "HTTP cache"},
		{Key: CategoryHistory, Path: history, Label: "Browsing history"},
		{Key: CategoryLocalStorage, Path: filepath.Join(tmp, "ls"), Label: "Local storage"},
		{Key: CategoryDatabases, Path: filepath.Join(tmp, "db"), Label: "Web databases"},
	}
}

func TestScanSummary(t *testing.T) {
	scanner := NewScanner(Config{Targets: syntheticTargets(t)})

	summary, err := scanner.Scan(context.Background(), nil)
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}

	if len(summary.Categories) != 5 {
		t.Fatalf("got %d categories, want 5", len(summary.Categories))
	}

	cookies, ok := summary.Category(CategoryCookies)
	if !ok {
		t.Fatal("cookies category missing from summary")
	}

	if cookies.TotalBytes != 600 || cookies.ItemCount != 3 {
		t.Errorf("cookies = %+v, want {600 3}", cookies)
	}

	history, _ := summary.Category(CategoryHistory)
	if history.TotalBytes != 50 || history.ItemCount != 1 {
		t.Errorf("history = %+v, want {50 1}", history)
	}

	// Missing categories contribute zero, not an error.
	for _, key := range []string{CategoryCache, CategoryLocalStorage, CategoryDatabases} {
		stats, ok := summary.Category(key)
		if !ok {
			t.Fatalf("%s category missing from summary", key)
		}

		if stats.TotalBytes != 0 || stats.ItemCount != 0 {
			t.Errorf("%s = %+v, want zero", key, stats)
		}
	}

	if summary.Total.TotalBytes != 650 || summary.Total.ItemCount != 4 {
		t.Errorf("total = %+v, want {650 4}", summary.Total)
	}
}

func TestScanTotalEqualsSumOfCategories(t *testing.T) {
	scanner := NewScanner(Config{Targets: syntheticTargets(t)})

	summary, err := scanner.Scan(context.Background(), nil)
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}

	var sum Stats
	for _, c := range summary.Categories {
		sum.Add(c.Stats)
	}

	if sum != summary.Total {
		t.Errorf("total %+v != sum of categories %+v", summary.Total, sum)
	}
}

func TestScanEventOrder(t *testing.T) {
	scanner := NewScanner(Config{Targets: syntheticTargets(t)})

	var events []Event

	summary, err := scanner.Scan(context.Background(), func(ev Event) {
		events = append(events, ev)
	})
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}

	wantOrder := []string{
		CategoryCookies, CategoryCache, CategoryHistory, CategoryLocalStorage, CategoryDatabases,
	}

	// Category keys must appear in the fixed scan order, each opened by a
	// category_started event.
	var (
		started   []string
		lastBytes int64
		lastItems int64
	)

	for i, ev := range events {
		switch ev.Kind {
		case EventCategoryStarted:
			started = append(started, ev.Category)
			// Running category totals start over; grand totals carry on.
			lastBytes, lastItems = 0, 0
		case EventFileFound:
			if len(started) == 0 || started[len(started)-1] != ev.Category {
				t.Errorf("event %d: file_found for %s outside its category window", i, ev.Category)
			}

			if ev.CategoryBytes < lastBytes || ev.CategoryItems < lastItems {
				t.Errorf("event %d: category totals decreased: %+v", i, ev)
			}

			lastBytes, lastItems = ev.CategoryBytes, ev.CategoryItems
		default:
			t.Errorf("event %d: unknown kind %q", i, ev.Kind)
		}
	}

	if len(started) != len(wantOrder) {
		t.Fatalf("got %d category_started events, want %d", len(started), len(wantOrder))
	}

	for i, key := range wantOrder {
		if started[i] != key {
			t.Errorf("category %d started = %q, want %q", i, started[i], key)
		}
	}

	// The last file event's grand total must match the final summary.
	for i := len(events) - 1; i >= 0; i-- {
		if events[i].Kind != EventFileFound {
			continue
		}

		if events[i].TotalBytes != summary.Total.TotalBytes ||
			events[i].TotalItems != summary.Total.ItemCount {
			t.Errorf("final file event totals %d/%d != summary %d/%d",
				events[i].TotalBytes, events[i].TotalItems,
				summary.Total.TotalBytes, summary.Total.ItemCount)
		}

		break
	}
}

func TestScanGrandTotalsRecomputed(t *testing.T) {
	scanner := NewScanner(Config{Targets: syntheticTargets(t)})

	var grand []int64

	_, err := scanner.Scan(context.Background(), func(ev Event) {
		if ev.Kind == EventFileFound {
			if ev.TotalBytes < ev.CategoryBytes {
				t.Errorf("grand total %d below category total %d", ev.TotalBytes, ev.CategoryBytes)
			}

			grand = append(grand, ev.TotalBytes)
		}
	})
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}

	for i := 1; i < len(grand); i++ {
		if grand[i] < grand[i-1] {
			t.Errorf("grand totals decreased at event %d: %d -> %d", i, grand[i-1], grand[i])
		}
	}
}

func TestScanCancelled(t *testing.T) {
	scanner := NewScanner(Config{Targets: syntheticTargets(t)})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary, err := scanner.Scan(ctx, nil)
	if err == nil {
		t.Fatal("expected error from cancelled context")
	}

	if summary != nil {
		t.Errorf("expected nil summary on failure, got %+v", summary)
	}
}

func TestScanEmptyTargets(t *testing.T) {
	summary, err := NewScanner(Config{}).Scan(context.Background(), nil)
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}

	if summary.Total.TotalBytes != 0 || summary.Total.ItemCount != 0 {
		t.Errorf("total = %+v, want zero", summary.Total)
	}
}
