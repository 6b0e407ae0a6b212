package browserscan

import "time"

// Category keys, in scan order. The order is part of the reporting
// contract: results and progress events are always emitted in this order.
const (
	// CategoryCookies is the browser cookie store.
	CategoryCookies = "cookies"
	// CategoryCache is the HTTP disk cache.
	CategoryCache = "cache"
	// CategoryHistory is the browsing history database.
	CategoryHistory = "history"
	// CategoryLocalStorage is the DOM local storage area.
	CategoryLocalStorage = "local storage"
	// CategoryDatabases is the Web SQL database area.
	CategoryDatabases = "databases"
)

// Target describes one named directory to measure.
type Target struct {
	// Key is the category key, unique within a scan.
	Key string `json:"key"`
	// Path is the absolute root path to measure.
	Path string `json:"path"`
	// Label is a human-readable description of the category.
	Label string `json:"label"`
}

// Stats holds the totals for one directory traversal.
type Stats struct {
	// TotalBytes is the cumulative size of all measured files.
	TotalBytes int64 `json:"total_bytes"`
	// ItemCount is the number of files measured.
	ItemCount int64 `json:"item_count"`
}

// Add folds other into s.
func (s *Stats) Add(other Stats) {
	s.TotalBytes += other.TotalBytes
	s.ItemCount += other.ItemCount
}

// FileRecord describes a single file seen during traversal. It is only
// valid for the duration of one visit callback.
type FileRecord struct {
	// Path is the full path of the file.
	Path string `json:"path"`
	// Name is the file's base name.
	Name string `json:"name"`
	// Size is the file size in bytes.
	Size int64 `json:"size"`
}

// CategoryResult is the measured outcome for one target.
type CategoryResult struct {
	// Key is the category key.
	Key string `json:"key"`
	// Label is the category's human-readable description.
	Label string `json:"label"`

	Stats
}

// Summary aggregates the results of a full scan across all categories.
type Summary struct {
	// Categories holds per-category results in scan order.
	Categories []CategoryResult `json:"categories"`
	// Total is the pointwise sum over all categories.
	Total Stats `json:"total"`
	// Elapsed is the total wall time taken by the scan.
	Elapsed time.Duration `json:"elapsed"`
}

// Category returns the stats for the given category key.
func (s *Summary) Category(key string) (Stats, bool) {
	for _, c := range s.Categories {
		if c.Key == key {
			return c.Stats, true
		}
	}

	return Stats{}, false
}

// EventKind discriminates progress event types.
type EventKind string

const (
	// EventCategoryStarted is emitted once before each category's traversal.
	EventCategoryStarted EventKind = "category_started"
	// EventFileFound is emitted after each file is measured.
	EventFileFound EventKind = "file_found"
)

// Event is one incremental progress notification. Category totals are
// zero on category_started events; grand totals always reflect every file
// measured so far across the whole scan.
type Event struct {
	// Kind is the event type.
	Kind EventKind `json:"kind"`
	// Category is the category key the event belongs to.
	Category string `json:"category"`
	// Message is a human-readable description of the event.
	Message string `json:"message"`
	// CategoryBytes is the running byte total within the category.
	CategoryBytes int64 `json:"category_bytes"`
	// CategoryItems is the running file count within the category.
	CategoryItems int64 `json:"category_items"`
	// TotalBytes is the running byte total across all categories.
	TotalBytes int64 `json:"total_bytes"`
	// TotalItems is the running file count across all categories.
	TotalItems int64 `json:"total_items"`
}

// EventFunc consumes progress events during a scan.
type EventFunc func(Event)
