package browserscan

import (
	"context"
	"io/fs"
	"log/slog"

	"github.com/charlievieth/fastwalk"
)

// VisitFunc is invoked once per measured file, in traversal order, with
// the file's record and the cumulative stats including that file.
type VisitFunc func(file FileRecord, running Stats)

// Accumulator measures the disk usage of a single directory tree.
//
// The zero value is ready to use and logs diagnostics to slog.Default.
type Accumulator struct {
	// Log receives a debug entry for every node that could not be read.
	Log *slog.Logger
}

// Measure walks the tree rooted at root and returns the byte total and
// file count over every regular file it can read.
//
// A root that does not exist contributes zero and is not an error: the
// filesystem may change while the scan runs, so existence is only ever
// established by the access attempt itself. Unreadable nodes are skipped
// with a diagnostic log entry and the walk continues with their siblings.
// Symlinks are not followed; sockets, devices and other special files are
// ignored. The only error returned is ctx's error when the walk is
// cancelled mid-flight.
func (a Accumulator) Measure(ctx context.Context, root string, visit VisitFunc) (Stats, error) {
	log := a.Log
	if log == nil {
		log = slog.Default()
	}

	// One walker keeps visits strictly sequential, so visit callbacks run
	// inline in traversal order and running totals are monotonic.
	conf := &fastwalk.Config{
		Follow:     false,
		NumWorkers: 1,
	}

	var stats Stats

	walkErr := fastwalk.Walk(conf, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Missing and unreadable nodes are deliberately treated the
			// same: zero contribution, scan continues.
			log.Debug("skipping unreadable node", "path", path, "error", err)

			return nil
		}

		select {
		case <-ctx.Done():
			return context.Canceled
		default:
		}

		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			log.Debug("skipping unreadable file", "path", path, "error", err)

			return nil //nolint:nilerr // Per-node failures never abort the walk
		}

		stats.TotalBytes += info.Size()
		stats.ItemCount++

		if visit != nil {
			visit(FileRecord{Path: path, Name: d.Name(), Size: info.Size()}, stats)
		}

		return nil
	})
	if walkErr != nil {
		return stats, walkErr
	}

	return stats, nil
}
