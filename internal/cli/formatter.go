package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/hakosalo/browserscan/internal/browserscan"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2
)

// emojis maps category keys to their table markers.
var emojis = map[string]string{
	browserscan.CategoryCookies:      "🍪",
	browserscan.CategoryCache:        "🗂️",
	browserscan.CategoryHistory:      "📜",
	browserscan.CategoryLocalStorage: "💾",
	browserscan.CategoryDatabases:    "🗄️",
}

// categoryEmoji returns the marker for a category, or a plain bullet when
// emoji output is disabled.
func categoryEmoji(key string, noEmoji bool) string {
	if noEmoji {
		return "-"
	}

	if e, ok := emojis[key]; ok {
		return e
	}

	return "•"
}

// PrintJSON outputs the scan summary in JSON format.
func PrintJSON(summary *browserscan.Summary, writer io.Writer) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintTable outputs the scan summary in human-readable table format.
//
//nolint:forbidigo // This function prints output to the console.
func PrintTable(summary *browserscan.Summary, writer io.Writer, noEmoji bool) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	fmt.Fprintln(w, "\nBrowser data usage:\t\t")

	for _, c := range summary.Categories {
		pct := 0.0
		if summary.Total.TotalBytes > 0 {
			pct = 100.0 * float64(c.TotalBytes) / float64(summary.Total.TotalBytes)
		}

		fmt.Fprintf(w, "  %s %s:\t%d files\t%s (%.1f%%)\n",
			categoryEmoji(c.Key, noEmoji), c.Label, c.ItemCount,
			browserscan.FormatBytes(c.TotalBytes), pct)
	}

	fmt.Fprintln(w, "\nStats:\t\t")
	fmt.Fprintf(w, "Total files:\t%d\n", summary.Total.ItemCount)
	fmt.Fprintf(w, "Total size:\t%s (%d bytes)\n",
		browserscan.FormatBytes(summary.Total.TotalBytes), summary.Total.TotalBytes)

	fmt.Fprintf(w, "\nElapsed:\t%v\n", summary.Elapsed)

	return w.Flush()
}
