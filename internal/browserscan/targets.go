package browserscan

import "path/filepath"

// DefaultTargets builds the fixed category table from a browser profile
// directory and its disk-cache directory. The returned slice is in scan
// order and uses Chrome's default-profile layout.
func DefaultTargets(profileDir, cacheDir string) []Target {
	return []Target{
		{
			Key:   CategoryCookies,
			Path:  filepath.Join(profileDir, "Cookies"),
			Label: "Cookies",
		},
		{
			Key:   CategoryCache,
			Path:  filepath.Join(cacheDir, "Cache"),
			Label: "HTTP cache",
		},
		{
			Key:   CategoryHistory,
			Path:  filepath.Join(profileDir, "History"),
			Label: "Browsing history",
		},
		{
			Key:   CategoryLocalStorage,
			Path:  filepath.Join(profileDir, "Local Storage"),
			Label: "Local storage",
		},
		{
			Key:   CategoryDatabases,
			Path:  filepath.Join(profileDir, "databases"),
			Label: "Web databases",
		},
	}
}
