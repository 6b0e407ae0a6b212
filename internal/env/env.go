// Package env provides environment-backed configuration with .env support.
package env

import (
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Load loads environment variables from a .env file in the working
// directory, if one exists. Missing files are not an error.
func Load() error {
	if _, err := os.Stat(".env"); err != nil {
		return nil
	}

	return godotenv.Load(".env")
}

// GetString returns the environment variable value or a default if not set.
func GetString(key, defaultValue string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	return value
}

// GetInt returns the environment variable value as int or a default if
// not set or not parseable.
func GetInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		slog.Warn("environment variable is not a valid integer, using default",
			"key", key, "default", defaultValue)

		return defaultValue
	}

	return value
}

// GetBool returns whether the environment variable is set to a truthy
// value ("1", "true", "yes", "y"), or the default when unset.
func GetBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	return value == "1" || value == "true" || value == "yes" || value == "y"
}

// GetDuration returns the environment variable parsed as a time.Duration
// or a default if not set or not parseable.
func GetDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		slog.Warn("environment variable is not a valid duration, using default",
			"key", key, "default", defaultValue)

		return defaultValue
	}

	return value
}

// ProfileDir returns the browser profile directory to scan: the
// BROWSERSCAN_PROFILE_DIR override if set, else the Chrome default
// profile under the user's configuration directory.
func ProfileDir() string {
	if dir := GetString("BROWSERSCAN_PROFILE_DIR", ""); dir != "" {
		return dir
	}

	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}

	if runtime.GOOS == "darwin" || runtime.GOOS == "windows" {
		return filepath.Join(base, "Google", "Chrome", "Default")
	}

	return filepath.Join(base, "google-chrome", "Default")
}

// CacheDir returns the browser disk-cache directory to scan: the
// BROWSERSCAN_CACHE_DIR override if set, else the Chrome default profile
// under the user's cache directory.
func CacheDir() string {
	if dir := GetString("BROWSERSCAN_CACHE_DIR", ""); dir != "" {
		return dir
	}

	base, err := os.UserCacheDir()
	if err != nil {
		return ""
	}

	if runtime.GOOS == "darwin" || runtime.GOOS == "windows" {
		return filepath.Join(base, "Google", "Chrome", "Default")
	}

	return filepath.Join(base, "google-chrome", "Default")
}
