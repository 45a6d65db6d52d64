// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Storage backends.
const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	CORSOrigins []string

	// StorageBackend selects where the travel document lives: BackendFile
	// (default) or BackendPostgres.
	StorageBackend string

	// DataFile is the JSON document path for the file backend. Defaults to
	// travel-tracker/travel-data.json under the user config directory.
	DataFile string

	// DatabaseURL is the Postgres connection string. Required for BackendPostgres.
	DatabaseURL string

	// AutosaveDelay is the debounce between the last change and the save.
	AutosaveDelay time.Duration

	// SnapshotRetention is how many Postgres snapshots to keep; 0 keeps all.
	SnapshotRetention int

	// MaxBodyBytes caps request body size.
	MaxBodyBytes int64
}

// Load reads configuration from environment variables and returns a Config.
// The error lists every variable that is missing or malformed.
func Load() (Config, error) {
	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		CORSOrigins:    splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		StorageBackend: strings.ToLower(getEnv("STORAGE_BACKEND", BackendFile)),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
	}

	var problems []string

	switch cfg.StorageBackend {
	case BackendFile:
		cfg.DataFile = os.Getenv("DATA_FILE")
		if cfg.DataFile == "" {
			path, err := defaultDataFile()
			if err != nil {
				problems = append(problems, "DATA_FILE (no default: "+err.Error()+")")
			}
			cfg.DataFile = path
		}
	case BackendPostgres:
		if cfg.DatabaseURL == "" {
			problems = append(problems, "DATABASE_URL (required for postgres backend)")
		}
	default:
		problems = append(problems, "STORAGE_BACKEND (must be file or postgres, got "+strconv.Quote(cfg.StorageBackend)+")")
	}

	delay, err := time.ParseDuration(getEnv("AUTOSAVE_DELAY", "1s"))
	if err != nil || delay <= 0 {
		problems = append(problems, "AUTOSAVE_DELAY (positive duration such as 1s)")
	}
	cfg.AutosaveDelay = delay

	retention, err := strconv.Atoi(getEnv("SNAPSHOT_RETENTION", "20"))
	if err != nil || retention < 0 {
		problems = append(problems, "SNAPSHOT_RETENTION (non-negative integer)")
	}
	cfg.SnapshotRetention = retention

	maxBody, err := strconv.ParseInt(getEnv("MAX_BODY_BYTES", "1048576"), 10, 64)
	if err != nil || maxBody <= 0 {
		problems = append(problems, "MAX_BODY_BYTES (positive integer)")
	}
	cfg.MaxBodyBytes = maxBody

	if len(problems) > 0 {
		return Config{}, fmt.Errorf("invalid configuration: %s", strings.Join(problems, ", "))
	}
	return cfg, nil
}

func defaultDataFile() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "travel-tracker", "travel-data.json"), nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
