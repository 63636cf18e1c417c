// Package config reads the pdfdump command's settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/porticus-lab/pdfdump"
)

// Environment variables.
const (
	EnvFile      = "PDFDUMP_FILE"
	EnvProviders = "PDFDUMP_PROVIDERS"
	EnvLogLevel  = "PDFDUMP_LOG_LEVEL"
)

// Config holds the command settings.
type Config struct {
	// Path is the PDF document to dump.
	Path string
	// Candidates is the ordered list of provider names to try.
	Candidates []string
	// LogLevel is the minimum level written to stderr.
	LogLevel slog.Level
}

// Default returns the settings used when the environment is empty.
func Default() Config {
	return Config{
		Path:       pdfdump.DefaultPath,
		Candidates: append([]string(nil), pdfdump.DefaultCandidates...),
		LogLevel:   slog.LevelWarn,
	}
}

// Load reads the configuration through getenv, normally os.Getenv.
//
// Unset or blank variables keep their defaults. On an invalid value Load
// returns the error together with a Config in which that field kept its
// default, so callers can report the problem and carry on.
func Load(getenv func(string) string) (Config, error) {
	cfg := Default()

	if path := getenv(EnvFile); strings.TrimSpace(path) != "" {
		cfg.Path = path
	}

	if names := splitList(getenv(EnvProviders)); len(names) > 0 {
		cfg.Candidates = names
	}

	if lvl := strings.TrimSpace(getenv(EnvLogLevel)); lvl != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(lvl)); err != nil {
			return cfg, fmt.Errorf("config: invalid %s %q: %w", EnvLogLevel, lvl, err)
		}
		cfg.LogLevel = level
	}

	return cfg, nil
}

// splitList splits a comma-separated list, dropping blank entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
