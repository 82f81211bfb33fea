package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/shellcheck-mcp/shellcheck-mcp/internal/domain"
	"gopkg.in/yaml.v3"
)

const fileName = ".shellcheck-mcp.yaml"

// Loader builds the immutable process configuration: defaults,
// overlaid by an optional .shellcheck-mcp.yaml, overlaid by
// environment variables.
type Loader struct{}

// New creates a Loader.
func New() *Loader { return &Loader{} }

// Load reads .shellcheck-mcp.yaml from dir and applies environment
// overrides. A missing file is not an error; an unreadable or invalid
// one is.
func (l *Loader) Load(dir string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	data, err := os.ReadFile(filepath.Join(dir, fileName))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return domain.Config{}, err
	}
	if err == nil {
		var fileCfg domain.Config
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return domain.Config{}, fmt.Errorf("parsing %s: %w", fileName, err)
		}
		cfg = merge(cfg, fileCfg)
	}

	// Environment always wins over the file.
	if v := os.Getenv("SHELLCHECK_PATH"); v != "" {
		cfg.ShellcheckPath = v
	}
	if v := os.Getenv("SHELLCHECK_MCP_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if err := cfg.Validate(); err != nil {
		return domain.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// merge overlays explicit (non-zero) file values on top of defaults.
func merge(base, override domain.Config) domain.Config {
	result := base
	if override.ShellcheckPath != "" {
		result.ShellcheckPath = override.ShellcheckPath
	}
	if override.LogLevel != "" {
		result.LogLevel = override.LogLevel
	}
	if override.DefaultShell != "" {
		result.DefaultShell = override.DefaultShell
	}
	if override.Exclude != "" {
		result.Exclude = override.Exclude
	}
	return result
}

// SetupLogging installs a slog handler writing to stderr at the
// configured level. Stdout is left untouched for the stdio transport.
func SetupLogging(cfg domain.Config) {
	level := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
