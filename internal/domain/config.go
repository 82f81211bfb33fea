package domain

import (
	"fmt"
	"time"
)

const (
	// MaxScriptSize bounds inline script text and linted files alike.
	MaxScriptSize = int64(10_000_000)

	// LintTimeout is the wall-clock budget for one lint invocation.
	LintTimeout = 30 * time.Second

	// InfoTimeout is the budget for the version/capabilities probe.
	InfoTimeout = 10 * time.Second
)

// Config is the process-wide configuration. It is built once at
// startup and read-only afterwards; every component receives it
// explicitly.
type Config struct {
	// ShellcheckPath is the linter binary name or path. Overridable
	// via SHELLCHECK_PATH or the config file.
	ShellcheckPath string `yaml:"shellcheck_path"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// DefaultShell is used when a request leaves the dialect empty.
	DefaultShell string `yaml:"default_shell"`

	// Exclude holds comma-separated codes applied to requests that do
	// not set their own exclusions.
	Exclude string `yaml:"exclude"`
}

// DefaultConfig returns the configuration used when no file or
// environment override is present.
func DefaultConfig() Config {
	return Config{
		ShellcheckPath: "shellcheck",
		LogLevel:       "info",
		DefaultShell:   DefaultShell,
	}
}

// Validate rejects configurations the server cannot honor.
func (c Config) Validate() error {
	if c.ShellcheckPath == "" {
		return fmt.Errorf("shellcheck_path must not be empty")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q (valid: debug, info, warn, error)", c.LogLevel)
	}
	if c.DefaultShell != "" && !IsSupportedShell(c.DefaultShell) {
		return fmt.Errorf("unknown default_shell %q (valid: %v)", c.DefaultShell, SupportedShells)
	}
	return nil
}

// IsSupportedShell reports whether the linter can be asked to assume
// the given dialect.
func IsSupportedShell(shell string) bool {
	for _, s := range SupportedShells {
		if s == shell {
			return true
		}
	}
	return false
}
