package domain

import (
	"context"
	"errors"
)

// Sentinel errors a ScriptRunner reports; services fold them into
// LintResult fields rather than letting them escape the operation
// boundary.
var (
	// ErrToolMissing means the linter binary could not be found.
	ErrToolMissing = errors.New("shellcheck not found")

	// ErrTimeout means the child process exceeded its wall-clock
	// budget and was terminated.
	ErrTimeout = errors.New("shellcheck timed out")
)

// ExecResult carries the captured output of one linter run.
type ExecResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// ScriptRunner executes the linter binary with a built argument
// vector. When stdin is non-empty it is written to the child's
// standard input and closed. A non-zero exit code is not an error;
// errors are reserved for launch failures, timeouts, and the like.
type ScriptRunner interface {
	Run(ctx context.Context, args []string, stdin string) (ExecResult, error)
}

// ScriptScanner discovers shell scripts under a project root,
// returning paths relative to that root.
type ScriptScanner interface {
	Scan(rootPath string) ([]string, error)
}

// GitInfo exposes repository metadata for project reports.
type GitInfo interface {
	IsGitRepo(path string) bool
	CommitHash(path string) (string, error)
}
