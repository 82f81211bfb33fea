package shellcheck

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/shellcheck-mcp/shellcheck-mcp/internal/domain"
)

// Runner implements domain.ScriptRunner by launching the shellcheck
// binary as a child process.
type Runner struct {
	cmdPath string
}

// New creates a Runner for the configured shellcheck binary.
func New(cfg domain.Config) *Runner {
	return &Runner{cmdPath: cfg.ShellcheckPath}
}

// CommandPath returns the binary name or path the runner launches.
func (r *Runner) CommandPath() string { return r.cmdPath }

// Available reports whether the shellcheck binary can be found.
func (r *Runner) Available() bool {
	_, err := exec.LookPath(r.cmdPath)
	return err == nil
}

// Run launches shellcheck and waits for it under the caller's
// context deadline. A non-zero exit code is a normal outcome; errors
// cover launch failures, timeouts, and termination by signal.
func (r *Runner) Run(ctx context.Context, args []string, stdin string) (domain.ExecResult, error) {
	start := time.Now()

	cmd := exec.CommandContext(ctx, r.cmdPath, args...)
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return domain.ExecResult{}, fmt.Errorf("%w after %s", domain.ErrTimeout, time.Since(start).Round(time.Second))
		}
		if ctx.Err() != nil {
			return domain.ExecResult{}, ctx.Err()
		}

		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			// Launch failed before shellcheck produced an exit code.
			// PATH lookups fail with exec.ErrNotFound, path-form
			// commands with fs.ErrNotExist.
			if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
				return domain.ExecResult{}, fmt.Errorf("%w: %q is not installed (see https://www.shellcheck.net)", domain.ErrToolMissing, r.cmdPath)
			}
			return domain.ExecResult{}, fmt.Errorf("launching %s: %w", r.cmdPath, err)
		}
	}

	result := domain.ExecResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: cmd.ProcessState.ExitCode(),
	}

	slog.Debug("shellcheck completed",
		slog.String("command", r.cmdPath),
		slog.Int("exitCode", result.ExitCode),
		slog.Duration("duration", time.Since(start)),
	)
	return result, nil
}
