package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shellcheck-mcp/shellcheck-mcp/internal/domain"
)

// LintService orchestrates the lint pipeline:
// validate → build argv → run shellcheck → normalize output.
// Every failure path is folded into the returned LintResult; Lint
// never reports an error to the transport layer.
type LintService struct {
	cfg    domain.Config
	runner domain.ScriptRunner
}

func NewLintService(cfg domain.Config, runner domain.ScriptRunner) *LintService {
	return &LintService{cfg: cfg, runner: runner}
}

type runOutcome struct {
	res domain.ExecResult
	err error
}

// Lint validates the request and, if valid, runs shellcheck under the
// lint timeout. The subprocess executes on its own goroutine and its
// outcome is delivered back over a channel, so the caller's dispatch
// goroutine is never parked inside the runner.
func (s *LintService) Lint(ctx context.Context, req domain.LintRequest) domain.LintResult {
	req = s.applyDefaults(req)

	// 1. Validate; no subprocess is launched for a bad request.
	if verr := domain.ValidateRequest(req); verr != nil {
		slog.Debug("lint request rejected", slog.String("field", verr.Field), slog.String("reason", verr.Message))
		return domain.ErrorResult(verr.Error())
	}

	// 2. Build the argument vector.
	args := domain.BuildArgs(req)

	// 3. Run with the wall-clock budget.
	runCtx, cancel := context.WithTimeout(ctx, domain.LintTimeout)
	defer cancel()

	outcomes := make(chan runOutcome, 1)
	go func() {
		res, err := s.runner.Run(runCtx, args, req.ScriptContent)
		outcomes <- runOutcome{res: res, err: err}
	}()
	outcome := <-outcomes

	if outcome.err != nil {
		return s.failureResult(outcome.err)
	}

	// 4. Normalize.
	return domain.Normalize(outcome.res.Stdout, outcome.res.Stderr, outcome.res.ExitCode)
}

// applyDefaults fills request fields the caller left empty from the
// process configuration.
func (s *LintService) applyDefaults(req domain.LintRequest) domain.LintRequest {
	if req.Shell == "" {
		req.Shell = s.cfg.DefaultShell
	}
	if req.Exclude == "" {
		req.Exclude = s.cfg.Exclude
	}
	return req
}

// failureResult maps runner errors onto the flat result taxonomy.
func (s *LintService) failureResult(err error) domain.LintResult {
	switch {
	case errors.Is(err, domain.ErrTimeout):
		return domain.ErrorResult(fmt.Sprintf("ShellCheck timed out after %s", domain.LintTimeout))
	case errors.Is(err, domain.ErrToolMissing):
		return domain.ErrorResult(err.Error())
	default:
		slog.Warn("shellcheck run failed", slog.Any("error", err))
		return domain.ErrorResult(fmt.Sprintf("Unexpected error running shellcheck: %v", err))
	}
}
