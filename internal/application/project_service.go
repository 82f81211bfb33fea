package application

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/shellcheck-mcp/shellcheck-mcp/internal/domain"
)

// ProjectService lints every shell script found under a project root.
type ProjectService struct {
	lint    *LintService
	scanner domain.ScriptScanner
	gitInfo domain.GitInfo
}

func NewProjectService(lint *LintService, scanner domain.ScriptScanner, gitInfo domain.GitInfo) *ProjectService {
	return &ProjectService{lint: lint, scanner: scanner, gitInfo: gitInfo}
}

// LintProject scans rootPath for shell scripts and lints each one
// through the standard pipeline. Scripts run concurrently, bounded by
// the CPU count; results keep scan order. Per-script failures land in
// the per-script result, not in the returned error.
func (s *ProjectService) LintProject(ctx context.Context, rootPath string, req domain.LintRequest) (*domain.ProjectReport, error) {
	absPath, err := filepath.Abs(rootPath)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	scripts, err := s.scanner.Scan(absPath)
	if err != nil {
		return nil, fmt.Errorf("scanning project: %w", err)
	}

	report := &domain.ProjectReport{
		RootPath: absPath,
		Scripts:  make([]domain.ScriptLintResult, len(scripts)),
	}
	if s.gitInfo != nil && s.gitInfo.IsGitRepo(absPath) {
		if hash, err := s.gitInfo.CommitHash(absPath); err == nil {
			report.CommitHash = hash
		}
	}

	sem := make(chan struct{}, runtime.NumCPU())
	var wg sync.WaitGroup
	for i, script := range scripts {
		wg.Add(1)
		go func(idx int, rel string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			fileReq := req
			fileReq.FilePath = filepath.Join(absPath, rel)
			fileReq.ScriptContent = ""
			report.Scripts[idx] = domain.ScriptLintResult{
				File:   rel,
				Result: s.lint.Lint(ctx, fileReq),
			}
		}(i, script)
	}
	wg.Wait()

	for _, sr := range report.Scripts {
		report.TotalIssues += len(sr.Result.Results)
		if !sr.Result.Success && len(sr.Result.Results) == 0 && sr.Result.Error != "" {
			report.FailedRuns++
		}
	}

	slog.Debug("project lint completed",
		slog.String("root", absPath),
		slog.Int("scripts", len(scripts)),
		slog.Int("issues", report.TotalIssues),
	)
	return report, nil
}
