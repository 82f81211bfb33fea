package tui_test

import (
	"testing"

	"github.com/shellcheck-mcp/shellcheck-mcp/internal/adapters/outbound/tui"
	"github.com/shellcheck-mcp/shellcheck-mcp/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRenderResult_CleanRun(t *testing.T) {
	out := tui.RenderResult("t.sh", domain.LintResult{
		Success: true,
		Message: "No issues found",
		Results: []domain.LintIssue{},
	})

	assert.Contains(t, out, "t.sh")
	assert.Contains(t, out, "No issues found")
}

func TestRenderResult_Issues(t *testing.T) {
	out := tui.RenderResult("t.sh", domain.LintResult{
		Success: false,
		Message: "Found 1 issue(s)",
		Results: []domain.LintIssue{
			{Line: 3, Column: 7, Code: "SC2086", Message: "Double quote to prevent globbing", Severity: "warning"},
		},
	})

	assert.Contains(t, out, "SC2086")
	assert.Contains(t, out, "warning")
	assert.Contains(t, out, "3:7")
	assert.Contains(t, out, "Double quote to prevent globbing")
	assert.Contains(t, out, "Found 1 issue(s)")
}

func TestRenderResult_Error(t *testing.T) {
	out := tui.RenderResult("t.sh", domain.ErrorResult("shellcheck not found"))

	assert.Contains(t, out, "shellcheck not found")
}

func TestRenderProject_Summary(t *testing.T) {
	report := &domain.ProjectReport{
		RootPath:   "/repo",
		CommitHash: "8843d7f92416211de9ebb963ff4ce28125932878",
		Scripts: []domain.ScriptLintResult{
			{File: "a.sh", Result: domain.LintResult{Success: true, Message: "No issues found", Results: []domain.LintIssue{}}},
			{File: "b.sh", Result: domain.LintResult{
				Success: false,
				Message: "Found 1 issue(s)",
				Results: []domain.LintIssue{{Line: 1, Column: 1, Code: "SC2148", Message: "missing shebang", Severity: "error"}},
			}},
		},
		TotalIssues: 1,
	}

	out := tui.RenderProject(report)

	assert.Contains(t, out, "/repo")
	assert.Contains(t, out, "8843d7f9")
	assert.Contains(t, out, "b.sh")
	assert.Contains(t, out, "SC2148")
	assert.Contains(t, out, "2 script(s), 1 clean, 1 issue(s)")
	assert.NotContains(t, out, "a.sh\n  ", "clean scripts should not list issues")
}
