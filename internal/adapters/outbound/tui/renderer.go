package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shellcheck-mcp/shellcheck-mcp/internal/domain"
)

var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(fg)
	dimStyle    = lipgloss.NewStyle().Foreground(dim)
	faintStyle  = lipgloss.NewStyle().Foreground(faint)
	passStyle   = lipgloss.NewStyle().Foreground(success)
	failStyle   = lipgloss.NewStyle().Foreground(danger)
	codeStyle   = lipgloss.NewStyle().Bold(true).Foreground(fg)

	severityStyles = map[string]lipgloss.Style{
		domain.SeverityError:   lipgloss.NewStyle().Foreground(danger).Bold(true),
		domain.SeverityWarning: lipgloss.NewStyle().Foreground(warning).Bold(true),
		domain.SeverityInfo:    lipgloss.NewStyle().Foreground(info),
		domain.SeverityStyle:   lipgloss.NewStyle().Foreground(dim),
	}

	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderResult renders one lint result for the terminal.
func RenderResult(target string, result domain.LintResult) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("shellcheck"))
	b.WriteString(" ")
	b.WriteString(dimStyle.Render(target))
	b.WriteString("\n")
	b.WriteString(separatorLine)
	b.WriteString("\n")

	switch {
	case result.Error != "":
		b.WriteString(failStyle.Render("✗ " + result.Error))
		b.WriteString("\n")
	case len(result.Results) == 0:
		b.WriteString(passStyle.Render("✓ " + result.Message))
		b.WriteString("\n")
	default:
		for _, issue := range result.Results {
			renderIssue(&b, issue)
		}
		b.WriteString(separatorLine)
		b.WriteString("\n")
		b.WriteString(titleStyle.Render(result.Message))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderProject renders a repository-wide report, listing scripts
// with findings and summarizing the clean ones.
func RenderProject(report *domain.ProjectReport) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("shellcheck"))
	b.WriteString(" ")
	b.WriteString(dimStyle.Render(report.RootPath))
	if report.CommitHash != "" {
		b.WriteString(dimStyle.Render(fmt.Sprintf(" @ %.8s", report.CommitHash)))
	}
	b.WriteString("\n")
	b.WriteString(separatorLine)
	b.WriteString("\n")

	clean := 0
	for _, sr := range report.Scripts {
		if sr.Result.Success {
			clean++
			continue
		}
		b.WriteString(titleStyle.Render(sr.File))
		b.WriteString("\n")
		if sr.Result.Error != "" {
			b.WriteString("  " + failStyle.Render("✗ "+sr.Result.Error))
			b.WriteString("\n")
			continue
		}
		for _, issue := range sr.Result.Results {
			renderIssue(&b, issue)
		}
	}

	b.WriteString(separatorLine)
	b.WriteString("\n")
	summary := fmt.Sprintf("%d script(s), %d clean, %d issue(s), %d failed run(s)",
		len(report.Scripts), clean, report.TotalIssues, report.FailedRuns)
	if report.TotalIssues == 0 && report.FailedRuns == 0 {
		b.WriteString(passStyle.Render("✓ " + summary))
	} else {
		b.WriteString(titleStyle.Render(summary))
	}
	b.WriteString("\n")
	return b.String()
}

func renderIssue(b *strings.Builder, issue domain.LintIssue) {
	style, ok := severityStyles[issue.Severity]
	if !ok {
		style = dimStyle
	}
	b.WriteString(fmt.Sprintf("  %s %s %s %s\n",
		dimStyle.Render(fmt.Sprintf("%d:%d", issue.Line, issue.Column)),
		style.Render(issue.Severity),
		codeStyle.Render(issue.Code),
		issue.Message,
	))
}
