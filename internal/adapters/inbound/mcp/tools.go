package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/shellcheck-mcp/shellcheck-mcp/internal/domain"
)

const shellcheckToolDescription = `Run ShellCheck on a shell script to find bugs, stylistic issues, and potential errors.

Supported shells: bash, sh, dash, ksh, ash

Common error codes:
- SC1090: Can't follow non-constant source
- SC2148: Tips depend on target shell and yours is unknown
- SC2086: Double quote to prevent globbing
- SC2164: Use cd with || exit
- SC2006: Use $(...) instead of legacy backticks
- SC2162: read without -r will mangle backslashes

Use the exclude parameter to suppress specific warnings (e.g. "SC1090,SC2148").`

// registerTools registers the shellcheck tools on the given server.
func registerTools(s *server.MCPServer, svcs Services) {
	// 1. shellcheck - lint one file or inline script
	s.AddTool(
		mcplib.NewTool("shellcheck",
			mcplib.WithDescription(shellcheckToolDescription),
			mcplib.WithString("file_path",
				mcplib.Description("Path to the shell script file to check (mutually exclusive with script_content)"),
			),
			mcplib.WithString("script_content",
				mcplib.Description("Raw shell script content to check (mutually exclusive with file_path)"),
			),
			mcplib.WithString("shell",
				mcplib.Description("Shell dialect to check against"),
				mcplib.Enum(domain.SupportedShells...),
				mcplib.DefaultString(domain.DefaultShell),
			),
			mcplib.WithBoolean("check_sourced",
				mcplib.Description("Include warnings from sourced files"),
				mcplib.DefaultBool(false),
			),
			mcplib.WithBoolean("enable_all",
				mcplib.Description("Enable all optional checks"),
				mcplib.DefaultBool(false),
			),
			mcplib.WithString("exclude",
				mcplib.Description("Comma-separated warning codes to exclude (e.g. 'SC1090,SC2148')"),
			),
			mcplib.WithString("include",
				mcplib.Description("Comma-separated warning codes to report exclusively"),
			),
			mcplib.WithString("severity",
				mcplib.Description("Minimum severity of interest (advisory; issues are not filtered)"),
				mcplib.Enum(domain.SeverityError, domain.SeverityWarning, domain.SeverityInfo, domain.SeverityStyle),
			),
		),
		handleShellcheck(svcs),
	)

	// 2. shellcheck_info - linter and server capabilities
	s.AddTool(
		mcplib.NewTool("shellcheck_info",
			mcplib.WithDescription("Get information about the ShellCheck version and server capabilities"),
		),
		handleInfo(svcs),
	)

	// 3. shellcheck_project - lint every shell script under a directory
	s.AddTool(
		mcplib.NewTool("shellcheck_project",
			mcplib.WithDescription("Run ShellCheck on every shell script found under a project directory. Honors .gitignore and skips vendor directories."),
			mcplib.WithString("path",
				mcplib.Required(),
				mcplib.Description("Project root directory to scan"),
			),
			mcplib.WithString("shell",
				mcplib.Description("Shell dialect to check against"),
				mcplib.Enum(domain.SupportedShells...),
				mcplib.DefaultString(domain.DefaultShell),
			),
			mcplib.WithString("exclude",
				mcplib.Description("Comma-separated warning codes to exclude"),
			),
		),
		handleProject(svcs),
	)
}

func handleShellcheck(svcs Services) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		req := requestFromArgs(request.GetArguments())
		result := svcs.Lint.Lint(ctx, req)
		return jsonResult(result)
	}
}

func handleInfo(svcs Services) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return jsonResult(svcs.Info.Info(ctx))
	}
}

func handleProject(svcs Services) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		path, err := request.RequireString("path")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		req := requestFromArgs(request.GetArguments())
		req.FilePath = ""
		req.ScriptContent = ""

		report, err := svcs.Project.LintProject(ctx, path, req)
		if err != nil {
			return errorResult(fmt.Sprintf("project lint failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

// requestFromArgs maps raw tool arguments onto a LintRequest. Absent
// arguments keep zero values; the lint service fills defaults.
func requestFromArgs(args map[string]any) domain.LintRequest {
	req := domain.LintRequest{}
	req.FilePath, _ = args["file_path"].(string)
	req.ScriptContent, _ = args["script_content"].(string)
	req.Shell, _ = args["shell"].(string)
	req.CheckSourced, _ = args["check_sourced"].(bool)
	req.EnableAll, _ = args["enable_all"].(bool)
	req.Exclude, _ = args["exclude"].(string)
	req.Include, _ = args["include"].(string)
	req.Severity, _ = args["severity"].(string)
	return req
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
