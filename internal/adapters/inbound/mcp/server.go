package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/shellcheck-mcp/shellcheck-mcp/internal/application"
)

// Services bundles the operations exposed over MCP.
type Services struct {
	Lint    *application.LintService
	Info    *application.InfoService
	Project *application.ProjectService
}

// NewShellcheckMCPServer creates an MCP server with the shellcheck
// tools and resources registered.
func NewShellcheckMCPServer(svcs Services) *server.MCPServer {
	s := server.NewMCPServer(
		application.Name,
		application.Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, svcs)
	registerResources(s, svcs)

	return s
}
