package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// registerResources registers read-only server state as MCP
// resources.
func registerResources(s *server.MCPServer, svcs Services) {
	// shellcheck://info - linter and server capabilities
	s.AddResource(
		mcplib.NewResource(
			"shellcheck://info",
			"ShellCheck Info",
			mcplib.WithResourceDescription("ShellCheck version, supported shells, and server limits"),
			mcplib.WithMIMEType("application/json"),
		),
		handleInfoResource(svcs),
	)
}

func handleInfoResource(svcs Services) server.ResourceHandlerFunc {
	return func(ctx context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		info := svcs.Info.Info(ctx)

		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling info: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "shellcheck://info",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
