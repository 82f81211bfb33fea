package cli

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/shellcheck-mcp/shellcheck-mcp/internal/adapters/inbound/mcp"
	"github.com/shellcheck-mcp/shellcheck-mcp/internal/adapters/outbound/shellcheck"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the shellcheck MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the shellcheck MCP server (stdio)",
		Long:  "Start the shellcheck MCP server using stdio transport. This lets AI coding assistants lint shell scripts and query linter capabilities.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			// The server still starts without the binary: lint calls
			// then report the tool as missing.
			if runner := shellcheck.New(cfg); !runner.Available() {
				slog.Warn("shellcheck binary not found, lint requests will fail",
					slog.String("command", runner.CommandPath()))
			}

			svcs := mcpadapter.Services{
				Lint:    newLintService(cfg),
				Info:    newInfoService(cfg),
				Project: newProjectService(cfg),
			}
			s := mcpadapter.NewShellcheckMCPServer(svcs)
			return server.ServeStdio(s)
		},
	}
}
