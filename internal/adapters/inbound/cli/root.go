package cli

import "github.com/spf13/cobra"

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "shellcheck-mcp",
		Short:         "ShellCheck as an MCP server",
		Long:          "shellcheck-mcp wraps the ShellCheck linter as a set of MCP tools so AI coding assistants can lint shell scripts, and doubles as a command-line front end.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newLintCmd())
	cmd.AddCommand(newInfoCmd())
	cmd.AddCommand(newProjectCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
