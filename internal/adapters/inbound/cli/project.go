package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shellcheck-mcp/shellcheck-mcp/internal/adapters/outbound/tui"
	"github.com/shellcheck-mcp/shellcheck-mcp/internal/domain"
)

func newProjectCmd() *cobra.Command {
	var (
		shell      string
		exclude    string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "project [path]",
		Short: "Lint every shell script in a project",
		Long:  "Scan a directory for shell scripts (honoring .gitignore) and run ShellCheck on each of them.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			req := domain.LintRequest{Shell: shell, Exclude: exclude}
			report, err := newProjectService(cfg).LintProject(cmd.Context(), path, req)
			if err != nil {
				return fmt.Errorf("project lint failed: %w", err)
			}

			if jsonOutput {
				return renderJSON(cmd, report)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderProject(report))
			if report.TotalIssues > 0 || report.FailedRuns > 0 {
				return fmt.Errorf("found %d issue(s) in %d script(s)", report.TotalIssues, len(report.Scripts))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&shell, "shell", "s", "", "shell dialect (bash, sh, dash, ksh, ash)")
	cmd.Flags().StringVarP(&exclude, "exclude", "e", "", "comma-separated codes to exclude")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "emit the report as JSON")

	return cmd
}
