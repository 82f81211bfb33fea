package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/shellcheck-mcp/shellcheck-mcp/internal/adapters/outbound/tui"
	"github.com/shellcheck-mcp/shellcheck-mcp/internal/domain"
)

func newLintCmd() *cobra.Command {
	var (
		shell        string
		checkSourced bool
		enableAll    bool
		exclude      string
		include      string
		jsonOutput   bool
	)

	cmd := &cobra.Command{
		Use:   "lint [file]",
		Short: "Lint a shell script",
		Long:  "Run ShellCheck on a file, or on standard input when no file is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			req := domain.LintRequest{
				Shell:        shell,
				CheckSourced: checkSourced,
				EnableAll:    enableAll,
				Exclude:      exclude,
				Include:      include,
			}

			target := "<stdin>"
			if len(args) > 0 {
				req.FilePath = args[0]
				target = args[0]
			} else {
				content, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("reading stdin: %w", err)
				}
				req.ScriptContent = string(content)
			}

			result := newLintService(cfg).Lint(cmd.Context(), req)

			if jsonOutput {
				return renderJSON(cmd, result)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderResult(target, result))
			if !result.Success {
				msg := result.Error
				if msg == "" {
					msg = result.Message
				}
				return fmt.Errorf("lint failed: %s", msg)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&shell, "shell", "s", "", "shell dialect (bash, sh, dash, ksh, ash)")
	cmd.Flags().BoolVarP(&checkSourced, "check-sourced", "a", false, "include warnings from sourced files")
	cmd.Flags().BoolVar(&enableAll, "enable-all", false, "enable all optional checks")
	cmd.Flags().StringVarP(&exclude, "exclude", "e", "", "comma-separated codes to exclude")
	cmd.Flags().StringVarP(&include, "include", "i", "", "comma-separated codes to report exclusively")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "emit the result as JSON")

	return cmd
}
