package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInfoCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show ShellCheck and server capabilities",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			info := newInfoService(cfg).Info(cmd.Context())

			if jsonOutput {
				return renderJSON(cmd, info)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", info.Server, info.Version)
			fmt.Fprintf(out, "shellcheck:       %s\n", info.Shellcheck)
			fmt.Fprintf(out, "shellcheck_cmd:   %s\n", info.ShellcheckCmd)
			fmt.Fprintf(out, "supported_shells: %v\n", info.SupportedShells)
			fmt.Fprintf(out, "max_script_size:  %d bytes\n", info.MaxScriptSize)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "emit the result as JSON")

	return cmd
}
