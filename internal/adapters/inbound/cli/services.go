package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shellcheck-mcp/shellcheck-mcp/internal/adapters/outbound/config"
	"github.com/shellcheck-mcp/shellcheck-mcp/internal/adapters/outbound/gitinfo"
	"github.com/shellcheck-mcp/shellcheck-mcp/internal/adapters/outbound/scanner"
	"github.com/shellcheck-mcp/shellcheck-mcp/internal/adapters/outbound/shellcheck"
	"github.com/shellcheck-mcp/shellcheck-mcp/internal/application"
	"github.com/shellcheck-mcp/shellcheck-mcp/internal/domain"
)

// loadConfig builds the process configuration from the working
// directory's config file and the environment, and wires logging.
func loadConfig() (domain.Config, error) {
	cfg, err := config.New().Load(".")
	if err != nil {
		return domain.Config{}, err
	}
	config.SetupLogging(cfg)
	return cfg, nil
}

func newLintService(cfg domain.Config) *application.LintService {
	return application.NewLintService(cfg, shellcheck.New(cfg))
}

func newInfoService(cfg domain.Config) *application.InfoService {
	return application.NewInfoService(cfg, shellcheck.New(cfg))
}

func newProjectService(cfg domain.Config) *application.ProjectService {
	return application.NewProjectService(newLintService(cfg), scanner.New(), gitinfo.New())
}

// renderJSON writes v as indented JSON to the command's stdout.
func renderJSON(cmd *cobra.Command, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling result: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
