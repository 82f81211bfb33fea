package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/shellcheck-mcp/shellcheck-mcp/internal/domain"
)

// Name and Version identify the server in info results and in the MCP
// handshake.
const (
	Name    = "shellcheck-mcp"
	Version = "0.2.0"
)

// InfoService answers capability queries. It never fails: when the
// version probe errors, the shellcheck field degrades to a
// descriptive string instead.
type InfoService struct {
	cfg    domain.Config
	runner domain.ScriptRunner
}

func NewInfoService(cfg domain.Config, runner domain.ScriptRunner) *InfoService {
	return &InfoService{cfg: cfg, runner: runner}
}

// Info probes `shellcheck --version` under the info timeout and
// assembles the server capability record.
func (s *InfoService) Info(ctx context.Context) domain.ServerInfo {
	info := domain.ServerInfo{
		Server:          Name,
		Version:         Version,
		ShellcheckCmd:   s.cfg.ShellcheckPath,
		SupportedShells: domain.SupportedShells,
		MaxScriptSize:   domain.MaxScriptSize,
	}
	info.Shellcheck = s.versionText(ctx)
	return info
}

func (s *InfoService) versionText(ctx context.Context) string {
	probeCtx, cancel := context.WithTimeout(ctx, domain.InfoTimeout)
	defer cancel()

	outcomes := make(chan runOutcome, 1)
	go func() {
		res, err := s.runner.Run(probeCtx, []string{"--version"}, "")
		outcomes <- runOutcome{res: res, err: err}
	}()
	outcome := <-outcomes

	if outcome.err != nil {
		return fmt.Sprintf("not available: %v", outcome.err)
	}

	text := strings.TrimSpace(outcome.res.Stdout)
	if text == "" {
		text = strings.TrimSpace(outcome.res.Stderr)
	}
	if text == "" {
		return fmt.Sprintf("not available: %q produced no version output", s.cfg.ShellcheckPath)
	}
	return text
}
