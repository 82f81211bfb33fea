package cli_test

import (
	"bytes"
	"os/exec"
	"testing"

	"github.com/shellcheck-mcp/shellcheck-mcp/internal/adapters/inbound/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireShellcheck(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("shellcheck"); err != nil {
		t.Skip("shellcheck binary not installed")
	}
}

func TestLintCommand_MissingFileIsValidationError(t *testing.T) {
	// Validation fails before any subprocess launch, so this works
	// without shellcheck installed.
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"lint", "/no/such/script.sh", "--json"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), `"success": false`)
	assert.Contains(t, buf.String(), "Validation error")
	assert.Contains(t, buf.String(), "File not found")
}

func TestLintCommand_CleanScript(t *testing.T) {
	requireShellcheck(t)

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetIn(bytes.NewBufferString("#!/bin/bash\necho hello\n"))
	cmd.SetArgs([]string{"lint", "--json"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), `"success": true`)
	assert.Contains(t, buf.String(), "No issues found")
}

func TestLintCommand_FindsIssues(t *testing.T) {
	requireShellcheck(t)

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetIn(bytes.NewBufferString("#!/bin/bash\necho $unquoted\n"))
	cmd.SetArgs([]string{"lint", "--json"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "SC2086")
	assert.Contains(t, buf.String(), `"success": false`)
}

func TestInfoCommand_JSON(t *testing.T) {
	// info never fails, even when shellcheck is absent.
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"info", "--json"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), `"server": "shellcheck-mcp"`)
	assert.Contains(t, buf.String(), `"supported_shells"`)
	assert.Contains(t, buf.String(), `"max_script_size": 10000000`)
}

func TestProjectCommand_EmptyDirectory(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"project", t.TempDir(), "--json"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), `"scripts": []`)
}
