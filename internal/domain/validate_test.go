package domain_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shellcheck-mcp/shellcheck-mcp/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.sh")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestValidateRequest_MissingSource(t *testing.T) {
	verr := domain.ValidateRequest(domain.LintRequest{Shell: "bash"})
	require.NotNil(t, verr)
	assert.Contains(t, verr.Message, "either file_path or script_content")
}

func TestValidateRequest_ConflictingSource(t *testing.T) {
	path := writeScript(t, "echo hi\n")
	verr := domain.ValidateRequest(domain.LintRequest{
		FilePath:      path,
		ScriptContent: "echo hi\n",
		Shell:         "bash",
	})
	require.NotNil(t, verr)
	assert.Contains(t, verr.Message, "mutually exclusive")
}

func TestValidateRequest_FileNotFound(t *testing.T) {
	verr := domain.ValidateRequest(domain.LintRequest{
		FilePath: "/no/such/script.sh",
		Shell:    "bash",
	})
	require.NotNil(t, verr)
	assert.Contains(t, verr.Message, "File not found")
	assert.Contains(t, verr.Message, "/no/such/script.sh")
}

func TestValidateRequest_NotARegularFile(t *testing.T) {
	dir := t.TempDir()
	verr := domain.ValidateRequest(domain.LintRequest{FilePath: dir, Shell: "bash"})
	require.NotNil(t, verr)
	assert.Contains(t, verr.Message, "Not a regular file")
}

func TestValidateRequest_FileTooLarge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "huge.sh")
	f, err := os.Create(path)
	require.NoError(t, err)
	// A sparse file is enough: only the stat size matters.
	require.NoError(t, f.Truncate(domain.MaxScriptSize+1))
	require.NoError(t, f.Close())

	verr := domain.ValidateRequest(domain.LintRequest{FilePath: path, Shell: "bash"})
	require.NotNil(t, verr)
	assert.Equal(t, "file_path", verr.Field)
	assert.Contains(t, verr.Message, "maximum size")
}

func TestValidateRequest_InlineTooLarge(t *testing.T) {
	content := strings.Repeat("a", int(domain.MaxScriptSize)+1)
	verr := domain.ValidateRequest(domain.LintRequest{ScriptContent: content, Shell: "bash"})
	require.NotNil(t, verr)
	assert.Equal(t, "script_content", verr.Field)
	assert.Contains(t, verr.Message, "maximum size")
}

func TestValidateRequest_InlineExactlyAtBoundary(t *testing.T) {
	content := strings.Repeat("a", int(domain.MaxScriptSize))
	verr := domain.ValidateRequest(domain.LintRequest{ScriptContent: content, Shell: "bash"})
	assert.Nil(t, verr)
}

func TestValidateRequest_UnsupportedShell(t *testing.T) {
	verr := domain.ValidateRequest(domain.LintRequest{
		ScriptContent: "echo hi\n",
		Shell:         "fish",
	})
	require.NotNil(t, verr)
	assert.Equal(t, "shell", verr.Field)
	assert.Contains(t, verr.Message, "fish")
	for _, shell := range domain.SupportedShells {
		assert.Contains(t, verr.Message, shell)
	}
}

func TestValidateRequest_ValidFile(t *testing.T) {
	path := writeScript(t, "#!/bin/bash\necho hi\n")
	assert.Nil(t, domain.ValidateRequest(domain.LintRequest{FilePath: path, Shell: "bash"}))
}

func TestValidateRequest_ValidInlineAllShells(t *testing.T) {
	for _, shell := range domain.SupportedShells {
		verr := domain.ValidateRequest(domain.LintRequest{
			ScriptContent: "echo hi\n",
			Shell:         shell,
		})
		assert.Nil(t, verr, "shell %q should be accepted", shell)
	}
}

func TestValidationError_Error(t *testing.T) {
	verr := &domain.ValidationError{Field: "shell", Message: "bad"}
	assert.Equal(t, "Validation error (shell): bad", verr.Error())
}
