package domain

import (
	"fmt"
	"os"
)

// ValidationError reports the first request field that failed
// validation, with a message suitable for the caller.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("Validation error (%s): %s", e.Field, e.Message)
}

// ValidateRequest checks a LintRequest before any subprocess is
// started. Rules run in order and the first failure wins. The only
// side effect is a stat of FilePath.
func ValidateRequest(r LintRequest) *ValidationError {
	hasFile := r.FilePath != ""
	hasContent := r.ScriptContent != ""

	if !hasFile && !hasContent {
		return &ValidationError{
			Field:   "file_path",
			Message: "either file_path or script_content must be provided",
		}
	}
	if hasFile && hasContent {
		return &ValidationError{
			Field:   "file_path",
			Message: "file_path and script_content are mutually exclusive",
		}
	}

	if hasFile {
		fi, err := os.Stat(r.FilePath)
		if err != nil {
			return &ValidationError{
				Field:   "file_path",
				Message: fmt.Sprintf("File not found: %s", r.FilePath),
			}
		}
		if !fi.Mode().IsRegular() {
			return &ValidationError{
				Field:   "file_path",
				Message: fmt.Sprintf("Not a regular file: %s", r.FilePath),
			}
		}
		if fi.Size() > MaxScriptSize {
			return &ValidationError{
				Field:   "file_path",
				Message: fmt.Sprintf("File exceeds maximum size of %d bytes", MaxScriptSize),
			}
		}
	}

	if hasContent && int64(len(r.ScriptContent)) > MaxScriptSize {
		return &ValidationError{
			Field:   "script_content",
			Message: fmt.Sprintf("Script exceeds maximum size of %d bytes", MaxScriptSize),
		}
	}

	if r.Shell != "" && !IsSupportedShell(r.Shell) {
		return &ValidationError{
			Field:   "shell",
			Message: fmt.Sprintf("Unsupported shell %q (supported: %v)", r.Shell, SupportedShells),
		}
	}

	return nil
}
