package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// rawIssue mirrors one element of shellcheck's -f json output. Code is
// decoded leniently because shellcheck emits a bare number while other
// producers of the same schema emit "SC"-prefixed strings.
type rawIssue struct {
	File    string          `json:"file"`
	Line    json.RawMessage `json:"line"`
	Column  json.RawMessage `json:"column"`
	Level   string          `json:"level"`
	Code    json.RawMessage `json:"code"`
	Message string          `json:"message"`
}

// Normalize turns raw linter output into a LintResult. Success is
// strictly exitCode == 0; a non-zero exit with parsed issues means
// "issues found", a non-zero exit with an empty issue list and a set
// Error means the tool itself failed.
func Normalize(stdout, stderr string, exitCode int) LintResult {
	result := LintResult{
		Success:  exitCode == 0,
		Results:  []LintIssue{},
		ExitCode: &exitCode,
	}

	trimmed := strings.TrimSpace(stdout)
	if trimmed != "" {
		var raw []rawIssue
		if err := json.Unmarshal([]byte(trimmed), &raw); err != nil {
			result.Success = false
			result.Error = fmt.Sprintf("Failed to parse shellcheck output: %v", err)
			return result
		}
		for _, ri := range raw {
			result.Results = append(result.Results, LintIssue{
				Line:     numberToInt(ri.Line),
				Column:   numberToInt(ri.Column),
				Code:     codeString(ri.Code),
				Message:  ri.Message,
				Severity: normalizeSeverity(ri.Level),
			})
		}
	}

	if len(result.Results) == 0 {
		result.Message = "No issues found"
	} else {
		result.Message = fmt.Sprintf("Found %d issue(s)", len(result.Results))
	}
	return result
}

// numberToInt reads a line/column value, defaulting to 0 when the
// field is absent, negative, or not a number.
func numberToInt(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}
	var v int64
	if err := json.Unmarshal(raw, &v); err != nil || v < 0 {
		return 0
	}
	return int(v)
}

// codeString renders the issue code as an "SC"-prefixed string
// regardless of whether the producer emitted 2086 or "SC2086".
func codeString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n int64
	if err := json.Unmarshal(raw, &n); err == nil {
		return fmt.Sprintf("SC%d", n)
	}
	return ""
}

func normalizeSeverity(level string) string {
	switch level {
	case SeverityError, SeverityWarning, SeverityInfo, SeverityStyle:
		return level
	default:
		return SeverityWarning
	}
}
