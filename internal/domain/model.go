package domain

// Default dialect assumed when a request does not name one.
const DefaultShell = "bash"

// Shells shellcheck-mcp is willing to hand to the linter.
var SupportedShells = []string{"bash", "sh", "dash", "ksh", "ash"}

// Severity levels as emitted by shellcheck, strongest first.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
	SeverityStyle   = "style"
)

// LintRequest describes a single linting invocation. Exactly one of
// FilePath and ScriptContent must be set.
type LintRequest struct {
	FilePath      string `json:"file_path,omitempty"`
	ScriptContent string `json:"script_content,omitempty"`
	Shell         string `json:"shell"`
	CheckSourced  bool   `json:"check_sourced"`
	EnableAll     bool   `json:"enable_all"`
	Exclude       string `json:"exclude,omitempty"`
	Include       string `json:"include,omitempty"`
	// Severity is advisory metadata for the caller; it does not filter
	// the returned issues.
	Severity string `json:"severity,omitempty"`
}

// HasFile reports whether the request points at a file on disk rather
// than inline script text.
func (r LintRequest) HasFile() bool { return r.FilePath != "" }

// LintIssue is one diagnostic finding from the linter.
type LintIssue struct {
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

// LintResult is the outcome of one lint invocation. Success is true
// only when the linter exited 0 and its output parsed cleanly; callers
// separate "issues found" from "tool failed" by inspecting Results
// against Error.
type LintResult struct {
	Success  bool        `json:"success"`
	Message  string      `json:"message,omitempty"`
	Results  []LintIssue `json:"results"`
	ExitCode *int        `json:"exit_code,omitempty"`
	Error    string      `json:"error,omitempty"`
}

// ErrorResult builds a failed LintResult with an empty issue list.
func ErrorResult(msg string) LintResult {
	return LintResult{Success: false, Results: []LintIssue{}, Error: msg}
}

// ServerInfo describes the server and the wrapped linter.
type ServerInfo struct {
	Server          string   `json:"server"`
	Version         string   `json:"version"`
	Shellcheck      string   `json:"shellcheck"`
	ShellcheckCmd   string   `json:"shellcheck_cmd"`
	SupportedShells []string `json:"supported_shells"`
	MaxScriptSize   int64    `json:"max_script_size"`
}

// ScriptLintResult pairs a discovered script with its lint outcome.
type ScriptLintResult struct {
	File   string     `json:"file"`
	Result LintResult `json:"result"`
}

// ProjectReport aggregates lint results for every shell script found
// under a project root.
type ProjectReport struct {
	RootPath    string             `json:"root_path"`
	CommitHash  string             `json:"commit_hash,omitempty"`
	Scripts     []ScriptLintResult `json:"scripts"`
	TotalIssues int                `json:"total_issues"`
	FailedRuns  int                `json:"failed_runs"`
}
