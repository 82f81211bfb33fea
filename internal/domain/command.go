package domain

// StdinMarker tells shellcheck to read the script from standard
// input.
const StdinMarker = "-"

// BuildArgs maps a validated request onto a shellcheck argument
// vector. The mapping is deterministic and the output format is
// always forced to JSON, because normalization depends on it.
func BuildArgs(r LintRequest) []string {
	var args []string

	if r.Shell != "" {
		args = append(args, "-s", r.Shell)
	}
	if r.CheckSourced {
		args = append(args, "-a")
	}
	if r.EnableAll {
		args = append(args, "-o", "all")
	}
	if r.Exclude != "" {
		args = append(args, "-e", r.Exclude)
	}
	if r.Include != "" {
		args = append(args, "-i", r.Include)
	}

	args = append(args, "-f", "json")

	if r.HasFile() {
		args = append(args, r.FilePath)
	} else {
		args = append(args, StdinMarker)
	}
	return args
}
