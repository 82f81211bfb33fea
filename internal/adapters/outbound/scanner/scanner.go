package scanner

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
	"github.com/shellcheck-mcp/shellcheck-mcp/internal/domain"
)

var skipDirs = map[string]bool{
	".git":         true,
	"vendor":       true,
	"node_modules": true,
	"dist":         true,
	"testdata":     true,
}

var scriptExtensions = map[string]bool{
	".sh":   true,
	".bash": true,
	".ksh":  true,
	".dash": true,
}

// ScriptScanner implements domain.ScriptScanner by walking the
// filesystem. Scripts are recognized by extension or by a shell
// shebang; paths matching the project's .gitignore are skipped.
type ScriptScanner struct{}

func New() *ScriptScanner {
	return &ScriptScanner{}
}

// Scan returns shell-script paths relative to rootPath, in walk
// order.
func (s *ScriptScanner) Scan(rootPath string) ([]string, error) {
	absPath, err := filepath.Abs(rootPath)
	if err != nil {
		return nil, err
	}

	matcher := loadIgnoreMatcher(absPath)

	var scripts []string
	err = filepath.WalkDir(absPath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relPath, _ := filepath.Rel(absPath, path)
		split := strings.Split(relPath, string(filepath.Separator))

		if d.IsDir() {
			if path == absPath {
				return nil
			}
			if skipDirs[d.Name()] || (matcher != nil && matcher.Match(split, true)) {
				return filepath.SkipDir
			}
			return nil
		}

		if matcher != nil && matcher.Match(split, false) {
			return nil
		}
		if isShellScript(path, d.Name()) {
			scripts = append(scripts, relPath)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return scripts, nil
}

// loadIgnoreMatcher builds a matcher from the root .gitignore, if
// there is one.
func loadIgnoreMatcher(rootPath string) gitignore.Matcher {
	f, err := os.Open(filepath.Join(rootPath, ".gitignore"))
	if err != nil {
		return nil
	}
	defer f.Close()

	var patterns []gitignore.Pattern
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, gitignore.ParsePattern(line, nil))
	}
	if len(patterns) == 0 {
		return nil
	}
	return gitignore.NewMatcher(patterns)
}

// isShellScript recognizes scripts by extension first, then by
// shebang for extensionless files.
func isShellScript(path, name string) bool {
	if scriptExtensions[filepath.Ext(name)] {
		return true
	}
	if strings.Contains(name, ".") {
		return false
	}
	return hasShellShebang(path)
}

func hasShellShebang(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	if !sc.Scan() {
		return false
	}
	line := sc.Text()
	if !strings.HasPrefix(line, "#!") {
		return false
	}
	for _, shell := range domain.SupportedShells {
		if strings.HasSuffix(line, "/"+shell) || strings.HasSuffix(line, " "+shell) {
			return true
		}
	}
	return false
}
