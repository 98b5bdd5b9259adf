// Package domain implements the commit-gate pipeline: change discovery and
// classification, snapshot construction, checker execution and verdict
// aggregation.
package domain

import (
	"context"
	"strings"

	"gitgate.dev/pkg/gitgate/internal/adapter"
	m "gitgate.dev/pkg/gitgate/internal/model"
)

const (
	pythonExtension = ".py"
	scriptExtension = ".js"
	shebangMarker   = "#!"
	interpreterName = "python"
)

// ChangeSetResolver resolves the files affected by the pending commit (or
// every tracked file, in force mode) and classifies them. The file list and
// its classified subsets are computed once and memoized; a resolver must not
// be reused across runs.
type ChangeSetResolver struct {
	git    adapter.GitAdapter
	fs     adapter.WorkspaceFS
	force  bool
	ignore []m.Path

	changed *[]m.Path
	python  *[]m.Path
	scripts *[]m.Path
}

// NewChangeSetResolver constructs a resolver for a single run. ignore holds
// the script-lint ignore-list prefixes, which may be empty.
func NewChangeSetResolver(git adapter.GitAdapter, fs adapter.WorkspaceFS, force bool, ignore []m.Path) *ChangeSetResolver {
	return &ChangeSetResolver{
		git:    git,
		fs:     fs,
		force:  force,
		ignore: ignore,
	}
}

// ChangedFiles returns the repository-relative paths affected by the pending
// commit, in discovery order and duplicate-free. An empty commit yields an
// empty list, not an error.
func (r *ChangeSetResolver) ChangedFiles(ctx context.Context) ([]m.Path, error) {
	if r.changed != nil {
		return *r.changed, nil
	}

	var (
		raw []string
		err error
	)

	if r.force {
		raw, err = r.git.TrackedFiles(ctx)
	} else {
		raw, err = r.git.StagedFiles(ctx)
	}

	if err != nil {
		return nil, err
	}

	files := make([]m.Path, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))

	for _, file := range raw {
		if _, ok := seen[file]; ok {
			continue
		}

		seen[file] = struct{}{}
		files = append(files, m.Path(file))
	}

	r.changed = &files

	return files, nil
}

// PythonFiles returns the changed files classified as python source. Files
// deleted in the commit no longer exist on disk and are excluded silently.
func (r *ChangeSetResolver) PythonFiles(ctx context.Context) ([]m.Path, error) {
	if r.python != nil {
		return *r.python, nil
	}

	changed, err := r.ChangedFiles(ctx)
	if err != nil {
		return nil, err
	}

	files := make([]m.Path, 0, len(changed))

	for _, file := range changed {
		if r.isPythonSource(file) {
			files = append(files, file)
		}
	}

	r.python = &files

	return files, nil
}

// ScriptFiles returns the changed files classified as script source and not
// excluded by the ignore list.
func (r *ChangeSetResolver) ScriptFiles(ctx context.Context) ([]m.Path, error) {
	if r.scripts != nil {
		return *r.scripts, nil
	}

	changed, err := r.ChangedFiles(ctx)
	if err != nil {
		return nil, err
	}

	files := make([]m.Path, 0, len(changed))

	for _, file := range changed {
		if !r.fs.Exists(file) {
			continue
		}

		if !hasScriptExtension(file) {
			continue
		}

		if matchesIgnorePrefix(file, r.ignore) {
			continue
		}

		files = append(files, file)
	}

	r.scripts = &files

	return files, nil
}

// isPythonSource reports whether path holds python source: a recognized
// extension, or an interpreter directive naming python on the first line.
// Paths that cannot be read match nothing.
func (r *ChangeSetResolver) isPythonSource(path m.Path) bool {
	if !r.fs.Exists(path) {
		return false
	}

	if strings.HasSuffix(string(path), pythonExtension) {
		return true
	}

	line, err := r.fs.FirstLine(path)
	if err != nil {
		return false
	}

	return strings.Contains(line, shebangMarker) && strings.Contains(line, interpreterName)
}

func hasScriptExtension(path m.Path) bool {
	return strings.HasSuffix(string(path), scriptExtension)
}

func matchesIgnorePrefix(path m.Path, prefixes []m.Path) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(string(path), string(prefix)) {
			return true
		}
	}

	return false
}

// LoadIgnoreList reads the script-lint ignore file: one path prefix per
// line. A missing file means an empty list; any other read failure is an
// error.
func LoadIgnoreList(fs adapter.WorkspaceFS, path m.Path) ([]m.Path, error) {
	if !fs.Exists(path) {
		return nil, nil
	}

	lines, err := fs.ReadLines(path)
	if err != nil {
		return nil, err
	}

	prefixes := make([]m.Path, 0, len(lines))
	for _, line := range lines {
		prefixes = append(prefixes, m.Path(line))
	}

	return prefixes, nil
}
