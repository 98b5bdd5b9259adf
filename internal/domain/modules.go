package domain

import (
	"gitgate.dev/pkg/gitgate/internal/adapter"
	m "gitgate.dev/pkg/gitgate/internal/model"
)

// packageMarker is the file that marks a directory as a python package.
const packageMarker = "__init__.py"

// Modules returns the top-level directories under root that contain a
// package marker file. Each module is lint-scored as one unit, regardless of
// which files inside it changed.
func Modules(fs adapter.WorkspaceFS, root m.Path) ([]m.Path, error) {
	dirs, err := fs.SubDirs(root)
	if err != nil {
		return nil, err
	}

	var modules []m.Path

	for _, dir := range dirs {
		if fs.Exists(root.Join(dir, packageMarker)) {
			modules = append(modules, m.Path(dir))
		}
	}

	return modules, nil
}
