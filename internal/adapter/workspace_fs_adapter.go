package adapter

import (
	"bufio"
	"os"
	"strings"

	m "gitgate.dev/pkg/gitgate/internal/model"
)

// WorkspaceFS abstracts the filesystem operations the pipeline performs on
// the snapshot workspace and the repository tree. It hides direct `os`
// access so the gate logic can be tested without touching the disk.
type WorkspaceFS interface {
	// TempDir creates a fresh, uniquely-named temporary directory.
	TempDir(pattern string) (m.Path, error)

	// RemoveAll removes a directory and all its contents. Removing a path
	// that does not exist is not an error.
	RemoveAll(path m.Path) error

	// Exists reports whether path exists on disk.
	Exists(path m.Path) bool

	// FirstLine returns the first line of the file at path, without the
	// trailing newline.
	FirstLine(path m.Path) (string, error)

	// ReadLines returns the non-blank lines of the file at path, trimmed of
	// surrounding whitespace.
	ReadLines(path m.Path) ([]string, error)

	// SubDirs returns the names of the immediate subdirectories of root, in
	// lexical order.
	SubDirs(root m.Path) ([]string, error)
}

// LocalWorkspaceFS is the concrete implementation backed by the local
// filesystem.
type LocalWorkspaceFS struct{}

// NewLocalWorkspaceFS constructs a LocalWorkspaceFS instance ready to be
// wired into the gate.
func NewLocalWorkspaceFS() *LocalWorkspaceFS {
	return &LocalWorkspaceFS{}
}

// TempDir creates a temporary directory for the snapshot workspace.
func (a *LocalWorkspaceFS) TempDir(pattern string) (m.Path, error) {
	dir, err := os.MkdirTemp("", pattern)
	if err != nil {
		return "", err
	}

	return m.Path(dir), nil
}

// RemoveAll removes a directory and all its contents.
func (a *LocalWorkspaceFS) RemoveAll(path m.Path) error {
	return os.RemoveAll(string(path))
}

// Exists reports whether path exists.
func (a *LocalWorkspaceFS) Exists(path m.Path) bool {
	_, err := os.Stat(string(path))
	return err == nil
}

// FirstLine reads the first line of the file at path.
func (a *LocalWorkspaceFS) FirstLine(path m.Path) (string, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return "", scanner.Err()
	}

	return scanner.Text(), nil
}

// ReadLines returns the non-blank, trimmed lines of the file at path.
func (a *LocalWorkspaceFS) ReadLines(path m.Path) ([]string, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, err
	}

	var lines []string

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}

	return lines, nil
}

// SubDirs lists the immediate subdirectories of root.
func (a *LocalWorkspaceFS) SubDirs(root m.Path) ([]string, error) {
	entries, err := os.ReadDir(string(root))
	if err != nil {
		return nil, err
	}

	var dirs []string

	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, entry.Name())
		}
	}

	return dirs, nil
}
