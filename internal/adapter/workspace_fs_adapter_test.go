package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "gitgate.dev/pkg/gitgate/internal/model"
)

func TestLocalWorkspaceFS_TempDirAndRemoveAll(t *testing.T) {
	fs := NewLocalWorkspaceFS()

	dir, err := fs.TempDir("gitgate-test-")
	require.NoError(t, err)
	assert.True(t, fs.Exists(dir))

	require.NoError(t, fs.RemoveAll(dir))
	assert.False(t, fs.Exists(dir))

	// Removing an already-removed directory is not an error.
	require.NoError(t, fs.RemoveAll(dir))
}

func TestLocalWorkspaceFS_FirstLine(t *testing.T) {
	fs := NewLocalWorkspaceFS()
	dir := t.TempDir()

	path := filepath.Join(dir, "runner")
	require.NoError(t, os.WriteFile(path, []byte("#!/usr/bin/env python3\nprint('hi')\n"), 0o600))

	line, err := fs.FirstLine(m.Path(path))
	require.NoError(t, err)
	assert.Equal(t, "#!/usr/bin/env python3", line)
}

func TestLocalWorkspaceFS_FirstLine_EmptyFile(t *testing.T) {
	fs := NewLocalWorkspaceFS()
	dir := t.TempDir()

	path := filepath.Join(dir, "empty")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	line, err := fs.FirstLine(m.Path(path))
	require.NoError(t, err)
	assert.Empty(t, line)
}

func TestLocalWorkspaceFS_ReadLines(t *testing.T) {
	fs := NewLocalWorkspaceFS()
	dir := t.TempDir()

	path := filepath.Join(dir, ".jshintignore")
	require.NoError(t, os.WriteFile(path, []byte("vendor/\n\n  node_modules/  \n"), 0o600))

	lines, err := fs.ReadLines(m.Path(path))
	require.NoError(t, err)
	assert.Equal(t, []string{"vendor/", "node_modules/"}, lines)
}

func TestLocalWorkspaceFS_SubDirs(t *testing.T) {
	fs := NewLocalWorkspaceFS()
	dir := t.TempDir()

	require.NoError(t, os.Mkdir(filepath.Join(dir, "notifier"), 0o750))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "docs"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tool.py"), []byte("import os\n"), 0o600))

	dirs, err := fs.SubDirs(m.Path(dir))
	require.NoError(t, err)
	assert.Equal(t, []string{"docs", "notifier"}, dirs)
}
