package domain

import (
	"context"
	"fmt"
	"log/slog"

	"gitgate.dev/pkg/gitgate/internal/adapter"
	m "gitgate.dev/pkg/gitgate/internal/model"
)

const snapshotDirPattern = "gitgate-snapshot-"

// SnapshotWorkspace owns the temporary directory holding a byte-exact copy
// of the staged tree. It is created once per run, read by every checker and
// destroyed exactly once when the run ends; checkers never write to it.
type SnapshotWorkspace struct {
	git  adapter.GitAdapter
	fs   adapter.WorkspaceFS
	root m.Path
}

// NewSnapshotWorkspace constructs an unmaterialized workspace.
func NewSnapshotWorkspace(git adapter.GitAdapter, fs adapter.WorkspaceFS) *SnapshotWorkspace {
	return &SnapshotWorkspace{git: git, fs: fs}
}

// Create materializes the staged tree into a fresh temporary directory and
// returns its root. Staged-but-uncommitted edits are included; unstaged
// working-tree edits are not.
func (w *SnapshotWorkspace) Create(ctx context.Context) (m.Path, error) {
	if w.root != "" {
		return "", fmt.Errorf("snapshot workspace already created at %s", w.root)
	}

	dir, err := w.fs.TempDir(snapshotDirPattern)
	if err != nil {
		return "", fmt.Errorf("creating snapshot directory: %w", err)
	}

	// Record the root before materializing so a failed checkout is still
	// cleaned up by Destroy.
	w.root = dir

	if err := w.git.CheckoutIndex(ctx, string(dir)); err != nil {
		return "", fmt.Errorf("materializing staged tree: %w", err)
	}

	slog.Debug("snapshot workspace created", "root", dir)

	return dir, nil
}

// Destroy removes the workspace. It is idempotent and safe to call when
// Create failed or never ran.
func (w *SnapshotWorkspace) Destroy() {
	if w.root == "" {
		return
	}

	if err := w.fs.RemoveAll(w.root); err != nil {
		slog.Warn("failed to remove snapshot workspace", "root", w.root, "error", err)
	}

	w.root = ""
}
