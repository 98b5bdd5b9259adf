// Package adapter contains infrastructure adapters for the gitgate CLI.
package adapter

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// GitAdapter abstracts the version-control queries the pipeline depends on.
// git is always invoked as a subprocess; the pipeline never inspects .git
// directly, and never reads file content through git.
type GitAdapter interface {
	// StagedFiles returns the repository-relative paths staged for the
	// pending commit: created, copied, modified, renamed or type-changed.
	StagedFiles(ctx context.Context) ([]string, error)

	// TrackedFiles returns every path tracked in the index, used by force
	// mode to check the whole tree.
	TrackedFiles(ctx context.Context) ([]string, error)

	// CheckoutIndex materializes the staged content of every tracked file
	// under dst. Staged-but-uncommitted edits are included; unstaged
	// working-tree edits are not.
	CheckoutIndex(ctx context.Context, dst string) error
}

// LocalGitAdapter is the concrete implementation backed by the git binary.
type LocalGitAdapter struct{}

// NewLocalGitAdapter constructs a LocalGitAdapter ready to be wired into the
// gate.
func NewLocalGitAdapter() *LocalGitAdapter {
	return &LocalGitAdapter{}
}

// StagedFiles returns the paths with a staged change relative to HEAD.
func (a *LocalGitAdapter) StagedFiles(ctx context.Context) ([]string, error) {
	return a.fileList(ctx, "diff", "--cached", "--name-only", "--diff-filter=ACMRT", "HEAD")
}

// TrackedFiles returns every path in the index.
func (a *LocalGitAdapter) TrackedFiles(ctx context.Context) ([]string, error) {
	return a.fileList(ctx, "ls-files")
}

// CheckoutIndex writes the staged tree under dst. checkout-index requires
// the prefix to end with a path separator.
func (a *LocalGitAdapter) CheckoutIndex(ctx context.Context, dst string) error {
	if !strings.HasSuffix(dst, "/") {
		dst += "/"
	}

	cmd := exec.CommandContext(ctx, "git", "checkout-index", "--all", "--force", "--prefix="+dst)

	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("git checkout-index: %w: %s", err, strings.TrimSpace(string(output)))
	}

	return nil
}

func (a *LocalGitAdapter) fileList(ctx context.Context, args ...string) ([]string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)

	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}

	var files []string

	for _, line := range strings.Split(strings.TrimSpace(string(output)), "\n") {
		if line != "" {
			files = append(files, line)
		}
	}

	return files, nil
}
