package domain

import (
	"context"
	"fmt"
	"strings"

	"gitgate.dev/pkg/gitgate/internal/adapter"
	m "gitgate.dev/pkg/gitgate/internal/model"
)

// StyleCheck runs the style checker over the full snapshot tree. Style
// conformance has to hold across the whole tree, not just touched files, so
// the target is the workspace root rather than the change set.
type StyleCheck struct {
	runner adapter.ToolRunner
	fs     adapter.WorkspaceFS
}

// NewStyleCheck constructs a StyleCheck backed by the provided runner and
// filesystem adapters.
func NewStyleCheck(runner adapter.ToolRunner, fs adapter.WorkspaceFS) *StyleCheck {
	return &StyleCheck{runner: runner, fs: fs}
}

// Name identifies the checker in output and reports.
func (c *StyleCheck) Name() string {
	return "style"
}

// Check invokes the style engine against the snapshot and passes iff it
// reports zero violations.
func (c *StyleCheck) Check(ctx context.Context, workspace m.Path, _ *ChangeSetResolver) (m.CheckOutcome, error) {
	var args []string

	// The snapshot decides whether a config exists: the staged tree is what
	// will be committed, and the config file itself may be staged.
	if c.fs.Exists(workspace.Join(styleConfigFile)) {
		args = append(args, "--config="+styleConfigFile)
	}

	args = append(args, ".")

	result, err := c.runner.Run(ctx, string(workspace), styleCommand, args...)
	if err != nil {
		return m.CheckOutcome{}, err
	}

	violations := countViolations(result.Output)

	outcome := m.CheckOutcome{Checker: c.Name(), Passed: violations == 0}
	if !outcome.Passed {
		outcome.Remediations = append(outcome.Remediations, m.Remediation{
			Target:  ".",
			Summary: fmt.Sprintf("%d style violation(s)", violations),
			Command: reproCommand(styleCommand, args),
			Output:  result.Output,
		})
	}

	return outcome, nil
}

// countViolations counts the violations in a style report: one per non-blank
// output line.
func countViolations(output string) int {
	count := 0

	for _, line := range strings.Split(output, "\n") {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}

	return count
}
