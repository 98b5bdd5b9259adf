package domain

import (
	"context"
	"fmt"

	"gitgate.dev/pkg/gitgate/internal/adapter"
	m "gitgate.dev/pkg/gitgate/internal/model"
)

// ScriptLint runs the script linter once over the whole changed-script list.
// The paths are passed repository-relative with the snapshot root as working
// directory, so the engine resolves them against staged content. Any
// non-zero exit status is a hard fail; the output is not parsed.
type ScriptLint struct {
	runner adapter.ToolRunner
	fs     adapter.WorkspaceFS
}

// NewScriptLint constructs a ScriptLint backed by the provided runner and
// filesystem adapters.
func NewScriptLint(runner adapter.ToolRunner, fs adapter.WorkspaceFS) *ScriptLint {
	return &ScriptLint{runner: runner, fs: fs}
}

// Name identifies the checker in output and reports.
func (c *ScriptLint) Name() string {
	return "script"
}

// Check invokes the script engine with every changed script file as an
// argument. An empty file list passes without invoking the engine at all:
// with no arguments the engine would read stdin instead.
func (c *ScriptLint) Check(ctx context.Context, workspace m.Path, changes *ChangeSetResolver) (m.CheckOutcome, error) {
	files, err := changes.ScriptFiles(ctx)
	if err != nil {
		return m.CheckOutcome{}, err
	}

	outcome := m.CheckOutcome{Checker: c.Name(), Passed: true}

	if len(files) == 0 {
		return outcome, nil
	}

	var args []string

	if c.fs.Exists(workspace.Join(scriptConfigFile)) {
		args = append(args, "--config="+scriptConfigFile)
	}

	for _, file := range files {
		args = append(args, string(file))
	}

	result, err := c.runner.Run(ctx, string(workspace), scriptCommand, args...)
	if err != nil {
		return m.CheckOutcome{}, err
	}

	if result.ExitCode == 0 {
		return outcome, nil
	}

	outcome.Passed = false
	outcome.Remediations = append(outcome.Remediations, m.Remediation{
		Target:  fmt.Sprintf("%d script file(s)", len(files)),
		Summary: fmt.Sprintf("exit status %d", result.ExitCode),
		Command: reproCommand(scriptCommand, args),
		Output:  result.Output,
	})

	return outcome, nil
}
