package domain

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gitgate.dev/pkg/gitgate/internal/adapter"
	m "gitgate.dev/pkg/gitgate/internal/model"
)

// lintThreshold is the rating a target must reach; only a perfect score
// passes.
const lintThreshold = 10.0

// ratingPattern matches the rating statement in a lint report, e.g.
// "Your code has been rated at 9.58/10".
var ratingPattern = regexp.MustCompile(`rated at (-?[0-9.]+)/10`)

// LintScore scores every module in the snapshot plus every changed python
// file not covered by one of those modules. A target passes when the engine
// produces no rating at all (nothing to score) or a perfect rating.
type LintScore struct {
	runner adapter.ToolRunner
	fs     adapter.WorkspaceFS
}

// NewLintScore constructs a LintScore backed by the provided runner and
// filesystem adapters.
func NewLintScore(runner adapter.ToolRunner, fs adapter.WorkspaceFS) *LintScore {
	return &LintScore{runner: runner, fs: fs}
}

// Name identifies the checker in output and reports.
func (c *LintScore) Name() string {
	return "lint"
}

// Check scores each target against the snapshot copy and passes iff every
// target passes.
func (c *LintScore) Check(ctx context.Context, workspace m.Path, changes *ChangeSetResolver) (m.CheckOutcome, error) {
	targets, err := c.targets(ctx, workspace, changes)
	if err != nil {
		return m.CheckOutcome{}, err
	}

	var rcArgs []string
	if c.fs.Exists(workspace.Join(lintRCFile)) {
		rcArgs = append(rcArgs, "--rcfile="+lintRCFile)
	}

	outcome := m.CheckOutcome{Checker: c.Name(), Passed: true}

	for _, target := range targets {
		args := append(append([]string{}, rcArgs...), string(target))

		result, err := c.runner.Run(ctx, string(workspace), lintCommand, args...)
		if err != nil {
			return m.CheckOutcome{}, err
		}

		score, rated := parseRating(result.Output)
		if !rated || score >= lintThreshold {
			continue
		}

		outcome.Passed = false
		outcome.Remediations = append(outcome.Remediations, m.Remediation{
			Target:  string(target),
			Summary: fmt.Sprintf("rated %.2f/10, required %.0f/10", score, lintThreshold),
			Command: reproCommand(lintCommand, args),
			Output:  result.Output,
		})
	}

	return outcome, nil
}

// targets is the union of every snapshot module and every changed python
// file not inside one of those modules (loose scripts).
func (c *LintScore) targets(ctx context.Context, workspace m.Path, changes *ChangeSetResolver) ([]m.Path, error) {
	modules, err := Modules(c.fs, workspace)
	if err != nil {
		return nil, err
	}

	python, err := changes.PythonFiles(ctx)
	if err != nil {
		return nil, err
	}

	targets := append([]m.Path{}, modules...)

	for _, file := range python {
		if coveredByModule(file, modules) {
			continue
		}

		targets = append(targets, file)
	}

	return targets, nil
}

// coveredByModule reports whether the file's leading path component names
// one of the modules.
func coveredByModule(file m.Path, modules []m.Path) bool {
	head, _, _ := strings.Cut(string(file), "/")

	for _, module := range modules {
		if head == string(module) {
			return true
		}
	}

	return false
}

// parseRating extracts the rating from a lint report. Absence of a rating
// statement (e.g. empty output) means "no rating produced", not a failure.
func parseRating(output string) (float64, bool) {
	matches := ratingPattern.FindStringSubmatch(output)
	if len(matches) != 2 {
		return 0, false
	}

	score, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return 0, false
	}

	return score, true
}
