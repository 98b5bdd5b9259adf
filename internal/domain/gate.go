package domain

import (
	"context"
	"fmt"
	"log/slog"

	"gitgate.dev/pkg/gitgate/internal/adapter"
	"gitgate.dev/pkg/gitgate/internal/controller"
	m "gitgate.dev/pkg/gitgate/internal/model"
)

// RunArgs holds the arguments for a gate run.
type RunArgs struct {
	// Force checks the entire tracked tree even with no staged changes.
	Force bool
	// ReportPath is where the run report is persisted; empty disables it.
	ReportPath m.Path
}

// Gate drives one commit-gate run end to end: change discovery, the skip
// gate, snapshot creation, checker execution, cleanup and the final verdict.
type Gate interface {
	// Run reports whether the commit may proceed. An error indicates
	// infrastructure failure (version control, snapshot materialization or
	// an engine that could not be invoked), never a checker verdict.
	Run(ctx context.Context, args RunArgs) (bool, error)
}

type gate struct {
	git      adapter.GitAdapter
	fs       adapter.WorkspaceFS
	reports  adapter.ReportStore
	ui       controller.UI
	checkers []Checker
}

// NewGate constructs a Gate wired with the three checkers in their fixed
// execution order: style, lint score, script lint.
func NewGate(git adapter.GitAdapter, fs adapter.WorkspaceFS, runner adapter.ToolRunner, reports adapter.ReportStore, ui controller.UI) Gate {
	return &gate{
		git:     git,
		fs:      fs,
		reports: reports,
		ui:      ui,
		checkers: []Checker{
			NewStyleCheck(runner, fs),
			NewLintScore(runner, fs),
			NewScriptLint(runner, fs),
		},
	}
}

func (g *gate) Run(ctx context.Context, args RunArgs) (bool, error) {
	ignore, err := LoadIgnoreList(g.fs, ScriptIgnoreFile)
	if err != nil {
		return false, fmt.Errorf("reading ignore list: %w", err)
	}

	changes := NewChangeSetResolver(g.git, g.fs, args.Force, ignore)

	python, err := changes.PythonFiles(ctx)
	if err != nil {
		return false, err
	}

	scripts, err := changes.ScriptFiles(ctx)
	if err != nil {
		return false, err
	}

	if !args.Force && len(python) == 0 && len(scripts) == 0 {
		g.ui.DisplaySkip(ctx)
		g.saveReport(args.ReportPath, m.RunReport{Skipped: true, Passed: true})

		return true, nil
	}

	snapshot := NewSnapshotWorkspace(g.git, g.fs)
	defer snapshot.Destroy()

	workspace, err := snapshot.Create(ctx)
	if err != nil {
		return false, err
	}

	report := m.RunReport{Forced: args.Force, Passed: true}

	// All checkers always run; no early abort, so the developer sees the
	// full set of problems in one pass.
	for _, checker := range g.checkers {
		slog.Debug("running checker", "checker", checker.Name())

		outcome, err := checker.Check(ctx, workspace, changes)
		if err != nil {
			return false, fmt.Errorf("%s checker: %w", checker.Name(), err)
		}

		if !outcome.Passed {
			report.Passed = false
		}

		report.Outcomes = append(report.Outcomes, outcome)
		g.ui.DisplayOutcome(ctx, outcome)
	}

	g.ui.DisplaySummary(ctx, report)
	g.ui.DisplayVerdict(ctx, report.Passed)
	g.saveReport(args.ReportPath, report)

	return report.Passed, nil
}

// saveReport persists the run report; a save failure never blocks a commit.
func (g *gate) saveReport(path m.Path, report m.RunReport) {
	if path == "" {
		return
	}

	if err := g.reports.Save(path, report); err != nil {
		slog.Warn("failed to save run report", "path", path, "error", err)
	}
}
