// Package controller provides output adapters for presenting gate results.
package controller

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"

	m "gitgate.dev/pkg/gitgate/internal/model"
)

// UI defines the interface for presenting gate progress and verdicts.
// Implementations can use different output methods (plain text, styled
// terminal output, etc).
type UI interface {
	// DisplaySkip announces that no relevant files changed and the gate was
	// skipped.
	DisplaySkip(ctx context.Context)

	// DisplayOutcome prints the remediation blocks of a single checker
	// outcome. Passing outcomes produce no output.
	DisplayOutcome(ctx context.Context, outcome m.CheckOutcome)

	// DisplaySummary prints the per-checker summary table for a run.
	DisplaySummary(ctx context.Context, report m.RunReport)

	// DisplayVerdict prints the final one-line verdict.
	DisplayVerdict(ctx context.Context, passed bool)

	// DisplayReport prints a previously saved run report.
	DisplayReport(ctx context.Context, report m.RunReport)
}

// IsTTY reports whether w is attached to a terminal. Hook output is often
// captured by git GUIs, in which case styling is disabled.
func IsTTY(w *os.File) bool {
	return isatty.IsTerminal(w.Fd()) || isatty.IsCygwinTerminal(w.Fd())
}
