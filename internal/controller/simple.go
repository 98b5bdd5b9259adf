package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "gitgate.dev/pkg/gitgate/internal/model"
)

const (
	passLabel = "pass"
	failLabel = "FAIL"

	passVerdict = "looks good."
	failVerdict = "commit checks failed"
	skipMessage = "no python or script changes staged, nothing to check"
)

var (
	passStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	failStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
)

// SimpleUI implements UI using cobra Command's output stream. Styling is
// applied only when the stream is a terminal.
type SimpleUI struct {
	cmd    *cobra.Command
	styled bool
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command, styled bool) *SimpleUI {
	return &SimpleUI{cmd: cmd, styled: styled}
}

// DisplaySkip announces the skip path.
func (s *SimpleUI) DisplaySkip(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s\n", skipMessage)
}

// DisplayOutcome prints one remediation block per failing target.
func (s *SimpleUI) DisplayOutcome(ctx context.Context, outcome m.CheckOutcome) {
	if err := ctx.Err(); err != nil {
		return
	}

	if outcome.Passed {
		return
	}

	for _, remediation := range outcome.Remediations {
		s.printf("\n%s check failed: %s\n", outcome.Checker, remediation.Target)
		s.printf("  %s\n", remediation.Summary)
		s.printf("  re-run: %s\n", remediation.Command)

		output := strings.TrimRight(remediation.Output, "\n")
		if output != "" {
			s.printf("%s\n", indent(output, "  "))
		}
	}
}

// DisplaySummary renders the per-checker result table.
func (s *SimpleUI) DisplaySummary(ctx context.Context, report m.RunReport) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("\n%s", renderSummaryTable(report))
}

// DisplayVerdict prints the final one-line verdict.
func (s *SimpleUI) DisplayVerdict(ctx context.Context, passed bool) {
	if err := ctx.Err(); err != nil {
		return
	}

	verdict := passVerdict
	style := passStyle

	if !passed {
		verdict = failVerdict
		style = failStyle
	}

	if s.styled {
		verdict = style.Render(verdict)
	}

	s.printf("%s\n", verdict)
}

// DisplayReport prints a previously saved run report.
func (s *SimpleUI) DisplayReport(ctx context.Context, report m.RunReport) {
	if err := ctx.Err(); err != nil {
		return
	}

	if report.Skipped {
		s.printf("last run: skipped (%s)\n", skipMessage)
		return
	}

	for _, outcome := range report.Outcomes {
		s.DisplayOutcome(ctx, outcome)
	}

	s.DisplaySummary(ctx, report)
	s.DisplayVerdict(ctx, report.Passed)
}

func renderSummaryTable(report m.RunReport) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Checker", "Result", "Failing Targets"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER})

	for _, outcome := range report.Outcomes {
		result := passLabel
		if !outcome.Passed {
			result = failLabel
		}

		table.Append([]string{outcome.Checker, result, fmt.Sprintf("%d", len(outcome.Remediations))})
	}

	table.Render()

	return tableBuffer.String()
}

func indent(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}

	return strings.Join(lines, "\n")
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
