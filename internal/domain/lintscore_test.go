package domain

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitgate.dev/pkg/gitgate/internal/adapter"
	m "gitgate.dev/pkg/gitgate/internal/model"
)

func TestParseRating(t *testing.T) {
	tests := []struct {
		name      string
		output    string
		wantScore float64
		wantRated bool
	}{
		{"perfect", "Your code has been rated at 10.00/10", 10.0, true},
		{"below threshold", "Your code has been rated at 9.58/10 (previous run: 10.00/10)", 9.58, true},
		{"negative", "Your code has been rated at -2.50/10", -2.5, true},
		{"empty output", "", 0, false},
		{"no rating statement", "************* Module foo\nfoo.py:1:0: C0111 missing docstring", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, rated := parseRating(tt.output)
			assert.Equal(t, tt.wantRated, rated)
			assert.InDelta(t, tt.wantScore, score, 0.001)
		})
	}
}

func lintFixture(t *testing.T) (*fakeFS, *ChangeSetResolver) {
	t.Helper()

	fs := newFakeFS()
	fs.dirs["/ws"] = []string{"docs", "notifier"}
	fs.files["/ws/notifier/__init__.py"] = ""
	fs.files["notifier/core.py"] = "import os"
	fs.files["tool.py"] = "import sys"

	git := &fakeGit{staged: []string{"notifier/core.py", "tool.py"}}

	return fs, NewChangeSetResolver(git, fs, false, nil)
}

func TestLintScore_TargetsModulesAndLooseFiles(t *testing.T) {
	fs, changes := lintFixture(t)
	runner := &fakeRunner{}
	checker := NewLintScore(runner, fs)

	outcome, err := checker.Check(context.Background(), "/ws", changes)
	require.NoError(t, err)
	assert.True(t, outcome.Passed)

	// The module is scored as one unit; the file inside it must not be
	// scored again, but the loose file must be.
	require.Len(t, runner.calls, 2)
	assert.Equal(t, []string{"notifier"}, runner.calls[0].args)
	assert.Equal(t, []string{"tool.py"}, runner.calls[1].args)
}

func TestLintScore_PerfectScorePasses(t *testing.T) {
	fs, changes := lintFixture(t)
	runner := &fakeRunner{
		run: func(_, _ string, _ []string) (adapter.ToolResult, error) {
			return adapter.ToolResult{Output: "Your code has been rated at 10.00/10"}, nil
		},
	}
	checker := NewLintScore(runner, fs)

	outcome, err := checker.Check(context.Background(), "/ws", changes)
	require.NoError(t, err)
	assert.True(t, outcome.Passed)
}

func TestLintScore_BelowThresholdFailsPerTarget(t *testing.T) {
	fs, changes := lintFixture(t)
	runner := &fakeRunner{
		run: func(_, _ string, args []string) (adapter.ToolResult, error) {
			if args[len(args)-1] == "notifier" {
				return adapter.ToolResult{Output: "Your code has been rated at 8.50/10", ExitCode: 16}, nil
			}

			return adapter.ToolResult{Output: "Your code has been rated at 10.00/10"}, nil
		},
	}
	checker := NewLintScore(runner, fs)

	outcome, err := checker.Check(context.Background(), "/ws", changes)
	require.NoError(t, err)

	assert.False(t, outcome.Passed)
	require.Len(t, outcome.Remediations, 1)
	assert.Equal(t, "notifier", outcome.Remediations[0].Target)
	assert.Equal(t, "rated 8.50/10, required 10/10", outcome.Remediations[0].Summary)
	assert.Equal(t, "pylint notifier", outcome.Remediations[0].Command)
}

func TestLintScore_NoRatingPasses(t *testing.T) {
	fs, changes := lintFixture(t)
	runner := &fakeRunner{
		run: func(_, _ string, _ []string) (adapter.ToolResult, error) {
			return adapter.ToolResult{Output: ""}, nil
		},
	}
	checker := NewLintScore(runner, fs)

	outcome, err := checker.Check(context.Background(), "/ws", changes)
	require.NoError(t, err)
	assert.True(t, outcome.Passed)
}

func TestLintScore_UsesRCFileWhenStaged(t *testing.T) {
	fs, changes := lintFixture(t)
	fs.files["/ws/.pylintrc"] = "[MASTER]"

	runner := &fakeRunner{}
	checker := NewLintScore(runner, fs)

	_, err := checker.Check(context.Background(), "/ws", changes)
	require.NoError(t, err)

	require.NotEmpty(t, runner.calls)
	assert.Equal(t, []string{"--rcfile=.pylintrc", "notifier"}, runner.calls[0].args)
}

func TestLintScore_EngineNotInvocableIsFatal(t *testing.T) {
	fs, changes := lintFixture(t)
	runner := &fakeRunner{
		run: func(_, name string, _ []string) (adapter.ToolResult, error) {
			return adapter.ToolResult{}, fmt.Errorf("running %s: %w", name, errors.New("executable not found"))
		},
	}
	checker := NewLintScore(runner, fs)

	_, err := checker.Check(context.Background(), "/ws", changes)
	require.Error(t, err)
}

func TestCoveredByModule(t *testing.T) {
	modules := []m.Path{"notifier"}

	assert.True(t, coveredByModule("notifier/core.py", modules))
	assert.False(t, coveredByModule("tool.py", modules))
	assert.False(t, coveredByModule("notifier_extras/core.py", modules))
}
