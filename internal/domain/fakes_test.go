package domain

import (
	"context"
	"strings"

	"gitgate.dev/pkg/gitgate/internal/adapter"
	m "gitgate.dev/pkg/gitgate/internal/model"
)

// Hand-written fakes for the adapter ports so the pipeline can be exercised
// without git, the checker engines or the disk.

type fakeGit struct {
	staged  []string
	tracked []string

	stagedErr   error
	checkoutErr error

	stagedCalls  int
	trackedCalls int
	checkouts    []string
}

func (g *fakeGit) StagedFiles(_ context.Context) ([]string, error) {
	g.stagedCalls++
	return g.staged, g.stagedErr
}

func (g *fakeGit) TrackedFiles(_ context.Context) ([]string, error) {
	g.trackedCalls++
	return g.tracked, nil
}

func (g *fakeGit) CheckoutIndex(_ context.Context, dst string) error {
	g.checkouts = append(g.checkouts, dst)
	return g.checkoutErr
}

type fakeFS struct {
	// files maps path to content; presence means the path exists.
	files map[string]string
	// dirs maps a root to its immediate subdirectory names.
	dirs map[string][]string

	tempDir string
	tempErr error
	removed []string
}

func newFakeFS() *fakeFS {
	return &fakeFS{
		files: map[string]string{},
		dirs:  map[string][]string{},
	}
}

func (f *fakeFS) TempDir(_ string) (m.Path, error) {
	if f.tempErr != nil {
		return "", f.tempErr
	}

	if f.tempDir == "" {
		f.tempDir = "/tmp/fake-snapshot"
	}

	return m.Path(f.tempDir), nil
}

func (f *fakeFS) RemoveAll(path m.Path) error {
	f.removed = append(f.removed, string(path))
	return nil
}

func (f *fakeFS) Exists(path m.Path) bool {
	if _, ok := f.files[string(path)]; ok {
		return true
	}

	_, ok := f.dirs[string(path)]

	return ok
}

func (f *fakeFS) FirstLine(path m.Path) (string, error) {
	content := f.files[string(path)]
	line, _, _ := strings.Cut(content, "\n")

	return line, nil
}

func (f *fakeFS) ReadLines(path m.Path) ([]string, error) {
	var lines []string

	for _, line := range strings.Split(f.files[string(path)], "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}

	return lines, nil
}

func (f *fakeFS) SubDirs(root m.Path) ([]string, error) {
	return f.dirs[string(root)], nil
}

type toolCall struct {
	dir  string
	name string
	args []string
}

type fakeRunner struct {
	calls []toolCall

	// run computes the result for a call; nil means success with no output.
	run func(dir, name string, args []string) (adapter.ToolResult, error)
}

func (r *fakeRunner) Run(_ context.Context, dir, name string, args ...string) (adapter.ToolResult, error) {
	r.calls = append(r.calls, toolCall{dir: dir, name: name, args: args})

	if r.run != nil {
		return r.run(dir, name, args)
	}

	return adapter.ToolResult{}, nil
}

type fakeReportStore struct {
	savedPath   m.Path
	savedReport m.RunReport
	saves       int
}

func (s *fakeReportStore) Save(path m.Path, report m.RunReport) error {
	s.savedPath = path
	s.savedReport = report
	s.saves++

	return nil
}

func (s *fakeReportStore) Load(_ m.Path) (m.RunReport, error) {
	return s.savedReport, nil
}

type fakeUI struct {
	skips    int
	outcomes []m.CheckOutcome
	summary  *m.RunReport
	verdicts []bool
}

func (u *fakeUI) DisplaySkip(_ context.Context) {
	u.skips++
}

func (u *fakeUI) DisplayOutcome(_ context.Context, outcome m.CheckOutcome) {
	u.outcomes = append(u.outcomes, outcome)
}

func (u *fakeUI) DisplaySummary(_ context.Context, report m.RunReport) {
	u.summary = &report
}

func (u *fakeUI) DisplayVerdict(_ context.Context, passed bool) {
	u.verdicts = append(u.verdicts, passed)
}

func (u *fakeUI) DisplayReport(_ context.Context, _ m.RunReport) {}

// stubChecker lets gate tests script checker outcomes directly.
type stubChecker struct {
	name    string
	outcome m.CheckOutcome
	err     error
	calls   int
}

func (c *stubChecker) Name() string {
	return c.name
}

func (c *stubChecker) Check(_ context.Context, _ m.Path, _ *ChangeSetResolver) (m.CheckOutcome, error) {
	c.calls++
	return c.outcome, c.err
}
