package domain

import (
	"context"
	"strings"

	m "gitgate.dev/pkg/gitgate/internal/model"
)

// Checker runs one external quality engine against the snapshot and
// normalizes its raw output to a pass/fail outcome with remediation text.
// Checkers read the workspace but never mutate or destroy it. An error
// return means the engine could not be run at all (infrastructure failure),
// not that the check found problems.
type Checker interface {
	Name() string
	Check(ctx context.Context, workspace m.Path, changes *ChangeSetResolver) (m.CheckOutcome, error)
}

// Checker engines and their configuration files live at fixed, well-known
// relative paths. A missing configuration file degrades to "no config flag
// passed", never an error.
const (
	styleCommand    = "pycodestyle"
	styleConfigFile = "setup.cfg"

	lintCommand = "pylint"
	lintRCFile  = ".pylintrc"

	scriptCommand    = "jshint"
	scriptConfigFile = ".jshintrc"

	// ScriptIgnoreFile holds the path prefixes excluded from script-source
	// classification, one per line.
	ScriptIgnoreFile = ".jshintignore"
)

// reproCommand renders the exact invocation a developer can run from the
// repository root to reproduce a failure against the real tree.
func reproCommand(name string, args []string) string {
	return strings.Join(append([]string{name}, args...), " ")
}
