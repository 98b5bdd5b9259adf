package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// ToolResult holds the observable outcome of one checker invocation.
type ToolResult struct {
	// Output is the combined stdout and stderr of the tool.
	Output string
	// ExitCode is the tool's exit status; zero means success.
	ExitCode int
}

// ToolRunner abstracts checker subprocess execution so the domain layer can
// be tested without the external engines installed.
type ToolRunner interface {
	// Run executes name with args in dir (empty dir means the current
	// directory) and blocks until the process exits. A non-zero exit status
	// is reported through ToolResult, not as an error; an error means the
	// tool could not be invoked at all.
	Run(ctx context.Context, dir, name string, args ...string) (ToolResult, error)
}

// LocalToolRunner provides a concrete implementation using os/exec.
type LocalToolRunner struct{}

// NewLocalToolRunner constructs a LocalToolRunner.
func NewLocalToolRunner() *LocalToolRunner {
	return &LocalToolRunner{}
}

// Run executes the tool and captures its combined output.
func (r *LocalToolRunner) Run(ctx context.Context, dir, name string, args ...string) (ToolResult, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var buf bytes.Buffer

	cmd.Stdout = &buf
	cmd.Stderr = &buf

	err := cmd.Run()
	result := ToolResult{Output: buf.String()}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		return result, nil
	}

	if err != nil {
		return result, fmt.Errorf("running %s: %w", name, err)
	}

	return result, nil
}
