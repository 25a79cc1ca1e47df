package pkgscope

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Runner provides a consistent interface for invoking the package manager
// binaries with captured output. Parsing and classification only ever see the
// returned text, so they can be exercised without shelling out.
type Runner interface {
	Output(ctx context.Context, bin string, args ...string) (string, error)
}

type execRunner struct{}

// NewExecRunner returns the Runner backed by real process invocation.
func NewExecRunner() Runner {
	return execRunner{}
}

// Output runs bin with args and returns its stdout. A spawn failure and a
// nonzero exit produce distinct, source-attributable error messages; captured
// stderr is appended when the tool printed any.
func (execRunner) Output(ctx context.Context, bin string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, bin, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			msg := strings.TrimSpace(stderr.String())
			if msg == "" {
				return "", fmt.Errorf("`%s` exited with %v", bin, exitErr)
			}
			return "", fmt.Errorf("`%s` exited with %v: %s", bin, exitErr, msg)
		}
		return "", fmt.Errorf("failed to run `%s`: %v", bin, err)
	}

	return stdout.String(), nil
}
