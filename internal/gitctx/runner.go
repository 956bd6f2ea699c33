package gitctx

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// DefaultTimeout bounds a single git invocation.
const DefaultTimeout = 2 * time.Minute

// ToolError reports a failed git invocation.
type ToolError struct {
	Args   []string
	Err    error
	Stderr string
}

func (e *ToolError) Error() string {
	cmd := strings.Join(e.Args, " ")
	if e.Stderr != "" {
		return fmt.Sprintf("git %s: %v: %s", cmd, e.Err, e.Stderr)
	}
	return fmt.Sprintf("git %s: %v", cmd, e.Err)
}

func (e *ToolError) Unwrap() error { return e.Err }

// Runner executes git with a timeout.
type Runner struct {
	Binary  string
	Timeout time.Duration
}

// Git runs git with args in dir and returns stdout.
func (r Runner) Git(ctx context.Context, dir string, args ...string) (string, error) {
	bin := r.Binary
	if bin == "" {
		bin = "git"
	}
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	c := exec.CommandContext(runCtx, bin, args...)
	c.Dir = dir
	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr
	if err := c.Run(); err != nil {
		switch {
		case ctx.Err() != nil:
			err = ctx.Err()
		case errors.Is(runCtx.Err(), context.DeadlineExceeded):
			err = fmt.Errorf("command timed out after %s", timeout)
		}
		return "", toolError(args, err, stderr.String())
	}
	return stdout.String(), nil
}

func toolError(args []string, cause error, stderr string) *ToolError {
	return &ToolError{
		Args:   append([]string(nil), args...),
		Err:    cause,
		Stderr: strings.TrimSpace(stderr),
	}
}
