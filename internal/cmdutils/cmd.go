// Package cmdutils provides utility functions for running external commands.
package cmdutils

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"os/exec"
	"time"
)

// Run executes the command specified by cmd with arguments args using the provided context.
// Returns stdout and stderr output and error code.
func Run(ctx context.Context, cmd string, args ...string) (stdout, stderr *bytes.Buffer, err error) {
	stdout = &bytes.Buffer{}
	stderr = &bytes.Buffer{}

	c := exec.CommandContext(ctx, cmd, args...)
	c.Stdout = stdout
	c.Stderr = stderr
	c.Env = append(c.Env, "LANG=C")
	c.Env = append(c.Env, os.Environ()...)
	err = c.Run()

	return stdout, stderr, err
}

// RunWithTimeout calls Run but a timeout is added to the provided context.
func RunWithTimeout(ctx context.Context, timeout time.Duration, cmd string, args ...string) (stdout, stderr *bytes.Buffer, err error) {
	c, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	return Run(c, cmd, args...)
}

// Probe runs the command specified by args with a timeout and returns its trimmed
// standard output, or "" when no output could be captured.
//
// A non-zero exit status still yields the captured output: diagnostic tools such as
// smartctl encode findings in their exit code while printing a usable report. Only a
// command that could not run at all, or that hit the timeout, yields "".
func Probe(ctx context.Context, timeout time.Duration, log *slog.Logger, args ...string) string {
	if len(args) == 0 {
		return ""
	}

	stdout, stderr, err := RunWithTimeout(ctx, timeout, args[0], args[1:]...)
	if ctx.Err() != nil {
		log.Warn("probe cancelled", "cmd", args[0], "error", ctx.Err())
		return ""
	}
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		log.Warn("probe failed to run", "cmd", args[0], "error", err)
		return ""
	}
	if errors.As(err, &exitErr) && exitErr.ProcessState != nil && !exitErr.ProcessState.Exited() {
		// Killed rather than exited, most likely by the timeout.
		log.Warn("probe timed out", "cmd", args[0])
		return ""
	}
	if stderr.Len() > 0 {
		log.Debug("probe output to stderr", "cmd", args[0], "stderr", stderr)
	}

	return string(bytes.TrimSpace(stdout.Bytes()))
}
