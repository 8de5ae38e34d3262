// Package containerizer wraps the container runtime CLI (podman or docker)
// the panel shells out to. It only builds argument vectors and runs them; the
// runtime's command syntax and output format are treated as a fixed contract.
package containerizer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"podpanel/internal/config"
	"podpanel/pkg/logging"
)

const subsystem = "Runtime"

// DefaultCandidates is the detection order used for runtime.binary "auto".
var DefaultCandidates = []string{"podman", "docker"}

// For mocking in tests
var lookPath = exec.LookPath

const waitDelay = 2 * time.Second

// Runtime describes one container runtime CLI.
type Runtime struct {
	Binary     string
	ListFormat string
	Shell      string
	Timeout    time.Duration
}

// New builds a Runtime from the merged configuration, resolving "auto".
func New(cfg config.RuntimeConfig) (Runtime, error) {
	binary := cfg.Binary
	if binary == config.RuntimeAuto {
		detected, err := Detect(DefaultCandidates)
		if err != nil {
			return Runtime{}, err
		}
		binary = detected
	}
	format := cfg.ListFormat
	if format == "" {
		format = config.DefaultListFormat
	}
	return Runtime{
		Binary:     binary,
		ListFormat: format,
		Shell:      cfg.Shell,
		Timeout:    cfg.CommandTimeout,
	}, nil
}

// Detect returns the first candidate binary found on PATH.
func Detect(candidates []string) (string, error) {
	for _, c := range candidates {
		if _, err := lookPath(c); err == nil {
			logging.Debug(subsystem, "Detected container runtime %s", c)
			return c, nil
		}
	}
	return "", fmt.Errorf("no container runtime found on PATH (tried %v): %w", candidates, exec.ErrNotFound)
}

// ListArgs returns the argv listing all containers, one "<name> <state>" per line.
func (r Runtime) ListArgs() []string {
	return []string{r.Binary, "ps", "-a", "--format", r.ListFormat}
}

// StartArgs returns the argv starting the named container.
func (r Runtime) StartArgs(name string) []string {
	return []string{r.Binary, "start", name}
}

// StopArgs returns the argv stopping the named container.
func (r Runtime) StopArgs(name string) []string {
	return []string{r.Binary, "stop", name}
}

// ExecArgs returns the argv attaching an interactive shell inside the named container.
func (r Runtime) ExecArgs(name string) []string {
	return []string{r.Binary, "exec", "-it", name, r.Shell}
}

// Result is the captured outcome of one runtime invocation.
type Result struct {
	Args     []string
	Stdout   []byte
	Stderr   []byte
	ExitCode int
	Err      error
}

// OK reports whether the command ran and exited zero.
func (res Result) OK() bool {
	return res.Err == nil && res.ExitCode == 0
}

// Run executes argv with the runtime's timeout and captures its output.
// It never returns a Go error directly; failures are carried in Result.Err.
func (r Runtime) Run(ctx context.Context, argv []string) Result {
	res := Result{Args: argv}
	if len(argv) == 0 {
		res.Err = errors.New("empty command")
		res.ExitCode = -1
		return res
	}

	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf
	// Children that inherit the pipes must not keep Wait blocked after a kill.
	cmd.WaitDelay = waitDelay

	runErr := cmd.Run()
	res.Stdout = stdoutBuf.Bytes()
	res.Stderr = stderrBuf.Bytes()

	var exitErr *exec.ExitError
	switch {
	case runErr == nil:
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		res.ExitCode = -1
		res.Err = fmt.Errorf("%s timed out after %s: %w", argv[0], r.Timeout, ctx.Err())
	case errors.As(runErr, &exitErr):
		res.ExitCode = exitErr.ExitCode()
		res.Err = fmt.Errorf("%v exited with code %d: %w", argv, res.ExitCode, runErr)
	default:
		res.ExitCode = -1
		res.Err = fmt.Errorf("failed to run %v: %w", argv, runErr)
	}
	return res
}
