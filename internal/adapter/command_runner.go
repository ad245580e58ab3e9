package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/google/shlex"
)

// CommandResult is the captured outcome of one external process.
type CommandResult struct {
	ExitCode int
	Output   string
	TimedOut bool
	Duration time.Duration
}

// Succeeded reports a zero exit within the deadline.
func (r CommandResult) Succeeded() bool {
	return r.ExitCode == 0 && !r.TimedOut
}

// CommandRunner abstracts external process execution for benchmark tooling.
type CommandRunner interface {
	// Run splits command with shell quoting rules and executes it in workDir. A non-zero
	// exit or a timeout is reported through the result; the error is non-nil only when the
	// process could not be started at all.
	Run(ctx context.Context, workDir, command string, timeout time.Duration) (CommandResult, error)
}

// LocalCommandRunner runs commands with os/exec.
type LocalCommandRunner struct {
	waitDelay time.Duration
}

// NewLocalCommandRunner constructs a LocalCommandRunner.
func NewLocalCommandRunner() *LocalCommandRunner {
	return &LocalCommandRunner{
		waitDelay: 5 * time.Second,
	}
}

// Run implements CommandRunner.
func (a *LocalCommandRunner) Run(ctx context.Context, workDir, command string, timeout time.Duration) (CommandResult, error) {
	argv, err := shlex.Split(command)
	if err != nil {
		return CommandResult{ExitCode: -1}, fmt.Errorf("invalid command %q: %w", command, err)
	}

	if len(argv) == 0 {
		return CommandResult{ExitCode: -1}, fmt.Errorf("empty command")
	}

	if timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = workDir
	// Children that keep the pipes open must not block Wait past the deadline.
	cmd.WaitDelay = a.waitDelay

	var output bytes.Buffer

	cmd.Stdout = &output
	cmd.Stderr = &output

	started := time.Now()
	err = cmd.Run()

	result := CommandResult{
		Output:   output.String(),
		Duration: time.Since(started),
	}

	if err == nil {
		return result, nil
	}

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		result.ExitCode = -1
		result.TimedOut = true

		return result, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		return result, nil
	}

	result.ExitCode = -1

	return result, fmt.Errorf("run %s: %w", argv[0], err)
}

// ExpandCommand substitutes {name} placeholders in template. Values are quoted so that a
// path with spaces survives shlex splitting.
func ExpandCommand(template string, vars map[string]string) string {
	pairs := make([]string, 0, len(vars)*2)
	for name, value := range vars {
		pairs = append(pairs, "{"+name+"}", shellQuote(value))
	}

	return strings.NewReplacer(pairs...).Replace(template)
}

func shellQuote(value string) string {
	if value != "" && !strings.ContainsAny(value, " \t\n'\"\\") {
		return value
	}

	return "'" + strings.ReplaceAll(value, "'", `'\''`) + "'"
}
