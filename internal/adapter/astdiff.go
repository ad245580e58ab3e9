package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"time"
)

// DefaultASTDiffCommand runs GumTree's textual diff on two files.
const DefaultASTDiffCommand = "gumtree textdiff {before} {after}"

var astEditAction = regexp.MustCompile(`(?m)^(insert|delete|update|move)-`)

// ASTDiffer compares two code fragments structurally.
type ASTDiffer interface {
	// SameAST reports whether the tool found no edit action between fixed and candidate.
	SameAST(ctx context.Context, extension, fixed, candidate string) (bool, error)
}

type commandASTDiffer struct {
	runner  CommandRunner
	command string
	tmpRoot string
	timeout time.Duration
}

// NewCommandASTDiffer constructs an ASTDiffer that shells out to command, a template with
// {before} and {after} placeholders.
func NewCommandASTDiffer(runner CommandRunner, command, tmpRoot string, timeout time.Duration) ASTDiffer {
	if command == "" {
		command = DefaultASTDiffCommand
	}

	return &commandASTDiffer{
		runner:  runner,
		command: command,
		tmpRoot: tmpRoot,
		timeout: timeout,
	}
}

func (d *commandASTDiffer) SameAST(ctx context.Context, extension, fixed, candidate string) (bool, error) {
	dir, err := os.MkdirTemp(d.tmpRoot, "elle-astdiff-*")
	if err != nil {
		return false, fmt.Errorf("create astdiff dir: %w", err)
	}

	defer func() {
		if err := os.RemoveAll(dir); err != nil {
			slog.Error("Failed to cleanup astdiff dir", "dir", dir, "error", err)
		}
	}()

	// The parser is picked by extension; Java fragments need an enclosing class.
	before := filepath.Join(dir, "Fixed"+extension)
	after := filepath.Join(dir, "Candidate"+extension)

	if err := os.WriteFile(before, []byte(wrapForParser(extension, "Fixed", fixed)), 0o600); err != nil {
		return false, err
	}

	if err := os.WriteFile(after, []byte(wrapForParser(extension, "Fixed", candidate)), 0o600); err != nil {
		return false, err
	}

	command := ExpandCommand(d.command, map[string]string{"before": before, "after": after})

	result, err := d.runner.Run(ctx, dir, command, d.timeout)
	if err != nil {
		return false, fmt.Errorf("run astdiff: %w", err)
	}

	if !result.Succeeded() {
		slog.Debug("AST diff tool failed", "exitCode", result.ExitCode, "timedOut", result.TimedOut)
		return false, nil
	}

	return !astEditAction.MatchString(result.Output), nil
}

func wrapForParser(extension, class, code string) string {
	if extension != ".java" {
		return code
	}

	return "public class " + class + " {\n" + code + "\n}\n"
}
