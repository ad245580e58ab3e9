// Package controller provides output adapters for displaying pipeline progress and results.
package controller

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "github.com/ASSERT-KTH/elle-elle-aime-sub000/internal/model"
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	stage string
}

// WithStage names the pipeline stage being displayed (sample, generate, evaluate, export).
func WithStage(stage string) StartOption {
	return func(c *StartConfig) {
		c.stage = stage
	}
}

// UI defines the interface for displaying pipeline progress.
// Implementations decide how to render (plain text, styled text).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	DisplayConcurrencyInfo(ctx context.Context, threads int, tasks int)
	DisplayStartingTask(ctx context.Context, bug string)
	DisplayCompletedTask(ctx context.Context, bug string, outcome string)
	DisplayStatistics(ctx context.Context, stats m.Statistics) error
}

// NewUI returns the UI for cmd: a TUI on terminals, plain text otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd, false)
}

// IsTTY reports whether f is a terminal.
func IsTTY(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
