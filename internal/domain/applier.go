package domain

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ASSERT-KTH/elle-elle-aime-sub000/internal/adapter"
	m "github.com/ASSERT-KTH/elle-elle-aime-sub000/internal/model"
)

// PatchApplier substitutes a candidate for the buggy region inside a checked-out tree.
type PatchApplier interface {
	// Apply replaces the first occurrence of buggyRegion in the buggy file under workDir
	// with candidate. It reports false, leaving the file untouched, when buggyRegion is not
	// found verbatim. An empty buggyRegion never matches: there is no place to insert a
	// function that did not exist.
	Apply(ctx context.Context, bug m.Bug, workDir m.Path, buggyRegion, candidate string) (bool, error)
}

type patchApplier struct {
	workspace adapter.Workspace
}

// NewPatchApplier constructs a PatchApplier.
func NewPatchApplier(workspace adapter.Workspace) PatchApplier {
	return &patchApplier{workspace: workspace}
}

func (a *patchApplier) Apply(ctx context.Context, bug m.Bug, workDir m.Path, buggyRegion, candidate string) (bool, error) {
	path, err := bug.BuggyFilePath(workDir)
	if err != nil {
		return false, fmt.Errorf("locate buggy file: %w", err)
	}

	if buggyRegion == "" {
		slog.Warn("Nothing to replace: empty buggy region", "bug", bug.Identifier, "path", path)
		return false, nil
	}

	text, enc, err := a.workspace.ReadText(ctx, path)
	if err != nil {
		slog.Error("Failed to read buggy file", "bug", bug.Identifier, "path", path, "error", err)
		return false, fmt.Errorf("read buggy file: %w", err)
	}

	if !strings.Contains(text, buggyRegion) {
		slog.Warn("Buggy region not found in checked-out file", "bug", bug.Identifier, "path", path)
		return false, nil
	}

	patched := strings.Replace(text, buggyRegion, candidate, 1)

	if err := a.workspace.WriteText(ctx, path, patched, enc); err != nil {
		slog.Error("Failed to write patched file", "bug", bug.Identifier, "path", path, "error", err)
		return false, fmt.Errorf("write patched file: %w", err)
	}

	return true, nil
}
