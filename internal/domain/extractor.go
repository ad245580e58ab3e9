package domain

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/ASSERT-KTH/elle-elle-aime-sub000/internal/adapter"
	"github.com/ASSERT-KTH/elle-elle-aime-sub000/internal/diff"
	m "github.com/ASSERT-KTH/elle-elle-aime-sub000/internal/model"
	"github.com/ASSERT-KTH/elle-elle-aime-sub000/internal/source"
)

// ErrUnsupportedBug marks a bug that cannot be reduced to a single function pair: a
// malformed or multi-file ground truth, an unsupported language, no locatable region, or a
// region that does not reproduce the ground truth.
var ErrUnsupportedBug = errors.New("unsupported bug")

// CodePair is the buggy and fixed text of the function touched by a bug. Either side may be
// empty when the ground truth adds or removes a whole function.
type CodePair struct {
	BuggyCode string
	FixedCode string
}

// FailingTest is a failing test of a bug together with its source, when it could be found.
type FailingTest struct {
	ID     string
	Cause  string
	Source string
}

// FunctionExtractor derives CodePairs from checked-out buggy and fixed trees.
type FunctionExtractor interface {
	// Extract returns the function pair of bug. Unsupported bugs yield an error matching
	// ErrUnsupportedBug; checkout failures are returned as they are.
	Extract(ctx context.Context, bug m.Bug) (CodePair, error)
	// ExtractWithTests also returns the failing tests of bug with their source located in
	// the buggy tree.
	ExtractWithTests(ctx context.Context, bug m.Bug) (CodePair, []FailingTest, error)
}

type functionExtractor struct {
	benchmark adapter.BenchmarkAdapter
	workspace adapter.Workspace
	locator   source.Locator
}

// NewFunctionExtractor constructs a FunctionExtractor checking out through benchmark.
func NewFunctionExtractor(benchmark adapter.BenchmarkAdapter, workspace adapter.Workspace, locator source.Locator) FunctionExtractor {
	return &functionExtractor{
		benchmark: benchmark,
		workspace: workspace,
		locator:   locator,
	}
}

func (e *functionExtractor) Extract(ctx context.Context, bug m.Bug) (CodePair, error) {
	pair, _, err := e.extract(ctx, bug, false)
	return pair, err
}

func (e *functionExtractor) ExtractWithTests(ctx context.Context, bug m.Bug) (CodePair, []FailingTest, error) {
	return e.extract(ctx, bug, true)
}

func (e *functionExtractor) extract(ctx context.Context, bug m.Bug, withTests bool) (CodePair, []FailingTest, error) {
	d, err := bug.Diff()
	if err != nil {
		return CodePair{}, nil, fmt.Errorf("%w: %w", ErrUnsupportedBug, err)
	}

	file, err := d.Single()
	if err != nil {
		return CodePair{}, nil, fmt.Errorf("%w: %s: %w", ErrUnsupportedBug, bug.Identifier, err)
	}

	buggyDir, err := e.checkout(ctx, bug, false)
	if buggyDir != "" {
		defer e.cleanupTempDir(ctx, buggyDir)
	}

	if err != nil {
		return CodePair{}, nil, err
	}

	fixedDir, err := e.checkout(ctx, bug, true)
	if fixedDir != "" {
		defer e.cleanupTempDir(ctx, fixedDir)
	}

	if err != nil {
		return CodePair{}, nil, err
	}

	buggyPath, err := bug.BuggyFilePath(buggyDir)
	if err != nil {
		return CodePair{}, nil, fmt.Errorf("%w: %w", ErrUnsupportedBug, err)
	}

	fixedPath, err := bug.FixedFilePath(fixedDir)
	if err != nil {
		return CodePair{}, nil, fmt.Errorf("%w: %w", ErrUnsupportedBug, err)
	}

	lang := source.DetectLanguage(string(buggyPath))
	if lang == "" {
		return CodePair{}, nil, fmt.Errorf("%w: %s: %w", ErrUnsupportedBug, buggyPath, source.ErrUnsupportedLanguage)
	}

	buggyAnchors, fixedAnchors := file.ChangedSourceLines(), file.ChangedTargetLines()
	if bug.GroundTruthInverted {
		buggyAnchors, fixedAnchors = fixedAnchors, buggyAnchors
	}

	buggyCode, buggyFound := e.region(ctx, bug, lang, buggyPath, buggyAnchors)
	fixedCode, fixedFound := e.region(ctx, bug, lang, fixedPath, fixedAnchors)

	if !buggyFound && !fixedFound {
		return CodePair{}, nil, fmt.Errorf("%w: %s: no enclosing function on either side", ErrUnsupportedBug, bug.Identifier)
	}

	pair, ok := verifyPair(file, bug.GroundTruthInverted, buggyCode, fixedCode)
	if !ok {
		return CodePair{}, nil, fmt.Errorf("%w: %s: extracted functions do not reproduce the ground truth", ErrUnsupportedBug, bug.Identifier)
	}

	if !withTests {
		return pair, nil, nil
	}

	return pair, e.failingTests(ctx, bug, lang, buggyDir), nil
}

func (e *functionExtractor) checkout(ctx context.Context, bug m.Bug, fixed bool) (m.Path, error) {
	prefix := "elle-buggy"
	if fixed {
		prefix = "elle-fixed"
	}

	dir, err := e.workspace.CreateTempDir(ctx, prefix)
	if err != nil {
		slog.Error("Failed to create temp dir", "bug", bug.Identifier, "error", err)
		return "", fmt.Errorf("failed to create temp dir: %w", err)
	}

	if err := e.benchmark.Checkout(ctx, bug, dir, fixed); err != nil {
		return dir, err
	}

	return dir, nil
}

// region returns the text of the smallest function enclosing anchors, or "" when the file
// or the function does not exist on that side.
func (e *functionExtractor) region(ctx context.Context, bug m.Bug, lang source.Language, path m.Path, anchors []int) (string, bool) {
	text, _, err := e.workspace.ReadText(ctx, path)
	if err != nil {
		slog.Debug("Side of the diff not readable", "bug", bug.Identifier, "path", path, "error", err)
		return "", false
	}

	region, err := e.locator.Locate(ctx, lang, []byte(text), anchors)
	if err != nil {
		slog.Debug("No enclosing function", "bug", bug.Identifier, "path", path, "lines", anchors, "error", err)
		return "", false
	}

	return region.Text, true
}

func (e *functionExtractor) cleanupTempDir(ctx context.Context, dir m.Path) {
	if err := e.workspace.RemoveAll(ctx, dir); err != nil {
		slog.Error("Failed to cleanup temp dir", "tmpDir", dir, "error", err)
	}
}

var testParameters = regexp.MustCompile(`\[.*\]$`)

// failingTests resolves "pkg.Class::method" (Java) or "path/test_x.py::test" (Python) ids
// to the test source inside root. Tests that cannot be found keep an empty Source.
func (e *functionExtractor) failingTests(ctx context.Context, bug m.Bug, lang source.Language, root m.Path) []FailingTest {
	tests := make([]FailingTest, 0, len(bug.FailingTests))

	for _, id := range slices.Sorted(maps.Keys(bug.FailingTests)) {
		test := FailingTest{ID: id, Cause: bug.FailingTests[id]}

		container, method, ok := strings.Cut(id, "::")
		if ok {
			method = testParameters.ReplaceAllString(method, "")
			if idx := strings.LastIndex(method, "::"); idx >= 0 {
				method = method[idx+2:]
			}

			if path, found := findTestFile(root, lang, container); found {
				text, _, err := e.workspace.ReadText(ctx, path)
				if err == nil {
					if region, err := e.locator.FindFunction(ctx, lang, []byte(text), method); err == nil {
						test.Source = region.Text
					}
				}
			}
		}

		if test.Source == "" {
			slog.Debug("Failing test source not found", "bug", bug.Identifier, "test", id)
		}

		tests = append(tests, test)
	}

	return tests
}

func findTestFile(root m.Path, lang source.Language, container string) (m.Path, bool) {
	if lang == source.LanguagePython {
		path := filepath.Join(string(root), filepath.FromSlash(container))
		return m.Path(path), true
	}

	class := container
	if idx := strings.LastIndex(class, "."); idx >= 0 {
		class = class[idx+1:]
	}

	// Nested classes live in the file of their outermost class.
	class, _, _ = strings.Cut(class, "$")
	want := class + ".java"

	var found string

	_ = filepath.WalkDir(string(root), func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}

		if !entry.IsDir() && entry.Name() == want {
			found = path
			return fs.SkipAll
		}

		return nil
	})

	return m.Path(found), found != ""
}

// verifyPair accepts the first of (buggy, fixed), ("", fixed), (buggy, "") whose own diff
// is equivalent to the ground truth.
func verifyPair(original *diff.FileDiff, inverted bool, buggy, fixed string) (CodePair, bool) {
	candidates := []CodePair{
		{BuggyCode: buggy, FixedCode: fixed},
		{BuggyCode: "", FixedCode: fixed},
		{BuggyCode: buggy, FixedCode: ""},
	}

	for _, candidate := range candidates {
		if candidate.BuggyCode == "" && candidate.FixedCode == "" {
			continue
		}

		if diffEquivalent(original, inverted, candidate.BuggyCode, candidate.FixedCode) {
			return candidate, true
		}
	}

	return CodePair{}, false
}

// diffEquivalent recomputes the diff from buggy to fixed and compares it with the ground
// truth line by stripped line, ignoring hunk headers. Every line the new diff removes must
// exist on the buggy side of the original hunks and every line it adds on the fixed side;
// every line the original changes must be changed the same way by the new diff.
func diffEquivalent(original *diff.FileDiff, inverted bool, buggy, fixed string) bool {
	text := strings.Join(diff.Unified(buggy, fixed), "")
	if text == "" {
		return false
	}

	removedKind, addedKind := diff.Removed, diff.Added
	if inverted {
		removedKind, addedKind = addedKind, removedKind
	}

	buggySide := strippedSet(sideLines(original, removedKind))
	fixedSide := strippedSet(sideLines(original, addedKind))

	newRemoved := strippedSet(slices.Concat(diff.HunksBySign(text, '-')...))
	newAdded := strippedSet(slices.Concat(diff.HunksBySign(text, '+')...))

	for value := range newRemoved {
		if !buggySide[value] {
			return false
		}
	}

	for value := range newAdded {
		if !fixedSide[value] {
			return false
		}
	}

	for value := range strippedSet(original.LinesOf(removedKind)) {
		if !newRemoved[value] {
			return false
		}
	}

	for value := range strippedSet(original.LinesOf(addedKind)) {
		if !newAdded[value] {
			return false
		}
	}

	return true
}

// sideLines returns the context lines plus the lines of kind changed.
func sideLines(file *diff.FileDiff, changed diff.LineKind) []string {
	return append(file.LinesOf(diff.Context), file.LinesOf(changed)...)
}

func strippedSet(lines []string) map[string]bool {
	set := make(map[string]bool, len(lines))

	for _, line := range lines {
		if value := strings.TrimSpace(line); value != "" {
			set[value] = true
		}
	}

	return set
}
