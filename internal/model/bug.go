// Package model defines the records shared by the repair harness.
package model

import (
	"fmt"
	"path/filepath"

	"github.com/ASSERT-KTH/elle-elle-aime-sub000/internal/diff"
)

// Path represents a file system path.
type Path string

// Bug is one defect of a benchmark. It is built once while the benchmark is scanned and
// never mutated afterwards.
type Bug struct {
	Identifier string
	Benchmark  string
	// GroundTruth is the unified diff text of the reference fix.
	GroundTruth string
	// GroundTruthInverted marks diffs stored fixed -> buggy: the source side is the fixed code.
	GroundTruthInverted bool
	// FailingTests maps a test case id (Class::method) to its failure cause.
	FailingTests map[string]string
}

// Diff parses the ground truth.
func (b Bug) Diff() (*diff.Diff, error) {
	d, err := diff.Parse(b.GroundTruth)
	if err != nil {
		return nil, fmt.Errorf("bug %s: %w", b.Identifier, err)
	}

	return d, nil
}

// BuggyFile returns the repository-relative path of the file holding the buggy code.
func (b Bug) BuggyFile() (string, error) {
	file, err := b.singleFile()
	if err != nil {
		return "", err
	}

	if b.GroundTruthInverted {
		return file.TargetFilename(), nil
	}

	return file.SourceFilename(), nil
}

// FixedFile returns the repository-relative path of the file holding the fixed code.
func (b Bug) FixedFile() (string, error) {
	file, err := b.singleFile()
	if err != nil {
		return "", err
	}

	if b.GroundTruthInverted {
		return file.SourceFilename(), nil
	}

	return file.TargetFilename(), nil
}

// BuggyFilePath joins BuggyFile onto a checked-out work dir.
func (b Bug) BuggyFilePath(workDir Path) (Path, error) {
	rel, err := b.BuggyFile()
	if err != nil {
		return "", err
	}

	return Path(filepath.Join(string(workDir), rel)), nil
}

// FixedFilePath joins FixedFile onto a checked-out work dir.
func (b Bug) FixedFilePath(workDir Path) (Path, error) {
	rel, err := b.FixedFile()
	if err != nil {
		return "", err
	}

	return Path(filepath.Join(string(workDir), rel)), nil
}

func (b Bug) singleFile() (*diff.FileDiff, error) {
	d, err := b.Diff()
	if err != nil {
		return nil, err
	}

	file, err := d.Single()
	if err != nil {
		return nil, fmt.Errorf("bug %s: %w", b.Identifier, err)
	}

	return file, nil
}

// CompileResult is the outcome of a benchmark compile step. Passing is nil when the
// benchmark has no compile step at all.
type CompileResult struct {
	Passing *bool
	Output  string
}

// IsPassing treats a missing compile step as success.
func (r CompileResult) IsPassing() bool {
	return r.Passing == nil || *r.Passing
}

// TestResult is the outcome of running a benchmark's tests.
type TestResult struct {
	Passing bool
	Output  string
}

// Bool returns a pointer to v, for the nullable fields of the records.
func Bool(v bool) *bool {
	return &v
}

// String returns a pointer to v.
func String(v string) *string {
	return &v
}
