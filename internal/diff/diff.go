// Package diff models unified diffs as files, hunks and tagged lines, and answers the
// line-level questions the extraction and prompting code asks of a ground-truth patch.
package diff

import (
	"errors"
	"fmt"
	"strings"

	godiff "github.com/sourcegraph/go-diff/diff"
)

// ErrMalformedDiff is matched (via errors.Is) by every parse failure.
var ErrMalformedDiff = errors.New("malformed diff")

// ErrMultiFile is returned when a single-file diff was required.
var ErrMultiFile = errors.New("diff touches more than one file")

// MalformedDiffError describes why a diff text could not be parsed.
type MalformedDiffError struct {
	Reason string
}

func (e *MalformedDiffError) Error() string {
	return fmt.Sprintf("malformed diff: %s", e.Reason)
}

// Unwrap lets errors.Is(err, ErrMalformedDiff) succeed.
func (e *MalformedDiffError) Unwrap() error {
	return ErrMalformedDiff
}

// LineKind tags a hunk line.
type LineKind int

const (
	// Context lines are present on both sides.
	Context LineKind = iota
	// Added lines exist only on the target side.
	Added
	// Removed lines exist only on the source side.
	Removed
)

func (k LineKind) String() string {
	switch k {
	case Added:
		return "added"
	case Removed:
		return "removed"
	default:
		return "context"
	}
}

// Line is one hunk line without its marker and newline. Line numbers are 1-based and zero
// when the line does not exist on that side.
type Line struct {
	Kind       LineKind
	Value      string
	SourceLine int
	TargetLine int
}

// Hunk is an @@-delimited block.
type Hunk struct {
	SourceStart  int
	SourceLength int
	TargetStart  int
	TargetLength int
	Section      string
	Lines        []Line
}

// FileDiff is the part of a diff that touches one file.
type FileDiff struct {
	SourcePath string
	TargetPath string
	Hunks      []Hunk
}

// Diff is an ordered set of file diffs.
type Diff struct {
	Files []FileDiff
}

// Parse reads a unified diff. Texts without an @@ hunk header or without file markers are
// rejected with a *MalformedDiffError.
func Parse(text string) (*Diff, error) {
	if !strings.Contains(text, "@@") {
		return nil, &MalformedDiffError{Reason: "no hunk header"}
	}

	fileDiffs, err := godiff.ParseMultiFileDiff([]byte(text))
	if err != nil {
		return nil, &MalformedDiffError{Reason: err.Error()}
	}

	result := &Diff{Files: make([]FileDiff, 0, len(fileDiffs))}

	for _, fd := range fileDiffs {
		if len(fd.Hunks) == 0 {
			continue
		}

		if fd.OrigName == "" && fd.NewName == "" {
			return nil, &MalformedDiffError{Reason: "missing file markers"}
		}

		file := FileDiff{
			SourcePath: fd.OrigName,
			TargetPath: fd.NewName,
			Hunks:      make([]Hunk, 0, len(fd.Hunks)),
		}

		for _, h := range fd.Hunks {
			file.Hunks = append(file.Hunks, convertHunk(h))
		}

		result.Files = append(result.Files, file)
	}

	if len(result.Files) == 0 {
		return nil, &MalformedDiffError{Reason: "no file with hunks"}
	}

	return result, nil
}

func convertHunk(h *godiff.Hunk) Hunk {
	hunk := Hunk{
		SourceStart:  int(h.OrigStartLine),
		SourceLength: int(h.OrigLines),
		TargetStart:  int(h.NewStartLine),
		TargetLength: int(h.NewLines),
		Section:      h.Section,
	}

	source := hunk.SourceStart
	target := hunk.TargetStart

	body := strings.TrimSuffix(string(h.Body), "\n")
	if body == "" {
		return hunk
	}

	for _, raw := range strings.Split(body, "\n") {
		if strings.HasPrefix(raw, `\`) {
			// "\ No newline at end of file"
			continue
		}

		switch {
		case strings.HasPrefix(raw, "+"):
			hunk.Lines = append(hunk.Lines, Line{Kind: Added, Value: raw[1:], TargetLine: target})
			target++
		case strings.HasPrefix(raw, "-"):
			hunk.Lines = append(hunk.Lines, Line{Kind: Removed, Value: raw[1:], SourceLine: source})
			source++
		default:
			value := raw
			if value != "" {
				value = value[1:]
			}

			hunk.Lines = append(hunk.Lines, Line{Kind: Context, Value: value, SourceLine: source, TargetLine: target})
			source++
			target++
		}
	}

	return hunk
}

// Single returns the only file of the diff, or ErrMultiFile.
func (d *Diff) Single() (*FileDiff, error) {
	if len(d.Files) != 1 {
		return nil, fmt.Errorf("%w: %d files", ErrMultiFile, len(d.Files))
	}

	return &d.Files[0], nil
}

// IsSingleHunk reports exactly one file with exactly one hunk.
func (d *Diff) IsSingleHunk() bool {
	return len(d.Files) == 1 && len(d.Files[0].Hunks) == 1
}

// IsSingleContiguousChunk reports a single hunk whose added and removed lines form one
// uninterrupted run.
func (d *Diff) IsSingleContiguousChunk() bool {
	if !d.IsSingleHunk() {
		return false
	}

	found := false
	ended := false

	for _, line := range d.Files[0].Hunks[0].Lines {
		if line.Kind == Context {
			if found {
				ended = true
			}

			continue
		}

		if ended {
			return false
		}

		found = true
	}

	return found
}

// SourceFilename is the source path without a leading "a/".
func (f *FileDiff) SourceFilename() string {
	return strings.TrimPrefix(f.SourcePath, "a/")
}

// TargetFilename is the target path without a leading "b/".
func (f *FileDiff) TargetFilename() string {
	return strings.TrimPrefix(f.TargetPath, "b/")
}

// ChangedSourceLines returns the numbers of the removed non-blank lines, or the median
// context line when there are none.
func (f *FileDiff) ChangedSourceLines() []int {
	var changed, context []int

	for _, hunk := range f.Hunks {
		for _, line := range hunk.Lines {
			switch line.Kind {
			case Removed:
				if strings.TrimSpace(line.Value) != "" {
					changed = append(changed, line.SourceLine)
				}
			case Context:
				context = append(context, line.SourceLine)
			}
		}
	}

	if len(changed) > 0 {
		return changed
	}

	return median(context)
}

// ChangedTargetLines returns the numbers of the added non-blank lines, or the median
// context line when there are none.
func (f *FileDiff) ChangedTargetLines() []int {
	var changed, context []int

	for _, hunk := range f.Hunks {
		for _, line := range hunk.Lines {
			switch line.Kind {
			case Added:
				if strings.TrimSpace(line.Value) != "" {
					changed = append(changed, line.TargetLine)
				}
			case Context:
				context = append(context, line.TargetLine)
			}
		}
	}

	if len(changed) > 0 {
		return changed
	}

	return median(context)
}

// LinesOf returns the values of all lines of the given kind, in order.
func (f *FileDiff) LinesOf(kind LineKind) []string {
	var values []string

	for _, hunk := range f.Hunks {
		for _, line := range hunk.Lines {
			if line.Kind == kind {
				values = append(values, line.Value)
			}
		}
	}

	return values
}

// SourceText reconstructs the source side of every hunk (context plus removed lines).
func (f *FileDiff) SourceText() string {
	return f.sideText(Removed)
}

// TargetText reconstructs the target side of every hunk (context plus added lines).
func (f *FileDiff) TargetText() string {
	return f.sideText(Added)
}

func (f *FileDiff) sideText(changed LineKind) string {
	var b strings.Builder

	for _, hunk := range f.Hunks {
		for _, line := range hunk.Lines {
			if line.Kind == Context || line.Kind == changed {
				b.WriteString(line.Value)
				b.WriteByte('\n')
			}
		}
	}

	return b.String()
}

func median(lines []int) []int {
	if len(lines) == 0 {
		return nil
	}

	return []int{lines[len(lines)/2]}
}
