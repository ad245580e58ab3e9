package diff

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// HunksBySign returns every maximal run of consecutive lines starting with sign ('+' or
// '-') in the hunks of a raw unified diff, markers removed.
func HunksBySign(text string, sign byte) [][]string {
	var (
		runs    [][]string
		current []string
	)

	for _, line := range Body(strings.Split(text, "\n")) {
		if len(line) > 0 && line[0] == sign && !isHunkHeader(line) {
			current = append(current, line[1:])
			continue
		}

		if len(current) > 0 {
			runs = append(runs, current)
			current = nil
		}
	}

	if len(current) > 0 {
		runs = append(runs, current)
	}

	return runs
}

// LongestHunkBySign returns the longest run of HunksBySign; the first one wins on ties.
func LongestHunkBySign(text string, sign byte) []string {
	var longest []string

	for _, run := range HunksBySign(text, sign) {
		if len(run) > len(longest) {
			longest = run
		}
	}

	return longest
}

var hunkHeader = regexp.MustCompile(`^@@ -\d+(?:,(\d+))? \+\d+(?:,(\d+))? @@`)

// Body keeps the hunk headers and hunk lines of unified diff lines and drops everything
// else. The line counts of each "@@" header decide where a hunk ends, so a removed
// "--i;" or an added "++i;" is never mistaken for a file header.
func Body(lines []string) []string {
	var (
		body             []string
		oldLeft, newLeft int
	)

	for _, line := range lines {
		if oldLeft > 0 || newLeft > 0 {
			body = append(body, line)

			switch {
			case strings.HasPrefix(line, "-"):
				oldLeft--
			case strings.HasPrefix(line, "+"):
				newLeft--
			case strings.HasPrefix(line, `\`):
			default:
				oldLeft--
				newLeft--
			}

			continue
		}

		if match := hunkHeader.FindStringSubmatch(line); match != nil {
			oldLeft, newLeft = hunkCount(match[1]), hunkCount(match[2])
			body = append(body, line)
		}
	}

	return body
}

// hunkCount reads an optional "@@" range length, which defaults to 1.
func hunkCount(value string) int {
	if value == "" {
		return 1
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}

	return n
}

func isHunkHeader(line string) bool {
	return hunkHeader.MatchString(line)
}

// Unified computes a unified diff from a to b with enough context that the whole text
// lands in a single hunk. Each returned line keeps its trailing newline. Identical inputs
// yield no lines.
func Unified(a, b string) []string {
	aLines := SplitLines(a)
	bLines := SplitLines(b)

	context := max(len(aLines), len(bLines))

	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        aLines,
		B:        bLines,
		FromFile: "buggy",
		ToFile:   "fixed",
		Context:  context,
	})
	if err != nil || text == "" {
		return nil
	}

	return SplitLines(text)
}

// SplitLines splits text into lines that keep their newline; the last line gets one if it
// lacks it. The empty string has no lines.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}

	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	} else {
		lines[len(lines)-1] += "\n"
	}

	return lines
}

// IsChange reports an added or removed line of a hunk body.
func IsChange(line string) bool {
	return !isHunkHeader(line) && (strings.HasPrefix(line, "+") || strings.HasPrefix(line, "-"))
}

// ChangeRuns counts maximal runs of changed lines in hunk body lines (see Body). A hunk
// header ends the current run.
func ChangeRuns(lines []string) int {
	runs := 0
	inRun := false

	for _, line := range lines {
		if IsChange(line) {
			if !inRun {
				runs++
			}

			inRun = true

			continue
		}

		inRun = false
	}

	return runs
}
