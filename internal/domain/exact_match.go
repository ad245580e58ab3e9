package domain

import (
	"strings"

	"github.com/ASSERT-KTH/elle-elle-aime-sub000/internal/source"
)

// ExactMatch compares candidate and fixed line by line after removing comments and blank
// lines, ignoring surrounding whitespace. Only the common prefix of both line lists is
// compared, so a candidate matching the beginning of a longer fixed function (or an empty
// candidate) counts as a match.
func ExactMatch(lang source.Language, candidate, fixed string) bool {
	candidateLines := normalizedLines(lang, candidate)
	fixedLines := normalizedLines(lang, fixed)

	for i := range min(len(candidateLines), len(fixedLines)) {
		if strings.TrimSpace(candidateLines[i]) != strings.TrimSpace(fixedLines[i]) {
			return false
		}
	}

	return true
}

func normalizedLines(lang source.Language, text string) []string {
	normalized := source.StripBlankLines(source.StripCommentsFor(lang, text))
	if normalized == "" {
		return nil
	}

	return strings.Split(normalized, "\n")
}
