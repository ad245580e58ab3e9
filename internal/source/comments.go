// Package source holds language-aware helpers over raw source text: comment and blank
// line stripping, language detection and locating the function that encloses a line.
package source

import (
	"regexp"
	"strings"
)

type scanState int

const (
	stateNormal scanState = iota
	stateLineComment
	stateBlockComment
	stateString
	stateChar
)

// commentSyntax configures the scanner for one language family.
type commentSyntax struct {
	lineComment  string
	blockComment bool
}

var (
	cFamilySyntax = commentSyntax{lineComment: "//", blockComment: true}
	pythonSyntax  = commentSyntax{lineComment: "#"}
)

var blankLine = regexp.MustCompile(`^\s*$`)

// StripComments removes line and block comments from C-family source text (Java,
// JavaScript, C) while leaving string and char literals untouched. Newlines ending a line
// comment are kept; block comments vanish together with their delimiters.
func StripComments(text string) string {
	return stripComments(text, cFamilySyntax)
}

// StripCommentsFor strips comments using the syntax of lang. Unknown languages use the
// C-family rules.
func StripCommentsFor(lang Language, text string) string {
	if lang == LanguagePython {
		return stripComments(text, pythonSyntax)
	}

	return stripComments(text, cFamilySyntax)
}

func stripComments(text string, syntax commentSyntax) string {
	var out strings.Builder
	out.Grow(len(text))

	state := stateNormal

	for i := 0; i < len(text); i++ {
		c := text[i]

		switch state {
		case stateNormal:
			switch {
			case strings.HasPrefix(text[i:], syntax.lineComment):
				state = stateLineComment
				i += len(syntax.lineComment) - 1
			case syntax.blockComment && strings.HasPrefix(text[i:], "/*"):
				state = stateBlockComment
				i++
			case c == '"':
				state = stateString

				out.WriteByte(c)
			case c == '\'':
				state = stateChar

				out.WriteByte(c)
			default:
				out.WriteByte(c)
			}
		case stateLineComment:
			if c == '\n' {
				state = stateNormal

				out.WriteByte(c)
			}
		case stateBlockComment:
			if strings.HasPrefix(text[i:], "*/") {
				state = stateNormal
				i++
			}
		case stateString, stateChar:
			out.WriteByte(c)

			quote := byte('"')
			if state == stateChar {
				quote = '\''
			}

			switch {
			case c == '\\' && i+1 < len(text):
				i++
				out.WriteByte(text[i])
			case c == quote:
				state = stateNormal
			}
		}
	}

	return out.String()
}

// StripBlankLines drops every empty or whitespace-only line.
func StripBlankLines(text string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]

	for _, line := range lines {
		if blankLine.MatchString(line) {
			continue
		}

		kept = append(kept, line)
	}

	return strings.Join(kept, "\n")
}

// Normalize composes StripComments and StripBlankLines, the form used to compare code.
func Normalize(text string) string {
	return StripBlankLines(StripComments(text))
}
