package domain

import (
	"regexp"
	"strings"

	m "github.com/ASSERT-KTH/elle-elle-aime-sub000/internal/model"
	"github.com/ASSERT-KTH/elle-elle-aime-sub000/internal/source"
)

// FillMeToken is the signature-only infill sentinel.
const FillMeToken = "<FILL_ME>"

var pythonHeaderEnd = regexp.MustCompile(`:[ \t]*(#[^\n]*)?\n`)

// signatureMasker keeps the declaration and masks the entire body.
type signatureMasker struct{}

func (s *signatureMasker) Mask(lang source.Language, pair CodePair) (m.MaskedPrompt, bool) {
	buggySig, _, ok := splitSignature(lang, pair.BuggyCode)
	if !ok {
		return m.MaskedPrompt{}, false
	}

	fixedSig, fixedBody, ok := splitSignature(lang, pair.FixedCode)
	if !ok || strings.TrimSpace(fixedSig) != strings.TrimSpace(buggySig) {
		return m.MaskedPrompt{}, false
	}

	prompt := buggySig + FillMeToken

	if lang != source.LanguagePython {
		prompt += "\n" + indentation(buggySig) + "}"
	}

	return m.MaskedPrompt{
		BuggyCode: pair.BuggyCode,
		FixedCode: pair.FixedCode,
		Prompt:    prompt,
		Target:    fixedBody,
		Sentinels: []string{FillMeToken},
	}, true
}

// splitSignature cuts code after the declaration header. For brace languages the body
// excludes the closing brace and the whitespace before it.
func splitSignature(lang source.Language, code string) (string, string, bool) {
	if lang == source.LanguagePython {
		loc := pythonHeaderEnd.FindStringIndex(code)
		if loc == nil {
			return "", "", false
		}

		return code[:loc[1]], code[loc[1]:], true
	}

	from := leadingCommentsEnd(code)
	open := strings.Index(code[from:], "{")
	closing := strings.LastIndex(code, "}")

	if open >= 0 {
		open += from
	}

	if open < 0 || closing <= open {
		return "", "", false
	}

	body := strings.TrimRight(code[open+1:closing], " \t")

	return code[:open+1], strings.TrimSuffix(body, "\n"), true
}

// leadingCommentsEnd skips the whitespace and the line or block comments code starts with.
func leadingCommentsEnd(code string) int {
	pos := 0

	for {
		rest := strings.TrimLeft(code[pos:], " \t\r\n")
		pos = len(code) - len(rest)

		switch {
		case strings.HasPrefix(rest, "/*"):
			end := strings.Index(rest, "*/")
			if end < 0 {
				return pos
			}

			pos += end + 2
		case strings.HasPrefix(rest, "//"):
			end := strings.IndexByte(rest, '\n')
			if end < 0 {
				return pos
			}

			pos += end + 1
		default:
			return pos
		}
	}
}

func (s *signatureMasker) Reassemble(prompt, completion string) (string, bool) {
	if !strings.Contains(prompt, FillMeToken) {
		return "", false
	}

	return strings.Replace(prompt, FillMeToken, strings.TrimSuffix(completion, "\n"), 1), true
}
