package domain

import (
	"strings"

	m "github.com/ASSERT-KTH/elle-elle-aime-sub000/internal/model"
	"github.com/ASSERT-KTH/elle-elle-aime-sub000/internal/source"
)

// instructMasker asks for the whole corrected function in natural language.
type instructMasker struct{}

func (i *instructMasker) Mask(lang source.Language, pair CodePair) (m.MaskedPrompt, bool) {
	return i.maskWithTests(lang, pair, nil)
}

func (i *instructMasker) maskWithTests(lang source.Language, pair CodePair, tests []FailingTest) (m.MaskedPrompt, bool) {
	if strings.TrimSpace(pair.BuggyCode) == "" {
		return m.MaskedPrompt{}, false
	}

	fence := "```" + string(lang)

	var b strings.Builder

	b.WriteString("You are an automatic program repair tool. The following function contains a bug:\n\n")
	b.WriteString(fence + "\n" + strings.TrimSuffix(pair.BuggyCode, "\n") + "\n```\n")

	for _, test := range tests {
		if test.Source == "" && test.Cause == "" {
			continue
		}

		b.WriteString("\nThe function fails the test `" + test.ID + "`")

		if test.Source != "" {
			b.WriteString(":\n\n" + fence + "\n" + strings.TrimSuffix(test.Source, "\n") + "\n```\n")
		} else {
			b.WriteString(".\n")
		}

		if test.Cause != "" {
			b.WriteString("\nwith the following error:\n\n```\n" + strings.TrimSpace(test.Cause) + "\n```\n")
		}
	}

	b.WriteString("\nProvide a fixed version of the function in a single " + fence + " code block.\n")

	return m.MaskedPrompt{
		BuggyCode: pair.BuggyCode,
		FixedCode: pair.FixedCode,
		Prompt:    b.String(),
		Target:    pair.FixedCode,
	}, true
}

func (i *instructMasker) Reassemble(_, completion string) (string, bool) {
	completion = strings.TrimSuffix(completion, "\n")
	if strings.TrimSpace(completion) == "" {
		return "", false
	}

	return completion, true
}
