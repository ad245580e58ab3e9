package domain

import (
	"fmt"
	"strings"

	m "github.com/ASSERT-KTH/elle-elle-aime-sub000/internal/model"
	"github.com/ASSERT-KTH/elle-elle-aime-sub000/internal/source"
)

// FIMTokens are the three fill-in-the-middle delimiters.
type FIMTokens struct {
	Prefix string
	Suffix string
	Middle string
}

var (
	// UnderscoreFIMTokens is the StarCoder convention.
	UnderscoreFIMTokens = FIMTokens{Prefix: "<fim_prefix>", Suffix: "<fim_suffix>", Middle: "<fim_middle>"}
	// DashFIMTokens is the SantaCoder convention.
	DashFIMTokens = FIMTokens{Prefix: "<fim-prefix>", Suffix: "<fim-suffix>", Middle: "<fim-middle>"}
)

func fimTokensFor(style string) (FIMTokens, error) {
	switch style {
	case "", FIMStyleUnderscore:
		return UnderscoreFIMTokens, nil
	case FIMStyleDash:
		return DashFIMTokens, nil
	default:
		return FIMTokens{}, fmt.Errorf("unknown fim style %q", style)
	}
}

// fimMasker masks everything from the first to the last change run.
type fimMasker struct {
	tokens FIMTokens
}

func (f *fimMasker) Mask(_ source.Language, pair CodePair) (m.MaskedPrompt, bool) {
	runs, tail := segment(diffBody(pair))

	var prefix, middle, suffix strings.Builder

	if len(runs) == 0 {
		writeLines(&prefix, tail)
	} else {
		first := runs[0]
		indent := first.replacedIndent()

		writeLines(&prefix, first.before)
		prefix.WriteString(indent)

		for i, run := range runs {
			if i > 0 {
				writeLines(&middle, run.before)
			}

			writeLines(&middle, run.added)
		}

		writeLines(&suffix, tail)

		text := strings.TrimPrefix(middle.String(), indent)
		middle.Reset()
		middle.WriteString(text)
	}

	target := middle.String()
	if suffix.Len() == 0 {
		target = strings.TrimSuffix(target, "\n")
	}

	prompt := f.tokens.Prefix + prefix.String() +
		f.tokens.Suffix + strings.TrimSuffix(suffix.String(), "\n") +
		f.tokens.Middle

	return m.MaskedPrompt{
		BuggyCode: pair.BuggyCode,
		FixedCode: pair.FixedCode,
		Prompt:    prompt,
		Target:    target,
		Sentinels: []string{f.tokens.Prefix, f.tokens.Suffix, f.tokens.Middle},
	}, true
}

func (f *fimMasker) Reassemble(prompt, completion string) (string, bool) {
	rest, ok := strings.CutPrefix(prompt, f.tokens.Prefix)
	if !ok {
		return "", false
	}

	prefix, rest, ok := strings.Cut(rest, f.tokens.Suffix)
	if !ok {
		return "", false
	}

	suffix, _, ok := strings.Cut(rest, f.tokens.Middle)
	if !ok {
		return "", false
	}

	// Models tend to continue past the middle; stop at the first echoed delimiter.
	for _, token := range []string{f.tokens.Prefix, f.tokens.Suffix, f.tokens.Middle, "<|endoftext|>"} {
		completion, _, _ = strings.Cut(completion, token)
	}

	if suffix != "" && !strings.HasSuffix(completion, "\n") {
		completion += "\n"
	}

	return strings.TrimSuffix(prefix+completion+suffix, "\n"), true
}
