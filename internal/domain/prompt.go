package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"github.com/ASSERT-KTH/elle-elle-aime-sub000/internal/diff"
	m "github.com/ASSERT-KTH/elle-elle-aime-sub000/internal/model"
	"github.com/ASSERT-KTH/elle-elle-aime-sub000/internal/source"
)

// Strategy names accepted by NewPromptStrategy.
const (
	StrategySingleCloze = "single-cloze"
	StrategyMultiCloze  = "multi-cloze"
	StrategyFIM         = "fim"
	StrategyInstruct    = "instruct"
	StrategySignature   = "signature"
)

// FIM token styles.
const (
	FIMStyleUnderscore = "underscore"
	FIMStyleDash       = "dash"
)

// PromptOptions tunes the masking strategies.
type PromptOptions struct {
	// KeepBuggyCode re-emits the replaced lines as a commented block before each mask.
	KeepBuggyCode bool `mapstructure:"keep_buggy_code"`
	// ExtraMask appends a trailing sentinel to multi-slot prompts.
	ExtraMask bool `mapstructure:"extra_mask"`
	// FIMStyle picks <fim_prefix> (underscore) or <fim-prefix> (dash) tokens.
	FIMStyle string `mapstructure:"fim_style"`
	// MaskToken overrides the single-slot cloze sentinel.
	MaskToken string `mapstructure:"mask_token"`
}

// Masker turns a function pair into a masked prompt. It reports false when the pair does
// not suit the strategy.
type Masker interface {
	Mask(lang source.Language, pair CodePair) (m.MaskedPrompt, bool)
	// Reassemble rebuilds the full candidate function from a prompt and a model
	// completion.
	Reassemble(prompt, completion string) (string, bool)
}

// PromptStrategy builds the prompt of a bug and turns model completions back into
// candidate functions.
type PromptStrategy interface {
	Name() string
	// Build returns false for bugs the strategy does not support; the error is reserved for
	// checkout and workspace failures.
	Build(ctx context.Context, bug m.Bug) (m.MaskedPrompt, bool, error)
	// Candidate turns a raw model response into the candidate function, or false when no
	// code could be extracted.
	Candidate(prompt, response string) (string, bool)
}

type promptStrategy struct {
	name      string
	extractor FunctionExtractor
	masker    Masker
	withTests bool
}

// NewPromptStrategy builds the strategy called name on top of extractor.
func NewPromptStrategy(name string, extractor FunctionExtractor, opts PromptOptions) (PromptStrategy, error) {
	masker, withTests, err := newMasker(name, opts)
	if err != nil {
		return nil, err
	}

	return &promptStrategy{
		name:      name,
		extractor: extractor,
		masker:    masker,
		withTests: withTests,
	}, nil
}

// NewMasker returns the masker of the strategy called name.
func NewMasker(name string, opts PromptOptions) (Masker, error) {
	masker, _, err := newMasker(name, opts)
	return masker, err
}

func newMasker(name string, opts PromptOptions) (Masker, bool, error) {
	switch name {
	case StrategySingleCloze:
		token := opts.MaskToken
		if token == "" {
			token = MaskSentinel(0)
		}

		return &singleClozeMasker{token: token, keepBuggyCode: opts.KeepBuggyCode}, false, nil
	case StrategyMultiCloze:
		return &multiClozeMasker{keepBuggyCode: opts.KeepBuggyCode, extraMask: opts.ExtraMask}, false, nil
	case StrategyFIM:
		tokens, err := fimTokensFor(opts.FIMStyle)
		if err != nil {
			return nil, false, err
		}

		return &fimMasker{tokens: tokens}, false, nil
	case StrategyInstruct:
		return &instructMasker{}, true, nil
	case StrategySignature:
		return &signatureMasker{}, false, nil
	default:
		return nil, false, fmt.Errorf("unknown prompt strategy %q (known: %s)", name, strings.Join(StrategyNames(), ", "))
	}
}

// StrategyNames lists the registered strategies.
func StrategyNames() []string {
	names := []string{StrategySingleCloze, StrategyMultiCloze, StrategyFIM, StrategyInstruct, StrategySignature}
	sort.Strings(names)

	return names
}

func (s *promptStrategy) Name() string {
	return s.name
}

func (s *promptStrategy) Build(ctx context.Context, bug m.Bug) (m.MaskedPrompt, bool, error) {
	// Multi-file ground truths never get a prompt.
	d, err := bug.Diff()
	if err != nil {
		slog.Warn("Unparseable ground truth", "bug", bug.Identifier, "error", err)
		return m.MaskedPrompt{}, false, nil
	}

	if _, err := d.Single(); err != nil {
		slog.Info("Skipping multi-file bug", "bug", bug.Identifier, "files", len(d.Files))
		return m.MaskedPrompt{}, false, nil
	}

	if s.name == StrategySingleCloze && !d.IsSingleContiguousChunk() {
		slog.Info("Skipping bug with more than one change run", "bug", bug.Identifier, "strategy", s.name)
		return m.MaskedPrompt{}, false, nil
	}

	var (
		pair  CodePair
		tests []FailingTest
	)

	if s.withTests {
		pair, tests, err = s.extractor.ExtractWithTests(ctx, bug)
	} else {
		pair, err = s.extractor.Extract(ctx, bug)
	}

	if errors.Is(err, ErrUnsupportedBug) {
		slog.Info("Skipping unsupported bug", "bug", bug.Identifier, "strategy", s.name, "reason", err)
		return m.MaskedPrompt{}, false, nil
	}

	if err != nil {
		return m.MaskedPrompt{}, false, err
	}

	file, _ := bug.BuggyFile()
	lang := source.DetectLanguage(file)

	var (
		prompt m.MaskedPrompt
		ok     bool
	)

	if instruct, isInstruct := s.masker.(*instructMasker); isInstruct {
		prompt, ok = instruct.maskWithTests(lang, pair, tests)
	} else {
		prompt, ok = s.masker.Mask(lang, pair)
	}

	if !ok {
		slog.Info("Strategy does not apply to bug", "bug", bug.Identifier, "strategy", s.name)
		return m.MaskedPrompt{}, false, nil
	}

	return prompt, true, nil
}

func (s *promptStrategy) Candidate(prompt, response string) (string, bool) {
	return Candidate(s.masker, prompt, response)
}

// Candidate reduces a raw model response to a candidate function. Fenced code wins; an
// unfenced response is taken verbatim by the masking strategies and rejected by the
// instruction strategy.
func Candidate(masker Masker, prompt, response string) (string, bool) {
	code, fenced := ExtractCodeBlock(response)
	if !fenced {
		if _, isInstruct := masker.(*instructMasker); isInstruct {
			return "", false
		}

		code = response
	}

	return masker.Reassemble(prompt, code)
}

var leadingWhitespace = regexp.MustCompile(`^\s*`)

// indentation returns the leading whitespace of line, without any newline.
func indentation(line string) string {
	return strings.TrimRight(leadingWhitespace.FindString(line), "\r\n")
}

// diffBody is the single hunk of the unified diff from buggy to fixed, without its header.
func diffBody(pair CodePair) []string {
	body := diff.Body(diff.Unified(pair.BuggyCode, pair.FixedCode))
	if len(body) == 0 {
		return nil
	}

	return body[1:]
}

// changeRun is one maximal run of changed lines and the context before it.
type changeRun struct {
	before  []string
	removed []string
	added   []string
}

// segment splits a diff body into change runs plus the trailing context. Lines keep their
// newline and lose their marker.
func segment(body []string) ([]changeRun, []string) {
	var (
		runs    []changeRun
		current changeRun
		inRun   bool
	)

	for _, line := range body {
		if line == "" {
			continue
		}

		marker, text := line[0], line[1:]

		switch marker {
		case '-':
			current.removed = append(current.removed, text)
			inRun = true
		case '+':
			current.added = append(current.added, text)
			inRun = true
		default:
			if inRun {
				runs = append(runs, current)
				current = changeRun{}
				inRun = false
			}

			current.before = append(current.before, text)
		}
	}

	if inRun {
		runs = append(runs, current)
		return runs, nil
	}

	return runs, current.before
}

// replacedIndent is the indentation of the first replaced line of a run, or of its first
// added line for a pure insertion.
func (r changeRun) replacedIndent() string {
	if len(r.removed) > 0 {
		return indentation(r.removed[0])
	}

	if len(r.added) > 0 {
		return indentation(r.added[0])
	}

	return ""
}

// fill is the text expected in place of the run's mask: the added lines without the
// indentation already emitted before the mask and without the final newline.
func (r changeRun) fill() string {
	text := strings.TrimSuffix(strings.Join(r.added, ""), "\n")
	return strings.TrimPrefix(text, r.replacedIndent())
}

const buggyCodeMarker = "buggy code"

// writeBuggyComment re-emits the removed lines of run as line comments.
func writeBuggyComment(b *strings.Builder, lang source.Language, run changeRun) {
	if len(run.removed) == 0 {
		return
	}

	prefix := lang.CommentPrefix()
	indent := run.replacedIndent()

	b.WriteString(indent + prefix + " " + buggyCodeMarker + "\n")

	for _, line := range run.removed {
		b.WriteString(indent + prefix + " " + strings.TrimPrefix(line, indent))
	}
}

// dropBuggyComments removes the blocks written by writeBuggyComment.
func dropBuggyComments(text string) string {
	lines := strings.SplitAfter(text, "\n")
	kept := make([]string, 0, len(lines))
	inBlock := false

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "// "+buggyCodeMarker || trimmed == "# "+buggyCodeMarker {
			inBlock = true
			continue
		}

		if inBlock && (strings.HasPrefix(trimmed, "//") || strings.HasPrefix(trimmed, "#")) {
			continue
		}

		inBlock = false

		kept = append(kept, line)
	}

	return strings.Join(kept, "")
}
