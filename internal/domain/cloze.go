package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ASSERT-KTH/elle-elle-aime-sub000/internal/diff"
	m "github.com/ASSERT-KTH/elle-elle-aime-sub000/internal/model"
	"github.com/ASSERT-KTH/elle-elle-aime-sub000/internal/source"
)

// MaskSentinel is the numbered multi-slot cloze sentinel.
func MaskSentinel(i int) string {
	return fmt.Sprintf("<|mask:%d|>", i)
}

const endOfMask = "<|endofmask|>"

var sentinelPattern = regexp.MustCompile(`<\|mask:(\d+)\|>`)

func writeLines(b *strings.Builder, lines []string) {
	for _, line := range lines {
		b.WriteString(line)
	}
}

// singleClozeMasker masks the only change run of a function with one token.
type singleClozeMasker struct {
	token         string
	keepBuggyCode bool
}

func (c *singleClozeMasker) Mask(lang source.Language, pair CodePair) (m.MaskedPrompt, bool) {
	unified := diff.Unified(pair.BuggyCode, pair.FixedCode)

	body := diffBody(pair)
	if diff.ChangeRuns(body) != 1 {
		return m.MaskedPrompt{}, false
	}

	runs, tail := segment(body)

	run := runs[0]

	var b strings.Builder

	writeLines(&b, run.before)

	if c.keepBuggyCode {
		writeBuggyComment(&b, lang, run)
	}

	b.WriteString(run.replacedIndent() + c.token + "\n")
	writeLines(&b, tail)

	return m.MaskedPrompt{
		BuggyCode: pair.BuggyCode,
		FixedCode: pair.FixedCode,
		Prompt:    strings.TrimSuffix(b.String(), "\n"),
		Target:    strictFill(unified, run),
		Sentinels: []string{c.token},
	}, true
}

// strictFill is the fill of the only change run of a unified diff: its longest added run.
func strictFill(unified []string, run changeRun) string {
	added := diff.LongestHunkBySign(strings.Join(unified, ""), '+')
	return strings.TrimPrefix(strings.Join(added, "\n"), run.replacedIndent())
}

func (c *singleClozeMasker) Reassemble(prompt, completion string) (string, bool) {
	text := dropBuggyComments(prompt)

	idx := strings.Index(text, c.token)
	if idx < 0 {
		return "", false
	}

	completion = strings.TrimSuffix(strings.ReplaceAll(completion, endOfMask, ""), "\n")

	return text[:idx] + completion + text[idx+len(c.token):], true
}

// multiClozeMasker gives every change run its own numbered sentinel.
type multiClozeMasker struct {
	keepBuggyCode bool
	extraMask     bool
}

func (c *multiClozeMasker) Mask(lang source.Language, pair CodePair) (m.MaskedPrompt, bool) {
	runs, tail := segment(diffBody(pair))
	if len(runs) == 0 {
		return m.MaskedPrompt{}, false
	}

	// A whole-function insertion or removal leaves nothing but the mask.
	if len(runs) == 1 && len(runs[0].before) == 0 && len(tail) == 0 {
		return m.MaskedPrompt{
			BuggyCode: pair.BuggyCode,
			FixedCode: pair.FixedCode,
			Prompt:    MaskSentinel(0),
			Target:    MaskSentinel(0) + strings.TrimSuffix(strings.Join(runs[0].added, ""), "\n"),
			Sentinels: []string{MaskSentinel(0)},
		}, true
	}

	var (
		b         strings.Builder
		target    strings.Builder
		sentinels []string
	)

	for i, run := range runs {
		sentinel := MaskSentinel(i)

		writeLines(&b, run.before)

		if c.keepBuggyCode {
			writeBuggyComment(&b, lang, run)
		}

		b.WriteString(run.replacedIndent() + sentinel + "\n")
		target.WriteString(sentinel + run.fill())

		sentinels = append(sentinels, sentinel)
	}

	writeLines(&b, tail)

	prompt := strings.TrimSuffix(b.String(), "\n")

	if c.extraMask {
		prompt += "\n" + MaskSentinel(0)
		sentinels = append(sentinels, MaskSentinel(0))
	}

	return m.MaskedPrompt{
		BuggyCode: pair.BuggyCode,
		FixedCode: pair.FixedCode,
		Prompt:    prompt,
		Target:    target.String(),
		Sentinels: sentinels,
	}, true
}

func (c *multiClozeMasker) Reassemble(prompt, completion string) (string, bool) {
	text := dropBuggyComments(prompt)
	if c.extraMask && text != MaskSentinel(0) {
		text = strings.TrimSuffix(text, "\n"+MaskSentinel(0))
	}

	slots := len(sentinelPattern.FindAllString(text, -1))
	if slots == 0 {
		return "", false
	}

	completion = strings.ReplaceAll(completion, endOfMask, "")

	fills := splitInfills(completion)
	if len(fills) == 0 {
		if slots > 1 {
			return "", false
		}

		fills = map[int]string{0: completion}
	}

	for i := 0; i < slots; i++ {
		text = strings.Replace(text, MaskSentinel(i), strings.TrimSuffix(fills[i], "\n"), 1)
	}

	return text, true
}

// splitInfills reads "<|mask:0|>a<|mask:1|>b" completions into slot texts.
func splitInfills(completion string) map[int]string {
	matches := sentinelPattern.FindAllStringSubmatchIndex(completion, -1)
	fills := make(map[int]string, len(matches))

	for i, match := range matches {
		slot, err := strconv.Atoi(completion[match[2]:match[3]])
		if err != nil {
			continue
		}

		end := len(completion)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}

		if _, seen := fills[slot]; !seen {
			fills[slot] = completion[match[1]:end]
		}
	}

	return fills
}
