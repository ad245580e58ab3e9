package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
	"github.com/smacker/go-tree-sitter/python"
)

// ErrRegionNotFound is returned when no function-like declaration encloses the requested
// lines, or no declaration carries the requested name.
var ErrRegionNotFound = errors.New("region not found")

// Region is a function-like declaration inside a file. Lines are 1-based and inclusive.
// Text starts at the beginning of StartLine (indentation included) and ends at EndByte, so
// it is always a literal substring of the parsed content.
type Region struct {
	Name      string
	Kind      string
	StartLine int
	EndLine   int
	StartByte int
	EndByte   int
	Text      string
}

// Locator finds function-like regions in source text.
type Locator interface {
	// Locate returns the smallest declaration enclosing every line in lines. When some
	// lines sit in the comment directly above a declaration, the region starts there.
	Locate(ctx context.Context, lang Language, content []byte, lines []int) (Region, error)
	// FindFunction returns the first declaration named name.
	FindFunction(ctx context.Context, lang Language, content []byte, name string) (Region, error)
}

type treeSitterLocator struct{}

// NewLocator constructs a Locator backed by tree-sitter grammars.
func NewLocator() Locator {
	return &treeSitterLocator{}
}

var declarationKinds = map[Language]map[string]bool{
	LanguageJava: {
		"method_declaration":              true,
		"constructor_declaration":         true,
		"compact_constructor_declaration": true,
		"static_initializer":              true,
	},
	LanguagePython: {
		"function_definition": true,
	},
}

func grammar(lang Language) (*sitter.Language, error) {
	switch lang {
	case LanguageJava:
		return java.GetLanguage(), nil
	case LanguagePython:
		return python.GetLanguage(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
	}
}

func (l *treeSitterLocator) Locate(ctx context.Context, lang Language, content []byte, lines []int) (Region, error) {
	if len(lines) == 0 {
		return Region{}, fmt.Errorf("%w: no anchor lines", ErrRegionNotFound)
	}

	first, last := lines[0], lines[0]
	for _, line := range lines[1:] {
		first = min(first, line)
		last = max(last, line)
	}

	var best, bestFrom *sitter.Node

	err := l.walkDeclarations(ctx, lang, content, func(node *sitter.Node) bool {
		from := node
		if first < int(node.StartPoint().Row)+1 {
			// Anchors above the declaration must fall in its leading comment.
			from = leadingComment(lang, node)
		}

		if from == nil || int(from.StartPoint().Row)+1 > first || int(node.EndPoint().Row)+1 < last {
			return true
		}

		if best == nil || node.EndByte()-node.StartByte() < best.EndByte()-best.StartByte() {
			best, bestFrom = node, from
		}

		return true
	})
	if err != nil {
		return Region{}, err
	}

	if best == nil {
		return Region{}, fmt.Errorf("%w: lines %d-%d", ErrRegionNotFound, first, last)
	}

	region := newRegion(best, content)
	if bestFrom != best {
		region.StartLine = int(bestFrom.StartPoint().Row) + 1
		region.StartByte = bytes.LastIndexByte(content[:bestFrom.StartByte()], '\n') + 1
		region.Text = string(content[region.StartByte:region.EndByte])
	}

	return region, nil
}

var commentKinds = map[Language]map[string]bool{
	LanguageJava:   {"block_comment": true, "line_comment": true, "comment": true},
	LanguagePython: {"comment": true},
}

// leadingComment returns the first of the comments directly above node, with no blank
// line in between, or nil when there is none.
func leadingComment(lang Language, node *sitter.Node) *sitter.Node {
	var first *sitter.Node

	current := node
	for prev := current.PrevNamedSibling(); prev != nil; prev = prev.PrevNamedSibling() {
		if !commentKinds[lang][prev.Type()] || prev.EndPoint().Row+1 < current.StartPoint().Row {
			break
		}

		first, current = prev, prev
	}

	return first
}

func (l *treeSitterLocator) FindFunction(ctx context.Context, lang Language, content []byte, name string) (Region, error) {
	var found *sitter.Node

	err := l.walkDeclarations(ctx, lang, content, func(node *sitter.Node) bool {
		if declarationName(node, content) == name {
			found = node
			return false
		}

		return true
	})
	if err != nil {
		return Region{}, err
	}

	if found == nil {
		return Region{}, fmt.Errorf("%w: %s", ErrRegionNotFound, name)
	}

	return newRegion(found, content), nil
}

// walkDeclarations parses content and calls visit for every declaration node in document
// order until visit returns false.
func (l *treeSitterLocator) walkDeclarations(ctx context.Context, lang Language, content []byte, visit func(*sitter.Node) bool) error {
	language, err := grammar(lang)
	if err != nil {
		return err
	}

	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(language)

	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return fmt.Errorf("parse %s source: %w", lang, err)
	}
	defer tree.Close()

	kinds := declarationKinds[lang]
	stack := []*sitter.Node{tree.RootNode()}

	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if kinds[node.Type()] && !visit(node) {
			return nil
		}

		for i := int(node.NamedChildCount()) - 1; i >= 0; i-- {
			stack = append(stack, node.NamedChild(i))
		}
	}

	return nil
}

func declarationName(node *sitter.Node, content []byte) string {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return ""
	}

	return nameNode.Content(content)
}

func newRegion(node *sitter.Node, content []byte) Region {
	start := int(node.StartByte())
	end := int(node.EndByte())
	lineStart := bytes.LastIndexByte(content[:start], '\n') + 1

	return Region{
		Name:      declarationName(node, content),
		Kind:      node.Type(),
		StartLine: int(node.StartPoint().Row) + 1,
		EndLine:   int(node.EndPoint().Row) + 1,
		StartByte: lineStart,
		EndByte:   end,
		Text:      string(content[lineStart:end]),
	}
}
