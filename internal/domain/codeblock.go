package domain

import (
	"strings"

	"rsc.io/markdown"
)

// ExtractCodeBlock returns the content of the first fenced code block of a markdown
// response. It reports false when the response holds none. Indented blocks are ignored:
// raw infill completions are routinely indented.
func ExtractCodeBlock(response string) (string, bool) {
	parser := markdown.Parser{}
	doc := parser.Parse(response)

	var found *markdown.CodeBlock

	walkBlocks(doc, func(block markdown.Block) bool {
		if code, ok := block.(*markdown.CodeBlock); ok && code.Fence != "" {
			found = code
			return false
		}

		return true
	})

	if found == nil {
		return "", false
	}

	return strings.Join(found.Text, "\n"), true
}

// walkBlocks visits b and its descendants in document order until visit returns false.
func walkBlocks(b markdown.Block, visit func(markdown.Block) bool) bool {
	if !visit(b) {
		return false
	}

	var children []markdown.Block

	switch b := b.(type) {
	case *markdown.Document:
		children = b.Blocks
	case *markdown.Quote:
		children = b.Blocks
	case *markdown.List:
		children = b.Items
	case *markdown.Item:
		children = b.Blocks
	}

	for _, child := range children {
		if !walkBlocks(child, visit) {
			return false
		}
	}

	return true
}
