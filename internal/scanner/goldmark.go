// Package scanner provides the default Markdown structural scanner: a
// goldmark-backed single pass that classifies content into prose, image, and
// code-block units without exposing the underlying document tree.
package scanner

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/goliatone/go-readtime/pkg/interfaces"
)

// Goldmark implements interfaces.Scanner using the goldmark engine. The
// scanner is intentionally stateless so callers can reuse a single instance
// across goroutines without additional locking.
type Goldmark struct {
	md goldmark.Markdown
}

var _ interfaces.Scanner = (*Goldmark)(nil)

// NewGoldmark constructs a scanner with the default extension set (GFM,
// autolinks, task lists) so table cells and strikethrough text classify as
// prose instead of falling through as literal syntax.
func NewGoldmark() *Goldmark {
	return &Goldmark{
		md: goldmark.New(goldmark.WithExtensions(
			extension.GFM,
			extension.Linkify,
			extension.TaskList,
		)),
	}
}

// Scan implements interfaces.Scanner. The walk emits one UnitImage per image
// reference, one UnitCodeBlock per fenced or indented block, and UnitProse
// for every remaining text node with syntax markers already removed by the
// parser. Image alt text, link destinations, bare autolink URLs, and raw
// HTML contribute nothing. Unterminated fences inherit goldmark's recovery:
// the rest of the input belongs to the open block, and scanning never fails
// on malformed input.
func (g *Goldmark) Scan(source []byte, emit func(interfaces.Unit) error) error {
	if len(source) == 0 {
		return nil
	}

	root := g.md.Parser().Parse(text.NewReader(source))

	return ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Image:
			if err := emit(interfaces.Unit{Kind: interfaces.UnitImage}); err != nil {
				return ast.WalkStop, err
			}
			// Alt text renders as a fallback, not as readable prose.
			return ast.WalkSkipChildren, nil
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			if err := emit(interfaces.Unit{Kind: interfaces.UnitCodeBlock}); err != nil {
				return ast.WalkStop, err
			}
			return ast.WalkSkipChildren, nil
		case *ast.AutoLink:
			// Bare URLs are navigation, not prose.
			return ast.WalkSkipChildren, nil
		case *ast.Text:
			return emitProse(emit, string(node.Segment.Value(source)))
		case *ast.String:
			return emitProse(emit, string(node.Value))
		}
		return ast.WalkContinue, nil
	})
}

func emitProse(emit func(interfaces.Unit) error, segment string) (ast.WalkStatus, error) {
	if segment == "" {
		return ast.WalkContinue, nil
	}
	if err := emit(interfaces.Unit{Kind: interfaces.UnitProse, Text: segment}); err != nil {
		return ast.WalkStop, err
	}
	return ast.WalkContinue, nil
}
