package content

import (
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// bodyStats holds what the index needs from a markdown body.
type bodyStats struct {
	Summary string
	Words   int
}

// analyzeBody parses body and returns the plain text of its first top-level
// paragraph and the number of words in prose (headings, paragraphs, lists,
// quotes). Code blocks and raw HTML are not counted.
func analyzeBody(body []byte) bodyStats {
	root := goldmark.New().Parser().Parse(text.NewReader(body))

	var (
		all     strings.Builder
		summary string
	)
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if p, ok := n.(*gmast.Paragraph); ok && entering && summary == "" && p.Parent() == root {
			summary = plainText(p, body)
		}
		if !entering {
			if n.Type() == gmast.TypeBlock {
				all.WriteByte(' ')
			}
			return gmast.WalkContinue, nil
		}
		writeInline(&all, n, body)
		return gmast.WalkContinue, nil
	})

	return bodyStats{Summary: summary, Words: len(strings.Fields(all.String()))}
}

// plainText flattens the inline content of n.
func plainText(n gmast.Node, source []byte) string {
	var b strings.Builder
	_ = gmast.Walk(n, func(c gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if entering {
			writeInline(&b, c, source)
		}
		return gmast.WalkContinue, nil
	})
	return strings.Join(strings.Fields(b.String()), " ")
}

func writeInline(b *strings.Builder, n gmast.Node, source []byte) {
	switch node := n.(type) {
	case *gmast.Text:
		b.Write(node.Value(source))
		if node.SoftLineBreak() || node.HardLineBreak() {
			b.WriteByte(' ')
		}
	case *gmast.String:
		b.Write(node.Value)
	}
}
