package md2ejs

import (
	"fmt"
	"strings"

	"github.com/alnah/go-md2ejs/ast"
)

// paragraphConverter handles markup paragraphs. One markup paragraph may
// split into several blocks: inline text accumulates until a trigger child
// (image, pipe-table text, embedded custom tag) flushes it.
type paragraphConverter struct {
	reg *Registry
}

func (c *paragraphConverter) ToMarkup(data Data) (string, error) {
	return data.String("text") + "\n\n", nil
}

// ToBlocks scans children left to right with an explicit index so that a
// multi-node embedded tag run can be consumed in one step. Accumulated
// text flushes as a raw block when a generic HTML child was seen since the
// last flush, otherwise as a paragraph block.
func (c *paragraphConverter) ToBlocks(node *ast.TreeNode) ([]Block, error) {
	var blocks []Block
	var buf strings.Builder
	sawHTML := false

	flush := func() {
		if buf.Len() == 0 {
			return
		}
		if sawHTML {
			blocks = append(blocks, Block{Type: "raw", Data: Data{"html": buf.String()}})
		} else {
			blocks = append(blocks, Block{Type: "paragraph", Data: Data{"text": buf.String()}})
		}
		buf.Reset()
		sawHTML = false
	}

	children := node.Children
	for i := 0; i < len(children); i++ {
		child := children[i]
		switch {
		case child.Type == ast.TypeImage:
			flush()
			img, err := c.convertVia("image", child)
			if err != nil {
				return nil, err
			}
			blocks = append(blocks, img...)

		case child.Type == ast.TypeText && isTableText(child.Value):
			flush()
			table, err := c.convertVia("table", child)
			if err != nil {
				return nil, err
			}
			blocks = append(blocks, table...)

		case child.Type == ast.TypeHTML && isEmbedOpen(child.Value):
			flush()
			tag, skip, err := collectEmbedRun(children, i)
			if err != nil {
				return nil, err
			}
			custom, err := c.convertVia(embedTagName, ast.NewLeaf(ast.TypeHTML, tag))
			if err != nil {
				return nil, err
			}
			blocks = append(blocks, custom...)
			i += skip

		default:
			if child.Type == ast.TypeHTML {
				sawHTML = true
			}
			s, err := c.reg.inlineText(child)
			if err != nil {
				return nil, err
			}
			buf.WriteString(s)
		}
	}
	flush()

	return blocks, nil
}

func (c *paragraphConverter) ToText(node *ast.TreeNode) (string, error) {
	return c.reg.nodeText(node)
}

func (c *paragraphConverter) convertVia(name string, node *ast.TreeNode) ([]Block, error) {
	conv, ok := c.reg.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBlockType, name)
	}
	return conv.ToBlocks(node)
}

// isTableText reports whether a single child's trimmed text looks like a
// pipe table. The check is per child on purpose: detection never considers
// the joined paragraph text.
func isTableText(value string) bool {
	t := strings.TrimSpace(value)
	return len(t) >= 2 && strings.HasPrefix(t, "|") && strings.HasSuffix(t, "|")
}

// collectEmbedRun reassembles an embedded tag starting at children[i]. A
// self-closing tag occupies one node; a paired tag spans an open-tag node,
// body node(s), and a close-tag node. Returns the reassembled tag text and
// the number of extra nodes consumed.
func collectEmbedRun(children []*ast.TreeNode, i int) (string, int, error) {
	open := children[i].Value
	if isEmbedSelfClosing(open) {
		return open, 0, nil
	}
	var b strings.Builder
	b.WriteString(open)
	for j := i + 1; j < len(children); j++ {
		b.WriteString(children[j].Value)
		if children[j].Type == ast.TypeHTML && isEmbedClose(children[j].Value) {
			return b.String(), j - i, nil
		}
	}
	return "", 0, fmt.Errorf("%w: unterminated tag %q", ErrMalformedEmbedTag, open)
}
