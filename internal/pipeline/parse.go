package pipeline

import (
	"strings"

	"github.com/yuin/goldmark"
	gast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/alnah/go-md2ejs/ast"
)

// mdParser is a bare CommonMark parser: no GFM tables, no task lists. Safe
// for concurrent use; each Parse call carries its own context.
var mdParser = goldmark.New().Parser()

// Parse parses markdown into the tree shape the block converters consume.
// The returned root node holds one child per top-level markup block.
func Parse(source []byte) *ast.TreeNode {
	doc := mdParser.Parse(text.NewReader(source))
	root := &ast.TreeNode{Type: "root"}
	for c := doc.FirstChild(); c != nil; c = c.NextSibling() {
		if n := convertBlock(c, source); n != nil {
			root.Children = append(root.Children, n)
		}
	}
	return root
}

func convertBlock(n gast.Node, source []byte) *ast.TreeNode {
	switch b := n.(type) {
	case *gast.Heading:
		return &ast.TreeNode{
			Type:     ast.TypeHeading,
			Depth:    b.Level,
			Children: convertInlines(b, source),
		}
	case *gast.Paragraph:
		return &ast.TreeNode{Type: ast.TypeParagraph, Children: convertInlines(b, source)}
	case *gast.TextBlock:
		// Tight list items hold their text in a TextBlock; the converters
		// only know paragraphs.
		return &ast.TreeNode{Type: ast.TypeParagraph, Children: convertInlines(b, source)}
	case *gast.List:
		node := &ast.TreeNode{Type: ast.TypeList, Ordered: b.IsOrdered()}
		node.Children = convertChildBlocks(b, source)
		return node
	case *gast.ListItem:
		return &ast.TreeNode{Type: ast.TypeListItem, Children: convertChildBlocks(b, source)}
	case *gast.FencedCodeBlock:
		return ast.NewLeaf(ast.TypeCode, blockLines(b, source))
	case *gast.CodeBlock:
		return ast.NewLeaf(ast.TypeCode, blockLines(b, source))
	case *gast.Blockquote:
		return &ast.TreeNode{Type: ast.TypeBlockquote, Children: convertChildBlocks(b, source)}
	case *gast.ThematicBreak:
		return &ast.TreeNode{Type: ast.TypeThematicBreak}
	case *gast.HTMLBlock:
		return ast.NewLeaf(ast.TypeHTML, htmlBlockText(b, source))
	}
	return nil
}

func convertChildBlocks(n gast.Node, source []byte) []*ast.TreeNode {
	var out []*ast.TreeNode
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if converted := convertBlock(c, source); converted != nil {
			out = append(out, converted)
		}
	}
	return out
}

// convertInlines converts a block's inline children. Consecutive text
// segments merge into one text node, with soft and hard line breaks
// contributing a newline, so multi-line literal runs (pipe tables in
// particular) arrive at the converters as a single child.
func convertInlines(parent gast.Node, source []byte) []*ast.TreeNode {
	var out []*ast.TreeNode
	var buf strings.Builder

	flush := func() {
		if buf.Len() == 0 {
			return
		}
		out = append(out, ast.NewLeaf(ast.TypeText, buf.String()))
		buf.Reset()
	}

	for c := parent.FirstChild(); c != nil; c = c.NextSibling() {
		switch i := c.(type) {
		case *gast.Text:
			buf.Write(i.Segment.Value(source))
			if i.SoftLineBreak() || i.HardLineBreak() {
				buf.WriteString("\n")
			}
		case *gast.String:
			buf.Write(i.Value)
		case *gast.CodeSpan:
			flush()
			out = append(out, ast.NewLeaf(ast.TypeInlineCode, inlineValue(i, source)))
		case *gast.Emphasis:
			flush()
			out = append(out, convertEmphasis(i, source))
		case *gast.Link:
			flush()
			out = append(out, &ast.TreeNode{
				Type:     ast.TypeLink,
				URL:      string(i.Destination),
				Children: convertInlines(i, source),
			})
		case *gast.AutoLink:
			flush()
			url := string(i.URL(source))
			label := string(i.Label(source))
			out = append(out, &ast.TreeNode{
				Type:     ast.TypeLink,
				URL:      url,
				Children: []*ast.TreeNode{ast.NewLeaf(ast.TypeText, label)},
			})
		case *gast.Image:
			flush()
			out = append(out, &ast.TreeNode{
				Type: ast.TypeImage,
				URL:  string(i.Destination),
				Alt:  inlineValue(i, source),
			})
		case *gast.RawHTML:
			flush()
			out = append(out, ast.NewLeaf(ast.TypeHTML, rawHTMLText(i, source)))
		}
	}
	flush()

	return out
}

// convertEmphasis maps goldmark's leveled emphasis onto the converter
// vocabulary. ***text*** parses as an emphasis wrapping a strong with no
// siblings; that exact shape collapses into a single strongEmphasis node.
func convertEmphasis(n *gast.Emphasis, source []byte) *ast.TreeNode {
	if inner, ok := n.FirstChild().(*gast.Emphasis); ok &&
		n.ChildCount() == 1 && inner.Level != n.Level {
		return &ast.TreeNode{Type: ast.TypeStrongEm, Children: convertInlines(inner, source)}
	}
	typ := ast.TypeEmphasis
	if n.Level >= 2 {
		typ = ast.TypeStrong
	}
	return &ast.TreeNode{Type: typ, Children: convertInlines(n, source)}
}

// inlineValue concatenates the literal text under an inline node.
func inlineValue(n gast.Node, source []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *gast.Text:
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteString("\n")
			}
		case *gast.String:
			b.Write(t.Value)
		default:
			b.WriteString(inlineValue(c, source))
		}
	}
	return b.String()
}

// blockLines joins a block node's line segments, dropping the final
// newline so code values round-trip without growing.
func blockLines(n gast.Node, source []byte) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(source))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func htmlBlockText(n *gast.HTMLBlock, source []byte) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(source))
	}
	if n.HasClosure() {
		b.Write(n.ClosureLine.Value(source))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func rawHTMLText(n *gast.RawHTML, source []byte) string {
	var b strings.Builder
	for i := 0; i < n.Segments.Len(); i++ {
		seg := n.Segments.At(i)
		b.Write(seg.Value(source))
	}
	return b.String()
}
