package md2ejs

import (
	"fmt"
	"strings"

	"github.com/alnah/go-md2ejs/ast"
)

// inlineText renders a single inline node to its HTML form.
//
// A node whose type has a registry entry delegates to that converter's
// ToText. Otherwise a fixed wrapper keyed by type applies: plain text and
// raw HTML pass through, emphasis wraps in <i>, strong in <b>, combined
// strong-emphasis in <b><i>, links in an anchor, and inline code in a
// <code class="inline-code"> span. Children, when present, are serialized
// recursively and joined before substitution; a childless node contributes
// its literal value.
//
// In strict mode an unrecognized type is an error; otherwise its value
// passes through unwrapped.
func (r *Registry) inlineText(node *ast.TreeNode) (string, error) {
	if conv, ok := r.byName[node.Type]; ok {
		return conv.ToText(node)
	}

	value := node.Value
	if node.HasChildren() {
		var b strings.Builder
		for _, child := range node.Children {
			s, err := r.inlineText(child)
			if err != nil {
				return "", err
			}
			b.WriteString(s)
		}
		value = b.String()
	}

	switch node.Type {
	case ast.TypeText, ast.TypeHTML:
		return value, nil
	case ast.TypeEmphasis:
		return "<i>" + value + "</i>", nil
	case ast.TypeStrong:
		return "<b>" + value + "</b>", nil
	case ast.TypeStrongEm:
		return "<b><i>" + value + "</i></b>", nil
	case ast.TypeLink:
		return fmt.Sprintf("<a href=%q>%s</a>", node.URL, value), nil
	case ast.TypeInlineCode:
		return `<code class="inline-code">` + value + `</code>`, nil
	}

	if r.strict {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedInlineType, node.Type)
	}
	return value, nil
}

// nodeText joins the inline rendering of a node's children. A childless
// node contributes its literal value directly; re-dispatching it through
// inlineText would loop on container types whose registry ToText lands
// back here (an empty blockquote, say).
func (r *Registry) nodeText(node *ast.TreeNode) (string, error) {
	if !node.HasChildren() {
		return node.Value, nil
	}
	var b strings.Builder
	for _, child := range node.Children {
		s, err := r.inlineText(child)
		if err != nil {
			return "", err
		}
		b.WriteString(s)
	}
	return b.String(), nil
}
