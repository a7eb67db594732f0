// Package ast defines the markup abstract syntax tree consumed and produced
// by the block converters.
//
// TreeNode is a tagged union over markup node kinds: a node always carries a
// Type, leaf nodes carry a Value, container nodes carry Children, and a few
// kinds carry extra fields (Depth for headings, Ordered for lists, URL and
// Alt for images and links). Nodes decoded from an embedded custom tag carry
// their attributes in Attrs instead.
package ast

// Node type names produced by the markup parser.
const (
	TypeHeading       = "heading"
	TypeParagraph     = "paragraph"
	TypeList          = "list"
	TypeListItem      = "listItem"
	TypeCode          = "code"
	TypeImage         = "image"
	TypeBlockquote    = "blockquote"
	TypeThematicBreak = "thematicBreak"
	TypeText          = "text"
	TypeHTML          = "html"
	TypeEmphasis      = "emphasis"
	TypeStrong        = "strong"
	TypeStrongEm      = "strongEmphasis"
	TypeLink          = "link"
	TypeInlineCode    = "inlineCode"
)

// TreeNode is one node of the markup tree.
type TreeNode struct {
	Type     string
	Value    string
	Children []*TreeNode

	Depth   int    // headings: 1..6
	Ordered bool   // lists
	URL     string // links, images
	Alt     string // images

	// Attrs holds the attribute map of a decoded <editorjs> tag. It is nil
	// for nodes produced by the markup parser.
	Attrs map[string]string
}

// NewLeaf returns a childless node of the given type holding a literal value.
func NewLeaf(typ, value string) *TreeNode {
	return &TreeNode{Type: typ, Value: value}
}

// NewParent returns a node of the given type over the given children.
func NewParent(typ string, children ...*TreeNode) *TreeNode {
	return &TreeNode{Type: typ, Children: children}
}

// FromAttrs returns a node standing in for a decoded custom tag. The node
// has no parser-assigned type; converters read it through Attr.
func FromAttrs(attrs map[string]string) *TreeNode {
	return &TreeNode{Attrs: attrs}
}

// Attr returns the named tag attribute, or "" when absent. It works on any
// node so converters can be invoked uniformly from the dispatch path.
func (n *TreeNode) Attr(name string) string {
	if n == nil || n.Attrs == nil {
		return ""
	}
	return n.Attrs[name]
}

// HasChildren reports whether the node has at least one child.
func (n *TreeNode) HasChildren() bool {
	return n != nil && len(n.Children) > 0
}
