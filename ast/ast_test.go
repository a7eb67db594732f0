package ast

import "testing"

func TestTreeNodeHelpers(t *testing.T) {
	t.Parallel()

	leaf := NewLeaf(TypeText, "hello")
	if leaf.Type != TypeText || leaf.Value != "hello" {
		t.Errorf("NewLeaf() = %+v", leaf)
	}
	if leaf.HasChildren() {
		t.Error("leaf reports children")
	}

	parent := NewParent(TypeParagraph, leaf)
	if !parent.HasChildren() {
		t.Error("parent reports no children")
	}
	if parent.Children[0] != leaf {
		t.Error("parent does not hold its child")
	}
}

func TestAttr(t *testing.T) {
	t.Parallel()

	node := FromAttrs(map[string]string{"type": "linkTool", "href": "/x"})
	if got := node.Attr("href"); got != "/x" {
		t.Errorf("Attr(href) = %q, want %q", got, "/x")
	}
	if got := node.Attr("missing"); got != "" {
		t.Errorf("Attr(missing) = %q, want empty", got)
	}

	var nilNode *TreeNode
	if got := nilNode.Attr("any"); got != "" {
		t.Errorf("nil node Attr() = %q, want empty", got)
	}
	if nilNode.HasChildren() {
		t.Error("nil node reports children")
	}

	bare := NewLeaf(TypeText, "x")
	if got := bare.Attr("any"); got != "" {
		t.Errorf("parser node Attr() = %q, want empty", got)
	}
}
