package md2ejs

import (
	"errors"
	"testing"

	"github.com/alnah/go-md2ejs/ast"
)

func TestInlineText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		node *ast.TreeNode
		want string
	}{
		{
			name: "plain text",
			node: ast.NewLeaf(ast.TypeText, "hello"),
			want: "hello",
		},
		{
			name: "html passthrough",
			node: ast.NewLeaf(ast.TypeHTML, "<cite>Ada</cite>"),
			want: "<cite>Ada</cite>",
		},
		{
			name: "emphasis",
			node: ast.NewParent(ast.TypeEmphasis, ast.NewLeaf(ast.TypeText, "it")),
			want: "<i>it</i>",
		},
		{
			name: "strong",
			node: ast.NewParent(ast.TypeStrong, ast.NewLeaf(ast.TypeText, "bold")),
			want: "<b>bold</b>",
		},
		{
			name: "strong emphasis",
			node: ast.NewParent(ast.TypeStrongEm, ast.NewLeaf(ast.TypeText, "both")),
			want: "<b><i>both</i></b>",
		},
		{
			name: "link",
			node: &ast.TreeNode{
				Type:     ast.TypeLink,
				URL:      "https://example.com",
				Children: []*ast.TreeNode{ast.NewLeaf(ast.TypeText, "here")},
			},
			want: `<a href="https://example.com">here</a>`,
		},
		{
			name: "inline code",
			node: ast.NewLeaf(ast.TypeInlineCode, "x := 1"),
			want: `<code class="inline-code">x := 1</code>`,
		},
		{
			name: "nested styling",
			node: ast.NewParent(ast.TypeStrong,
				ast.NewLeaf(ast.TypeText, "a "),
				ast.NewParent(ast.TypeEmphasis, ast.NewLeaf(ast.TypeText, "b")),
			),
			want: "<b>a <i>b</i></b>",
		},
		{
			name: "registry delegation for image",
			node: &ast.TreeNode{Type: ast.TypeImage, URL: "/i.png", Alt: "cap"},
			want: "cap",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := defaultRegistry.inlineText(tt.node)
			if err != nil {
				t.Fatalf("inlineText() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("inlineText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInlineText_StrictMode(t *testing.T) {
	t.Parallel()

	node := ast.NewLeaf("footnote", "[^1]")

	_, err := defaultRegistry.inlineText(node)
	if !errors.Is(err, ErrUnsupportedInlineType) {
		t.Fatalf("strict inlineText() error = %v, want ErrUnsupportedInlineType", err)
	}

	relaxed := newRegistry(false)
	got, err := relaxed.inlineText(node)
	if err != nil {
		t.Fatalf("non-strict inlineText() unexpected error: %v", err)
	}
	if got != "[^1]" {
		t.Errorf("non-strict inlineText() = %q, want value passthrough", got)
	}
}

func TestNodeText_FallsBackToOwnValue(t *testing.T) {
	t.Parallel()

	// No children: the node's own value must not vanish.
	node := ast.NewLeaf(ast.TypeText, "solo")

	got, err := defaultRegistry.nodeText(node)
	if err != nil {
		t.Fatalf("nodeText() unexpected error: %v", err)
	}
	if got != "solo" {
		t.Errorf("nodeText() = %q, want %q", got, "solo")
	}
}

func TestNodeText_EmptyContainer(t *testing.T) {
	t.Parallel()

	// A childless container whose type is registered must not re-enter
	// its own converter; it renders as empty text.
	tests := []struct {
		name string
		node *ast.TreeNode
	}{
		{"empty blockquote", &ast.TreeNode{Type: ast.TypeBlockquote}},
		{"empty paragraph", &ast.TreeNode{Type: ast.TypeParagraph}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := defaultRegistry.nodeText(tt.node)
			if err != nil {
				t.Fatalf("nodeText() unexpected error: %v", err)
			}
			if got != "" {
				t.Errorf("nodeText() = %q, want empty", got)
			}
		})
	}
}
