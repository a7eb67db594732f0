package md2ejs

import (
	"reflect"
	"testing"

	"github.com/alnah/go-md2ejs/ast"
)

func quoteNode(children ...*ast.TreeNode) *ast.TreeNode {
	return &ast.TreeNode{
		Type: ast.TypeBlockquote,
		Children: []*ast.TreeNode{
			ast.NewParent(ast.TypeParagraph, children...),
		},
	}
}

func TestQuoteConverter_ToBlocks(t *testing.T) {
	t.Parallel()

	conv, ok := defaultRegistry.Lookup("blockquote")
	if !ok {
		t.Fatal("quote converter not registered")
	}

	tests := []struct {
		name string
		node *ast.TreeNode
		want []Block
	}{
		{
			name: "plain quote",
			node: quoteNode(ast.NewLeaf(ast.TypeText, "To be.")),
			want: []Block{{Type: "quote", Data: Data{
				"alignment": "left", "caption": "", "text": "To be.",
			}}},
		},
		{
			name: "cite extraction",
			node: quoteNode(
				ast.NewLeaf(ast.TypeText, "Deep thought."),
				ast.NewLeaf(ast.TypeHTML, "<cite>"),
				ast.NewLeaf(ast.TypeText, "Ada"),
				ast.NewLeaf(ast.TypeHTML, "</cite>"),
			),
			want: []Block{{Type: "quote", Data: Data{
				"alignment": "left", "caption": "Ada", "text": "Deep thought.",
			}}},
		},
		{
			name: "newlines become breaks",
			node: quoteNode(ast.NewLeaf(ast.TypeText, "one\ntwo")),
			want: []Block{{Type: "quote", Data: Data{
				"alignment": "left", "caption": "", "text": "one<br/>\ntwo",
			}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := conv.ToBlocks(tt.node)
			if err != nil {
				t.Fatalf("ToBlocks() unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ToBlocks() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestQuoteConverter_ToMarkup(t *testing.T) {
	t.Parallel()

	conv, ok := defaultRegistry.Lookup("quote")
	if !ok {
		t.Fatal("quote converter not registered")
	}

	tests := []struct {
		name string
		data Data
		want string
	}{
		{
			name: "without caption",
			data: Data{"text": "Words."},
			want: "> Words.\n",
		},
		{
			name: "with caption",
			data: Data{"text": "Words.", "caption": "Ada"},
			want: "> Words.\n> <cite>Ada</cite>\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := conv.ToMarkup(tt.data)
			if err != nil {
				t.Fatalf("ToMarkup() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ToMarkup() = %q, want %q", got, tt.want)
			}
		})
	}
}
