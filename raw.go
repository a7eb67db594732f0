package md2ejs

import (
	"fmt"

	"github.com/alnah/go-md2ejs/ast"
)

// rawConverter serializes editor.js "raw" HTML blocks back to markup. The
// opposite direction is deliberately unsupported: arbitrary HTML blocks in
// markup have no block-JSON mapping.
type rawConverter struct{}

func (c *rawConverter) ToMarkup(data Data) (string, error) {
	return data.String("html") + "\n\n", nil
}

func (c *rawConverter) ToBlocks(node *ast.TreeNode) ([]Block, error) {
	return nil, fmt.Errorf("%w: raw HTML block to JSON", ErrNotImplemented)
}

func (c *rawConverter) ToText(node *ast.TreeNode) (string, error) {
	return "", fmt.Errorf("%w: raw HTML block to text", ErrNotImplemented)
}
