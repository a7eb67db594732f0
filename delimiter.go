package md2ejs

import "github.com/alnah/go-md2ejs/ast"

// delimiterConverter handles thematic breaks. Stateless in both
// directions.
type delimiterConverter struct{}

func (c *delimiterConverter) ToMarkup(data Data) (string, error) {
	return "***\n", nil
}

func (c *delimiterConverter) ToBlocks(node *ast.TreeNode) ([]Block, error) {
	return []Block{{Type: "delimiter", Data: Data{}}}, nil
}

func (c *delimiterConverter) ToText(node *ast.TreeNode) (string, error) {
	return "", nil
}
