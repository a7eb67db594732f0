package md2ejs

import "github.com/alnah/go-md2ejs/ast"

// codeConverter handles fenced code blocks. Language tags are not carried:
// the editor.js code block has no language field.
type codeConverter struct{}

func (c *codeConverter) ToMarkup(data Data) (string, error) {
	return "```\n" + data.String("code") + "\n```\n", nil
}

func (c *codeConverter) ToBlocks(node *ast.TreeNode) ([]Block, error) {
	text, err := c.ToText(node)
	if err != nil {
		return nil, err
	}
	return []Block{{Type: "code", Data: Data{"code": text}}}, nil
}

func (c *codeConverter) ToText(node *ast.TreeNode) (string, error) {
	return node.Value, nil
}
