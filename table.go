package md2ejs

import (
	"fmt"
	"strings"

	"github.com/alnah/go-md2ejs/ast"
)

// tableConverter handles pipe tables. The markup parser is configured
// without table support, so a table reaches tree-to-block conversion as
// literal paragraph text and is parsed here line by line. Cells are
// text-only; embedded pipes are not escaped.
type tableConverter struct{}

func (c *tableConverter) ToMarkup(data Data) (string, error) {
	var rows [][]string
	switch v := data["content"].(type) {
	case [][]string:
		rows = v
	case []any:
		for _, row := range v {
			rows = append(rows, asStrings(row))
		}
	}
	if len(rows) == 0 {
		return "", nil
	}

	width := len(rows[0])
	var lines []string
	if data.Bool("withHeadings") {
		lines = append(lines, renderTableRow(rows[0]), tableSeparator(width))
		rows = rows[1:]
	} else {
		// No heading row was present; synthesize a blank header so the
		// separator keeps the body out of header position on reparse.
		lines = append(lines, renderTableRow(make([]string, width)), tableSeparator(width))
	}
	for _, row := range rows {
		lines = append(lines, renderTableRow(row))
	}
	return strings.Join(lines, "\n") + "\n", nil
}

// ToBlocks parses the node's literal text: each line splits on "|" with
// the outer empty fields dropped. Row 0 is the header iff any of its cells
// is non-empty, otherwise it is discarded; row 1 is always the separator
// and skipped; the rest is body.
func (c *tableConverter) ToBlocks(node *ast.TreeNode) ([]Block, error) {
	var rows [][]string
	for _, line := range strings.Split(strings.TrimSpace(node.Value), "\n") {
		rows = append(rows, parseTableRow(line))
	}

	withHeadings := false
	content := [][]string{}
	for i, row := range rows {
		switch {
		case i == 0:
			if anyNonEmpty(row) {
				withHeadings = true
				content = append(content, row)
			}
		case i == 1:
			// separator row
		default:
			content = append(content, row)
		}
	}

	return []Block{{
		Type: "table",
		Data: Data{"withHeadings": withHeadings, "content": content},
	}}, nil
}

func (c *tableConverter) ToText(node *ast.TreeNode) (string, error) {
	return "", fmt.Errorf("%w: table to text", ErrNotImplemented)
}

func renderTableRow(cells []string) string {
	return "| " + strings.Join(cells, " | ") + " |"
}

func tableSeparator(width int) string {
	cells := make([]string, width)
	for i := range cells {
		cells[i] = "---"
	}
	return renderTableRow(cells)
}

func parseTableRow(line string) []string {
	fields := strings.Split(line, "|")
	if len(fields) > 0 && strings.TrimSpace(fields[0]) == "" {
		fields = fields[1:]
	}
	if n := len(fields); n > 0 && strings.TrimSpace(fields[n-1]) == "" {
		fields = fields[:n-1]
	}
	cells := make([]string, len(fields))
	for i, f := range fields {
		cells[i] = strings.TrimSpace(f)
	}
	return cells
}

func anyNonEmpty(cells []string) bool {
	for _, c := range cells {
		if c != "" {
			return true
		}
	}
	return false
}
