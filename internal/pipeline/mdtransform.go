package pipeline

import "regexp"

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Compress multiple blank lines to max 2
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)
)

// Normalize prepares raw markdown for parsing: line endings become \n and
// runs of blank lines compress to at most one blank line.
func Normalize(content string) string {
	content = crlfOrCR.ReplaceAllString(content, "\n")
	content = multipleBlankLines.ReplaceAllString(content, "\n\n")
	return content
}
