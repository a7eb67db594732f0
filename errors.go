package md2ejs

import "errors"

// Sentinel errors for conversion operations.
var (
	ErrEmptyMarkdown = errors.New("markdown content cannot be empty")

	// Block validation errors.
	ErrInvalidHeadingLevel      = errors.New("heading level must be between 1 and 6")
	ErrUnsupportedInlineType    = errors.New("unsupported inline node type")
	ErrUnsupportedListChildType = errors.New("unsupported child type in list item")

	// Dispatch errors.
	ErrUnknownBlockType       = errors.New("unknown block type")
	ErrUnknownCustomBlockType = errors.New("unknown custom block type")

	// Directions deliberately left unsupported.
	ErrNotImplemented = errors.New("conversion direction not implemented")

	// Embedded tag decoding errors.
	ErrMalformedEmbedTag = errors.New("malformed editorjs tag")

	// HTML preview errors.
	ErrHTMLConversion = errors.New("HTML conversion failed")
)
