package main

import (
	"errors"
	"os"

	md2ejs "github.com/alnah/go-md2ejs"
)

// Exit codes for the md2ejs CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, custom < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags or options file
	ExitIO      = 3 // File not found, permission denied
	ExitConvert = 4 // Conversion rejected the document
)

// exitCodeFor returns the appropriate exit code for an error. It uses
// errors.Is to check wrapped errors, so callers must wrap with %w.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Conversion errors (exit 4)
	if errors.Is(err, md2ejs.ErrInvalidHeadingLevel) ||
		errors.Is(err, md2ejs.ErrUnsupportedInlineType) ||
		errors.Is(err, md2ejs.ErrUnsupportedListChildType) ||
		errors.Is(err, md2ejs.ErrUnknownBlockType) ||
		errors.Is(err, md2ejs.ErrUnknownCustomBlockType) ||
		errors.Is(err, md2ejs.ErrMalformedEmbedTag) ||
		errors.Is(err, md2ejs.ErrNotImplemented) ||
		errors.Is(err, md2ejs.ErrEmptyMarkdown) ||
		errors.Is(err, md2ejs.ErrHTMLConversion) {
		return ExitConvert
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) || errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	// Usage errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, md2ejs.ErrConfigNotFound) ||
		errors.Is(err, md2ejs.ErrConfigParse) {
		return ExitUsage
	}

	return ExitGeneral
}
