package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	md2ejs "github.com/alnah/go-md2ejs"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ExitSuccess},
		{"empty markdown", md2ejs.ErrEmptyMarkdown, ExitConvert},
		{"unknown block type", fmt.Errorf("converting: %w", md2ejs.ErrUnknownBlockType), ExitConvert},
		{"unknown custom block", md2ejs.ErrUnknownCustomBlockType, ExitConvert},
		{"malformed tag", md2ejs.ErrMalformedEmbedTag, ExitConvert},
		{"html conversion", md2ejs.ErrHTMLConversion, ExitConvert},
		{"file not found", fmt.Errorf("reading input: %w", os.ErrNotExist), ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"usage", ErrUsage, ExitUsage},
		{"options not found", md2ejs.ErrConfigNotFound, ExitUsage},
		{"options parse", md2ejs.ErrConfigParse, ExitUsage},
		{"unexpected", errors.New("boom"), ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
