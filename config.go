package md2ejs

import (
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-md2ejs/internal/yamlutil"
)

// Sentinel errors for option loading.
var (
	ErrConfigNotFound = errors.New("options file not found")
	ErrConfigParse    = errors.New("failed to parse options file")
)

// Options holds conversion settings. The zero value is not ready for use;
// start from DefaultOptions.
type Options struct {
	// Strict rejects unrecognized inline node types during serialization
	// instead of passing their value through unwrapped.
	Strict bool `yaml:"strict"`

	// ChromaStyle names the chroma color scheme for the HTML preview.
	// Empty emits CSS classes for external stylesheet control.
	ChromaStyle string `yaml:"chromaStyle"`

	// Pretty indents JSON output produced by the CLI.
	Pretty bool `yaml:"pretty"`
}

// DefaultOptions returns the options used when no overrides apply.
func DefaultOptions() Options {
	return Options{Strict: true}
}

// LoadOptions reads an Options YAML file. Unset fields keep their
// defaults.
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Options{}, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return Options{}, fmt.Errorf("reading options file: %w", err)
	}

	opts := DefaultOptions()
	if err := yamlutil.Unmarshal(data, &opts); err != nil {
		return Options{}, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	return opts, nil
}
