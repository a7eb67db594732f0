package md2ejs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeTempOptions(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "options.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing options file: %v", err)
	}
	return path
}

func TestLoadOptions(t *testing.T) {
	t.Parallel()

	t.Run("full file", func(t *testing.T) {
		t.Parallel()

		path := writeTempOptions(t, "strict: false\nchromaStyle: monokai\npretty: true\n")
		got, err := LoadOptions(path)
		if err != nil {
			t.Fatalf("LoadOptions() unexpected error: %v", err)
		}
		want := Options{Strict: false, ChromaStyle: "monokai", Pretty: true}
		if got != want {
			t.Errorf("LoadOptions() = %+v, want %+v", got, want)
		}
	})

	t.Run("unset fields keep defaults", func(t *testing.T) {
		t.Parallel()

		path := writeTempOptions(t, "pretty: true\n")
		got, err := LoadOptions(path)
		if err != nil {
			t.Fatalf("LoadOptions() unexpected error: %v", err)
		}
		if !got.Strict {
			t.Error("Strict lost its default, want true")
		}
		if !got.Pretty {
			t.Error("Pretty = false, want true")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := LoadOptions(filepath.Join(t.TempDir(), "absent.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("LoadOptions() error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("malformed file", func(t *testing.T) {
		t.Parallel()

		path := writeTempOptions(t, "strict: [unclosed\n")
		_, err := LoadOptions(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("LoadOptions() error = %v, want ErrConfigParse", err)
		}
	})
}

func TestDefaultOptions(t *testing.T) {
	t.Parallel()

	got := DefaultOptions()
	if !got.Strict {
		t.Error("DefaultOptions().Strict = false, want true")
	}
	if got.ChromaStyle != "" || got.Pretty {
		t.Errorf("DefaultOptions() = %+v, want only Strict set", got)
	}
}
