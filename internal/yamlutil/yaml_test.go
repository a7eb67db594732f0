package yamlutil

import (
	"errors"
	"strings"
	"testing"
)

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	type settings struct {
		Name  string `yaml:"name"`
		Count int    `yaml:"count"`
	}

	t.Run("valid document", func(t *testing.T) {
		t.Parallel()

		var got settings
		if err := Unmarshal([]byte("name: demo\ncount: 3\n"), &got); err != nil {
			t.Fatalf("Unmarshal() unexpected error: %v", err)
		}
		if got.Name != "demo" || got.Count != 3 {
			t.Errorf("Unmarshal() = %+v, want {demo 3}", got)
		}
	})

	t.Run("empty data", func(t *testing.T) {
		t.Parallel()

		var got settings
		if err := Unmarshal(nil, &got); !errors.Is(err, ErrNilData) {
			t.Errorf("Unmarshal() error = %v, want ErrNilData", err)
		}
	})

	t.Run("nil destination", func(t *testing.T) {
		t.Parallel()

		if err := Unmarshal([]byte("name: demo\n"), nil); !errors.Is(err, ErrNilDestination) {
			t.Errorf("Unmarshal() error = %v, want ErrNilDestination", err)
		}
	})

	t.Run("oversized input", func(t *testing.T) {
		t.Parallel()

		big := []byte(strings.Repeat("a", MaxInputSize+1))
		var got settings
		if err := Unmarshal(big, &got); !errors.Is(err, ErrInputTooLarge) {
			t.Errorf("Unmarshal() error = %v, want ErrInputTooLarge", err)
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()

		var got settings
		if err := Unmarshal([]byte("name: [unclosed\n"), &got); err == nil {
			t.Error("Unmarshal() expected error for malformed input")
		}
	})
}
