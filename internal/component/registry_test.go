package component

import (
	"strings"
	"testing"
)

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()

	reg := DefaultRegistry()

	t.Run("validates", func(t *testing.T) {
		t.Parallel()
		if err := reg.Validate(); err != nil {
			t.Fatalf("Validate() = %v, want nil", err)
		}
	})

	t.Run("cluster is a subset of all", func(t *testing.T) {
		t.Parallel()
		for _, name := range reg.Cluster {
			if !reg.Contains(name) {
				t.Errorf("cluster component %q missing from All", name)
			}
		}
	})

	t.Run("abbreviations are unique", func(t *testing.T) {
		t.Parallel()
		seen := map[string]string{}
		for _, name := range reg.All {
			short := Abbreviate(name)
			if other, ok := seen[short]; ok {
				t.Errorf("%q and %q collide on %q", other, name, short)
			}
			seen[short] = name
		}
	})

	t.Run("short names preserve registry order", func(t *testing.T) {
		t.Parallel()
		short := reg.ShortNames()
		if len(short) != len(reg.All) {
			t.Fatalf("ShortNames() has %d entries, want %d", len(short), len(reg.All))
		}
		if short[0] != "reana" {
			t.Errorf("ShortNames()[0] = %q, want %q", short[0], "reana")
		}
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("cluster entry outside all", func(t *testing.T) {
		t.Parallel()
		reg := &Registry{
			All:     []string{"proj-server"},
			Cluster: []string{"proj-worker"},
		}
		err := reg.Validate()
		if err == nil || !strings.Contains(err.Error(), "proj-worker") {
			t.Errorf("Validate() = %v, want error naming proj-worker", err)
		}
	})

	t.Run("abbreviation collision", func(t *testing.T) {
		t.Parallel()
		reg := &Registry{
			All: []string{"proj-api-server", "proj-auth-server"},
		}
		err := reg.Validate()
		if err == nil || !strings.Contains(err.Error(), "p-a-server") {
			t.Errorf("Validate() = %v, want error naming the shared abbreviation", err)
		}
	})
}
