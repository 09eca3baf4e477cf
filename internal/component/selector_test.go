package component

import (
	"slices"
	"strings"
	"testing"
)

// newTestSelector returns a selector over the default registry that records
// warnings and reports a fixed cwd basename.
func newTestSelector(cwd string) (*Selector, *[]string) {
	var warnings []string
	s := &Selector{
		Registry: DefaultRegistry(),
		CwdBase:  func() string { return cwd },
		Warn:     func(msg string) { warnings = append(warnings, msg) },
	}
	return s, &warnings
}

// assertSameSet fails unless got and want contain the same names,
// ignoring order.
func assertSameSet(t *testing.T, got, want []string) {
	t.Helper()
	g := slices.Clone(got)
	w := slices.Clone(want)
	slices.Sort(g)
	slices.Sort(w)
	if !slices.Equal(g, w) {
		t.Errorf("selection = %v, want %v", got, want)
	}
}

func TestSelect(t *testing.T) {
	t.Parallel()

	t.Run("standard name", func(t *testing.T) {
		t.Parallel()
		s, _ := newTestSelector("somewhere")
		assertSameSet(t, s.Select([]string{"reana-job-controller"}), []string{"reana-job-controller"})
	})

	t.Run("multiple standard names", func(t *testing.T) {
		t.Parallel()
		s, _ := newTestSelector("somewhere")
		got := s.Select([]string{"reana-job-controller", "reana"})
		assertSameSet(t, got, []string{"reana-job-controller", "reana"})
	})

	t.Run("short name resolves", func(t *testing.T) {
		t.Parallel()
		s, _ := newTestSelector("somewhere")
		assertSameSet(t, s.Select([]string{"r-j-controller"}), []string{"reana-job-controller"})
	})

	t.Run("ALL expands to every repository", func(t *testing.T) {
		t.Parallel()
		s, _ := newTestSelector("somewhere")
		assertSameSet(t, s.Select([]string{"ALL"}), DefaultRegistry().All)
	})

	t.Run("CLUSTER expands to cluster subset", func(t *testing.T) {
		t.Parallel()
		s, _ := newTestSelector("somewhere")
		assertSameSet(t, s.Select([]string{"CLUSTER"}), DefaultRegistry().Cluster)
	})

	t.Run("union with ALL does not duplicate", func(t *testing.T) {
		t.Parallel()
		s, _ := newTestSelector("somewhere")
		got := s.Select([]string{"ALL", "reana"})
		assertSameSet(t, got, DefaultRegistry().All)
		if len(got) != len(DefaultRegistry().All) {
			t.Errorf("selection has %d entries, want %d", len(got), len(DefaultRegistry().All))
		}
	})

	t.Run("dot adds cwd basename unvalidated", func(t *testing.T) {
		t.Parallel()
		s, warnings := newTestSelector("not-a-component")
		assertSameSet(t, s.Select([]string{"."}), []string{"not-a-component"})
		if len(*warnings) != 0 {
			t.Errorf("got %d warnings, want 0", len(*warnings))
		}
	})

	t.Run("unknown token warns and is skipped", func(t *testing.T) {
		t.Parallel()
		s, warnings := newTestSelector("somewhere")
		got := s.Select([]string{"nonsense"})
		if len(got) != 0 {
			t.Errorf("selection = %v, want empty", got)
		}
		if len(*warnings) != 1 {
			t.Fatalf("got %d warnings, want 1", len(*warnings))
		}
		if !strings.Contains((*warnings)[0], "nonsense") {
			t.Errorf("warning %q does not name the token", (*warnings)[0])
		}
	})

	t.Run("unknown token does not fail the batch", func(t *testing.T) {
		t.Parallel()
		s, warnings := newTestSelector("somewhere")
		assertSameSet(t, s.Select([]string{"nonsense", "reana"}), []string{"reana"})
		if len(*warnings) != 1 {
			t.Errorf("got %d warnings, want 1", len(*warnings))
		}
	})

	t.Run("warnings follow token order", func(t *testing.T) {
		t.Parallel()
		s, warnings := newTestSelector("somewhere")
		s.Select([]string{"bogus-one", "reana", "bogus-two"})
		if len(*warnings) != 2 {
			t.Fatalf("got %d warnings, want 2", len(*warnings))
		}
		if !strings.Contains((*warnings)[0], "bogus-one") || !strings.Contains((*warnings)[1], "bogus-two") {
			t.Errorf("warnings out of order: %v", *warnings)
		}
	})

	t.Run("near miss suggests a component", func(t *testing.T) {
		t.Parallel()
		s, warnings := newTestSelector("somewhere")
		s.Select([]string{"reana-sever"})
		if len(*warnings) != 1 {
			t.Fatalf("got %d warnings, want 1", len(*warnings))
		}
		if !strings.Contains((*warnings)[0], "Did you mean reana-server?") {
			t.Errorf("warning %q lacks suggestion", (*warnings)[0])
		}
	})

	t.Run("empty input yields empty selection", func(t *testing.T) {
		t.Parallel()
		s, warnings := newTestSelector("somewhere")
		if got := s.Select(nil); len(got) != 0 {
			t.Errorf("Select(nil) = %v, want empty", got)
		}
		if len(*warnings) != 0 {
			t.Errorf("got %d warnings, want 0", len(*warnings))
		}
	})

	t.Run("nil Warn drops messages", func(t *testing.T) {
		t.Parallel()
		s := &Selector{Registry: DefaultRegistry(), CwdBase: func() string { return "x" }}
		if got := s.Select([]string{"nonsense"}); len(got) != 0 {
			t.Errorf("selection = %v, want empty", got)
		}
	})
}
