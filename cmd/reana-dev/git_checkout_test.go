package main

import "testing"

func TestParseBranchPairs(t *testing.T) {
	t.Parallel()

	t.Run("single pair", func(t *testing.T) {
		t.Parallel()
		pairs, err := parseBranchPairs([]string{"reana-job-controller", "72"})
		if err != nil {
			t.Fatalf("parseBranchPairs() error: %v", err)
		}
		if len(pairs) != 1 || pairs[0].component != "reana-job-controller" || pairs[0].pr != 72 {
			t.Errorf("pairs = %+v", pairs)
		}
	})

	t.Run("multiple pairs", func(t *testing.T) {
		t.Parallel()
		pairs, err := parseBranchPairs([]string{"r-j-controller", "72", "r-w-controller", "98"})
		if err != nil {
			t.Fatalf("parseBranchPairs() error: %v", err)
		}
		if len(pairs) != 2 || pairs[1].component != "r-w-controller" || pairs[1].pr != 98 {
			t.Errorf("pairs = %+v", pairs)
		}
	})

	t.Run("no arguments", func(t *testing.T) {
		t.Parallel()
		if _, err := parseBranchPairs(nil); err == nil {
			t.Error("parseBranchPairs(nil) = nil, want error")
		}
	})

	t.Run("odd argument count", func(t *testing.T) {
		t.Parallel()
		if _, err := parseBranchPairs([]string{"reana-server"}); err == nil {
			t.Error("parseBranchPairs(odd) = nil, want error")
		}
	})

	t.Run("non-numeric pull request", func(t *testing.T) {
		t.Parallel()
		if _, err := parseBranchPairs([]string{"reana-server", "seventy"}); err == nil {
			t.Error("parseBranchPairs(non-numeric) = nil, want error")
		}
	})

	t.Run("negative pull request", func(t *testing.T) {
		t.Parallel()
		if _, err := parseBranchPairs([]string{"reana-server", "-1"}); err == nil {
			t.Error("parseBranchPairs(negative) = nil, want error")
		}
	})
}
