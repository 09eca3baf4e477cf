package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/reanahub/reana-dev/internal/output"
)

func TestVersionCmd(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	cmd := newVersionCmd()
	cmd.SetContext(output.WithPrinter(context.Background(), &buf))

	if err := cmd.RunE(cmd, nil); err != nil {
		t.Fatalf("version command failed: %v", err)
	}

	got := buf.String()
	if !strings.HasPrefix(got, "reana-dev ") {
		t.Errorf("version output = %q, want prefix %q", got, "reana-dev ")
	}
	if !strings.HasSuffix(got, "\n") {
		t.Errorf("version output %q missing trailing newline", got)
	}
}
